package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "single field",
			err:  NewValidationError("clinic", "name", "required"),
			want: "invalid clinic: name: required",
		},
		{
			name: "fields are listed in name order",
			err: &ValidationError{
				Entity: "patient",
				Fields: map[string]string{"sex": "oneof", "email": "required"},
			},
			want: "invalid patient: email: required, sex: oneof",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestValidationError_IsValidation(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("create patient: %w", NewValidationError("patient", "sex", "oneof"))

	assert.ErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrNotFound)

	var vErr *ValidationError
	if assert.True(t, errors.As(err, &vErr)) {
		assert.Equal(t, "oneof", vErr.Fields["sex"])
	}
}

func TestErrClinicMismatch_IsValidation(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, ErrClinicMismatch, ErrValidation)
	assert.NotErrorIs(t, ErrAccessDenied, ErrValidation)
}
