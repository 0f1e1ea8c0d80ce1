package adapters

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic_backend/internal/feature/scheduling/domain"
	"clinic_backend/internal/feature/scheduling/domain/entity"
)

func TestMembershipPostgres_Grant(t *testing.T) {
	t.Run("success: grant and check", func(t *testing.T) {
		gdb := setupTestDB(t)
		repo := NewMembershipPostgres(gdb)
		user := seedUser(t, gdb)
		clinic := seedClinic(t, gdb, "C1")
		m := &entity.Membership{UserID: user.ID, ClinicID: clinic.ID}

		require.NoError(t, repo.Grant(context.Background(), m))

		assert.False(t, m.CreatedAt.IsZero())
		ok, err := repo.Exists(context.Background(), user.ID, clinic.ID)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("failure: duplicate pair", func(t *testing.T) {
		gdb := setupTestDB(t)
		repo := NewMembershipPostgres(gdb)
		user := seedUser(t, gdb)
		clinic := seedClinic(t, gdb, "C1")
		require.NoError(t, repo.Grant(context.Background(), &entity.Membership{UserID: user.ID, ClinicID: clinic.ID}))

		err := repo.Grant(context.Background(), &entity.Membership{UserID: user.ID, ClinicID: clinic.ID})

		assert.ErrorIs(t, err, domain.ErrUniquenessViolation)
	})

	t.Run("failure: unknown user", func(t *testing.T) {
		gdb := setupTestDB(t)
		repo := NewMembershipPostgres(gdb)
		clinic := seedClinic(t, gdb, "C1")

		err := repo.Grant(context.Background(), &entity.Membership{UserID: uuid.New(), ClinicID: clinic.ID})

		assert.ErrorIs(t, err, domain.ErrReferentialIntegrity)
	})

	t.Run("failure: missing ids", func(t *testing.T) {
		repo := NewMembershipPostgres(setupTestDB(t))

		assert.ErrorIs(t, repo.Grant(context.Background(), &entity.Membership{}), domain.ErrValidation)
	})
}

func TestMembershipPostgres_RevokeAndList(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewMembershipPostgres(gdb)
	u1 := seedUser(t, gdb)
	u2 := seedUser(t, gdb)
	c1 := seedClinic(t, gdb, "C1")
	c2 := seedClinic(t, gdb, "C2")
	for _, m := range []*entity.Membership{
		{UserID: u1.ID, ClinicID: c1.ID},
		{UserID: u2.ID, ClinicID: c1.ID},
		{UserID: u1.ID, ClinicID: c2.ID},
	} {
		require.NoError(t, repo.Grant(context.Background(), m))
	}

	members, err := repo.ListByClinic(context.Background(), c1.ID)
	require.NoError(t, err)
	assert.Len(t, members, 2)

	mine, err := repo.ListByUser(context.Background(), u1.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, m := range mine {
		require.NotNil(t, m.Clinic, "clinic is preloaded")
		assert.Equal(t, m.ClinicID, m.Clinic.ID)
	}

	require.NoError(t, repo.Revoke(context.Background(), u1.ID, c1.ID))
	ok, err := repo.Exists(context.Background(), u1.ID, c1.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ErrorIs(t, repo.Revoke(context.Background(), u1.ID, c1.ID), domain.ErrNotFound)
}

func TestUserPostgres(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewUserPostgres(gdb)

	u := &entity.User{}
	require.NoError(t, repo.Create(context.Background(), u))
	assert.NotEqual(t, uuid.Nil, u.ID)

	got, err := repo.FindByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	assert.ErrorIs(t, repo.Create(context.Background(), &entity.User{ID: uuid.New()}), domain.ErrValidation)
	assert.Error(t, repo.Create(context.Background(), nil))

	require.NoError(t, repo.Delete(context.Background(), u.ID))
	_, err = repo.FindByID(context.Background(), u.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(context.Background(), u.ID), domain.ErrNotFound)
}
