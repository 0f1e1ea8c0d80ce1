// Package metrics exposes Prometheus instrumentation for the database layer.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

const startKey = "metrics:start"

// Statement outcomes recorded in the status label.
const (
	StatusOK       = "ok"
	StatusNotFound = "not_found"
	StatusError    = "error"
)

// GormPlugin counts and times every statement GORM executes,
// labelled by operation, table and outcome.
type GormPlugin struct {
	queries  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

var _ gorm.Plugin = (*GormPlugin)(nil)

// NewGormPlugin creates the collectors and registers them with reg.
func NewGormPlugin(reg prometheus.Registerer) (*GormPlugin, error) {
	p := &GormPlugin{
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "db",
			Name:      "queries_total",
			Help:      "Database statements by operation, table and outcome.",
		}, []string{"operation", "table", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "clinic",
			Subsystem: "db",
			Name:      "query_duration_seconds",
			Help:      "Database statement latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation", "table"}),
	}
	for _, c := range []prometheus.Collector{p.queries, p.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *GormPlugin) Name() string {
	return "clinic:metrics"
}

// Initialize hooks the plugin into every GORM callback chain.
func (p *GormPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	hooks := []struct {
		op     string
		before func(name string, fn func(*gorm.DB)) error
		after  func(name string, fn func(*gorm.DB)) error
	}{
		{"create", cb.Create().Before("gorm:create").Register, cb.Create().After("gorm:create").Register},
		{"query", cb.Query().Before("gorm:query").Register, cb.Query().After("gorm:query").Register},
		{"update", cb.Update().Before("gorm:update").Register, cb.Update().After("gorm:update").Register},
		{"delete", cb.Delete().Before("gorm:delete").Register, cb.Delete().After("gorm:delete").Register},
		{"row", cb.Row().Before("gorm:row").Register, cb.Row().After("gorm:row").Register},
		{"raw", cb.Raw().Before("gorm:raw").Register, cb.Raw().After("gorm:raw").Register},
	}
	for _, h := range hooks {
		if err := h.before("metrics:before_"+h.op, p.before); err != nil {
			return err
		}
		if err := h.after("metrics:after_"+h.op, p.after(h.op)); err != nil {
			return err
		}
	}
	return nil
}

func (p *GormPlugin) before(db *gorm.DB) {
	db.InstanceSet(startKey, time.Now())
}

func (p *GormPlugin) after(op string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		table := db.Statement.Table
		if table == "" {
			table = "unknown"
		}
		p.queries.WithLabelValues(op, table, status(db.Error)).Inc()

		if v, ok := db.InstanceGet(startKey); ok {
			if start, ok := v.(time.Time); ok {
				p.duration.WithLabelValues(op, table).Observe(time.Since(start).Seconds())
			}
		}
	}
}

func status(err error) string {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, gorm.ErrRecordNotFound):
		return StatusNotFound
	default:
		return StatusError
	}
}
