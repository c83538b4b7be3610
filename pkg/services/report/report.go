package report

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ad-tools/revenue-console/pkg/models/domain"
)

// ErrUnknownType rejects report types outside the supported set.
var ErrUnknownType = errors.New("unsupported report type")

// Builder assembles one report type into its tabular shape for a resolved
// time range.
type Builder interface {
	Type() domain.ReportType
	Build(ctx context.Context, rng domain.TimeRange) (*domain.ReportTable, error)
}

// Registry selects the builder for a requested report type. New report
// types register a builder; nothing else changes.
type Registry interface {
	Register(b Builder) error
	Build(ctx context.Context, t domain.ReportType, rng domain.TimeRange) (*domain.ReportTable, error)
}

type registry struct {
	mu       sync.RWMutex
	builders map[domain.ReportType]Builder
}

func NewRegistry() Registry {
	return &registry{builders: make(map[domain.ReportType]Builder)}
}

func (r *registry) Register(b Builder) error {
	if b == nil {
		return fmt.Errorf("builder cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.builders[b.Type()]; exists {
		return fmt.Errorf("report type %q is already registered", b.Type())
	}
	r.builders[b.Type()] = b
	return nil
}

func (r *registry) Build(ctx context.Context, t domain.ReportType, rng domain.TimeRange) (*domain.ReportTable, error) {
	r.mu.RLock()
	b, exists := r.builders[t]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
	return b.Build(ctx, rng)
}

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func formatDateTime(t time.Time) string {
	return t.Format(dateTimeLayout)
}

// optDateTime renders a nullable timestamp, empty when absent.
func optDateTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatDateTime(*t)
}
