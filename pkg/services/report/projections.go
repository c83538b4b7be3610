package report

import (
	"context"
	"fmt"
	"time"

	"github.com/ad-tools/revenue-console/pkg/models/domain"
	"github.com/ad-tools/revenue-console/pkg/services/forecast"
	"github.com/ad-tools/revenue-console/pkg/store/postgres/ledger"
)

var projectionHeaders = []string{
	"Month", "Projected Revenue", "Actual Revenue", "Monthly Growth Rate",
}

// How far back monthly history is pulled to derive the growth rate.
const historyDays = 365

type projectionsBuilder struct {
	store ledger.Store
	now   func() time.Time
}

// NewProjectionsBuilder derives the average monthly growth from up to a
// year of ledger history and compounds it into a 12-month forecast
// anchored at the range end's month.
func NewProjectionsBuilder(store ledger.Store) Builder {
	return &projectionsBuilder{store: store, now: time.Now}
}

func (b *projectionsBuilder) Type() domain.ReportType {
	return domain.ReportProjections
}

func (b *projectionsBuilder) Build(ctx context.Context, rng domain.TimeRange) (*domain.ReportTable, error) {
	historyStart := rng.Start.AddDate(0, 0, -historyDays)
	rows, err := b.store.GetMonthlyRevenue(ctx, historyStart, rng.End)
	if err != nil {
		return nil, fmt.Errorf("projections report: %w", err)
	}

	history := make([]domain.MonthlyRevenue, 0, len(rows))
	for _, m := range rows {
		history = append(history, domain.MonthlyRevenue{
			Year:    m.Year,
			Month:   time.Month(m.Month),
			Revenue: m.Revenue,
		})
	}

	points := forecast.Project(history, rng.End, b.now())

	table := &domain.ReportTable{Headers: projectionHeaders, Rows: make([][]any, 0, len(points))}
	for _, p := range points {
		var actual any
		if p.ActualRevenue != nil {
			actual = *p.ActualRevenue
		}
		table.Rows = append(table.Rows, []any{
			p.PeriodLabel,
			p.ProjectedRevenue,
			actual,
			p.GrowthRate,
		})
	}
	return table, nil
}
