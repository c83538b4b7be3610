package report

import (
	"context"
	"fmt"

	"github.com/ad-tools/revenue-console/pkg/models/domain"
	"github.com/ad-tools/revenue-console/pkg/store/postgres/ledger"
)

var overviewHeaders = []string{"Date", "Revenue"}

type overviewBuilder struct {
	store ledger.Store
}

// NewOverviewBuilder sums completed deposit and payment entries per
// calendar day across the range. Days without revenue produce no row.
func NewOverviewBuilder(store ledger.Store) Builder {
	return &overviewBuilder{store: store}
}

func (b *overviewBuilder) Type() domain.ReportType {
	return domain.ReportOverview
}

func (b *overviewBuilder) Build(ctx context.Context, rng domain.TimeRange) (*domain.ReportTable, error) {
	days, err := b.store.GetDailyRevenue(ctx, rng.Start, rng.End)
	if err != nil {
		return nil, fmt.Errorf("overview report: %w", err)
	}

	table := &domain.ReportTable{Headers: overviewHeaders, Rows: make([][]any, 0, len(days))}
	for _, d := range days {
		table.Rows = append(table.Rows, []any{formatDate(d.Day), d.Revenue})
	}
	return table, nil
}
