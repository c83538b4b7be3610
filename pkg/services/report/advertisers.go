package report

import (
	"context"
	"fmt"

	"github.com/ad-tools/revenue-console/pkg/models/domain"
	"github.com/ad-tools/revenue-console/pkg/store/postgres/advertiser"
)

var advertiserHeaders = []string{
	"ID", "Company Name", "Total Campaigns", "Total Budget", "Total Payments",
	"Created At",
}

type advertisersBuilder struct {
	store advertiser.Store
}

// NewAdvertisersBuilder lists every advertiser with lifetime campaign
// budgets and range-filtered completed payment totals.
func NewAdvertisersBuilder(store advertiser.Store) Builder {
	return &advertisersBuilder{store: store}
}

func (b *advertisersBuilder) Type() domain.ReportType {
	return domain.ReportAdvertisers
}

func (b *advertisersBuilder) Build(ctx context.Context, rng domain.TimeRange) (*domain.ReportTable, error) {
	advertisers, err := b.store.GetSpendSummaries(ctx, rng.Start, rng.End)
	if err != nil {
		return nil, fmt.Errorf("advertisers report: %w", err)
	}

	table := &domain.ReportTable{Headers: advertiserHeaders, Rows: make([][]any, 0, len(advertisers))}
	for _, a := range advertisers {
		table.Rows = append(table.Rows, []any{
			a.ID,
			a.CompanyName,
			a.TotalCampaigns,
			a.TotalBudget,
			a.TotalCompletedPayments,
			formatDateTime(a.CreatedAt),
		})
	}
	return table, nil
}
