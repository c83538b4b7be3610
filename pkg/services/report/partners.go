package report

import (
	"context"
	"fmt"

	"github.com/ad-tools/revenue-console/pkg/models/domain"
	"github.com/ad-tools/revenue-console/pkg/store/postgres/partner"
)

var partnerHeaders = []string{
	"ID", "Company Name", "Commission Rate", "Revenue", "Impressions",
	"Engagements", "Created At",
}

type partnersBuilder struct {
	store partner.Store
}

// NewPartnersBuilder lists every partner with earnings summed over the
// range; partners without earnings report zero.
func NewPartnersBuilder(store partner.Store) Builder {
	return &partnersBuilder{store: store}
}

func (b *partnersBuilder) Type() domain.ReportType {
	return domain.ReportPartners
}

func (b *partnersBuilder) Build(ctx context.Context, rng domain.TimeRange) (*domain.ReportTable, error) {
	partners, err := b.store.GetEarningSummaries(ctx, rng.Start, rng.End)
	if err != nil {
		return nil, fmt.Errorf("partners report: %w", err)
	}

	table := &domain.ReportTable{Headers: partnerHeaders, Rows: make([][]any, 0, len(partners))}
	for _, p := range partners {
		table.Rows = append(table.Rows, []any{
			p.ID,
			p.CompanyName,
			p.CommissionRate,
			p.TotalAmount,
			p.TotalImpressions,
			p.TotalEngagements,
			formatDateTime(p.CreatedAt),
		})
	}
	return table, nil
}
