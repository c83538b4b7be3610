package advertiser

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ad-tools/revenue-console/pkg/models/store"
)

// Store reads advertisers with campaign and payment totals.
type Store interface {
	GetSpendSummaries(ctx context.Context, start, end time.Time) ([]store.AdvertiserSpend, error)
}

type advertiserStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &advertiserStore{db: db}, nil
}

// GetSpendSummaries returns every advertiser. Campaign counts and budgets
// sum over the advertiser's lifetime; completed payments sum only within
// the requested range.
func (s *advertiserStore) GetSpendSummaries(ctx context.Context, start, end time.Time) ([]store.AdvertiserSpend, error) {
	query := `
		SELECT a.id, a.company_name,
		       COALESCE(c.total_campaigns, 0),
		       COALESCE(c.total_budget, 0),
		       COALESCE(p.total_payments, 0),
		       a.created_at
		FROM advertisers a
		LEFT JOIN (
			SELECT advertiser_id, COUNT(*) AS total_campaigns, SUM(budget) AS total_budget
			FROM campaigns
			GROUP BY advertiser_id
		) c ON c.advertiser_id = a.id
		LEFT JOIN (
			SELECT advertiser_id, SUM(amount) AS total_payments
			FROM payments
			WHERE status = 'completed' AND initiated_at >= $1 AND initiated_at <= $2
			GROUP BY advertiser_id
		) p ON p.advertiser_id = a.id
		ORDER BY a.created_at
	`
	rows, err := s.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("query advertiser spend: %w", err)
	}
	defer rows.Close()

	records := make([]store.AdvertiserSpend, 0)
	for rows.Next() {
		var a store.AdvertiserSpend
		if err := rows.Scan(
			&a.ID,
			&a.CompanyName,
			&a.TotalCampaigns,
			&a.TotalBudget,
			&a.TotalCompletedPayments,
			&a.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}
