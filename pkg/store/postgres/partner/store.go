package partner

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ad-tools/revenue-console/pkg/models/store"
)

// Store reads partners with their earnings aggregated over a range.
type Store interface {
	GetEarningSummaries(ctx context.Context, start, end time.Time) ([]store.PartnerEarnings, error)
}

type partnerStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &partnerStore{db: db}, nil
}

// GetEarningSummaries returns every partner regardless of range; only the
// earnings joined in are range-filtered. Partners without earnings in the
// range report zero sums.
func (s *partnerStore) GetEarningSummaries(ctx context.Context, start, end time.Time) ([]store.PartnerEarnings, error) {
	query := `
		SELECT p.id, p.company_name, p.commission_rate,
		       COALESCE(SUM(e.amount), 0),
		       COALESCE(SUM(e.impressions), 0),
		       COALESCE(SUM(e.engagements), 0),
		       p.created_at
		FROM partners p
		LEFT JOIN partner_earnings e
		  ON e.partner_id = p.id AND e.period_end >= $1 AND e.period_end <= $2
		GROUP BY p.id, p.company_name, p.commission_rate, p.created_at
		ORDER BY p.created_at
	`
	rows, err := s.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("query partner earnings: %w", err)
	}
	defer rows.Close()

	records := make([]store.PartnerEarnings, 0)
	for rows.Next() {
		var p store.PartnerEarnings
		if err := rows.Scan(
			&p.ID,
			&p.CompanyName,
			&p.CommissionRate,
			&p.TotalAmount,
			&p.TotalImpressions,
			&p.TotalEngagements,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, p)
	}
	return records, rows.Err()
}
