package payment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ad-tools/revenue-console/pkg/models/store"
)

// Store reads payment records with counterparty display names attached.
type Store interface {
	GetPayments(ctx context.Context, start, end time.Time, limit int) ([]store.Payment, error)
}

type paymentStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &paymentStore{db: db}, nil
}

func (s *paymentStore) GetPayments(ctx context.Context, start, end time.Time, limit int) ([]store.Payment, error) {
	query := `
		SELECT p.id, p.type, p.amount, p.currency, p.status, p.initiated_at, p.completed_at,
		       COALESCE(p.transaction_id, ''), COALESCE(p.receipt_url, ''),
		       COALESCE(p.payment_method_type, ''),
		       COALESCE(p.advertiser_id, ''), COALESCE(p.partner_id, ''),
		       COALESCE(a.company_name, ''), COALESCE(pt.company_name, '')
		FROM payments p
		LEFT JOIN advertisers a ON a.id = p.advertiser_id
		LEFT JOIN partners pt ON pt.id = p.partner_id
		WHERE p.initiated_at >= $1 AND p.initiated_at <= $2
		ORDER BY p.initiated_at DESC
		LIMIT $3
	`
	rows, err := s.db.QueryContext(ctx, query, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("query payments: %w", err)
	}
	defer rows.Close()

	records := make([]store.Payment, 0)
	for rows.Next() {
		var (
			p           store.Payment
			completedAt sql.NullTime
		)
		if err := rows.Scan(
			&p.ID,
			&p.Type,
			&p.Amount,
			&p.Currency,
			&p.Status,
			&p.InitiatedAt,
			&completedAt,
			&p.TransactionID,
			&p.ReceiptURL,
			&p.PaymentMethodType,
			&p.AdvertiserID,
			&p.PartnerID,
			&p.AdvertiserName,
			&p.PartnerName,
		); err != nil {
			return nil, err
		}
		if completedAt.Valid {
			t := completedAt.Time
			p.CompletedAt = &t
		}
		records = append(records, p)
	}
	return records, rows.Err()
}
