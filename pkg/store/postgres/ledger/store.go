package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ad-tools/revenue-console/pkg/models/store"
	"github.com/shopspring/decimal"
)

// Revenue-bearing ledger entries: completed deposits and payments.
// Withdrawals, refunds and anything pending or failed never count.
const revenueFilter = `status = 'completed' AND kind IN ('deposit', 'payment')`

// Store reads ledger entries for the transactions, overview and projections
// reports.
type Store interface {
	GetTransactions(ctx context.Context, start, end time.Time, limit int) ([]store.Transaction, error)
	GetDailyRevenue(ctx context.Context, start, end time.Time) ([]store.DailyRevenue, error)
	GetMonthlyRevenue(ctx context.Context, start, end time.Time) ([]store.MonthlyRevenue, error)
}

type ledgerStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &ledgerStore{db: db}, nil
}

func (s *ledgerStore) GetTransactions(ctx context.Context, start, end time.Time, limit int) ([]store.Transaction, error) {
	query := `
		SELECT e.id, e.kind, e.amount, e.currency, e.status, e.occurred_at, e.processed_at,
		       COALESCE(e.reference, ''), e.wallet_id,
		       COALESCE(pm.id, ''), COALESCE(pm.type, ''), COALESCE(pm.last_four, '')
		FROM ledger_entries e
		LEFT JOIN payment_methods pm ON pm.id = e.payment_method_id
		WHERE e.occurred_at >= $1 AND e.occurred_at <= $2
		ORDER BY e.occurred_at DESC
		LIMIT $3
	`
	rows, err := s.db.QueryContext(ctx, query, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()
	return scanTransactions(rows)
}

func (s *ledgerStore) GetDailyRevenue(ctx context.Context, start, end time.Time) ([]store.DailyRevenue, error) {
	query := `
		SELECT date_trunc('day', occurred_at) AS day, SUM(amount)
		FROM ledger_entries
		WHERE occurred_at >= $1 AND occurred_at <= $2 AND ` + revenueFilter + `
		GROUP BY day
		ORDER BY day
	`
	rows, err := s.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("query daily revenue: %w", err)
	}
	defer rows.Close()

	var days []store.DailyRevenue
	for rows.Next() {
		var (
			day    time.Time
			amount decimal.Decimal
		)
		if err := rows.Scan(&day, &amount); err != nil {
			return nil, err
		}
		days = append(days, store.DailyRevenue{Day: day, Revenue: amount})
	}
	return days, rows.Err()
}

func (s *ledgerStore) GetMonthlyRevenue(ctx context.Context, start, end time.Time) ([]store.MonthlyRevenue, error) {
	query := `
		SELECT EXTRACT(YEAR FROM occurred_at)::int AS year,
		       EXTRACT(MONTH FROM occurred_at)::int AS month,
		       SUM(amount)
		FROM ledger_entries
		WHERE occurred_at >= $1 AND occurred_at <= $2 AND ` + revenueFilter + `
		GROUP BY year, month
		ORDER BY year, month
	`
	rows, err := s.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("query monthly revenue: %w", err)
	}
	defer rows.Close()

	var months []store.MonthlyRevenue
	for rows.Next() {
		var m store.MonthlyRevenue
		if err := rows.Scan(&m.Year, &m.Month, &m.Revenue); err != nil {
			return nil, err
		}
		months = append(months, m)
	}
	return months, rows.Err()
}

func scanTransactions(rows *sql.Rows) ([]store.Transaction, error) {
	records := make([]store.Transaction, 0)
	for rows.Next() {
		var (
			tx          store.Transaction
			processedAt sql.NullTime
		)
		if err := rows.Scan(
			&tx.ID,
			&tx.Kind,
			&tx.Amount,
			&tx.Currency,
			&tx.Status,
			&tx.OccurredAt,
			&processedAt,
			&tx.Reference,
			&tx.WalletID,
			&tx.PaymentMethodID,
			&tx.PaymentMethodType,
			&tx.PaymentMethodLast4,
		); err != nil {
			return nil, err
		}
		if processedAt.Valid {
			t := processedAt.Time
			tx.ProcessedAt = &t
		}
		records = append(records, tx)
	}
	return records, rows.Err()
}
