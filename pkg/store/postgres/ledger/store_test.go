package ledger

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	rangeStart = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	rangeEnd   = time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)
)

func TestNewStore_NilDB(t *testing.T) {
	_, err := NewStore(nil)
	assert.ErrorContains(t, err, "database connection is nil")
}

func TestGetTransactions(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	occurred := time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)
	processed := occurred.Add(5 * time.Minute)

	rows := sqlmock.NewRows([]string{
		"id", "kind", "amount", "currency", "status", "occurred_at", "processed_at",
		"reference", "wallet_id", "pm_id", "pm_type", "pm_last_four",
	}).
		AddRow("txn-1", "deposit", "250.75", "USD", "completed", occurred, processed,
			"ref-99", "wallet-7", "pm-1", "card", "4242").
		AddRow("txn-2", "withdrawal", "90", "USD", "pending", occurred, nil,
			"", "wallet-8", "", "", "")

	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN payment_methods pm")).
		WithArgs(rangeStart, rangeEnd, 100).
		WillReturnRows(rows)

	s, err := NewStore(db)
	require.NoError(t, err)

	txs, err := s.GetTransactions(context.Background(), rangeStart, rangeEnd, 100)
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, "txn-1", txs[0].ID)
	assert.True(t, txs[0].Amount.Equal(decimal.NewFromFloat(250.75)))
	require.NotNil(t, txs[0].ProcessedAt)
	assert.Equal(t, processed, *txs[0].ProcessedAt)
	assert.Equal(t, "4242", txs[0].PaymentMethodLast4)

	assert.Nil(t, txs[1].ProcessedAt)
	assert.Empty(t, txs[1].PaymentMethodID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTransactions_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM ledger_entries")).
		WithArgs(rangeStart, rangeEnd, 100).
		WillReturnError(assert.AnError)

	s, err := NewStore(db)
	require.NoError(t, err)

	_, err = s.GetTransactions(context.Background(), rangeStart, rangeEnd, 100)
	assert.ErrorContains(t, err, "query transactions")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDailyRevenue(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"day", "sum"}).
		AddRow(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "300").
		AddRow(time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), "450.25")

	mock.ExpectQuery(regexp.QuoteMeta("date_trunc('day', occurred_at)")).
		WithArgs(rangeStart, rangeEnd).
		WillReturnRows(rows)

	s, err := NewStore(db)
	require.NoError(t, err)

	days, err := s.GetDailyRevenue(context.Background(), rangeStart, rangeEnd)
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), days[0].Day)
	assert.True(t, days[1].Revenue.Equal(decimal.NewFromFloat(450.25)))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMonthlyRevenue(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"year", "month", "sum"}).
		AddRow(2024, 1, "1000").
		AddRow(2024, 2, "1100")

	mock.ExpectQuery(regexp.QuoteMeta("EXTRACT(YEAR FROM occurred_at)::int")).
		WithArgs(rangeStart, rangeEnd).
		WillReturnRows(rows)

	s, err := NewStore(db)
	require.NoError(t, err)

	months, err := s.GetMonthlyRevenue(context.Background(), rangeStart, rangeEnd)
	require.NoError(t, err)
	require.Len(t, months, 2)
	assert.Equal(t, 2024, months[0].Year)
	assert.Equal(t, 1, months[0].Month)
	assert.True(t, months[1].Revenue.Equal(decimal.NewFromInt(1100)))

	assert.NoError(t, mock.ExpectationsWereMet())
}
