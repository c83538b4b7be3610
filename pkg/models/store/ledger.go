package store

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a raw ledger row enriched with its payment method summary.
// Optional columns come back as empty strings when the source row has no
// payment method or has not been processed yet.
type Transaction struct {
	ID                 string
	Kind               string // deposit, payment, withdrawal, refund
	Amount             decimal.Decimal
	Currency           string
	Status             string // pending, completed, failed
	OccurredAt         time.Time
	ProcessedAt        *time.Time
	Reference          string
	WalletID           string
	PaymentMethodID    string
	PaymentMethodType  string
	PaymentMethodLast4 string
}

// DailyRevenue is one day's completed deposit/payment sum.
type DailyRevenue struct {
	Day     time.Time
	Revenue decimal.Decimal
}

// MonthlyRevenue is one calendar month's completed deposit/payment sum.
type MonthlyRevenue struct {
	Year    int
	Month   int
	Revenue decimal.Decimal
}
