package store

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdvertiserSpend is one advertiser with campaign budgets summed
// unconditionally and completed payments summed within the requested range.
type AdvertiserSpend struct {
	ID                     string
	CompanyName            string
	TotalCampaigns         int64
	TotalBudget            decimal.Decimal
	TotalCompletedPayments decimal.Decimal
	CreatedAt              time.Time
}
