package store

import (
	"time"

	"github.com/shopspring/decimal"
)

// PartnerEarnings is one partner with its earnings summed over the
// requested range. Partners with no earnings in range report zero sums.
type PartnerEarnings struct {
	ID               string
	CompanyName      string
	CommissionRate   decimal.Decimal
	TotalAmount      decimal.Decimal
	TotalImpressions int64
	TotalEngagements int64
	CreatedAt        time.Time
}
