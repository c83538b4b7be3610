package store

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a payment row joined with its counterparty display names.
// AdvertiserID/PartnerID and the matching name are empty for the side the
// payment does not involve.
type Payment struct {
	ID                string
	Type              string
	Amount            decimal.Decimal
	Currency          string
	Status            string
	InitiatedAt       time.Time
	CompletedAt       *time.Time
	TransactionID     string
	ReceiptURL        string
	PaymentMethodType string
	AdvertiserID      string
	PartnerID         string
	AdvertiserName    string
	PartnerName       string
}
