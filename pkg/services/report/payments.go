package report

import (
	"context"
	"fmt"

	"github.com/ad-tools/revenue-console/pkg/models/domain"
	"github.com/ad-tools/revenue-console/pkg/store/postgres/payment"
)

var paymentHeaders = []string{
	"ID", "Type", "Amount", "Currency", "Status", "Date Initiated",
	"Date Completed", "Transaction ID", "Receipt URL", "Payment Method Type",
	"Advertiser ID", "Partner ID", "Advertiser Name", "Partner Name",
}

type paymentsBuilder struct {
	store payment.Store
	limit int
}

// NewPaymentsBuilder lists payments initiated in the range with
// counterparty display names, newest first, capped at limit rows.
func NewPaymentsBuilder(store payment.Store, limit int) Builder {
	return &paymentsBuilder{store: store, limit: limit}
}

func (b *paymentsBuilder) Type() domain.ReportType {
	return domain.ReportPayments
}

func (b *paymentsBuilder) Build(ctx context.Context, rng domain.TimeRange) (*domain.ReportTable, error) {
	payments, err := b.store.GetPayments(ctx, rng.Start, rng.End, b.limit)
	if err != nil {
		return nil, fmt.Errorf("payments report: %w", err)
	}

	table := &domain.ReportTable{Headers: paymentHeaders, Rows: make([][]any, 0, len(payments))}
	for _, p := range payments {
		table.Rows = append(table.Rows, []any{
			p.ID,
			p.Type,
			p.Amount,
			p.Currency,
			p.Status,
			formatDateTime(p.InitiatedAt),
			optDateTime(p.CompletedAt),
			p.TransactionID,
			p.ReceiptURL,
			p.PaymentMethodType,
			p.AdvertiserID,
			p.PartnerID,
			p.AdvertiserName,
			p.PartnerName,
		})
	}
	return table, nil
}
