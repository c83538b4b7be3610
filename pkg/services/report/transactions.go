package report

import (
	"context"
	"fmt"

	"github.com/ad-tools/revenue-console/pkg/models/domain"
	"github.com/ad-tools/revenue-console/pkg/store/postgres/ledger"
)

var transactionHeaders = []string{
	"ID", "Type", "Amount", "Currency", "Status", "Date", "Processed At",
	"Reference", "Wallet ID", "Payment Method ID", "Payment Method Type",
	"Payment Method Last 4",
}

type transactionsBuilder struct {
	store ledger.Store
	limit int
}

// NewTransactionsBuilder lists raw ledger entries in the range, newest
// first, capped at limit rows.
func NewTransactionsBuilder(store ledger.Store, limit int) Builder {
	return &transactionsBuilder{store: store, limit: limit}
}

func (b *transactionsBuilder) Type() domain.ReportType {
	return domain.ReportTransactions
}

func (b *transactionsBuilder) Build(ctx context.Context, rng domain.TimeRange) (*domain.ReportTable, error) {
	entries, err := b.store.GetTransactions(ctx, rng.Start, rng.End, b.limit)
	if err != nil {
		return nil, fmt.Errorf("transactions report: %w", err)
	}

	table := &domain.ReportTable{Headers: transactionHeaders, Rows: make([][]any, 0, len(entries))}
	for _, e := range entries {
		table.Rows = append(table.Rows, []any{
			e.ID,
			e.Kind,
			e.Amount,
			e.Currency,
			e.Status,
			formatDateTime(e.OccurredAt),
			optDateTime(e.ProcessedAt),
			e.Reference,
			e.WalletID,
			e.PaymentMethodID,
			e.PaymentMethodType,
			e.PaymentMethodLast4,
		})
	}
	return table, nil
}
