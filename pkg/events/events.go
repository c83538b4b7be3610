package events

import (
	"context"

	"github.com/ad-tools/revenue-console/pkg/models/api"
)

// Publisher emits an audit event after a report export succeeds. Failures
// are logged but never fail the export itself.
type Publisher interface {
	Publish(ctx context.Context, event api.ReportExported) error
}
