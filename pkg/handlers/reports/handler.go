package reports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ad-tools/revenue-console/pkg/events"
	"github.com/ad-tools/revenue-console/pkg/models/api"
	"github.com/ad-tools/revenue-console/pkg/models/domain"
	"github.com/ad-tools/revenue-console/pkg/services/auth"
	"github.com/ad-tools/revenue-console/pkg/services/export"
	"github.com/ad-tools/revenue-console/pkg/services/report"
	"github.com/ad-tools/revenue-console/pkg/services/timerange"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	defaultFormat = domain.FormatCSV
	defaultType   = domain.ReportOverview
)

type Handler struct {
	registry  report.Registry
	publisher events.Publisher
	now       func() time.Time
}

// NewHandler serves the revenue report endpoint. The publisher may be nil;
// exports then skip the audit event.
func NewHandler(registry report.Registry, publisher events.Publisher) *Handler {
	return &Handler{
		registry:  registry,
		publisher: publisher,
		now:       time.Now,
	}
}

// ExportRevenue resolves the requested range, assembles the requested
// report type and streams it back in the requested format.
func (h *Handler) ExportRevenue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	query := r.URL.Query()
	format := domain.ExportFormat(query.Get("format"))
	if format == "" {
		format = defaultFormat
	}
	reportType := domain.ReportType(query.Get("type"))
	if reportType == "" {
		reportType = defaultType
	}

	// Reject bad formats before touching the store.
	if err := export.ValidateFormat(format); err != nil {
		writeFormatError(w, err)
		return
	}

	rng, err := timerange.Resolve(timerange.Query{
		Preset:    query.Get("range"),
		StartDate: query.Get("startDate"),
		EndDate:   query.Get("endDate"),
	}, h.now())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	table, err := h.registry.Build(ctx, reportType, rng)
	if err != nil {
		if errors.Is(err, report.ErrUnknownType) {
			writeError(w, http.StatusBadRequest, "Unsupported report type")
			return
		}
		logger.Error().
			Err(err).
			Str("type", string(reportType)).
			Time("range_start", rng.Start).
			Time("range_end", rng.End).
			Msg("report assembly failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	stem := fmt.Sprintf("revenue-%s-%s", reportType, h.now().Format("2006-01-02"))
	file, err := export.Encode(table, format, stem)
	if err != nil {
		logger.Error().Err(err).Str("format", string(format)).Msg("report encoding failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.publishExported(ctx, reportType, format, rng, len(table.Rows))

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	if _, err := w.Write(file.Data); err != nil {
		logger.Error().Err(err).Msg("failed to write report body")
	}
}

func (h *Handler) publishExported(
	ctx context.Context,
	reportType domain.ReportType,
	format domain.ExportFormat,
	rng domain.TimeRange,
	rowCount int,
) {
	if h.publisher == nil {
		return
	}
	logger := zerolog.Ctx(ctx)

	event := api.ReportExported{
		EventID:    uuid.NewString(),
		ReportType: string(reportType),
		Format:     string(format),
		RangeStart: rng.Start.Format(time.RFC3339),
		RangeEnd:   rng.End.Format(time.RFC3339),
		RowCount:   rowCount,
		ExportedAt: h.now().Format(time.RFC3339),
	}
	if identity := auth.IdentityFromContext(ctx); identity != nil {
		event.AdminID = identity.UserID
	}

	if err := h.publisher.Publish(ctx, event); err != nil {
		logger.Warn().Err(err).Str("event_id", event.EventID).Msg("failed to publish export event")
	}
}

func writeFormatError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, export.ErrPDFNotImplemented):
		writeError(w, http.StatusNotImplemented, "PDF export is not implemented in this example")
	default:
		writeError(w, http.StatusBadRequest, "Unsupported export format")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
