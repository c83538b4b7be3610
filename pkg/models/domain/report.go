package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReportType string

const (
	ReportTransactions ReportType = "transactions"
	ReportPayments     ReportType = "payments"
	ReportPartners     ReportType = "partners"
	ReportAdvertisers  ReportType = "advertisers"
	ReportOverview     ReportType = "overview"
	ReportProjections  ReportType = "projections"
)

type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatXLSX ExportFormat = "xlsx"
	FormatPDF  ExportFormat = "pdf"
)

// TimeRange is a resolved [Start, End] reporting interval.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// ReportTable is the flat tabular shape every report type assembles into.
// Every row has exactly len(Headers) cells.
type ReportTable struct {
	Headers []string
	Rows    [][]any
}

// ExportFile is the encoded report handed back to the caller.
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// MonthlyRevenue is one calendar month's summed completed revenue.
type MonthlyRevenue struct {
	Year    int
	Month   time.Month
	Revenue decimal.Decimal
}

// Date returns the first instant of the month in UTC.
func (m MonthlyRevenue) Date() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// ProjectionPoint is one month of the 12-month forward revenue forecast.
// ActualRevenue is nil for months at or after "now" and for past months
// with no recorded revenue.
type ProjectionPoint struct {
	PeriodLabel      string
	ProjectedRevenue decimal.Decimal
	ActualRevenue    *decimal.Decimal
	GrowthRate       string
}
