package api

// Error is the JSON payload returned on every failed report request.
type Error struct {
	Error string `json:"error"`
}

// ReportExported is the audit event emitted after a successful export.
type ReportExported struct {
	EventID    string `json:"event_id"`
	ReportType string `json:"report_type"`
	Format     string `json:"format"`
	RangeStart string `json:"range_start"`
	RangeEnd   string `json:"range_end"`
	RowCount   int    `json:"row_count"`
	AdminID    string `json:"admin_id"`
	ExportedAt string `json:"exported_at"`
}
