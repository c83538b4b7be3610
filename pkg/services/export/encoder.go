package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"

	"github.com/ad-tools/revenue-console/pkg/models/domain"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	csvContentType  = "text/csv"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	sheetName = "Revenue Data"
)

var (
	// ErrUnsupportedFormat rejects formats outside {csv, xlsx, pdf}.
	ErrUnsupportedFormat = errors.New("unsupported export format")

	// ErrPDFNotImplemented marks the missing PDF capability; callers map
	// it to 501 rather than 400.
	ErrPDFNotImplemented = errors.New("PDF export is not implemented")
)

// ValidateFormat lets callers reject a bad format before any store work
// happens. The same sentinels come back from Encode.
func ValidateFormat(format domain.ExportFormat) error {
	switch format {
	case domain.FormatCSV, domain.FormatXLSX:
		return nil
	case domain.FormatPDF:
		return ErrPDFNotImplemented
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Encode serializes an assembled table into the requested format. The stem
// becomes the download filename without extension.
func Encode(table *domain.ReportTable, format domain.ExportFormat, stem string) (*domain.ExportFile, error) {
	switch format {
	case domain.FormatCSV:
		return encodeCSV(table, stem)
	case domain.FormatXLSX:
		return encodeXLSX(table, stem)
	case domain.FormatPDF:
		return nil, ErrPDFNotImplemented
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func encodeCSV(table *domain.ReportTable, stem string) (*domain.ExportFile, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(table.Headers); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	record := make([]string, len(table.Headers))
	for _, row := range table.Rows {
		for i, cell := range row {
			record[i] = cellString(cell)
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	return &domain.ExportFile{
		Name:        stem + ".csv",
		ContentType: csvContentType,
		Data:        buf.Bytes(),
	}, nil
}

func encodeXLSX(table *domain.ReportTable, stem string) (*domain.ExportFile, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, len(table.Headers))
	for i, h := range table.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header row: %w", err)
	}

	for i, row := range table.Rows {
		cells := make([]any, len(row))
		for j, cell := range row {
			cells[j] = cellValue(cell)
		}
		ref, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("cell reference: %w", err)
		}
		if err := f.SetSheetRow(sheetName, ref, &cells); err != nil {
			return nil, fmt.Errorf("write data row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return &domain.ExportFile{
		Name:        stem + ".xlsx",
		ContentType: xlsxContentType,
		Data:        buf.Bytes(),
	}, nil
}

// cellString renders a table cell for CSV. Decimals keep their exact
// representation; absent optionals come out empty.
func cellString(cell any) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case decimal.Decimal:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// cellValue maps a table cell to a type excelize writes natively, so
// amounts land as numeric cells rather than text.
func cellValue(cell any) any {
	switch v := cell.(type) {
	case nil:
		return ""
	case decimal.Decimal:
		return v.InexactFloat64()
	default:
		return cell
	}
}
