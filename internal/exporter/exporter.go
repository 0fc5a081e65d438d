// Package exporter renders booking records as semicolon-delimited CSV in
// the layout the property-management system imports.
package exporter

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"time"

	"bookbridge/internal/types"
)

// ErrNothingToExport indicates the export was invoked with zero records.
var ErrNothingToExport = errors.New("nothing to export")

// utf8BOM makes spreadsheet applications detect the encoding correctly.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// columns is the fixed output order expected by the import on the other side.
var columns = []string{
	"Id",
	"BookingNumber",
	"OTANumber",
	"Name",
	"NumberOfAdults",
	"NumberOfTeens",
	"NumberOfChildren",
	"NumberOfBabys",
	"DateFrom",
	"DateTo",
}

// Marshal renders the records as CSV: header line, semicolon delimiter,
// CRLF line endings, UTF-8 with a leading BOM. Fields are quoted only
// when they contain the delimiter, a quote, or a line break.
func Marshal(bookings []types.Booking) ([]byte, error) {
	if len(bookings) == 0 {
		return nil, ErrNothingToExport
	}

	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	w.Comma = ';'
	w.UseCRLF = true

	if err := w.Write(columns); err != nil {
		return nil, err
	}
	for _, b := range bookings {
		if err := w.Write(record(b)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func record(b types.Booking) []string {
	return []string{
		b.Id,
		b.BookingNumber,
		b.OTANumber,
		b.Name,
		b.NumberOfAdults,
		b.NumberOfTeens,
		b.NumberOfChildren,
		b.NumberOfBabys,
		b.DateFrom,
		b.DateTo,
	}
}

// WriteFile marshals the records and writes them to path.
func WriteFile(path string, bookings []types.Booking) (*types.ExportResult, error) {
	data, err := Marshal(bookings)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("write export file: %w", err)
	}
	return &types.ExportResult{OutputFile: path, RowsWritten: len(bookings)}, nil
}

// FileName stamps the export name with the given date.
func FileName(now time.Time) string {
	return "bookings_" + now.Format("02.01.2006") + ".csv"
}
