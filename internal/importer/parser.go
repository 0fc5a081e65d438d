// Package importer normalizes channel-manager booking exports into the
// fixed schema used by the CSV exporter.
package importer

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"bookbridge/internal/types"

	"github.com/xuri/excelize/v2"
)

// Parse reads a workbook from raw bytes and normalizes the first sheet
// into booking records. The header is the first row; data rows without a
// reservation number are skipped silently, but an input where nothing
// survives is an error. Record order follows row order.
//
// progress may be nil; sends are non-blocking so a slow consumer never
// stalls the parse.
func Parse(data []byte, fileName string, progress chan<- float64) (*types.ParseResult, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", fileName, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrEmptyWorkbook
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read rows from sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyWorkbook
	}
	if len(rows[0]) == 0 {
		return nil, ErrMissingHeader
	}

	cols, err := resolveColumns(rows[0])
	if err != nil {
		return nil, err
	}

	cur := sheetCursor{file: f, sheet: sheet}
	bookings := make([]types.Booking, 0, len(rows)-1)
	totalRows := len(rows) - 1

	for i, row := range rows[1:] {
		if progress != nil && totalRows > 0 {
			select {
			case progress <- float64(i+1) / float64(totalRows):
			default:
			}
		}

		number := strings.TrimSpace(textAt(row, cols[requiredField]))
		if number == "" {
			continue
		}
		// Sheet rows are 1-based and the header occupies row 1.
		bookings = append(bookings, buildBooking(row, i+2, cols, cur, number))
	}

	if len(bookings) == 0 {
		return nil, ErrNoUsableRows
	}

	return &types.ParseResult{Bookings: bookings, FileName: fileName}, nil
}

func buildBooking(row []string, sheetRow int, cols map[Field]int, cur sheetCursor, number string) types.Booking {
	// Channel exports pad reservation numbers with a single leading zero.
	number = stripLeadingZero(number)

	return types.Booking{
		Id:               number,
		BookingNumber:    number,
		OTANumber:        textAt(row, cols[FieldOTANumber]),
		Name:             textAt(row, cols[FieldName]),
		NumberOfAdults:   intAt(row, cols[FieldNumberOfAdults]),
		NumberOfTeens:    "0",
		NumberOfChildren: intAt(row, cols[FieldNumberOfChildren]),
		NumberOfBabys:    "0",
		DateFrom:         dateAt(cur, sheetRow, cols[FieldDateFrom]),
		DateTo:           dateAt(cur, sheetRow, cols[FieldDateTo]),
	}
}

// stripLeadingZero removes exactly one leading '0', never more.
func stripLeadingZero(s string) string {
	if strings.HasPrefix(s, "0") {
		return s[1:]
	}
	return s
}

// textAt reads a rendered cell value, tolerating short rows and
// unresolved columns.
func textAt(row []string, col int) string {
	if col == colUnresolved || col >= len(row) {
		return ""
	}
	return row[col]
}

// intAt parses an integer cell. Anything that is not a number becomes the
// empty string, not zero, so the output stays distinguishable from a real
// zero-guest booking.
func intAt(row []string, col int) string {
	v := strings.TrimSpace(textAt(row, col))
	if v == "" {
		return ""
	}
	if n, err := strconv.Atoi(v); err == nil {
		return strconv.Itoa(n)
	}
	// int(fv) is undefined outside int range, so bound the float first
	if fv, err := strconv.ParseFloat(v, 64); err == nil && fv >= math.MinInt32 && fv <= math.MaxInt32 {
		return strconv.Itoa(int(fv))
	}
	return ""
}

func dateAt(cur sheetCursor, sheetRow, col int) string {
	if col == colUnresolved {
		return ""
	}
	return normalizeDate(cur.cellAt(sheetRow, col))
}
