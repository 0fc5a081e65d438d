package importer

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyWorkbook indicates the workbook has no sheets or no rows at all.
var ErrEmptyWorkbook = errors.New("workbook contains no data")

// ErrMissingHeader indicates the first row is empty and cannot serve as a header.
var ErrMissingHeader = errors.New("workbook has no header row")

// ErrNoUsableRows indicates every data row was discarded by the row filter.
var ErrNoUsableRows = errors.New("no rows with a reservation number found")

// MissingColumnError reports that none of the accepted header names for a
// required column were found.
type MissingColumnError struct {
	Aliases []string
	Headers []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("required column not found: expected one of [%s], header contains [%s]",
		strings.Join(e.Aliases, ", "), strings.Join(e.Headers, ", "))
}
