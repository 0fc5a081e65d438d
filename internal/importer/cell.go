package importer

import (
	"github.com/xuri/excelize/v2"
)

// sheetCursor is the per-parse handle for direct cell lookups. It is
// created inside Parse and never stored anywhere longer-lived, so
// concurrent parses of different files cannot step on each other.
type sheetCursor struct {
	file  *excelize.File
	sheet string
}

// cell carries the three views a spreadsheet cell can expose: the raw
// stored value, the rendered display text, and the stored cell type.
type cell struct {
	raw   string
	text  string
	ctype excelize.CellType
}

// hasNumericValue reports whether the cell stores an underlying number
// rather than text. Untyped counts as numeric: the file format omits the
// type attribute on plain number cells.
func (c cell) hasNumericValue() bool {
	switch c.ctype {
	case excelize.CellTypeNumber, excelize.CellTypeDate, excelize.CellTypeUnset:
		return true
	default:
		return false
	}
}

// cellAt reads the cell at the given 1-based sheet row and 0-based column
// index. Lookup failures degrade to an empty cell; the caller treats that
// the same as a blank.
func (s sheetCursor) cellAt(row, col int) cell {
	name, err := excelize.CoordinatesToCellName(col+1, row)
	if err != nil {
		return cell{}
	}
	raw, _ := s.file.GetCellValue(s.sheet, name, excelize.Options{RawCellValue: true})
	text, _ := s.file.GetCellValue(s.sheet, name)
	ctype, _ := s.file.GetCellType(s.sheet, name)
	return cell{raw: raw, text: text, ctype: ctype}
}
