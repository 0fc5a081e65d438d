package importer

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// datePattern is the canonical output format, DD.MM.YYYY.
var datePattern = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)

// serialEpoch is the 1900 date system base. Anchoring at Dec 30, 1899
// absorbs Excel's phantom Feb 29, 1900, so serials convert with plain day
// arithmetic and no leap-year correction.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

const millisPerDay = 24 * 60 * 60 * 1000

// Serials are only treated as dates inside this range; anything else is
// assumed to be an ordinary number rendered as text.
const (
	serialMin = 1
	serialMax = 1_000_000
)

// normalizeDate turns a date cell into a DD.MM.YYYY string. Resolution
// order, first hit wins:
//  1. display text already in DD.MM.YYYY form
//  2. underlying numeric value in the serial range: convert from the epoch
//  3. any other display text, verbatim
//  4. numeric raw text in the serial range: convert from the epoch
//  5. trimmed raw text (empty when the cell holds nothing)
//
// A text-typed cell whose content happens to be numeric has no underlying
// number, so it passes through at step 3 instead of being misread as a
// serial.
func normalizeDate(c cell) string {
	text := strings.TrimSpace(c.text)
	if datePattern.MatchString(text) {
		return text
	}
	if c.hasNumericValue() {
		if v, ok := serialValue(c.raw); ok {
			return formatSerial(v)
		}
	}
	if text != "" {
		return text
	}
	if v, ok := serialValue(c.raw); ok {
		return formatSerial(v)
	}
	return strings.TrimSpace(c.raw)
}

func serialValue(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, false
	}
	return v, v > serialMin && v < serialMax
}

// formatSerial converts a day-count serial to DD.MM.YYYY.
func formatSerial(serial float64) string {
	if math.IsNaN(serial) || math.IsInf(serial, 0) {
		return ""
	}
	ms := math.Round(serial * millisPerDay)
	t := serialEpoch.Add(time.Duration(ms) * time.Millisecond)
	return t.Format("02.01.2006")
}
