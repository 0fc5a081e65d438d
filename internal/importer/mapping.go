package importer

import "strings"

// Field is a canonical output field name.
type Field string

const (
	FieldBookingNumber    Field = "BookingNumber"
	FieldOTANumber        Field = "OTANumber"
	FieldName             Field = "Name"
	FieldNumberOfAdults   Field = "NumberOfAdults"
	FieldNumberOfChildren Field = "NumberOfChildren"
	FieldDateFrom         Field = "DateFrom"
	FieldDateTo           Field = "DateTo"
)

type fieldKind int

const (
	kindText fieldKind = iota
	kindInteger
)

type fieldSpec struct {
	field   Field
	aliases []string // checked in order, first match wins
	kind    fieldKind
}

// bookingFields maps canonical fields to the header names the channel
// managers actually use. Alias order is precedence order.
var bookingFields = []fieldSpec{
	{FieldBookingNumber, []string{"Reservation Number", "Reservation Num"}, kindText},
	{FieldOTANumber, []string{"Voucher"}, kindText},
	{FieldName, []string{"Main Guest"}, kindText},
	{FieldNumberOfAdults, []string{"AD", "Adults"}, kindInteger},
	{FieldNumberOfChildren, []string{"CH", "Children"}, kindInteger},
	{FieldDateFrom, []string{"Arrival", "Arrival Date"}, kindText},
	{FieldDateTo, []string{"Departure", "Departure Date"}, kindText},
}

const requiredField = FieldBookingNumber

// colUnresolved marks a canonical field with no matching header cell.
const colUnresolved = -1

// resolveColumns maps each canonical field to its column index in the
// header row. Matching is case-insensitive on trimmed text; for each field
// the first alias that matches any header cell wins, and the leftmost
// matching cell is used. A missing required column is fatal.
func resolveColumns(header []string) (map[Field]int, error) {
	cols := make(map[Field]int, len(bookingFields))
	for _, spec := range bookingFields {
		cols[spec.field] = colUnresolved
		for _, alias := range spec.aliases {
			if pos := findHeader(header, alias); pos != colUnresolved {
				cols[spec.field] = pos
				break
			}
		}
	}
	if cols[requiredField] == colUnresolved {
		return nil, &MissingColumnError{
			Aliases: aliasesFor(requiredField),
			Headers: headerLabels(header),
		}
	}
	return cols, nil
}

func findHeader(header []string, alias string) int {
	want := strings.TrimSpace(alias)
	for i, label := range header {
		if strings.EqualFold(strings.TrimSpace(label), want) {
			return i
		}
	}
	return colUnresolved
}

func aliasesFor(field Field) []string {
	for _, spec := range bookingFields {
		if spec.field == field {
			return spec.aliases
		}
	}
	return nil
}

func headerLabels(header []string) []string {
	var labels []string
	for _, label := range header {
		if trimmed := strings.TrimSpace(label); trimmed != "" {
			labels = append(labels, trimmed)
		}
	}
	return labels
}
