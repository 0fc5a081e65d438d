package importer

import (
	"errors"
	"testing"
)

func TestResolveColumns(t *testing.T) {
	tests := []struct {
		name     string
		header   []string
		expected map[Field]int
	}{
		{
			name:   "Exact match",
			header: []string{"Reservation Number", "Voucher", "Main Guest"},
			expected: map[Field]int{
				FieldBookingNumber: 0,
				FieldOTANumber:     1,
				FieldName:          2,
			},
		},
		{
			name:   "Case insensitive",
			header: []string{"RESERVATION NUMBER", "voucher"},
			expected: map[Field]int{
				FieldBookingNumber: 0,
				FieldOTANumber:     1,
			},
		},
		{
			name:   "Surrounding whitespace",
			header: []string{"  Reservation Num  ", " Arrival "},
			expected: map[Field]int{
				FieldBookingNumber: 0,
				FieldDateFrom:      1,
			},
		},
		{
			name:   "First alias wins over later alias",
			header: []string{"Reservation Num", "Reservation Number"},
			expected: map[Field]int{
				// "Reservation Number" is the first alias, so its match at
				// index 1 beats "Reservation Num" at index 0.
				FieldBookingNumber: 1,
			},
		},
		{
			name:   "Leftmost header cell wins for one alias",
			header: []string{"Reservation Number", "Voucher", "Voucher"},
			expected: map[Field]int{
				FieldOTANumber: 1,
			},
		},
		{
			name:   "Second alias used when first absent",
			header: []string{"Reservation Number", "Adults", "Children", "Arrival Date", "Departure Date"},
			expected: map[Field]int{
				FieldNumberOfAdults:   1,
				FieldNumberOfChildren: 2,
				FieldDateFrom:         3,
				FieldDateTo:           4,
			},
		},
		{
			name:   "Unmatched optional fields stay unresolved",
			header: []string{"Reservation Number", "Something Else"},
			expected: map[Field]int{
				FieldOTANumber: colUnresolved,
				FieldName:      colUnresolved,
				FieldDateFrom:  colUnresolved,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, err := resolveColumns(tt.header)
			if err != nil {
				t.Fatalf("resolveColumns failed: %v", err)
			}
			for field, want := range tt.expected {
				if got := cols[field]; got != want {
					t.Errorf("column for %s = %d; want %d", field, got, want)
				}
			}
		})
	}
}

func TestResolveColumnsMissingRequired(t *testing.T) {
	header := []string{"Voucher", "Main Guest", ""}

	_, err := resolveColumns(header)
	if err == nil {
		t.Fatal("expected error for missing reservation number column")
	}

	var missing *MissingColumnError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingColumnError, got %T", err)
	}

	wantAliases := []string{"Reservation Number", "Reservation Num"}
	if len(missing.Aliases) != len(wantAliases) {
		t.Fatalf("Aliases = %v; want %v", missing.Aliases, wantAliases)
	}
	for i, a := range wantAliases {
		if missing.Aliases[i] != a {
			t.Errorf("Aliases[%d] = %q; want %q", i, missing.Aliases[i], a)
		}
	}

	// Blank header cells are dropped from the diagnostic list.
	wantHeaders := []string{"Voucher", "Main Guest"}
	if len(missing.Headers) != len(wantHeaders) {
		t.Fatalf("Headers = %v; want %v", missing.Headers, wantHeaders)
	}
}
