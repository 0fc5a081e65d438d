package exporter

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"bookbridge/internal/types"
)

func sampleBooking() types.Booking {
	return types.Booking{
		Id:               "12345",
		BookingNumber:    "12345",
		OTANumber:        "V1",
		Name:             "J. Doe",
		NumberOfAdults:   "2",
		NumberOfTeens:    "0",
		NumberOfChildren: "1",
		NumberOfBabys:    "0",
		DateFrom:         "24.03.2023",
		DateTo:           "29.03.2023",
	}
}

func TestMarshalLayout(t *testing.T) {
	data, err := Marshal([]types.Booking{sampleBooking()})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	if !bytes.HasPrefix(data, utf8BOM) {
		t.Error("output does not start with a UTF-8 BOM")
	}

	text := string(data[len(utf8BOM):])
	want := "Id;BookingNumber;OTANumber;Name;NumberOfAdults;NumberOfTeens;NumberOfChildren;NumberOfBabys;DateFrom;DateTo\r\n" +
		"12345;12345;V1;J. Doe;2;0;1;0;24.03.2023;29.03.2023\r\n"
	if text != want {
		t.Errorf("output = %q; want %q", text, want)
	}
}

func TestMarshalEscaping(t *testing.T) {
	tests := []struct {
		name string
		in   string
		// wire is the expected raw form of the Name field in the output
		wire string
		// want is the value recovered by a quote-aware reader
		want string
	}{
		{"Semicolon", "Doe; John", `"Doe; John"`, "Doe; John"},
		{"Double quote", `J. "Jay" Doe`, `"J. ""Jay"" Doe"`, `J. "Jay" Doe`},
		{"Both", `Doe; "Jay"`, `"Doe; ""Jay"""`, `Doe; "Jay"`},
		{"Newline", "Doe\nJohn", "\"Doe\r\nJohn\"", "Doe\nJohn"},
		{"Plain value stays plain", "J. Doe", "J. Doe", "J. Doe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := sampleBooking()
			b.Name = tt.in

			data, err := Marshal([]types.Booking{b})
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}

			if !strings.Contains(string(data), ";"+tt.wire+";") {
				t.Errorf("output %q does not contain field %q", data, tt.wire)
			}

			// Round-trip: re-reading the CSV must recover the value.
			r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
			r.Comma = ';'
			records, err := r.ReadAll()
			if err != nil {
				t.Fatalf("re-reading output failed: %v", err)
			}
			if len(records) != 2 {
				t.Fatalf("got %d lines; want 2", len(records))
			}
			if got := records[1][3]; got != tt.want {
				t.Errorf("round-tripped Name = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestMarshalDeterministic(t *testing.T) {
	bookings := []types.Booking{sampleBooking(), sampleBooking()}

	first, err := Marshal(bookings)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	second, err := Marshal(bookings)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("identical input produced different output bytes")
	}
}

func TestMarshalEmpty(t *testing.T) {
	_, err := Marshal(nil)
	if !errors.Is(err, ErrNothingToExport) {
		t.Errorf("Marshal(nil) error = %v; want ErrNothingToExport", err)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.csv")

	result, err := WriteFile(path, []types.Booking{sampleBooking()})
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if result.OutputFile != path {
		t.Errorf("OutputFile = %q; want %q", result.OutputFile, path)
	}
	if result.RowsWritten != 1 {
		t.Errorf("RowsWritten = %d; want 1", result.RowsWritten)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, utf8BOM) {
		t.Error("written file does not start with a UTF-8 BOM")
	}
}

func TestFileName(t *testing.T) {
	now := time.Date(2026, time.August, 29, 10, 30, 0, 0, time.UTC)
	if got := FileName(now); got != "bookings_29.08.2026.csv" {
		t.Errorf("FileName = %q; want %q", got, "bookings_29.08.2026.csv")
	}
}
