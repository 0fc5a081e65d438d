package types

// Booking is one normalized booking row in the fixed export schema.
// All fields are strings because the export is text and a failed numeric
// parse must stay distinguishable from zero.
type Booking struct {
	Id               string
	BookingNumber    string
	OTANumber        string
	Name             string
	NumberOfAdults   string
	NumberOfTeens    string
	NumberOfChildren string
	NumberOfBabys    string
	DateFrom         string
	DateTo           string
}

type ParseResult struct {
	Bookings []Booking
	FileName string
}

type ExportResult struct {
	InputFile   string
	OutputFile  string
	RowsWritten int
}
