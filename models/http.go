package models

// FlightSearchRequest is the body of POST /api/flights/search.
// ReturnDate, Children and ClassType are accepted for front-end compatibility
// but not forwarded upstream.
type FlightSearchRequest struct {
	From          string `json:"from"`
	To            string `json:"to"`
	DepartureDate string `json:"departureDate"`
	ReturnDate    string `json:"returnDate,omitempty"`
	Adults        *int   `json:"adults,omitempty"`
	Children      *int   `json:"children,omitempty"`
	ClassType     string `json:"classType,omitempty"`
}

// AdultCount returns the requested number of adults, defaulting to one.
func (r FlightSearchRequest) AdultCount() int {
	if r.Adults == nil {
		return 1
	}
	return *r.Adults
}

// HotelSearchRequest is the body of POST /api/hotels/search.
type HotelSearchRequest struct {
	City     string `json:"city"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Guests   *int   `json:"guests,omitempty"`
	Rooms    *int   `json:"rooms,omitempty"`
}

// GuestCount returns the requested number of guests, defaulting to one.
func (r HotelSearchRequest) GuestCount() int {
	if r.Guests == nil {
		return 1
	}
	return *r.Guests
}

// CabSearchRequest is the body of POST /api/cabs/search.
type CabSearchRequest struct {
	Pickup     string `json:"pickup"`
	Dropoff    string `json:"dropoff"`
	PickupTime string `json:"pickupTime"`
}

// FlightBookingRequest is the body of POST /api/flights/book.
type FlightBookingRequest struct {
	FlightNumber  string `json:"flightNumber"`
	From          string `json:"from"`
	To            string `json:"to"`
	DepartureDate string `json:"departureDate"`
}

// HotelBookingRequest is the body of POST /api/hotels/book.
type HotelBookingRequest struct {
	Hotel    string `json:"hotel"`
	City     string `json:"city"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

// CabBookingRequest is the body of POST /api/cabs/book.
type CabBookingRequest struct {
	Pickup     string `json:"pickup"`
	Dropoff    string `json:"dropoff"`
	PickupTime string `json:"pickupTime"`
}

// Query converts the request into a FlightQuery.
func (r FlightSearchRequest) Query() FlightQuery {
	return FlightQuery{
		Origin:        r.From,
		Destination:   r.To,
		DepartureDate: r.DepartureDate,
		Adults:        r.AdultCount(),
	}
}

// Query converts the request into a HotelQuery.
func (r HotelSearchRequest) Query() HotelQuery {
	return HotelQuery{
		City:     r.City,
		CheckIn:  r.CheckIn,
		CheckOut: r.CheckOut,
		Guests:   r.GuestCount(),
	}
}

// Query converts the request into a CabQuery.
func (r CabSearchRequest) Query() CabQuery {
	return CabQuery(r)
}
