package models

// OfferSource tells whether an offer came from the upstream provider or from
// the built-in fallback data set.
type OfferSource string

const (
	SourceUpstream OfferSource = "upstream"
	SourceMock     OfferSource = "mock"
)

// FlightOffer is the canonical flight search result.
// Airline is only known for mock offers.
type FlightOffer struct {
	FlightNumber  string      `json:"flightNumber"`
	Airline       string      `json:"airline,omitempty"`
	From          string      `json:"from"`
	To            string      `json:"to"`
	DepartureTime string      `json:"departureTime"`
	ArrivalTime   string      `json:"arrivalTime"`
	Price         float64     `json:"price"`
	Currency      string      `json:"currency"`
	Source        OfferSource `json:"source"`
}

// HotelOffer is the canonical hotel search result.
// Rating and Amenities are only known for mock offers.
type HotelOffer struct {
	HotelID       string      `json:"hotelId"`
	Name          string      `json:"name"`
	City          string      `json:"city"`
	CheckIn       string      `json:"checkIn"`
	CheckOut      string      `json:"checkOut"`
	PricePerNight float64     `json:"pricePerNight"`
	Currency      string      `json:"currency"`
	Rating        float64     `json:"rating,omitempty"`
	Amenities     []string    `json:"amenities,omitempty"`
	Source        OfferSource `json:"source"`
}

// CabOffer is the canonical cab search result.
type CabOffer struct {
	ProviderID        string      `json:"providerId"`
	Provider          string      `json:"provider"`
	VehicleType       string      `json:"vehicleType"`
	Pickup            string      `json:"pickup"`
	Dropoff           string      `json:"dropoff"`
	PickupTime        string      `json:"pickupTime"`
	EstimatedDuration string      `json:"estimatedDuration"`
	Price             float64     `json:"price"`
	Currency          string      `json:"currency"`
	Source            OfferSource `json:"source"`
}

// FlightQuery is the normalized input of a flight search.
type FlightQuery struct {
	Origin        string
	Destination   string
	DepartureDate string
	Adults        int
}

// HotelQuery is the normalized input of a hotel search. Guests is accepted
// but the upstream hotel listing does not use it.
type HotelQuery struct {
	City     string
	CheckIn  string
	CheckOut string
	Guests   int
}

// CabQuery is the input of a cab search.
type CabQuery struct {
	Pickup     string
	Dropoff    string
	PickupTime string
}
