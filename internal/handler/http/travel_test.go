package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-travel-booking/internal/app"
	"github.com/MKhiriev/go-travel-booking/internal/service"
	"github.com/MKhiriev/go-travel-booking/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// search
// ─────────────────────────────────────────────

func TestSearchFlights_DefaultsAdultsAndForwardsQuery(t *testing.T) {
	var got models.FlightQuery
	h := newTestHandler(&service.Services{SearchService: &mockSearchService{
		flightsFn: func(_ context.Context, q models.FlightQuery) []models.FlightOffer {
			got = q
			return []models.FlightOffer{{FlightNumber: "AA100", Airline: "AA", Price: 199.5}}
		},
	}})

	body := `{"from":"JFK","to":"LAX","departureDate":"2026-12-01","classType":"economy"}`
	rec := httptest.NewRecorder()
	h.searchFlights(rec, newJSONRequest(http.MethodPost, "/api/flights/search", body))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.FlightQuery{Origin: "JFK", Destination: "LAX", DepartureDate: "2026-12-01", Adults: 1}, got)

	var offers []models.FlightOffer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &offers))
	require.Len(t, offers, 1)
	assert.Equal(t, "AA", offers[0].Airline)
}

func TestSearchHotels_ExplicitGuests(t *testing.T) {
	var got models.HotelQuery
	h := newTestHandler(&service.Services{SearchService: &mockSearchService{
		hotelsFn: func(_ context.Context, q models.HotelQuery) []models.HotelOffer {
			got = q
			return []models.HotelOffer{}
		},
	}})

	body := `{"city":"Paris","checkIn":"2026-05-01","checkOut":"2026-05-03","guests":3}`
	rec := httptest.NewRecorder()
	h.searchHotels(rec, newJSONRequest(http.MethodPost, "/api/hotels/search", body))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, got.Guests)
	assert.Equal(t, "Paris", got.City)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestSearchCabs_ForwardsQuery(t *testing.T) {
	var got models.CabQuery
	h := newTestHandler(&service.Services{SearchService: &mockSearchService{
		cabsFn: func(_ context.Context, q models.CabQuery) []models.CabOffer {
			got = q
			return []models.CabOffer{{ProviderID: "c1"}}
		},
	}})

	body := `{"pickup":"Airport","dropoff":"Downtown","pickupTime":"10:00"}`
	rec := httptest.NewRecorder()
	h.searchCabs(rec, newJSONRequest(http.MethodPost, "/api/cabs/search", body))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.CabQuery{Pickup: "Airport", Dropoff: "Downtown", PickupTime: "10:00"}, got)
}

func TestSearch_InvalidJSON(t *testing.T) {
	h := newTestHandler(&service.Services{SearchService: &mockSearchService{}})

	handlers := map[string]http.HandlerFunc{
		"flights": h.searchFlights,
		"hotels":  h.searchHotels,
		"cabs":    h.searchCabs,
	}
	for name, handler := range handlers {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler(rec, newJSONRequest(http.MethodPost, "/api/"+name+"/search", `{"from":`))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, app.MsgInvalidDataProvided, decodeErrorBody(t, rec))
		})
	}
}

// ─────────────────────────────────────────────
// book
// ─────────────────────────────────────────────

func TestBook_ComposesDetails(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		call        func(h *Handler) http.HandlerFunc
		wantType    models.BookingType
		wantDetails string
	}{
		{
			name:        "flight",
			body:        `{"flightNumber":"AA100","from":"JFK","to":"LAX","departureDate":"2026-12-01"}`,
			call:        func(h *Handler) http.HandlerFunc { return h.bookFlight },
			wantType:    models.BookingTypeFlight,
			wantDetails: "Flight AA100 from JFK to LAX on 2026-12-01",
		},
		{
			name:        "hotel",
			body:        `{"hotel":"Hilton","city":"Paris","checkIn":"2026-05-01","checkOut":"2026-05-03"}`,
			call:        func(h *Handler) http.HandlerFunc { return h.bookHotel },
			wantType:    models.BookingTypeHotel,
			wantDetails: "Hotel Hilton in Paris from 2026-05-01 to 2026-05-03",
		},
		{
			name:        "cab",
			body:        `{"pickup":"Airport","dropoff":"Downtown","pickupTime":"10:00"}`,
			call:        func(h *Handler) http.HandlerFunc { return h.bookCab },
			wantType:    models.BookingTypeCab,
			wantDetails: "Cab from Airport to Downtown at 10:00",
		},
		{
			name:        "missing fields render empty",
			body:        `{}`,
			call:        func(h *Handler) http.HandlerFunc { return h.bookCab },
			wantType:    models.BookingTypeCab,
			wantDetails: "Cab from  to  at ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				gotType    models.BookingType
				gotDetails string
			)
			h := newHandlerWithBookingService(&mockBookingService{
				createFn: func(_ context.Context, userID int64, bt models.BookingType, details string) (models.Booking, error) {
					gotType, gotDetails = bt, details
					return models.Booking{BookingID: 5, Type: bt, Details: details, UserID: userID}, nil
				},
			})

			rec := httptest.NewRecorder()
			tt.call(h)(rec, withUser(newJSONRequest(http.MethodPost, "/book", tt.body), testUser))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantType, gotType)
			assert.Equal(t, tt.wantDetails, gotDetails)
		})
	}
}

func TestBookFlight_InvalidJSON(t *testing.T) {
	h := newHandlerWithBookingService(&mockBookingService{})

	rec := httptest.NewRecorder()
	h.bookFlight(rec, withUser(newJSONRequest(http.MethodPost, "/api/flights/book", `nope`), testUser))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
