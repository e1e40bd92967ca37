package service

import "github.com/MKhiriev/go-travel-booking/models"

const (
	mockCurrency = "USD"

	defaultMockOrigin      = "JFK"
	defaultMockDestination = "LAX"
	defaultMockCity        = "New York"
)

// mockFlights returns the fixed fallback flight set for query. Origin and
// destination are echoed, defaulting to JFK and LAX when empty.
func mockFlights(query models.FlightQuery) []models.FlightOffer {
	from := orDefault(query.Origin, defaultMockOrigin)
	to := orDefault(query.Destination, defaultMockDestination)
	date := query.DepartureDate

	flight := func(number, airline, departs, arrives string, price float64) models.FlightOffer {
		return models.FlightOffer{
			FlightNumber:  number,
			Airline:       airline,
			From:          from,
			To:            to,
			DepartureTime: date + departs,
			ArrivalTime:   date + arrives,
			Price:         price,
			Currency:      mockCurrency,
			Source:        models.SourceMock,
		}
	}

	return []models.FlightOffer{
		flight("AA101", "American Airlines", "T08:00:00", "T11:30:00", 299.99),
		flight("DL202", "Delta Airlines", "T14:00:00", "T17:30:00", 349.50),
		flight("UA303", "United Airlines", "T19:00:00", "T22:30:00", 279.99),
	}
}

// mockHotels returns the fixed fallback hotel set. City defaults to
// New York; the stay dates are echoed as given.
func mockHotels(query models.HotelQuery) []models.HotelOffer {
	city := orDefault(query.City, defaultMockCity)

	hotel := func(id, name string, price, rating float64, amenities ...string) models.HotelOffer {
		return models.HotelOffer{
			HotelID:       id,
			Name:          name,
			City:          city,
			CheckIn:       query.CheckIn,
			CheckOut:      query.CheckOut,
			PricePerNight: price,
			Currency:      mockCurrency,
			Rating:        rating,
			Amenities:     amenities,
			Source:        models.SourceMock,
		}
	}

	return []models.HotelOffer{
		hotel("HOTEL001", "Grand Plaza Hotel", 199.99, 4.5, "WiFi", "Pool", "Gym", "Restaurant"),
		hotel("HOTEL002", "Business Center Hotel", 149.99, 4.2, "WiFi", "Business Center", "Restaurant"),
		hotel("HOTEL003", "Budget Inn", 89.99, 3.8, "WiFi", "Parking"),
	}
}

// mockCabs returns the fixed cab set. Every field of query is echoed
// verbatim, without defaults.
func mockCabs(query models.CabQuery) []models.CabOffer {
	cab := func(id, provider, vehicle, duration string, price float64) models.CabOffer {
		return models.CabOffer{
			ProviderID:        id,
			Provider:          provider,
			VehicleType:       vehicle,
			Pickup:            query.Pickup,
			Dropoff:           query.Dropoff,
			PickupTime:        query.PickupTime,
			EstimatedDuration: duration,
			Price:             price,
			Currency:          mockCurrency,
			Source:            models.SourceMock,
		}
	}

	return []models.CabOffer{
		cab("UBER001", "Uber", "Standard", "25 minutes", 18.50),
		cab("LYFT001", "Lyft", "Standard", "28 minutes", 16.75),
		cab("TAXI001", "Local Taxi", "Taxi", "30 minutes", 22.00),
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
