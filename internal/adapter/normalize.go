package adapter

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-travel-booking/models"
)

type accessTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

type flightOffersResponse struct {
	Data *[]flightOfferPayload `json:"data"`
}

type flightOfferPayload struct {
	ID    string `json:"id"`
	Price struct {
		Total amount `json:"total"`
	} `json:"price"`
	Itineraries []struct {
		Segments []struct {
			Departure segmentEndpoint `json:"departure"`
			Arrival   segmentEndpoint `json:"arrival"`
		} `json:"segments"`
	} `json:"itineraries"`
}

type segmentEndpoint struct {
	IATACode string `json:"iataCode"`
	At       string `json:"at"`
}

type hotelsResponse struct {
	Data *[]hotelPayload `json:"data"`
}

type hotelPayload struct {
	HotelID  string `json:"hotelId"`
	Name     string `json:"name"`
	CityCode string `json:"cityCode"`
}

// amount decodes a price written either as a JSON number or as a numeric
// string. Anything else decodes to zero.
type amount float64

func (a *amount) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*a = amount(value)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			*a = 0
			return nil
		}
		*a = amount(f)
	default:
		*a = 0
	}
	return nil
}

func normalizeFlights(payload []flightOfferPayload) []models.FlightOffer {
	offers := make([]models.FlightOffer, 0, len(payload))
	for _, p := range payload {
		if p.ID == "" {
			continue
		}

		offer := models.FlightOffer{
			FlightNumber: p.ID,
			Price:        float64(p.Price.Total),
			Currency:     upstreamCurrency,
			Source:       models.SourceUpstream,
		}

		if len(p.Itineraries) > 0 && len(p.Itineraries[0].Segments) > 0 {
			segment := p.Itineraries[0].Segments[0]
			offer.From = segment.Departure.IATACode
			offer.To = segment.Arrival.IATACode
			offer.DepartureTime = segment.Departure.At
			offer.ArrivalTime = segment.Arrival.At
		}

		offers = append(offers, offer)
	}
	return offers
}

func normalizeHotels(payload []hotelPayload, query models.HotelQuery) []models.HotelOffer {
	offers := make([]models.HotelOffer, 0, len(payload))
	for _, p := range payload {
		if p.HotelID == "" {
			continue
		}

		city := p.CityCode
		if city == "" {
			city = query.City
		}

		offers = append(offers, models.HotelOffer{
			HotelID:       p.HotelID,
			Name:          p.Name,
			City:          city,
			CheckIn:       query.CheckIn,
			CheckOut:      query.CheckOut,
			PricePerNight: defaultHotelPricePerNight,
			Currency:      upstreamCurrency,
			Source:        models.SourceUpstream,
		})
	}
	return offers
}
