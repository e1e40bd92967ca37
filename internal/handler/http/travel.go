// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-travel-booking/internal/app"
	"github.com/MKhiriev/go-travel-booking/internal/logger"
	"github.com/MKhiriev/go-travel-booking/internal/utils"
	"github.com/MKhiriev/go-travel-booking/models"
)

// decodeBody decodes the JSON request body into dst. On failure it writes a
// 400 response and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		writeError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return false
	}
	return true
}

// ── search ──

func (h *Handler) searchFlights(w http.ResponseWriter, r *http.Request) {
	var request models.FlightSearchRequest
	if !decodeBody(w, r, &request) {
		return
	}

	offers := h.services.SearchService.SearchFlights(r.Context(), request.Query())
	utils.WriteJSON(w, offers, http.StatusOK)
}

func (h *Handler) searchHotels(w http.ResponseWriter, r *http.Request) {
	var request models.HotelSearchRequest
	if !decodeBody(w, r, &request) {
		return
	}

	offers := h.services.SearchService.SearchHotels(r.Context(), request.Query())
	utils.WriteJSON(w, offers, http.StatusOK)
}

func (h *Handler) searchCabs(w http.ResponseWriter, r *http.Request) {
	var request models.CabSearchRequest
	if !decodeBody(w, r, &request) {
		return
	}

	offers := h.services.SearchService.SearchCabs(r.Context(), request.Query())
	utils.WriteJSON(w, offers, http.StatusOK)
}

// ── book ──

func (h *Handler) bookFlight(w http.ResponseWriter, r *http.Request) {
	var request models.FlightBookingRequest
	if !decodeBody(w, r, &request) {
		return
	}

	details := fmt.Sprintf("Flight %s from %s to %s on %s",
		request.FlightNumber, request.From, request.To, request.DepartureDate)
	h.saveBooking(w, r, models.BookingTypeFlight, details)
}

func (h *Handler) bookHotel(w http.ResponseWriter, r *http.Request) {
	var request models.HotelBookingRequest
	if !decodeBody(w, r, &request) {
		return
	}

	details := fmt.Sprintf("Hotel %s in %s from %s to %s",
		request.Hotel, request.City, request.CheckIn, request.CheckOut)
	h.saveBooking(w, r, models.BookingTypeHotel, details)
}

func (h *Handler) bookCab(w http.ResponseWriter, r *http.Request) {
	var request models.CabBookingRequest
	if !decodeBody(w, r, &request) {
		return
	}

	details := fmt.Sprintf("Cab from %s to %s at %s",
		request.Pickup, request.Dropoff, request.PickupTime)
	h.saveBooking(w, r, models.BookingTypeCab, details)
}
