package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-travel-booking/internal/app"
	"github.com/MKhiriev/go-travel-booking/internal/logger"
	"github.com/MKhiriev/go-travel-booking/internal/utils"
	"github.com/MKhiriev/go-travel-booking/models"
)

func (h *Handler) listBookings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Err(ErrUserNotInContext).Send()
		utils.WriteText(w, app.MsgInvalidOrMissingToken, http.StatusUnauthorized)
		return
	}

	bookings, err := h.services.BookingService.ListBookings(ctx, user.UserID)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("listing bookings failed")
		writeError(w, errorMessage(err), statusFromError(err))
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}

	utils.WriteJSON(w, bookings, http.StatusOK)
}

func (h *Handler) createBooking(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	h.saveBooking(w, r, request.Type, request.Details)
}

// saveBooking stores a booking for the authenticated user and writes it back.
// It is shared by the generic bookings endpoint and the travel book endpoints.
func (h *Handler) saveBooking(w http.ResponseWriter, r *http.Request, bookingType models.BookingType, details string) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Err(ErrUserNotInContext).Send()
		utils.WriteText(w, app.MsgInvalidOrMissingToken, http.StatusUnauthorized)
		return
	}

	booking, err := h.services.BookingService.CreateBooking(ctx, user.UserID, bookingType, details)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Str("type", string(bookingType)).Msg("booking was not saved")
		writeError(w, errorMessage(err), statusFromError(err))
		return
	}

	log.Debug().Int64("booking_id", booking.BookingID).Msg("booking saved")
	utils.WriteJSON(w, booking, http.StatusOK)
}
