package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-travel-booking/internal/app"
	"github.com/MKhiriev/go-travel-booking/internal/logger"
	"github.com/MKhiriev/go-travel-booking/internal/service"
	"github.com/MKhiriev/go-travel-booking/internal/store"
	"github.com/MKhiriev/go-travel-booking/internal/utils"
	"github.com/MKhiriev/go-travel-booking/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	response, err := h.services.AuthService.Register(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			writeError(w, app.MsgEmailAlreadyExists, http.StatusBadRequest)
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeError(w, app.MsgRegistrationFailed, http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	response, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("wrong password")
			writeError(w, app.MsgInvalidCredentials, http.StatusUnauthorized)
		case errors.Is(err, store.ErrNoUserWasFound):
			// the front-end expects an internal failure for an unknown email
			log.Err(err).Msg("no user was found")
			writeError(w, app.MsgUserNotFound, http.StatusInternalServerError)
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			writeError(w, app.MsgInternalServerError, http.StatusInternalServerError)
		}
		return
	}

	log.Debug().Str("email", response.Email).Msg("user successfully logged in")
	utils.WriteJSON(w, response, http.StatusOK)
}
