package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-travel-booking/internal/app"
	"github.com/MKhiriev/go-travel-booking/internal/service"
	"github.com/MKhiriev/go-travel-booking/internal/store"
	"github.com/MKhiriev/go-travel-booking/internal/utils"
	"github.com/MKhiriev/go-travel-booking/models"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// errorMappings is ordered: the first matching target wins.
var errorMappings = []errorMapping{
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidCredentials},
	{service.ErrInvalidToken, http.StatusUnauthorized, app.MsgInvalidOrMissingToken},

	{store.ErrEmailAlreadyExists, http.StatusBadRequest, app.MsgEmailAlreadyExists},
	{store.ErrNoUserWasFound, http.StatusNotFound, app.MsgUserNotFound},
	{store.ErrDatabaseUnavailable, http.StatusServiceUnavailable, app.MsgInternalServerError},
}

func statusFromError(err error) int {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// errorMessage returns the client-facing text for err. Unknown errors are
// reported with the generic internal error message.
func errorMessage(err error) string {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.message
		}
	}
	return app.MsgInternalServerError
}

func writeError(w http.ResponseWriter, message string, status int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
