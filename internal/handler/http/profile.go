package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-travel-booking/internal/app"
	"github.com/MKhiriev/go-travel-booking/internal/logger"
	"github.com/MKhiriev/go-travel-booking/internal/utils"
	"github.com/MKhiriev/go-travel-booking/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Err(ErrUserNotInContext).Send()
		utils.WriteText(w, app.MsgInvalidOrMissingToken, http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// updateProfile overwrites name, address and phone. Fields missing from the
// body are stored as empty strings.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Err(ErrUserNotInContext).Send()
		utils.WriteText(w, app.MsgInvalidOrMissingToken, http.StatusUnauthorized)
		return
	}

	var update models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	updated, err := h.services.UserService.UpdateProfile(ctx, user.UserID, update)
	if err != nil {
		writeError(w, errorMessage(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}
