package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-travel-booking/internal/app"
	"github.com/MKhiriev/go-travel-booking/internal/logger"
	"github.com/MKhiriev/go-travel-booking/internal/store"
	"github.com/MKhiriev/go-travel-booking/internal/utils"
)

// auth resolves the bearer token to a stored user and places it in the
// request context under [utils.UserCtxKey]. The request logger is tagged with
// user_id from here on.
//
// Rejections are plain text, not JSON:
//   - 401 "Invalid or missing token" for an absent header, a non-Bearer
//     scheme or a token that fails verification;
//   - 404 "User not found" when the token is valid but its subject has no
//     stored user.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		email, ok := h.services.AuthGateway.ResolveIdentity(ctx, r.Header.Get("Authorization"))
		if !ok {
			log.Err(ErrUnauthenticated).Send()
			utils.WriteText(w, app.MsgInvalidOrMissingToken, http.StatusUnauthorized)
			return
		}

		user, err := h.services.UserService.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, store.ErrNoUserWasFound) {
				log.Err(err).Str("email", email).Msg("token subject has no user")
				utils.WriteText(w, app.MsgUserNotFound, http.StatusNotFound)
				return
			}
			log.Err(err).Msg("user lookup failed")
			utils.WriteText(w, app.MsgInternalServerError, statusFromError(err))
			return
		}

		ctx = log.WithUserID(user.UserID).WithContext(ctx)
		next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, utils.UserCtxKey, user)))
	})
}
