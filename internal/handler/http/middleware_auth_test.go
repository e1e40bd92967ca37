package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-travel-booking/internal/app"
	"github.com/MKhiriev/go-travel-booking/internal/service"
	"github.com/MKhiriev/go-travel-booking/internal/store"
	"github.com/MKhiriev/go-travel-booking/internal/utils"
	"github.com/MKhiriev/go-travel-booking/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Helpers ----

func newAuthHandler(gateway service.AuthGateway, users service.UserService) *Handler {
	return newTestHandler(&service.Services{AuthGateway: gateway, UserService: users})
}

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/bookings", nil))
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)
	return rr
}

func acceptBearer(token, email string) *mockAuthGateway {
	return &mockAuthGateway{resolveFn: func(_ context.Context, header string) (string, bool) {
		if header == "Bearer "+token {
			return email, true
		}
		return "", false
	}}
}

func failIfCalled(t *testing.T) http.Handler {
	return http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("next handler must not be called")
	})
}

// ---- Tests ----

func TestAuth_ValidTokenStoresUserInContext(t *testing.T) {
	var lookedUp string
	h := newAuthHandler(acceptBearer("good", testUser.Email), &mockUserService{
		findByEmailFn: func(_ context.Context, email string) (models.User, error) {
			lookedUp = email
			return testUser, nil
		},
	})

	var got models.User
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = utils.GetUserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rr := executeAuth(h, "Bearer good", next)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, testUser.Email, lookedUp)
	require.True(t, ok)
	assert.Equal(t, testUser, got)
}

func TestAuth_Rejections_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		findErr    error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing header",
			header:     "",
			wantStatus: http.StatusUnauthorized,
			wantBody:   app.MsgInvalidOrMissingToken,
		},
		{
			name:       "wrong scheme",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
			wantBody:   app.MsgInvalidOrMissingToken,
		},
		{
			name:       "tampered token",
			header:     "Bearer bad",
			wantStatus: http.StatusUnauthorized,
			wantBody:   app.MsgInvalidOrMissingToken,
		},
		{
			name:       "subject has no user",
			header:     "Bearer good",
			findErr:    fmt.Errorf("user search by email failed: %w", store.ErrNoUserWasFound),
			wantStatus: http.StatusNotFound,
			wantBody:   app.MsgUserNotFound,
		},
		{
			name:       "user lookup failure",
			header:     "Bearer good",
			findErr:    fmt.Errorf("user search by email failed: %w", store.ErrExecutingQuery),
			wantStatus: http.StatusInternalServerError,
			wantBody:   app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newAuthHandler(acceptBearer("good", testUser.Email), &mockUserService{
				findByEmailFn: func(context.Context, string) (models.User, error) {
					return models.User{}, tt.findErr
				},
			})

			rr := executeAuth(h, tt.header, failIfCalled(t))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantBody, rr.Body.String())
			assert.Contains(t, rr.Header().Get("Content-Type"), "text/plain")
		})
	}
}
