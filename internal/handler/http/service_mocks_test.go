package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-travel-booking/internal/config"
	"github.com/MKhiriev/go-travel-booking/internal/logger"
	"github.com/MKhiriev/go-travel-booking/internal/service"
	"github.com/MKhiriev/go-travel-booking/internal/utils"
	"github.com/MKhiriev/go-travel-booking/models"
)

// ─────────────────────────────────────────────
// Function-field service mocks
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn func(ctx context.Context, c models.Credentials) (models.AuthResponse, error)
	loginFn    func(ctx context.Context, c models.Credentials) (models.AuthResponse, error)
}

func (m *mockAuthService) Register(ctx context.Context, c models.Credentials) (models.AuthResponse, error) {
	return m.registerFn(ctx, c)
}

func (m *mockAuthService) Login(ctx context.Context, c models.Credentials) (models.AuthResponse, error) {
	return m.loginFn(ctx, c)
}

type mockAuthGateway struct {
	resolveFn func(ctx context.Context, header string) (string, bool)
}

func (m *mockAuthGateway) ResolveIdentity(ctx context.Context, header string) (string, bool) {
	return m.resolveFn(ctx, header)
}

type mockUserService struct {
	findByEmailFn   func(ctx context.Context, email string) (models.User, error)
	updateProfileFn func(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error)
}

func (m *mockUserService) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return m.findByEmailFn(ctx, email)
}

func (m *mockUserService) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error) {
	return m.updateProfileFn(ctx, userID, update)
}

type mockBookingService struct {
	createFn func(ctx context.Context, userID int64, t models.BookingType, details string) (models.Booking, error)
	listFn   func(ctx context.Context, userID int64) ([]models.Booking, error)
}

func (m *mockBookingService) CreateBooking(ctx context.Context, userID int64, t models.BookingType, details string) (models.Booking, error) {
	return m.createFn(ctx, userID, t, details)
}

func (m *mockBookingService) ListBookings(ctx context.Context, userID int64) ([]models.Booking, error) {
	return m.listFn(ctx, userID)
}

type mockSearchService struct {
	flightsFn func(ctx context.Context, q models.FlightQuery) []models.FlightOffer
	hotelsFn  func(ctx context.Context, q models.HotelQuery) []models.HotelOffer
	cabsFn    func(ctx context.Context, q models.CabQuery) []models.CabOffer
}

func (m *mockSearchService) SearchFlights(ctx context.Context, q models.FlightQuery) []models.FlightOffer {
	return m.flightsFn(ctx, q)
}

func (m *mockSearchService) SearchHotels(ctx context.Context, q models.HotelQuery) []models.HotelOffer {
	return m.hotelsFn(ctx, q)
}

func (m *mockSearchService) SearchCabs(ctx context.Context, q models.CabQuery) []models.CabOffer {
	return m.cabsFn(ctx, q)
}

type mockAppInfoService struct {
	info models.VersionResponse
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.info.Version
}

func (m *mockAppInfoService) GetAppInfo(_ context.Context) models.VersionResponse {
	return m.info
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(svcs *service.Services) *Handler {
	return NewHandler(svcs, config.Server{AllowedOrigins: []string{"http://localhost:3000"}}, logger.Nop())
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

// newJSONRequest builds a request with a nop logger in its context.
func newJSONRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return injectNopLogger(req)
}

// withUser attaches an authenticated user the way the auth middleware does.
func withUser(r *http.Request, user models.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), utils.UserCtxKey, user))
}

var testUser = models.User{UserID: 7, Email: "alice@example.com", Name: "Alice"}

// ensure the mocks satisfy the service interfaces
var (
	_ service.AuthService    = (*mockAuthService)(nil)
	_ service.AuthGateway    = (*mockAuthGateway)(nil)
	_ service.UserService    = (*mockUserService)(nil)
	_ service.BookingService = (*mockBookingService)(nil)
	_ service.SearchService  = (*mockSearchService)(nil)
	_ service.AppInfoService = (*mockAppInfoService)(nil)
)

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not an error envelope: %v (%q)", err, rec.Body.String())
	}
	return resp.Error
}
