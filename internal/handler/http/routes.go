package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// corsMaxAge is how long browsers may cache a preflight response.
const corsMaxAge = 5 * time.Minute

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Content-Encoding", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           int(corsMaxAge.Seconds()),
	}))
	router.Use(h.withTraceID, h.withLogging)
	router.Use(withGZipRequest, middleware.Compress(5, "application/json", "text/plain"))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)

		r.Post("/api/flights/search", h.searchFlights)
		r.Post("/api/hotels/search", h.searchHotels)
		r.Post("/api/cabs/search", h.searchCabs)

		r.Get("/api/version", h.getServerVersion)
	})

	// routes with bearer authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/bookings", h.listBookings)
		r.Post("/api/bookings", h.createBooking)

		r.Get("/api/user/profile", h.getProfile)
		r.Put("/api/user/profile", h.updateProfile)

		r.Post("/api/flights/book", h.bookFlight)
		r.Post("/api/hotels/book", h.bookHotel)
		r.Post("/api/cabs/book", h.bookCab)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
