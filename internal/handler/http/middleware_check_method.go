// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/MKhiriev/go-travel-booking/internal/utils"
	"github.com/MKhiriev/go-travel-booking/models"
	"github.com/go-chi/chi/v5"
)

// msgMethodNotAllowed is the JSON error text of a 405 response.
const msgMethodNotAllowed = "method not allowed"

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// The handler looks up the route whose pattern exactly matches the request
// path. When one exists it answers 405 with an Allow header listing the
// methods registered for that pattern and a JSON error envelope, so the
// front-end sees the same {"error": ...} shape as for every other failure.
// When no pattern matches it answers 404.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		allowed := allowedMethods(router, r.URL.Path)
		if len(allowed) == 0 {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		utils.WriteJSON(w, models.ErrorResponse{Error: msgMethodNotAllowed}, http.StatusMethodNotAllowed)
	}
}

// allowedMethods returns the sorted methods registered for the route whose
// pattern equals path. Parameterised segments are not expanded.
func allowedMethods(router chi.Routes, path string) []string {
	for _, route := range router.Routes() {
		if route.Pattern != path {
			continue
		}

		methods := make([]string, 0, len(route.Handlers))
		for method := range route.Handlers {
			methods = append(methods, method)
		}
		slices.Sort(methods)
		return methods
	}
	return nil
}
