// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// Instead of chi's default 405 it answers 404 with a JSON error body, so an
// unsupported method does not reveal that the path exists. Routes are
// collected with [chi.Walk], which reports full patterns of nested routers;
// only static patterns are compared against the request path.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		registered := false
		_ = chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
			if route == r.URL.Path && method == r.Method {
				registered = true
			}
			return nil
		})

		if registered {
			router.ServeHTTP(w, r)
			return
		}

		writeErrorResponse(w, http.StatusNotFound, "not_found", http.StatusText(http.StatusNotFound))
	}
}
