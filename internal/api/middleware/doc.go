// Package middleware contains HTTP middleware specific to this service.
// Generic middleware (request IDs, panics, timeouts, CORS) comes from chi.
package middleware
