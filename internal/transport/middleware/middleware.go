// Package middleware holds the HTTP middleware shared by all REST routes.
package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines middleware so that Chain(a, b)(h) is a(b(h)); a runs first.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}

// Protected wraps a handler func with RequireAuth.
func Protected(h http.HandlerFunc) http.Handler {
	return RequireAuth(h)
}
