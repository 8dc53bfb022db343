package middleware

import (
	"net/http"

	"github.com/FOLISOLOMON/invoice/internal/logging"
)

const tokenHeaderKey = "X-API-TOKEN"

func tokenHandlerMiddleware(token string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headerToken := r.Header.Get(tokenHeaderKey)
		if token != headerToken {
			logging.LoggerFromContext(r.Context()).Error("invalid api token provided")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error": "request was unauthorized"}`))

			return
		}

		next.ServeHTTP(w, r)
	})
}

// TokenHandlerMiddleware requires the fixed api token on every request it
// guards. Only applied when a token is configured.
func TokenHandlerMiddleware(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return tokenHandlerMiddleware(token, next)
	}
}
