package middleware

import (
	"net/http"

	"github.com/go-http-utils/headers"

	"github.com/FOLISOLOMON/invoice/internal/config"
	"github.com/FOLISOLOMON/invoice/internal/logging"
)

func corsHeadersHandler(conf config.CorsConfig, next http.Handler) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if conf.DisableHeaders {
			logging.LoggerFromContext(r.Context()).Debug("cors headers disabled by configuration - not recommended for production use")
		} else {
			origin := conf.AllowOrigin
			if origin == "" {
				origin = "*"
			}
			w.Header().Set(headers.AccessControlAllowOrigin, origin)
			w.Header().Set(headers.AccessControlAllowMethods, "POST, GET, OPTIONS")
			w.Header().Set(headers.AccessControlAllowHeaders, "content-type, x-api-token, x-request-id")
			w.Header().Set(headers.AccessControlExposeHeaders, "x-request-id")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	}
}

func CorsHeadersMiddleware(conf config.CorsConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(corsHeadersHandler(conf, next))
	}
}
