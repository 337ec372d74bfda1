package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"donation-service/configs"
	"donation-service/responses"

	"github.com/sirupsen/logrus"
)

// RecoveryMiddleware turns a handler panic into a generic 500 response.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				configs.Logger.WithFields(logrus.Fields{
					"panic":      rec,
					"path":       r.URL.Path,
					"request_id": RequestIDFromContext(r.Context()),
					"stack":      string(debug.Stack()),
				}).Error("Recovered from handler panic")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(responses.MessageResponse{Message: "Internal server error."})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
