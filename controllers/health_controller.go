package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

const (
	LivenessText = "Donation API is running."
	readyTimeout = 2 * time.Second
)

// Root answers the liveness text without touching storage.
func Root() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("Content-Type", "text/plain; charset=utf-8")
		rw.WriteHeader(http.StatusOK)
		fmt.Fprint(rw, LivenessText)
	}
}

func Healthz() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusOK)
		fmt.Fprintln(rw, "OK")
	}
}

// Ready reports whether the store answers a ping in time.
func Ready(ping func(ctx context.Context) error) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		if err := ping(ctx); err != nil {
			requestLogger(r, "health", "ready").WithError(err).Warn("Storage ping failed")
			rw.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprintln(rw, "Not Ready")
			return
		}
		rw.WriteHeader(http.StatusOK)
		fmt.Fprintln(rw, "Ready")
	}
}
