package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"donation-service/configs"
	"donation-service/middleware"
	"donation-service/models"
	"donation-service/notifications"
	"donation-service/responses"

	"github.com/sirupsen/logrus"
)

const (
	requestTimeout = 10 * time.Second

	// maxBodyBytes bounds every submitted payload.
	maxBodyBytes = 64 << 10

	msgInvalidPayload = "Invalid request payload."
)

func writeJSON(rw http.ResponseWriter, code int, body interface{}) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(code)
	if err := json.NewEncoder(rw).Encode(body); err != nil {
		configs.LogWithContext("http", "encode-response").WithError(err).Warn("Failed to write response body")
	}
}

func errorResponse(rw http.ResponseWriter, code int, message string) {
	writeJSON(rw, code, responses.MessageResponse{Message: message})
}

func decodeBody(rw http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(rw, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

func payloadRejected(rw http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		errorResponse(rw, http.StatusRequestEntityTooLarge, "Request payload too large.")
		return
	}
	errorResponse(rw, http.StatusBadRequest, msgInvalidPayload)
}

func requestLogger(r *http.Request, service, operation string) *logrus.Entry {
	return configs.LogWithContext(service, operation).
		WithField("request_id", middleware.RequestIDFromContext(r.Context()))
}

// insertFailed answers a failed insert: rule violations become 400 with the
// joined messages, anything else is logged and hidden behind serverMessage.
func insertFailed(rw http.ResponseWriter, logger *logrus.Entry, err error, serverMessage string) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		errorResponse(rw, http.StatusBadRequest, verr.Error())
		return
	}
	logger.WithError(err).Error("Insert failed")
	errorResponse(rw, http.StatusInternalServerError, serverMessage)
}

// publish is best effort: the record is already stored, so a failure is only logged.
func publish(ctx context.Context, publisher notifications.Publisher, logger *logrus.Entry, notification models.Notification) {
	if err := publisher.Publish(ctx, notification); err != nil {
		logger.WithError(err).WithField("type", notification.Type).Warn("Failed to publish notification")
	}
}

func NotFound() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		errorResponse(rw, http.StatusNotFound, "Route not found.")
	}
}

func MethodNotAllowed() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		errorResponse(rw, http.StatusMethodNotAllowed, "Method not allowed.")
	}
}
