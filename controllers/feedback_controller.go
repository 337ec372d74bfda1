package controllers

import (
	"context"
	"net/http"

	"donation-service/models"
	"donation-service/notifications"
	"donation-service/repositories"
	"donation-service/responses"
)

// SubmitFeedback stores a rating and announces it on the event channel.
func SubmitFeedback(repo repositories.IFeedbackRepository, publisher notifications.Publisher) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()
		logger := requestLogger(r, "feedback", "submit")

		var feedbackRequest models.FeedbackRequest
		if err := decodeBody(rw, r, &feedbackRequest); err != nil {
			payloadRejected(rw, err)
			return
		}

		feedback := feedbackRequest.ToFeedback()
		if err := repo.Insert(ctx, &feedback); err != nil {
			insertFailed(rw, logger, err, "Server Error: Unable to submit feedback.")
			return
		}

		publish(ctx, publisher, logger, models.NewFeedbackNotification(feedback))

		writeJSON(rw, http.StatusCreated, responses.FeedbackResponse{
			Message:  "Feedback submitted successfully!",
			Feedback: feedback,
		})
	}
}

func GetFeedback(repo repositories.IFeedbackRepository) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		feedback, err := repo.All(ctx)
		if err != nil {
			requestLogger(r, "feedback", "list").WithError(err).Error("Failed to fetch feedback")
			errorResponse(rw, http.StatusInternalServerError, "Server Error: Unable to fetch feedback.")
			return
		}

		if feedback == nil {
			feedback = []models.Feedback{}
		}

		writeJSON(rw, http.StatusOK, responses.FeedbackListResponse{Feedback: feedback})
	}
}
