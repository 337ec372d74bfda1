package controllers

import (
	"context"
	"net/http"

	"donation-service/models"
	"donation-service/notifications"
	"donation-service/repositories"
	"donation-service/responses"
)

func SubmitContact(repo repositories.IContactRepository, publisher notifications.Publisher) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()
		logger := requestLogger(r, "contact", "submit")

		var contactRequest models.ContactRequest
		if err := decodeBody(rw, r, &contactRequest); err != nil {
			payloadRejected(rw, err)
			return
		}

		contact := contactRequest.ToContact()
		if err := repo.Insert(ctx, &contact); err != nil {
			insertFailed(rw, logger, err, "Server Error: Unable to submit contact request.")
			return
		}

		publish(ctx, publisher, logger, models.NewContactNotification(contact))

		writeJSON(rw, http.StatusCreated, responses.ContactResponse{
			Message: "Contact request submitted successfully!",
			Contact: contact,
		})
	}
}

func GetContacts(repo repositories.IContactRepository) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		contacts, err := repo.All(ctx)
		if err != nil {
			requestLogger(r, "contact", "list").WithError(err).Error("Failed to fetch contact requests")
			errorResponse(rw, http.StatusInternalServerError, "Server Error: Unable to fetch contact requests.")
			return
		}
		if contacts == nil {
			contacts = []models.ContactUs{}
		}

		writeJSON(rw, http.StatusOK, responses.ContactListResponse{Contacts: contacts})
	}
}
