package controllers

import (
	"context"
	"net/http"

	"donation-service/models"
	"donation-service/notifications"
	"donation-service/repositories"
	"donation-service/responses"
)

// SubmitDonation handles POST requests creating a donation.
func SubmitDonation(repo repositories.IDonationRepository, publisher notifications.Publisher) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()
		logger := requestLogger(r, "donations", "submit")

		var donationRequest models.DonationRequest
		if err := decodeBody(rw, r, &donationRequest); err != nil {
			payloadRejected(rw, err)
			return
		}

		if !donationRequest.HasRequiredFields() {
			errorResponse(rw, http.StatusBadRequest, "All fields (name, email, amount, cause) are required.")
			return
		}

		donation := donationRequest.ToDonation()
		if err := repo.Insert(ctx, &donation); err != nil {
			insertFailed(rw, logger, err, "Server Error: Unable to process donation.")
			return
		}

		logger.WithField("donation_id", donation.ID.Hex()).Info("Donation stored")
		publish(ctx, publisher, logger, models.NewDonationNotification(donation))

		writeJSON(rw, http.StatusCreated, responses.DonationResponse{
			Message:  "Donation submitted successfully!",
			Donation: donation,
		})
	}
}

func GetTotalDonations(repo repositories.IDonationRepository) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		total, err := repo.TotalDonated(ctx)
		if err != nil {
			requestLogger(r, "donations", "total").WithError(err).Error("Failed to fetch total donations")
			errorResponse(rw, http.StatusInternalServerError, "Server Error: Unable to fetch total donations.")
			return
		}

		writeJSON(rw, http.StatusOK, responses.TotalDonatedResponse{TotalDonated: total})
	}
}

func GetLastDonations(repo repositories.IDonationRepository) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		donations, err := repo.Recent(ctx, repositories.RecentDonationsLimit)
		if err != nil {
			requestLogger(r, "donations", "last-5").WithError(err).Error("Failed to fetch last donations")
			errorResponse(rw, http.StatusInternalServerError, "Server Error: Unable to fetch last donations.")
			return
		}

		if len(donations) > repositories.RecentDonationsLimit {
			donations = donations[:repositories.RecentDonationsLimit]
		}
		if donations == nil {
			donations = []models.Donation{}
		}

		writeJSON(rw, http.StatusOK, responses.LastDonationsResponse{LastDonations: donations})
	}
}

func GetDonationsByCause(repo repositories.IDonationRepository) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		totals, err := repo.TotalsByCause(ctx)
		if err != nil {
			requestLogger(r, "donations", "by-cause").WithError(err).Error("Failed to fetch donations by cause")
			errorResponse(rw, http.StatusInternalServerError, "Server Error: Unable to fetch donations by cause.")
			return
		}
		if totals == nil {
			totals = []models.CauseTotal{}
		}

		writeJSON(rw, http.StatusOK, responses.DonationsByCauseResponse{DonationsByCause: totals})
	}
}

// GetAllDonations returns every donation, newest first. The result is unbounded.
func GetAllDonations(repo repositories.IDonationRepository) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		donations, err := repo.All(ctx)
		if err != nil {
			requestLogger(r, "donations", "list").WithError(err).Error("Failed to fetch donations")
			errorResponse(rw, http.StatusInternalServerError, "Server Error: Unable to fetch donations.")
			return
		}
		if donations == nil {
			donations = []models.Donation{}
		}

		writeJSON(rw, http.StatusOK, responses.DonationsResponse{Donations: donations})
	}
}
