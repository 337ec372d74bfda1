package responses

import "donation-service/models"

type TotalDonatedResponse struct {
	TotalDonated float64 `json:"totalDonated"`
}

type LastDonationsResponse struct {
	LastDonations []models.Donation `json:"lastDonations"`
}

type DonationsByCauseResponse struct {
	DonationsByCause []models.CauseTotal `json:"donationsByCause"`
}

type DonationsResponse struct {
	Donations []models.Donation `json:"donations"`
}

type FeedbackListResponse struct {
	Feedback []models.Feedback `json:"feedback"`
}

type ContactListResponse struct {
	Contacts []models.ContactUs `json:"contacts"`
}
