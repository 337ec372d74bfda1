package responses

import "donation-service/models"

// MessageResponse is the body of every error response.
type MessageResponse struct {
	Message string `json:"message"`
}

type DonationResponse struct {
	Message  string          `json:"message"`
	Donation models.Donation `json:"donation"`
}

type FeedbackResponse struct {
	Message  string          `json:"message"`
	Feedback models.Feedback `json:"feedback"`
}

type ContactResponse struct {
	Message string           `json:"message"`
	Contact models.ContactUs `json:"contact"`
}
