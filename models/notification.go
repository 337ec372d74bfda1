package models

import "time"

type NotificationType string

const (
	DonationCreated NotificationType = "donation.created"
	FeedbackCreated NotificationType = "feedback.created"
	ContactCreated  NotificationType = "contact.created"
)

// Notification is the event published after a record has been stored.
type Notification struct {
	Type        NotificationType `json:"type"`
	RecordID    string           `json:"recordId"`
	Name        string           `json:"name"`
	Message     string           `json:"message"`
	Cause       Cause            `json:"cause,omitempty"`
	Amount      *float64         `json:"amount,omitempty"`
	Stars       *int             `json:"stars,omitempty"`
	DateCreated time.Time        `json:"dateCreated"`
}

func NewDonationNotification(d Donation) Notification {
	return Notification{
		Type:        DonationCreated,
		RecordID:    d.ID.Hex(),
		Name:        d.Name,
		Message:     "new donation for " + string(d.Cause),
		Cause:       d.Cause,
		Amount:      d.Amount,
		DateCreated: d.Date,
	}
}

func NewFeedbackNotification(f Feedback) Notification {
	return Notification{
		Type:        FeedbackCreated,
		RecordID:    f.ID.Hex(),
		Name:        f.Name,
		Message:     "new feedback received",
		Stars:       f.Stars,
		DateCreated: f.Date,
	}
}

func NewContactNotification(c ContactUs) Notification {
	return Notification{
		Type:        ContactCreated,
		RecordID:    c.ID.Hex(),
		Name:        c.Name,
		Message:     "new contact request received",
		DateCreated: c.Date,
	}
}
