package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxContactMessageLength bounds the free-text message of a contact request, in characters.
const MaxContactMessageLength = 5000

type ContactUs struct {
	ID      primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name    string             `json:"name" bson:"name" validate:"required"`
	Email   string             `json:"email" bson:"email" validate:"required,simpleemail"`
	Message string             `json:"message" bson:"message" validate:"required,max=5000"`
	Date    time.Time          `json:"date" bson:"date"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (r ContactRequest) ToContact() ContactUs {
	return ContactUs{
		Name:    r.Name,
		Email:   r.Email,
		Message: r.Message,
	}
}
