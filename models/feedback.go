package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Feedback struct {
	ID    primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name  string             `json:"name" bson:"name" validate:"required"`
	Email string             `json:"email" bson:"email" validate:"required,simpleemail"`
	Stars *int               `json:"stars" bson:"stars" validate:"required,gte=1,lte=5"`
	Date  time.Time          `json:"date" bson:"date"`
}

type FeedbackRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Stars *int   `json:"stars"`
}

func (r FeedbackRequest) ToFeedback() Feedback {
	return Feedback{
		Name:  r.Name,
		Email: r.Email,
		Stars: r.Stars,
	}
}
