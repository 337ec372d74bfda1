package models

import (
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Cause string

const (
	CauseOldAgeHome       Cause = "Old Age Home"
	CauseOrphanage        Cause = "Orphanage"
	CauseMedicalEmergency Cause = "Medical Emergency"
	CauseEducation        Cause = "Education"
	CauseEnvironmental    Cause = "Environmental"
)

// Causes lists every cause a donation may be earmarked for.
var Causes = []Cause{
	CauseOldAgeHome,
	CauseOrphanage,
	CauseMedicalEmergency,
	CauseEducation,
	CauseEnvironmental,
}

func (c Cause) Valid() bool {
	return lo.Contains(Causes, c)
}

type Donation struct {
	ID     primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name   string             `json:"name" bson:"name" validate:"required"`
	Email  string             `json:"email" bson:"email" validate:"required,simpleemail"`
	Amount *float64           `json:"amount" bson:"amount" validate:"required,gte=0"`
	Cause  Cause              `json:"cause" bson:"cause" validate:"required,cause"`
	Date   time.Time          `json:"date" bson:"date"`
}

// DonationRequest is the inbound payload. Pointers distinguish an absent
// field from a zero value so that an amount of 0 is accepted.
type DonationRequest struct {
	Name   *string  `json:"name"`
	Email  *string  `json:"email"`
	Amount *float64 `json:"amount"`
	Cause  *string  `json:"cause"`
}

// HasRequiredFields reports whether name, email, amount and cause are all present.
// Empty strings count as absent.
func (r DonationRequest) HasRequiredFields() bool {
	return lo.FromPtr(r.Name) != "" &&
		lo.FromPtr(r.Email) != "" &&
		r.Amount != nil &&
		lo.FromPtr(r.Cause) != ""
}

func (r DonationRequest) ToDonation() Donation {
	return Donation{
		Name:   lo.FromPtr(r.Name),
		Email:  lo.FromPtr(r.Email),
		Amount: r.Amount,
		Cause:  Cause(lo.FromPtr(r.Cause)),
	}
}

// CauseTotal is one row of the donations-by-cause report.
type CauseTotal struct {
	Cause       Cause   `json:"cause" bson:"cause"`
	TotalAmount float64 `json:"totalAmount" bson:"totalAmount"`
	Count       int64   `json:"count" bson:"count"`
}
