package models

import (
	"errors"
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func validDonation() Donation {
	return Donation{
		Name:   "Asha",
		Email:  "asha@example.org",
		Amount: lo.ToPtr(25.0),
		Cause:  CauseEducation,
	}
}

func TestValidate_Donation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(d *Donation)
		messages []string
	}{
		{"valid", func(d *Donation) {}, nil},
		{"zero amount is allowed", func(d *Donation) { d.Amount = lo.ToPtr(0.0) }, nil},
		{"every cause is accepted", func(d *Donation) { d.Cause = CauseOldAgeHome }, nil},
		{"negative amount", func(d *Donation) { d.Amount = lo.ToPtr(-1.0) }, []string{"Donation amount must be positive"}},
		{"missing amount", func(d *Donation) { d.Amount = nil }, []string{"Donation amount is required"}},
		{"unknown cause", func(d *Donation) { d.Cause = "Sports" }, []string{`"Sports" is not a valid cause`}},
		{"cause is case sensitive", func(d *Donation) { d.Cause = "education" }, []string{`"education" is not a valid cause`}},
		{"email without domain dot", func(d *Donation) { d.Email = "asha@example" }, []string{"Please fill a valid email address"}},
		{"email without at", func(d *Donation) { d.Email = "asha.example.org" }, []string{"Please fill a valid email address"}},
		{
			"several violations keep field order",
			func(d *Donation) {
				d.Name = ""
				d.Email = "nope"
				d.Amount = lo.ToPtr(-5.0)
			},
			[]string{"Name is required", "Please fill a valid email address", "Donation amount must be positive"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			d := validDonation()
			tt.mutate(&d)

			err := Validate(d)
			if tt.messages == nil {
				req.NoError(err)
				return
			}

			var verr *ValidationError
			req.True(errors.As(err, &verr))
			req.Equal(tt.messages, verr.Messages)
			req.Equal(strings.Join(tt.messages, ". "), err.Error())
		})
	}
}

func TestValidate_Feedback(t *testing.T) {
	req := require.New(t)

	req.NoError(Validate(Feedback{Name: "Ravi", Email: "ravi@example.com", Stars: lo.ToPtr(5)}))

	err := Validate(Feedback{Name: "Ravi", Email: "ravi@example.com", Stars: lo.ToPtr(0)})
	req.EqualError(err, "Stars rating must be between 1 and 5")

	err = Validate(Feedback{Name: "Ravi", Email: "ravi@example.com", Stars: lo.ToPtr(6)})
	req.EqualError(err, "Stars rating must be between 1 and 5")

	err = Validate(Feedback{})
	req.EqualError(err, "Name is required. Email is required. Stars rating is required")
}

func TestValidate_ContactUs(t *testing.T) {
	req := require.New(t)

	req.NoError(Validate(ContactUs{Name: "Meera", Email: "meera@example.com", Message: "Hello"}))

	err := Validate(ContactUs{Name: "Meera", Email: "meera@example.com"})
	req.EqualError(err, "Message is required")

	long := strings.Repeat("a", MaxContactMessageLength+1)
	err = Validate(ContactUs{Name: "Meera", Email: "meera@example.com", Message: long})
	req.EqualError(err, "Message must be at most 5000 characters")
}

func TestDonationRequest_HasRequiredFields(t *testing.T) {
	full := DonationRequest{
		Name:   lo.ToPtr("Asha"),
		Email:  lo.ToPtr("asha@example.org"),
		Amount: lo.ToPtr(0.0),
		Cause:  lo.ToPtr("Orphanage"),
	}

	t.Run("zero amount counts as present", func(t *testing.T) {
		require.True(t, full.HasRequiredFields())
	})

	missing := map[string]func(r *DonationRequest){
		"name":        func(r *DonationRequest) { r.Name = nil },
		"empty name":  func(r *DonationRequest) { r.Name = lo.ToPtr("") },
		"email":       func(r *DonationRequest) { r.Email = nil },
		"amount":      func(r *DonationRequest) { r.Amount = nil },
		"cause":       func(r *DonationRequest) { r.Cause = nil },
		"empty cause": func(r *DonationRequest) { r.Cause = lo.ToPtr("") },
	}
	for name, mutate := range missing {
		t.Run("missing "+name, func(t *testing.T) {
			r := full
			mutate(&r)
			require.False(t, r.HasRequiredFields())
		})
	}
}

func TestCause_Valid(t *testing.T) {
	req := require.New(t)
	for _, c := range Causes {
		req.True(c.Valid(), string(c))
	}
	req.False(Cause("Old age home").Valid())
	req.False(Cause("").Valid())
}
