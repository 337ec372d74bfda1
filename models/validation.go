package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var emailPattern = regexp.MustCompile(`.+@.+\..+`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("simpleemail", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("cause", func(fl validator.FieldLevel) bool {
		return Cause(fl.Field().String()).Valid()
	})
	return v
}

// messages maps "Field.tag" to the text reported to clients.
var messages = map[string]string{
	"Name.required":     "Name is required",
	"Email.required":    "Email is required",
	"Email.simpleemail": "Please fill a valid email address",
	"Amount.required":   "Donation amount is required",
	"Amount.gte":        "Donation amount must be positive",
	"Cause.required":    "Cause is required",
	"Stars.required":    "Stars rating is required",
	"Stars.gte":         "Stars rating must be between 1 and 5",
	"Stars.lte":         "Stars rating must be between 1 and 5",
	"Message.required":  "Message is required",
	"Message.max":       fmt.Sprintf("Message must be at most %d characters", MaxContactMessageLength),
}

// ValidationError carries one human readable message per violated rule,
// in field declaration order.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ". ")
}

// Validate checks a record against its declared rules. It returns
// *ValidationError when the record breaks at least one of them.
func Validate(record interface{}) error {
	err := validate.Struct(record)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	return &ValidationError{
		Messages: lo.Map(fieldErrors, func(fe validator.FieldError, _ int) string {
			return messageFor(fe)
		}),
	}
}

func messageFor(fe validator.FieldError) string {
	if fe.Field() == "Cause" && fe.Tag() == "cause" {
		return fmt.Sprintf("%q is not a valid cause", fe.Value())
	}
	if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
