package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"donation-service/mocks"
	"donation-service/models"
	"donation-service/responses"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func TestSubmitFeedback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockIFeedbackRepository(ctrl)
	publisher := mocks.NewMockPublisher(ctrl)
	handler := SubmitFeedback(repo, publisher)

	store := func(_ context.Context, f *models.Feedback) error {
		if err := models.Validate(f); err != nil {
			return err
		}
		f.ID = primitive.NewObjectID()
		f.Date = time.Now().UTC()
		return nil
	}

	t.Run("should store valid feedback", func(t *testing.T) {
		req := require.New(t)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(store).Times(1)
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		rr := postJSON(handler, `{"name":"Ravi","email":"ravi@example.com","stars":4}`)

		req.Equal(http.StatusCreated, rr.Code)
		var body responses.FeedbackResponse
		req.NoError(json.NewDecoder(rr.Body).Decode(&body))
		req.Equal("Feedback submitted successfully!", body.Message)
		req.Equal(4, *body.Feedback.Stars)
		req.False(body.Feedback.ID.IsZero())
	})

	t.Run("should reject feedback breaking the schema", func(t *testing.T) {
		req := require.New(t)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(store).Times(1)

		rr := postJSON(handler, `{"name":"Ravi","stars":9}`)

		req.Equal(http.StatusBadRequest, rr.Code)
		req.Equal("Email is required. Stars rating must be between 1 and 5", decodeMessage(t, rr))
	})

	t.Run("should reject a non numeric star rating", func(t *testing.T) {
		req := require.New(t)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)

		rr := postJSON(handler, `{"name":"Ravi","email":"ravi@example.com","stars":"five"}`)

		req.Equal(http.StatusBadRequest, rr.Code)
		req.Equal("Invalid request payload.", decodeMessage(t, rr))
	})

	t.Run("should not leak storage errors", func(t *testing.T) {
		req := require.New(t)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("E11000 duplicate key")).Times(1)

		rr := postJSON(handler, `{"name":"Ravi","email":"ravi@example.com","stars":4}`)

		req.Equal(http.StatusInternalServerError, rr.Code)
		req.Equal("Server Error: Unable to submit feedback.", decodeMessage(t, rr))
		req.NotContains(rr.Body.String(), "E11000")
	})
}

func TestGetFeedback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockIFeedbackRepository(ctrl)
	handler := GetFeedback(repo)

	t.Run("should list feedback", func(t *testing.T) {
		req := require.New(t)
		repo.EXPECT().All(gomock.Any()).Return([]models.Feedback{
			{ID: primitive.NewObjectID(), Name: "Ravi", Email: "ravi@example.com", Stars: lo.ToPtr(5)},
		}, nil)

		rr := get(handler)

		var body responses.FeedbackListResponse
		req.NoError(json.NewDecoder(rr.Body).Decode(&body))
		req.Len(body.Feedback, 1)
	})

	t.Run("should return an empty array instead of null", func(t *testing.T) {
		req := require.New(t)
		repo.EXPECT().All(gomock.Any()).Return(nil, nil)

		rr := get(handler)

		req.JSONEq(`{"feedback":[]}`, rr.Body.String())
	})

	t.Run("should answer 500 on storage failure", func(t *testing.T) {
		req := require.New(t)
		repo.EXPECT().All(gomock.Any()).Return(nil, errors.New("timeout"))

		rr := get(handler)

		req.Equal(http.StatusInternalServerError, rr.Code)
	})
}

func TestSubmitContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockIContactRepository(ctrl)
	publisher := mocks.NewMockPublisher(ctrl)
	handler := SubmitContact(repo, publisher)

	store := func(_ context.Context, c *models.ContactUs) error {
		if err := models.Validate(c); err != nil {
			return err
		}
		c.ID = primitive.NewObjectID()
		c.Date = time.Now().UTC()
		return nil
	}

	t.Run("should store a valid contact request", func(t *testing.T) {
		req := require.New(t)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(store).Times(1)
		publisher.EXPECT().
			Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n models.Notification) error {
				req.Equal(models.ContactCreated, n.Type)
				return nil
			}).
			Times(1)

		rr := postJSON(handler, `{"name":"Meera","email":"meera@example.com","message":"How can I volunteer?"}`)

		req.Equal(http.StatusCreated, rr.Code)
		var body responses.ContactResponse
		req.NoError(json.NewDecoder(rr.Body).Decode(&body))
		req.Equal("Contact request submitted successfully!", body.Message)
		req.Equal("How can I volunteer?", body.Contact.Message)
	})

	t.Run("should reject a request without message", func(t *testing.T) {
		req := require.New(t)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(store).Times(1)

		rr := postJSON(handler, `{"name":"Meera","email":"meera@example.com"}`)

		req.Equal(http.StatusBadRequest, rr.Code)
		req.Equal("Message is required", decodeMessage(t, rr))
	})

	t.Run("should answer 500 on storage failure", func(t *testing.T) {
		req := require.New(t)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("socket closed")).Times(1)

		rr := postJSON(handler, `{"name":"Meera","email":"meera@example.com","message":"hi"}`)

		req.Equal(http.StatusInternalServerError, rr.Code)
		req.Equal("Server Error: Unable to submit contact request.", decodeMessage(t, rr))
	})

	t.Run("should refuse a body over the size limit before storing", func(t *testing.T) {
		req := require.New(t)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)

		message := strings.Repeat("a", maxBodyBytes+1)
		rr := postJSON(handler, `{"name":"Meera","email":"meera@example.com","message":"`+message+`"}`)

		req.Equal(http.StatusRequestEntityTooLarge, rr.Code)
		req.Equal("Request payload too large.", decodeMessage(t, rr))
	})
}

func TestGetContacts(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockIContactRepository(ctrl)

	repo.EXPECT().All(gomock.Any()).Return([]models.ContactUs{
		{ID: primitive.NewObjectID(), Name: "Meera", Email: "meera@example.com", Message: "hi"},
		{ID: primitive.NewObjectID(), Name: "Arun", Email: "arun@example.com", Message: "hello"},
	}, nil)

	rr := get(GetContacts(repo))

	req.Equal(http.StatusOK, rr.Code)
	var body responses.ContactListResponse
	req.NoError(json.NewDecoder(rr.Body).Decode(&body))
	req.Len(body.Contacts, 2)
}
