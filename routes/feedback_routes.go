package routes

import (
	"donation-service/controllers"
	"donation-service/notifications"
	"donation-service/repositories"

	"github.com/gorilla/mux"
)

func FeedbackRoutes(router *mux.Router, repo repositories.IFeedbackRepository, publisher notifications.Publisher) {
	router.HandleFunc("/api/feedback", controllers.SubmitFeedback(repo, publisher)).Methods("POST")
	router.HandleFunc("/api/feedback", controllers.GetFeedback(repo)).Methods("GET")
}
