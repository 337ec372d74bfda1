package routes

import (
	"donation-service/controllers"
	"donation-service/notifications"
	"donation-service/repositories"

	"github.com/gorilla/mux"
)

func ContactRoutes(router *mux.Router, repo repositories.IContactRepository, publisher notifications.Publisher) {
	router.HandleFunc("/api/contactus", controllers.SubmitContact(repo, publisher)).Methods("POST")
	router.HandleFunc("/api/contactus", controllers.GetContacts(repo)).Methods("GET")
}
