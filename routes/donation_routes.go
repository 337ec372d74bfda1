package routes

import (
	"donation-service/controllers"
	"donation-service/notifications"
	"donation-service/repositories"

	"github.com/gorilla/mux"
)

func DonationRoutes(router *mux.Router, repo repositories.IDonationRepository, publisher notifications.Publisher) {
	router.HandleFunc("/api/donate", controllers.SubmitDonation(repo, publisher)).Methods("POST")
	router.HandleFunc("/api/donation", controllers.SubmitDonation(repo, publisher)).Methods("POST")
	router.HandleFunc("/api/donations/total", controllers.GetTotalDonations(repo)).Methods("GET")
	router.HandleFunc("/api/donations/last-5", controllers.GetLastDonations(repo)).Methods("GET")
	router.HandleFunc("/api/donations/by-cause", controllers.GetDonationsByCause(repo)).Methods("GET")
	router.HandleFunc("/api/donations", controllers.GetAllDonations(repo)).Methods("GET") // admin, unbounded
}
