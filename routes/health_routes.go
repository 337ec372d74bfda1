package routes

import (
	"context"

	"donation-service/controllers"

	"github.com/gorilla/mux"
)

func HealthRoutes(router *mux.Router, ping func(ctx context.Context) error) {
	router.HandleFunc("/", controllers.Root()).Methods("GET")
	router.HandleFunc("/healthz", controllers.Healthz()).Methods("GET")
	router.HandleFunc("/ready", controllers.Ready(ping)).Methods("GET")
}
