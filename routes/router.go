package routes

import (
	"context"
	"errors"
	"net/http"

	"donation-service/controllers"
	"donation-service/middleware"
	"donation-service/notifications"
	"donation-service/repositories"

	"github.com/gorilla/mux"
)

var errNoStorage = errors.New("no storage ping configured")

// Dependencies are the process-scoped clients the handlers work with.
type Dependencies struct {
	Donations repositories.IDonationRepository
	Feedback  repositories.IFeedbackRepository
	Contacts  repositories.IContactRepository
	Publisher notifications.Publisher
	Ping      func(ctx context.Context) error
}

// NewHandler registers every route group and wraps the router with the
// middleware chain. CORS sits outermost so preflight requests never hit
// the router's method matching.
func NewHandler(deps Dependencies) http.Handler {
	if deps.Publisher == nil {
		deps.Publisher = notifications.NopPublisher{}
	}
	if deps.Ping == nil {
		deps.Ping = func(context.Context) error { return errNoStorage }
	}

	router := mux.NewRouter()
	router.NotFoundHandler = controllers.NotFound()
	router.MethodNotAllowedHandler = controllers.MethodNotAllowed()

	DonationRoutes(router, deps.Donations, deps.Publisher)
	FeedbackRoutes(router, deps.Feedback, deps.Publisher)
	ContactRoutes(router, deps.Contacts, deps.Publisher)
	HealthRoutes(router, deps.Ping)

	var handler http.Handler = router
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.RecoveryMiddleware(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.CORS(handler)
	return handler
}
