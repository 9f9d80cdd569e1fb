package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"conferencecentral/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(
	conferenceController *controllers.ConferenceController,
	sessionController *controllers.SessionController,
	speakerController *controllers.SpeakerController,
	wishlistController *controllers.WishlistController,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Conferences and their sessions
	mux.HandleFunc("POST /conferences", conferenceController.CreateConference)
	mux.HandleFunc("POST /conferences/{conferenceID}/sessions", sessionController.CreateSession)
	mux.HandleFunc("GET /conferences/{conferenceID}/sessions", sessionController.SessionsByConference)
	mux.HandleFunc("GET /conferences/{conferenceID}/sessions/types/{sessionType}", sessionController.SessionsByType)

	// Cross-conference session queries
	mux.HandleFunc("GET /sessions/by-speaker", sessionController.SessionsBySpeaker)
	mux.HandleFunc("GET /sessions/non-workshop-evening", sessionController.NonWorkshopEveningSessions)
	mux.HandleFunc("GET /sessions/featured-speaker", sessionController.FeaturedSpeaker)

	// Speakers
	mux.HandleFunc("POST /speakers", speakerController.CreateSpeaker)
	mux.HandleFunc("GET /speakers", speakerController.QuerySpeakers)

	// Wishlist
	mux.HandleFunc("POST /wishlist/sessions", wishlistController.AddToWishlist)
	mux.HandleFunc("GET /wishlist/sessions", wishlistController.ListWishlist)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
