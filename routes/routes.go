package routes

import (
	"github.com/julienschmidt/httprouter"

	"vigovia/itinerary"
	"vigovia/middleware"
	"vigovia/progress"
	"vigovia/ratelim"
)

func AddSessionRoutes(router *httprouter.Router, h *itinerary.Handlers) {
	router.POST("/api/session", h.CreateSession)
}

func AddItineraryRoutes(router *httprouter.Router, h *itinerary.Handlers) {
	router.GET("/api/itinerary", middleware.Authenticate(h.GetItinerary))
	router.PUT("/api/itinerary/basic", middleware.Authenticate(h.UpdateBasicInfo))
	router.PUT("/api/itinerary/days", middleware.Authenticate(h.UpdateDays))
	router.PUT("/api/itinerary/flights", middleware.Authenticate(h.UpdateFlights))
	router.PUT("/api/itinerary/hotels", middleware.Authenticate(h.UpdateHotels))
	router.PUT("/api/itinerary/installments", middleware.Authenticate(h.UpdateInstallments))
	router.PUT("/api/itinerary/notes", middleware.Authenticate(h.UpdateNotes))
	router.PUT("/api/itinerary/services", middleware.Authenticate(h.UpdateServices))
	router.PUT("/api/itinerary/inclusions", middleware.Authenticate(h.UpdateInclusions))
	router.PUT("/api/itinerary/activities", middleware.Authenticate(h.UpdateActivities))
}

func AddExportRoutes(router *httprouter.Router, h *itinerary.Handlers, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/itinerary/generate", rateLimiter.Limit(middleware.Authenticate(h.Generate)))
}

func AddProgressRoutes(router *httprouter.Router, feed *progress.Feed) {
	router.GET("/ws/progress", feed.HandleWS)
}
