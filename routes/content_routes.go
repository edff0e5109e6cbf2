package routes

import (
	"astra_server/controllers"
	"astra_server/services"

	"github.com/gorilla/mux"
)

// RegisterContentRoutes sets up routes for remote-fetched content under /api/content
func RegisterContentRoutes(r *mux.Router, contentService *services.ContentService, profileStore *services.ProfileStoreService) {
	controller := controllers.NewContentController(contentService, profileStore)

	contentRouter := r.PathPrefix("/api/content").Subrouter()
	contentRouter.HandleFunc("/{userId}/sonifications", controller.GetSonifications).Methods("GET")
	contentRouter.HandleFunc("/{userId}/reading", controller.GetDailyReading).Methods("GET")
	contentRouter.HandleFunc("/{userId}/season-card", controller.GetZodiacSeasonCard).Methods("GET")
	contentRouter.HandleFunc("/{userId}/alignment", controller.PostAlignment).Methods("POST")
	contentRouter.HandleFunc("/{userId}/playlist", controller.PostPlaylist).Methods("POST")
	contentRouter.HandleFunc("/geocode", controller.GetGeocode).Methods("GET")
}
