package routes

import (
	"astra_server/controllers"
	"astra_server/services"

	"github.com/gorilla/mux"
)

// RegisterProfileRoutes sets up routes for stored user records under /api/profile
func RegisterProfileRoutes(r *mux.Router, profileStore *services.ProfileStoreService, cache *services.SessionCache) {
	controller := controllers.NewProfileController(profileStore, cache)

	profileRouter := r.PathPrefix("/api/profile").Subrouter()
	profileRouter.HandleFunc("/{userId}/birth-data", controller.GetBirthData).Methods("GET")
	profileRouter.HandleFunc("/{userId}/birth-data", controller.SaveBirthData).Methods("PUT")
	profileRouter.HandleFunc("/{userId}/genres", controller.GetGenres).Methods("GET")
	profileRouter.HandleFunc("/{userId}/genres", controller.SaveGenres).Methods("PUT")
	profileRouter.HandleFunc("/{userId}/notifications", controller.GetNotificationPreferences).Methods("GET")
	profileRouter.HandleFunc("/{userId}/notifications", controller.SaveNotificationPreferences).Methods("PUT")
	profileRouter.HandleFunc("/{userId}", controller.ClearAll).Methods("DELETE")
}
