package routes

import (
	"astra_server/controllers"
	"astra_server/services"

	"github.com/gorilla/mux"
)

// RegisterShareRoutes sets up routes for share-sheet records under /api/shares
func RegisterShareRoutes(r *mux.Router, shareService *services.ShareService) {
	controller := controllers.NewShareController(shareService)

	shareRouter := r.PathPrefix("/api/shares").Subrouter()
	shareRouter.HandleFunc("/{userId}", controller.CreateShare).Methods("POST")
	shareRouter.HandleFunc("/token/{token}", controller.GetShare).Methods("GET")
}
