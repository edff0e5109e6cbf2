package routes

import (
	"astra_server/controllers"
	"astra_server/services"

	"github.com/gorilla/mux"
)

// RegisterConnectionRoutes sets up routes for the constellation graph under /api/connections
func RegisterConnectionRoutes(r *mux.Router, connectionService *services.ConnectionService, friendService *services.FriendService) {
	controller := controllers.NewConnectionController(connectionService, friendService)

	connectionRouter := r.PathPrefix("/api/connections").Subrouter()
	connectionRouter.HandleFunc("/{userId}", controller.GetConstellation).Methods("GET")
	connectionRouter.HandleFunc("/{userId}/{friendId}/connected", controller.GetConnectedFriends).Methods("GET")
}
