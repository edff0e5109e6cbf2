package routes

import (
	"astra_server/controllers"
	"astra_server/services"

	"github.com/gorilla/mux"
)

// RegisterFriendRoutes sets up routes for friend lists and pending requests under /api/friends
func RegisterFriendRoutes(r *mux.Router, friendService *services.FriendService, filterSortService *services.FilterSortService) {
	controller := controllers.NewFriendController(friendService, filterSortService)

	friendRouter := r.PathPrefix("/api/friends").Subrouter()
	friendRouter.HandleFunc("/{userId}", controller.GetFriends).Methods("GET")
	friendRouter.HandleFunc("/{userId}", controller.CreateFriend).Methods("POST")
	friendRouter.HandleFunc("/{userId}/{friendId}", controller.DeleteFriend).Methods("DELETE")
	friendRouter.HandleFunc("/{userId}/{friendId}/presence", controller.SetPresence).Methods("PUT")
	friendRouter.HandleFunc("/{userId}/requests", controller.GetPendingRequests).Methods("GET")
	friendRouter.HandleFunc("/{userId}/requests/{requestId}/accept", controller.AcceptRequest).Methods("POST")
	friendRouter.HandleFunc("/{userId}/requests/{requestId}/decline", controller.DeclineRequest).Methods("POST")
}
