package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"astra_server/models"
	"astra_server/services"

	"github.com/gorilla/mux"
)

// ConnectionController handles constellation and connected-friends requests
type ConnectionController struct {
	ConnectionService *services.ConnectionService
	FriendService     *services.FriendService
}

// NewConnectionController creates a new instance of ConnectionController
func NewConnectionController(connectionService *services.ConnectionService, friendService *services.FriendService) *ConnectionController {
	return &ConnectionController{
		ConnectionService: connectionService,
		FriendService:     friendService,
	}
}

// GetConstellation returns the user's friends plus the derived connection
// edges for the constellation view
func (c *ConnectionController) GetConstellation(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	friends, err := c.FriendService.ListFriends(r.Context(), userID)
	if err != nil {
		log.Printf("Failed to load friends for constellation: %v\n", err)
		http.Error(w, "Failed to load friends", http.StatusInternalServerError)
		return
	}

	edges := c.ConnectionService.BuildConnections(friends)

	json.NewEncoder(w).Encode(map[string]interface{}{
		"friends": friends,
		"edges":   edges,
	})
}

// GetConnectedFriends returns the friends connected to one target friend. An
// unknown friend id yields an empty list, not an error.
func (c *ConnectionController) GetConnectedFriends(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]

	friendID, err := strconv.Atoi(vars["friendId"])
	if err != nil {
		http.Error(w, "Invalid friend id", http.StatusBadRequest)
		return
	}

	friends, err := c.FriendService.ListFriends(r.Context(), userID)
	if err != nil {
		log.Printf("Failed to load friends for connection lookup: %v\n", err)
		http.Error(w, "Failed to load friends", http.StatusInternalServerError)
		return
	}

	target := models.FriendProfile{ID: friendID}
	for _, f := range friends {
		if f.ID == friendID {
			target = f
			break
		}
	}

	edges := c.ConnectionService.BuildConnections(friends)
	connected := c.ConnectionService.ConnectedFriends(target, edges, friends)

	json.NewEncoder(w).Encode(map[string]interface{}{
		"connected": connected,
	})
}
