package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"astra_server/models"
	"astra_server/services"
	"astra_server/utils"

	"github.com/gorilla/mux"
)

// friendView is a friend profile plus its human-readable recency label
type friendView struct {
	models.FriendProfile
	LastAligned string `json:"lastAligned"`
}

// FriendController handles friend-list and pending-request requests
type FriendController struct {
	FriendService     *services.FriendService
	FilterSortService *services.FilterSortService
}

// NewFriendController creates a new instance of FriendController
func NewFriendController(friendService *services.FriendService, filterSortService *services.FilterSortService) *FriendController {
	return &FriendController{
		FriendService:     friendService,
		FilterSortService: filterSortService,
	}
}

// GetFriends returns the user's friend list, filtered by the optional query
// parameter and ordered by the optional sort parameter (all, recent,
// compatible)
func (c *FriendController) GetFriends(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	query := r.URL.Query().Get("query")
	mode := models.SortMode(r.URL.Query().Get("sort"))
	if mode == "" {
		mode = models.SortAll
	}

	friends, err := c.FriendService.ListFriends(r.Context(), userID)
	if err != nil {
		log.Printf("Failed to list friends: %v\n", err)
		http.Error(w, "Failed to list friends", http.StatusInternalServerError)
		return
	}

	result := c.FilterSortService.Apply(friends, query, mode)

	// Attach the display label for each friend's last alignment; ordering
	// always uses the timestamp itself
	now := time.Now()
	views := make([]friendView, len(result))
	for i, f := range result {
		views[i] = friendView{FriendProfile: f, LastAligned: utils.RecencyLabel(f.LastAlignedAt, now)}
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"friends": views,
	})
}

// CreateFriend adds a friend profile directly to the user's list
func (c *FriendController) CreateFriend(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var profile models.FriendProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := c.FriendService.SaveFriend(r.Context(), userID, profile); err != nil {
		log.Printf("Failed to save friend: %v\n", err)
		http.Error(w, "Failed to save friend", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Friend added successfully",
		"friend":  profile,
	})
}

// DeleteFriend removes a friend from the user's list
func (c *FriendController) DeleteFriend(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]

	friendID, err := strconv.Atoi(vars["friendId"])
	if err != nil {
		http.Error(w, "Invalid friend id", http.StatusBadRequest)
		return
	}

	if err := c.FriendService.RemoveFriend(r.Context(), userID, friendID); err != nil {
		log.Printf("Failed to remove friend: %v\n", err)
		http.Error(w, "Failed to remove friend", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Friend removed successfully",
	})
}

// SetPresence updates the online flag on one stored friend profile. Presence
// events for friends not in the list are ignored.
func (c *FriendController) SetPresence(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]

	friendID, err := strconv.Atoi(vars["friendId"])
	if err != nil {
		http.Error(w, "Invalid friend id", http.StatusBadRequest)
		return
	}

	var payload struct {
		Online bool `json:"online"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := c.FriendService.SetFriendPresence(r.Context(), userID, friendID, payload.Online); err != nil {
		log.Printf("Failed to update presence: %v\n", err)
		http.Error(w, "Failed to update presence", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Presence updated",
	})
}

// GetPendingRequests returns the user's pending connection requests
func (c *FriendController) GetPendingRequests(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	requests, err := c.FriendService.ListPendingRequests(r.Context(), userID)
	if err != nil {
		log.Printf("Failed to list pending requests: %v\n", err)
		http.Error(w, "Failed to list pending requests", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"requests": requests,
	})
}

// AcceptRequest accepts a pending request, moving its profile into the
// friend list
func (c *FriendController) AcceptRequest(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]
	requestID := vars["requestId"]

	profile, err := c.FriendService.AcceptRequest(r.Context(), userID, requestID)
	if err != nil {
		log.Printf("Failed to accept request: %v\n", err)
		http.Error(w, "Failed to accept request", http.StatusInternalServerError)
		return
	}
	if profile == nil {
		http.Error(w, "Request not found", http.StatusNotFound)
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Request accepted",
		"friend":  profile,
	})
}

// DeclineRequest deletes a pending request without adding the profile
func (c *FriendController) DeclineRequest(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]
	requestID := vars["requestId"]

	if err := c.FriendService.DeclineRequest(r.Context(), userID, requestID); err != nil {
		log.Printf("Failed to decline request: %v\n", err)
		http.Error(w, "Failed to decline request", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Request declined",
	})
}
