package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"astra_server/models"
	"astra_server/services"

	"github.com/gorilla/mux"
)

// ProfileController handles the per-user stored records: birth data, genre
// preferences and notification preferences
type ProfileController struct {
	ProfileStore *services.ProfileStoreService
	Cache        *services.SessionCache
}

// NewProfileController creates a new instance of ProfileController
func NewProfileController(profileStore *services.ProfileStoreService, cache *services.SessionCache) *ProfileController {
	return &ProfileController{ProfileStore: profileStore, Cache: cache}
}

// GetBirthData returns the user's saved birth data
func (c *ProfileController) GetBirthData(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	data, err := c.ProfileStore.LoadBirthData(r.Context(), userID)
	if err != nil {
		log.Printf("Failed to load birth data: %v\n", err)
		http.Error(w, "Failed to load birth data", http.StatusInternalServerError)
		return
	}
	if data == nil {
		http.Error(w, "Birth data not found", http.StatusNotFound)
		return
	}

	json.NewEncoder(w).Encode(data)
}

// SaveBirthData stores the user's birth data
func (c *ProfileController) SaveBirthData(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var data models.BirthData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := c.ProfileStore.SaveBirthData(r.Context(), userID, data); err != nil {
		log.Printf("Failed to save birth data: %v\n", err)
		http.Error(w, "Failed to save birth data", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Birth data saved successfully",
	})
}

// GetGenres returns the user's genre preferences
func (c *ProfileController) GetGenres(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	prefs, err := c.ProfileStore.LoadGenres(r.Context(), userID)
	if err != nil {
		log.Printf("Failed to load genres: %v\n", err)
		http.Error(w, "Failed to load genres", http.StatusInternalServerError)
		return
	}
	if prefs == nil {
		// No saved preferences yet; an empty selection is the default
		prefs = &models.GenrePreferences{Genres: []string{}}
	}

	json.NewEncoder(w).Encode(prefs)
}

// SaveGenres stores the user's genre preferences
func (c *ProfileController) SaveGenres(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var prefs models.GenrePreferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := c.ProfileStore.SaveGenres(r.Context(), userID, prefs); err != nil {
		log.Printf("Failed to save genres: %v\n", err)
		http.Error(w, "Failed to save genres", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Genres saved successfully",
	})
}

// GetNotificationPreferences returns the user's notification toggles
func (c *ProfileController) GetNotificationPreferences(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	prefs, err := c.ProfileStore.LoadNotificationPreferences(r.Context(), userID)
	if err != nil {
		log.Printf("Failed to load notification preferences: %v\n", err)
		http.Error(w, "Failed to load notification preferences", http.StatusInternalServerError)
		return
	}
	if prefs == nil {
		prefs = &models.NotificationPreferences{}
	}

	json.NewEncoder(w).Encode(prefs)
}

// SaveNotificationPreferences stores the user's notification toggles
func (c *ProfileController) SaveNotificationPreferences(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var prefs models.NotificationPreferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := c.ProfileStore.SaveNotificationPreferences(r.Context(), userID, prefs); err != nil {
		log.Printf("Failed to save notification preferences: %v\n", err)
		http.Error(w, "Failed to save notification preferences", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Notification preferences saved successfully",
	})
}

// ClearAll deletes every stored record for the user and clears the session
// cache
func (c *ProfileController) ClearAll(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	if err := c.ProfileStore.ClearAll(r.Context(), userID); err != nil {
		log.Printf("Failed to clear stored data: %v\n", err)
		http.Error(w, "Failed to clear stored data", http.StatusInternalServerError)
		return
	}

	c.Cache.Clear()

	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Stored data cleared",
	})
}
