package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"astra_server/models"
	"astra_server/services"

	"github.com/gorilla/mux"
)

// ContentController handles remote-fetched content: sonifications, readings,
// season cards, alignment, playlists and geocoding
type ContentController struct {
	ContentService *services.ContentService
	ProfileStore   *services.ProfileStoreService
}

// NewContentController creates a new instance of ContentController
func NewContentController(contentService *services.ContentService, profileStore *services.ProfileStoreService) *ContentController {
	return &ContentController{
		ContentService: contentService,
		ProfileStore:   profileStore,
	}
}

// loadBirthData fetches the caller's birth data, writing the error response
// itself when it is unavailable
func (c *ContentController) loadBirthData(w http.ResponseWriter, r *http.Request) (*models.BirthData, bool) {
	userID := mux.Vars(r)["userId"]

	birth, err := c.ProfileStore.LoadBirthData(r.Context(), userID)
	if err != nil {
		log.Printf("Failed to load birth data: %v\n", err)
		http.Error(w, "Failed to load birth data", http.StatusInternalServerError)
		return nil, false
	}
	if birth == nil {
		http.Error(w, "Birth data not set", http.StatusNotFound)
		return nil, false
	}
	return birth, true
}

// GetSonifications returns the user and daily sonifications, fetching both
// concurrently when they are not cached yet
func (c *ContentController) GetSonifications(w http.ResponseWriter, r *http.Request) {
	birth, ok := c.loadBirthData(w, r)
	if !ok {
		return
	}

	user, daily, err := c.ContentService.FetchSonifications(r.Context(), *birth)
	if err != nil {
		log.Printf("Failed to fetch sonifications: %v\n", err)
		http.Error(w, "Failed to fetch sonifications", http.StatusBadGateway)
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"user":  user,
		"daily": daily,
	})
}

// GetDailyReading returns the AI-generated reading for the requested life
// area
func (c *ContentController) GetDailyReading(w http.ResponseWriter, r *http.Request) {
	birth, ok := c.loadBirthData(w, r)
	if !ok {
		return
	}

	lifeArea := r.URL.Query().Get("lifeArea")
	if lifeArea == "" {
		lifeArea = "general"
	}

	reading, err := c.ContentService.FetchDailyReading(r.Context(), *birth, lifeArea)
	if err != nil {
		log.Printf("Failed to fetch daily reading: %v\n", err)
		http.Error(w, "Failed to fetch daily reading", http.StatusBadGateway)
		return
	}

	json.NewEncoder(w).Encode(reading)
}

// GetZodiacSeasonCard returns the current zodiac season card
func (c *ContentController) GetZodiacSeasonCard(w http.ResponseWriter, r *http.Request) {
	birth, ok := c.loadBirthData(w, r)
	if !ok {
		return
	}

	card, err := c.ContentService.FetchZodiacSeasonCard(r.Context(), *birth)
	if err != nil {
		log.Printf("Failed to fetch zodiac season card: %v\n", err)
		http.Error(w, "Failed to fetch zodiac season card", http.StatusBadGateway)
		return
	}

	json.NewEncoder(w).Encode(card)
}

// PostAlignment computes compatibility between the user's chart and a
// friend's birth data supplied in the request body
func (c *ContentController) PostAlignment(w http.ResponseWriter, r *http.Request) {
	birth, ok := c.loadBirthData(w, r)
	if !ok {
		return
	}

	var friendBirth models.BirthData
	if err := json.NewDecoder(r.Body).Decode(&friendBirth); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	result, err := c.ContentService.FetchAlignment(r.Context(), *birth, friendBirth)
	if err != nil {
		log.Printf("Failed to fetch alignment: %v\n", err)
		http.Error(w, "Failed to fetch alignment", http.StatusBadGateway)
		return
	}

	json.NewEncoder(w).Encode(result)
}

// PostPlaylist generates a playlist from the user's chart and saved genre
// preferences
func (c *ContentController) PostPlaylist(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	birth, ok := c.loadBirthData(w, r)
	if !ok {
		return
	}

	genres := []string{}
	if prefs, err := c.ProfileStore.LoadGenres(r.Context(), userID); err == nil && prefs != nil {
		genres = prefs.Genres
	}

	playlist, err := c.ContentService.GeneratePlaylist(r.Context(), *birth, genres)
	if err != nil {
		log.Printf("Failed to generate playlist: %v\n", err)
		http.Error(w, "Failed to generate playlist", http.StatusBadGateway)
		return
	}

	json.NewEncoder(w).Encode(playlist)
}

// GetGeocode resolves a place name to coordinates and a timezone
func (c *ContentController) GetGeocode(w http.ResponseWriter, r *http.Request) {
	place := r.URL.Query().Get("place")
	if place == "" {
		http.Error(w, "Missing place parameter", http.StatusBadRequest)
		return
	}

	result, err := c.ContentService.Geocode(r.Context(), place)
	if err != nil {
		log.Printf("Failed to geocode place: %v\n", err)
		http.Error(w, "Failed to geocode place", http.StatusBadGateway)
		return
	}

	json.NewEncoder(w).Encode(result)
}
