package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"astra_server/services"

	"github.com/gorilla/mux"
)

// ShareController handles share-sheet text records
type ShareController struct {
	ShareService *services.ShareService
}

// NewShareController creates a new instance of ShareController
func NewShareController(shareService *services.ShareService) *ShareController {
	return &ShareController{ShareService: shareService}
}

// CreateShare stores share text and returns its token
func (c *ShareController) CreateShare(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var payload struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Text == "" {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	record, err := c.ShareService.CreateShare(r.Context(), userID, payload.Text)
	if err != nil {
		log.Printf("Failed to create share: %v\n", err)
		http.Error(w, "Failed to create share", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(record)
}

// GetShare returns the share text for a token
func (c *ShareController) GetShare(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	record, err := c.ShareService.GetShare(r.Context(), token)
	if err != nil {
		log.Printf("Failed to fetch share: %v\n", err)
		http.Error(w, "Failed to fetch share", http.StatusInternalServerError)
		return
	}
	if record == nil {
		http.Error(w, "Share not found", http.StatusNotFound)
		return
	}

	json.NewEncoder(w).Encode(record)
}
