package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"astra_server/services"
)

// GeneratePresignedUploadURL generates a presigned URL for uploading rendered
// sonification audio to S3
func GeneratePresignedUploadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if payload.FileName == "" || payload.FileType == "" {
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	url, key, err := services.GenerateUploadURL(payload.FileName, payload.FileType)
	if err != nil {
		log.Printf("Failed to generate upload URL: %v\n", err)
		http.Error(w, "Failed to generate upload URL", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"url": url, "key": key})
}

// GetPresignedStreamURL generates a presigned URL for streaming a stored
// sonification
func GetPresignedStreamURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Key == "" {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	url, err := services.GenerateStreamURL(payload.Key)
	if err != nil {
		log.Printf("Failed to generate stream URL: %v\n", err)
		http.Error(w, "Failed to generate stream URL", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"url": url})
}
