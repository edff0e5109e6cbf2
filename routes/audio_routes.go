package routes

import (
	"astra_server/controllers"

	"github.com/gorilla/mux"
)

// RegisterAudioRoutes sets up routes for sonification audio URLs under /api/audio
func RegisterAudioRoutes(r *mux.Router) {
	audioRouter := r.PathPrefix("/api/audio").Subrouter()
	audioRouter.HandleFunc("/upload-url", controllers.GeneratePresignedUploadURL).Methods("POST")
	audioRouter.HandleFunc("/stream-url", controllers.GetPresignedStreamURL).Methods("POST")
}
