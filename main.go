package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"astra_server/routes"
	"astra_server/services"
	"astra_server/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Session cache lives for the whole process and is injected into
	// whatever needs it
	sessionCache := services.NewSessionCache()

	// Initialize Services
	friendService := &services.FriendService{Dynamo: dynamoService}
	profileStoreService := &services.ProfileStoreService{Dynamo: dynamoService}
	shareService := &services.ShareService{Dynamo: dynamoService}
	connectionService := &services.ConnectionService{}
	filterSortService := &services.FilterSortService{}
	contentService := services.NewContentService(sessionCache)

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Astra")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterConnectionRoutes(r, connectionService, friendService)
	routes.RegisterFriendRoutes(r, friendService, filterSortService)
	routes.RegisterProfileRoutes(r, profileStoreService, sessionCache)
	routes.RegisterContentRoutes(r, contentService, profileStoreService)
	routes.RegisterShareRoutes(r, shareService)
	routes.RegisterAudioRoutes(r)

	// Presence and playback events over Socket.IO
	socketServer := socket.NewSocketServer()
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Printf("Socket server error: %v\n", err)
		}
	}()
	defer socketServer.Close()
	r.Handle("/socket.io/", socketServer)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
