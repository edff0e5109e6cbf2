package socket

import (
	"log"

	socketio "github.com/googollee/go-socket.io"
)

// presenceRoom is the shared room every connected client joins so presence
// changes reach all of them
const presenceRoom = "presence"

// NewSocketServer initializes and returns a new Socket.IO server handling
// presence and playback events
func NewSocketServer() *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		log.Println("Socket connected:", c.ID())
		c.SetContext("")
		return nil
	})

	// A client announces itself with its user id after connecting; everyone
	// in the presence room learns it came online
	server.OnEvent("/", "join", func(c socketio.Conn, userID string) {
		if userID == "" {
			log.Println("Invalid userId in join request")
			return
		}
		c.SetContext(userID)
		c.Join(presenceRoom)
		log.Printf("User %s joined presence room\n", userID)
		server.BroadcastToRoom("/", presenceRoom, "friendOnline", userID)
	})

	// Relayed when a client's playback engine stops on its own, so other
	// screens of the same user can reset their "is playing" flags
	server.OnEvent("/", "playbackStopped", func(c socketio.Conn, soundKey string) {
		userID, _ := c.Context().(string)
		if userID == "" {
			return
		}
		log.Printf("Playback stopped for user %s (sound %s)\n", userID, soundKey)
		server.BroadcastToRoom("/", presenceRoom, "playbackStopped", map[string]string{
			"userId":   userID,
			"soundKey": soundKey,
		})
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		userID, _ := c.Context().(string)
		log.Println("Socket disconnected:", c.ID(), reason)
		if userID != "" {
			server.BroadcastToRoom("/", presenceRoom, "friendOffline", userID)
		}
	})

	return server
}
