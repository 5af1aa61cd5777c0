package ws

import (
	"encoding/json"
	"log"
	"sync"

	"fleachain_backend/store"
)

// Hub maintains the set of active clients and pushes store events to them.
// It is notification-only: every state change still goes through the HTTP
// mutations, the hub just tells connected clients what changed so they can
// re-render.
type Hub struct {
	// Registered clients.
	clients map[*Client]bool

	// Register requests from the clients.
	Register chan *Client

	// Unregister requests from clients.
	Unregister chan *Client

	// Outbound events fanned out to every client.
	Broadcast chan []byte

	// Map to quickly find clients by UserID (for direct message delivery)
	userClients map[string][]*Client

	// Mutex to protect the userClients map
	mutex sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		Broadcast:   make(chan []byte, 64),
		Register:    make(chan *Client),
		Unregister:  make(chan *Client),
		clients:     make(map[*Client]bool),
		userClients: make(map[string][]*Client),
	}
}

// Publish implements store.Notifier. Message events go only to the
// addressee and the sender; everything else is broadcast so marketplace
// views can refresh. Never blocks: if nobody is draining, events are
// dropped.
func (h *Hub) Publish(event store.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("ws: could not marshal event %s: %v", event.Type, err)
		return
	}

	if event.Type == store.EventMessageCreated && event.ReceiverID != "" {
		h.SendToUser(event.ReceiverID, payload)
		return
	}

	select {
	case h.Broadcast <- payload:
	default:
		log.Printf("ws: broadcast queue full, dropping %s", event.Type)
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.clients[client] = true
			h.trackClient(client)
		case client := <-h.Unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				// Untrack before closing so no delivery path can still
				// reach the channel once it is closed.
				h.untrackClient(client)
				close(client.Send)
			}
		case message := <-h.Broadcast:
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					delete(h.clients, client)
					h.untrackClient(client)
					close(client.Send)
				}
			}
		}
	}
}

// trackClient registers a client under its user id.
func (h *Hub) trackClient(client *Client) {
	h.mutex.Lock()
	h.userClients[client.UserID] = append(h.userClients[client.UserID], client)
	count := len(h.userClients[client.UserID])
	h.mutex.Unlock()

	log.Printf("User %s connected. Total connections for user: %d", client.UserID, count)
}

// untrackClient removes a client from the user map.
func (h *Hub) untrackClient(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	userConns := h.userClients[client.UserID]
	for i, conn := range userConns {
		if conn == client {
			h.userClients[client.UserID] = append(userConns[:i], userConns[i+1:]...)
			break
		}
	}

	if len(h.userClients[client.UserID]) == 0 {
		delete(h.userClients, client.UserID)
		log.Printf("User %s disconnected", client.UserID)
	}
}

// SendToUser sends a message to a specific user (all their active connections)
func (h *Hub) SendToUser(userID string, message []byte) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if clients, ok := h.userClients[userID]; ok {
		for _, client := range clients {
			select {
			case client.Send <- message:
			default:
				// The client stopped draining. Hand it back to the hub
				// loop, which owns closing the channel and untracking
				// the user; closing here would leave a closed channel
				// reachable through userClients.
				go func(c *Client) { h.Unregister <- c }(client)
			}
		}
	}
}

// IsUserOnline checks if a user has any active WebSocket connection
func (h *Hub) IsUserOnline(userID string) bool {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	clients, ok := h.userClients[userID]
	return ok && len(clients) > 0
}
