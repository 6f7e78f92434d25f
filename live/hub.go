// Package live pushes app-status and event updates to connected viewers
// over websockets. Clients join a room per event, or the global room for
// marketplace-wide signals like the online/offline switch.
package live

import (
	"encoding/json"
	"log"
	"sync"
	"time"
)

// GlobalRoom receives marketplace-wide updates.
const GlobalRoom = "global"

type broadcastMsg struct {
	Room string
	Data []byte
}

type Hub struct {
	rooms      map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcastMsg
	done       chan struct{}
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcastMsg),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			if h.rooms[c.Room] == nil {
				h.rooms[c.Room] = make(map[*Client]bool)
			}
			h.rooms[c.Room][c] = true
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if conns := h.rooms[c.Room]; conns != nil && conns[c] {
				delete(conns, c)
				close(c.Send)
			}
			h.mu.Unlock()

		case m := <-h.broadcast:
			h.mu.Lock()
			for c := range h.rooms[m.Room] {
				select {
				case c.Send <- m.Data:
				default:
					close(c.Send)
					delete(h.rooms[m.Room], c)
				}
			}
			h.mu.Unlock()

		case <-h.done:
			h.mu.Lock()
			for room, conns := range h.rooms {
				for c := range conns {
					close(c.Send)
				}
				delete(h.rooms, room)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Stop closes every client channel and ends the Run loop.
func (h *Hub) Stop() {
	close(h.done)
}

// Update is the payload broadcast to clients.
type Update struct {
	Type      string `json:"type"` // "app_status", "event_phase", "ticket_issued"
	EventID   string `json:"eventId,omitempty"`
	Phase     string `json:"phase,omitempty"`
	Online    *bool  `json:"online,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

func (h *Hub) send(room string, u Update) {
	u.Timestamp = time.Now().Unix()
	data, err := json.Marshal(u)
	if err != nil {
		log.Printf("live: marshal update: %v", err)
		return
	}
	select {
	case h.broadcast <- broadcastMsg{Room: room, Data: data}:
	case <-h.done:
	}
}

// AppStatus notifies every room subscriber of the global online flag.
func (h *Hub) AppStatus(online bool) {
	h.send(GlobalRoom, Update{Type: "app_status", Online: &online})
}

// EventPhase notifies an event room that its display phase changed.
func (h *Hub) EventPhase(eventID, phase string) {
	h.send(eventID, Update{Type: "event_phase", EventID: eventID, Phase: phase})
}

// TicketIssued notifies an event room of a new ticket sale.
func (h *Hub) TicketIssued(eventID string) {
	h.send(eventID, Update{Type: "ticket_issued", EventID: eventID})
}
