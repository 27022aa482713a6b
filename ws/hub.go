package ws

// Hub bertanggung jawab untuk:
//   - menyimpan koneksi client,
//   - menerima event rota dari service,
//   - melakukan broadcast event ke seluruh client yang terhubung.

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Client mewakili koneksi WebSocket
type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

// Hub mengelola semua koneksi client
type Hub struct {
	Broadcast  chan []byte
	Register   chan *Client
	Unregister chan *Client

	mu      sync.RWMutex
	clients map[*Client]bool
	quit    chan struct{}
	stop    sync.Once
}

func NewHub() *Hub {
	return &Hub{
		Broadcast:  make(chan []byte),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		quit:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			log.Println("ws: client registered")
		case client := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				log.Println("ws: client unregistered")
			}
			h.mu.Unlock()
		case message := <-h.Broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					// client terlalu lambat, putuskan
					close(client.Send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		case <-h.quit:
			h.mu.Lock()
			for client := range h.clients {
				close(client.Send)
				delete(h.clients, client)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Publish sends message to every connected client. It is a no-op once the
// hub has been stopped.
func (h *Hub) Publish(message []byte) {
	select {
	case h.Broadcast <- message:
	case <-h.quit:
	}
}

func (h *Hub) Stop() {
	h.stop.Do(func() { close(h.quit) })
}

// ClientCount returns the number of registered clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
