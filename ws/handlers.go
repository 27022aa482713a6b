package ws

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// writeWait adalah batas waktu satu write ke client.
const writeWait = 10 * time.Second

// Feed rota hanya satu arah (server -> client), jadi buffer baca kecil.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  512,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ServeWS meng-upgrade request menjadi client feed rota.
func ServeWS(hub *Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			log.Printf("ws: upgrade failed from %s: %v", c.RealIP(), err)
			return err
		}
		client := &Client{Conn: conn, Send: make(chan []byte, 256)}
		select {
		case hub.Register <- client:
		case <-hub.quit:
			conn.Close()
			return nil
		}

		go client.writePump()
		go client.readPump(hub)
		return nil
	}
}

// readPump hanya mendeteksi koneksi yang ditutup; pesan dari client diabaikan.
func (c *Client) readPump(hub *Hub) {
	defer func() {
		select {
		case hub.Unregister <- c:
		case <-hub.quit:
		}
		c.Conn.Close()
	}()
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			break
		}
	}
}

// writePump mengirim event rota ke client. Ketika Send ditutup oleh hub,
// client menerima close frame sebelum koneksi diputus.
func (c *Client) writePump() {
	defer c.Conn.Close()
	for message := range c.Send {
		c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("ws: write failed: %v", err)
			return
		}
	}
	c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
	c.Conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "rota feed closed"))
}
