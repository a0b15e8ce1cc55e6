package notify

import (
	"crypto/rsa"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"backend/internal/middleware"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// writePump handles writing messages from the Hub to the WebSocket connection
func (c *Client) writePump(conn *websocket.Conn) {
	defer func() {
		_ = conn.Close()
	}()
	for message := range c.send {
		w, err := conn.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		_, _ = w.Write(message)

		// Fast track writing queued messages
		n := len(c.send)
		for i := 0; i < n; i++ {
			_, _ = w.Write([]byte{'\n'})
			_, _ = w.Write(<-c.send)
		}

		if err := w.Close(); err != nil {
			return
		}
	}
	_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// readPump drains the connection and unregisters the client on close
func (c *Client) readPump(conn *websocket.Conn) {
	defer func() {
		c.hub.unregister <- c
		_ = conn.Close()
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("notify: %v", err)
			}
			break
		}
	}
}

// ServeWs upgrades an authenticated subscriber. Browsers cannot set the
// Authorization header on websocket handshakes, so the access token rides
// in the token query parameter and is verified with the same public key.
func ServeWs(hub *Hub, c *gin.Context, publicKey *rsa.PublicKey) {
	tokenString := c.Query("token")
	if tokenString == "" {
		log.Println("notify: connection rejected: missing token")
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	if _, err := middleware.ParseToken(tokenString, publicKey); err != nil {
		log.Println("notify: connection rejected: invalid token:", err)
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("notify: upgrade failed:", err)
		return
	}
	client := &Client{hub: hub, send: make(chan []byte, 256)}
	client.hub.register <- client

	go client.writePump(conn)
	go client.readPump(conn)
}
