package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"booking-server/auth"
	"booking-server/entities"
	"booking-server/repositories"
	"booking-server/ws"
)

// WSHandler streams notification broadcasts to connected admin clients.
type WSHandler struct {
	hub    *ws.Hub
	tokens *auth.TokenService
	users  repositories.UserRepository
}

func NewWSHandler(hub *ws.Hub, tokens *auth.TokenService, users repositories.UserRepository) *WSHandler {
	return &WSHandler{hub: hub, tokens: tokens, users: users}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// HandleNotificationsWS upgrades to websocket for admin listeners.
// GET /ws?token=<bearer token>
func (h *WSHandler) HandleNotificationsWS(c *gin.Context) {
	claims, err := h.tokens.ValidateToken(c.Query("token"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	user, err := h.users.GetByID(claims.UserID)
	if err != nil || user.Role != entities.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden - Admin only"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	h.hub.Register(conn)
	log.Printf("notification listener connected: %s", user.Email)

	defer func() {
		h.hub.Unregister(conn)
		log.Printf("notification listener disconnected: %s", user.Email)
	}()

	// The stream is one-way; drain control frames until the peer leaves.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				return
			}
			log.Printf("read error from %s: %v", user.Email, err)
			return
		}
	}
}
