package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/yeremiapane/restaurant-api/kds"
	"github.com/yeremiapane/restaurant-api/middlewares"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type KDSController struct {
	Hub *kds.Hub
	// RequireRole rejects clients without an admin or staff token.
	RequireRole bool
}

func NewKDSController(hub *kds.Hub, requireRole bool) *KDSController {
	return &KDSController{Hub: hub, RequireRole: requireRole}
}

// KDSHandler -> websocket feed of bill events
func (kc *KDSController) KDSHandler(c *gin.Context) {
	role := c.GetString(middlewares.ContextRole)
	if kc.RequireRole && role != middlewares.RoleAdmin && role != middlewares.RoleStaff {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}
	if role == "" {
		role = "viewer"
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	kc.Hub.RegisterClient(ws, role)

	// The feed is one-way; reading only detects the disconnect.
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	kc.Hub.UnregisterClient(ws)
}
