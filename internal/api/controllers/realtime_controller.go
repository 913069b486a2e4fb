package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"wellspring/internal/realtime"
	"wellspring/internal/services"
	"wellspring/pkg/utils"
)

type RealtimeController struct {
	profileService services.ProfileServiceInterface
	hub            *realtime.Hub
}

func NewRealtimeController(profileService services.ProfileServiceInterface, hub *realtime.Hub) *RealtimeController {
	return &RealtimeController{
		profileService: profileService,
		hub:            hub,
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Connect godoc
// @Summary Open a realtime event stream
// @Description Upgrade to a websocket delivering one event per successful submission
// @Tags Realtime
// @Security BearerAuth
// @Router /ws [get]
func (rc *RealtimeController) Connect(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session identity")
		return
	}

	profile, err := rc.profileService.Resolve(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := &realtime.Client{ProfileID: profile.ID, Conn: conn}
	rc.hub.Register(client)
	defer rc.hub.Unregister(client)

	// the stream is one-way; drain control frames until the peer goes away
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
