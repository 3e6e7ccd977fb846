package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// SocketServer upgrades a request into a realtime session.
type SocketServer interface {
	ServeWS(w http.ResponseWriter, r *http.Request) error
}

type SocketHandler struct {
	server SocketServer
}

func NewSocketHandler(server SocketServer) *SocketHandler {
	return &SocketHandler{server: server}
}

// Connect handles GET /socket. Frames are JSON objects {"event", "data"}.
//
// @Summary      Open the realtime channel
// @Tags         realtime
// @Success      101
// @Failure      403
// @Router       /socket [get]
func (h *SocketHandler) Connect(c echo.Context) error {
	return h.server.ServeWS(c.Response(), c.Request())
}
