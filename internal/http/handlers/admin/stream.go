package admin

import (
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BlissMahlathi/heavenly/internal/modules/events"
)

// StreamHandler feeds the dashboard's live order feed over SSE.
type StreamHandler struct {
	Hub *events.Hub
}

func NewStreamHandler(hub *events.Hub) *StreamHandler {
	return &StreamHandler{Hub: hub}
}

// Stream holds the connection open and relays hub events. The subscription
// is released when the client disconnects.
func (h *StreamHandler) Stream(c *gin.Context) {
	ch, cancel := h.Hub.Subscribe()
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Writer.Flush()

	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent(string(ev.Type), ev)
			return true
		case <-keepalive.C:
			c.SSEvent("ping", time.Now().Unix())
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
