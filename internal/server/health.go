package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// healthCheck reports overall service health, including whether the
// transaction stream is currently connected.
func (s *Server) healthCheck(c *gin.Context) {
	events, fraud := s.store.Stats()

	streamStatus := "disconnected"
	if s.source != nil && s.source.Connected() {
		streamStatus = "connected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"service":     "fraudwatch",
		"uptime":      time.Since(s.started).Round(time.Second).String(),
		"stream":      streamStatus,
		"events_seen": events,
		"fraud_seen":  fraud,
	})
}

// liveCheck reports process liveness only.
func (s *Server) liveCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "alive",
		"service": "fraudwatch",
	})
}
