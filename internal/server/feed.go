package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// feedLatest returns the most recent arrival, or 204 before the first
// event.
func (s *Server) feedLatest(c *gin.Context) {
	latest := s.store.Latest()
	if latest == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, latest)
}

// feedDetails returns the newest-first detail list.
func (s *Server) feedDetails(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"transactions": s.store.Details(),
	})
}

// feedMarkers returns the marker set with the currently highlighted IDs.
func (s *Server) feedMarkers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"markers":     s.store.Markers(),
		"highlighted": s.store.HighlightedMarkerIDs(),
	})
}

// feedHighlights returns only the newly-arrived marker IDs.
func (s *Server) feedHighlights(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"highlighted": s.store.HighlightedMarkerIDs(),
	})
}

// feedNotifications returns the visible notification window and the
// overflow count.
func (s *Server) feedNotifications(c *gin.Context) {
	if s.notifications == nil {
		c.JSON(http.StatusOK, gin.H{"notifications": []any{}, "overflow": 0})
		return
	}

	visible, overflow := s.notifications.Visible()
	c.JSON(http.StatusOK, gin.H{
		"notifications": visible,
		"overflow":      overflow,
	})
}

// searchState returns the current alert search view-model snapshot.
func (s *Server) searchState(c *gin.Context) {
	state := s.search.State()
	c.JSON(http.StatusOK, gin.H{
		"alerts":        state.Alerts,
		"filters":       state.Filters,
		"page":          state.Page,
		"pageSize":      state.PageSize,
		"totalElements": state.TotalElements,
		"totalPages":    state.TotalPages,
		"loading":       state.Loading,
		"error":         state.Error,
	})
}
