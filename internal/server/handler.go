package server

const apiPrefix = "/api/v1"

func (s *Server) mapHandlers() {
	s.gin.Use(CORS(DefaultCORSConfig()))

	// Health endpoints, no prefix
	s.gin.GET("/health", s.healthCheck)
	s.gin.GET("/live", s.liveCheck)

	api := s.gin.Group(apiPrefix)

	fd := api.Group("/feed")
	fd.GET("/latest", s.feedLatest)
	fd.GET("/details", s.feedDetails)
	fd.GET("/markers", s.feedMarkers)
	fd.GET("/highlights", s.feedHighlights)
	fd.GET("/notifications", s.feedNotifications)

	if s.search != nil {
		api.GET("/search/state", s.searchState)
	}
}
