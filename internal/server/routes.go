package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/xaenox/sentimeter/internal/metrics"
)

func (s *Server) setupRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(s.logger))
	if s.metrics != nil {
		router.Use(s.metrics.Middleware())
	}

	// Open CORS policy: any origin, method and header, no credentials
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		ExposeHeaders:    []string{"Content-Length", requestIDHeader},
		AllowCredentials: false,
	}))

	router.GET("/", s.handleHome)
	router.POST("/analyze", s.handleAnalyze)
	router.GET("/stats", s.handleStats)
	router.GET("/health", s.handleHealth)

	if s.gatherer != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler(s.gatherer)))
	}

	return router
}
