package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xaenox/sentimeter/internal/models"
	"go.uber.org/zap"
)

func (s *Server) handleHome(c *gin.Context) {
	c.JSON(http.StatusOK, models.HomeResponse{
		Message: "Sentiment Analysis API is running!",
		Status:  "OK",
	})
}

func (s *Server) handleAnalyze(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.logger.Info("Invalid analyze request",
			zap.Error(err),
			zap.String("request_id", c.GetString(requestIDKey)))
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Error: "field 'text' is required and must be a string"})
		return
	}

	record := s.service.Analyze(c.Request.Context(), *req.Text)
	c.JSON(http.StatusOK, record)
}

func (s *Server) handleStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.service.Stats())
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:  "healthy",
		Records: s.service.Records(),
	})
}
