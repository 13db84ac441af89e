package models

import "time"

// Sentiment is the label assigned to an analyzed text
type Sentiment string

const (
	Positive Sentiment = "POSITIVE"
	Negative Sentiment = "NEGATIVE"
	Neutral  Sentiment = "NEUTRAL"
)

// AnalysisRecord represents one scored text kept in the history
type AnalysisRecord struct {
	Text       string    `json:"text"`
	Sentiment  Sentiment `json:"sentiment"`
	Confidence float64   `json:"confidence"`
	Timestamp  time.Time `json:"timestamp"`
}

// AnalyzeRequest is the body accepted by POST /analyze.
// Text is a pointer so that an empty string still counts as present.
type AnalyzeRequest struct {
	Text *string `json:"text" binding:"required"`
}

type Stats struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
	Total    int `json:"total"`
}

type StatsResponse struct {
	Data  []AnalysisRecord `json:"data"`
	Stats Stats            `json:"stats"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Records int    `json:"records"`
}

type HomeResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
