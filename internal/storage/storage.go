package storage

import "github.com/xaenox/sentimeter/internal/models"

// HistoryStorage keeps the most recent analysis records in insertion order.
// Append is the only mutation.
type HistoryStorage interface {
	Append(record models.AnalysisRecord) int
	Recent(n int) []models.AnalysisRecord
	All() []models.AnalysisRecord
	Len() int
	Close() error
}
