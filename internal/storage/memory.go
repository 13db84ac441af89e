package storage

import (
	"fmt"
	"sync"

	"github.com/xaenox/sentimeter/internal/models"
)

const DefaultCapacity = 50

// MemoryStorage is a bounded, process-lifetime history. Once full, every
// append evicts the oldest record.
type MemoryStorage struct {
	mu       sync.RWMutex
	records  []models.AnalysisRecord
	capacity int
}

func NewMemoryStorage(capacity int) (*MemoryStorage, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("history capacity must be positive, got %d", capacity)
	}
	return &MemoryStorage{
		records:  make([]models.AnalysisRecord, 0, capacity),
		capacity: capacity,
	}, nil
}

// Append adds a record and returns the resulting history length.
func (s *MemoryStorage) Append(record models.AnalysisRecord) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, record)
	if over := len(s.records) - s.capacity; over > 0 {
		// shift in place so the backing array does not grow without bound
		n := copy(s.records, s.records[over:])
		clear(s.records[n:])
		s.records = s.records[:n]
	}
	return len(s.records)
}

// Recent returns a copy of the last n records, oldest first.
func (s *MemoryStorage) Recent(n int) []models.AnalysisRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n <= 0 {
		return []models.AnalysisRecord{}
	}
	start := len(s.records) - n
	if start < 0 {
		start = 0
	}
	result := make([]models.AnalysisRecord, len(s.records)-start)
	copy(result, s.records[start:])
	return result
}

func (s *MemoryStorage) All() []models.AnalysisRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.AnalysisRecord, len(s.records))
	copy(result, s.records)
	return result
}

func (s *MemoryStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *MemoryStorage) Capacity() int {
	return s.capacity
}

func (s *MemoryStorage) Close() error {
	// Nothing to close for in-memory storage
	return nil
}
