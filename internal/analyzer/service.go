package analyzer

import (
	"context"

	"github.com/jonboulle/clockwork"
	"github.com/xaenox/sentimeter/internal/classifier"
	"github.com/xaenox/sentimeter/internal/metrics"
	"github.com/xaenox/sentimeter/internal/models"
	"github.com/xaenox/sentimeter/internal/requestid"
	"github.com/xaenox/sentimeter/internal/storage"
	"go.uber.org/zap"
)

const (
	DefaultRecentLimit = 10
	logPreviewLength   = 50
)

type Service struct {
	classifier  classifier.Classifier
	storage     storage.HistoryStorage
	clock       clockwork.Clock
	metrics     *metrics.Metrics
	logger      *zap.Logger
	recentLimit int
}

type Option func(*Service)

func WithClock(clock clockwork.Clock) Option {
	return func(s *Service) { s.clock = clock }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithRecentLimit sets how many records Stats returns. Non-positive values are ignored.
func WithRecentLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.recentLimit = n
		}
	}
}

func NewService(clf classifier.Classifier, store storage.HistoryStorage, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		classifier:  clf,
		storage:     store,
		clock:       clockwork.NewRealClock(),
		logger:      logger,
		recentLimit: DefaultRecentLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Analyze scores text and appends the result to the history.
func (s *Service) Analyze(ctx context.Context, text string) models.AnalysisRecord {
	logger := s.logger
	if id, ok := requestid.ID(ctx); ok {
		logger = logger.With(zap.String("request_id", id))
	}
	logger.Info("Analyzing text", zap.String("text", preview(text)))

	sentiment, confidence := s.classifier.Classify(text)
	record := models.AnalysisRecord{
		Text:       text,
		Sentiment:  sentiment,
		Confidence: confidence,
		Timestamp:  s.clock.Now(),
	}

	size := s.storage.Append(record)
	if s.metrics != nil {
		s.metrics.ObserveAnalysis(string(sentiment), size)
	}

	logger.Info("Text analyzed",
		zap.String("sentiment", string(sentiment)),
		zap.Float64("confidence", confidence),
		zap.Int("records", size))

	return record
}

// Stats returns the most recent records and label counts over the whole history.
func (s *Service) Stats() models.StatsResponse {
	all := s.storage.All()

	var stats models.Stats
	for _, r := range all {
		switch r.Sentiment {
		case models.Positive:
			stats.Positive++
		case models.Negative:
			stats.Negative++
		case models.Neutral:
			stats.Neutral++
		}
	}
	stats.Total = len(all)

	start := len(all) - s.recentLimit
	if start < 0 {
		start = 0
	}

	return models.StatsResponse{
		Data:  all[start:],
		Stats: stats,
	}
}

func (s *Service) Records() int {
	return s.storage.Len()
}

// preview returns at most the first logPreviewLength runes of text followed
// by an ellipsis, whether or not anything was cut.
func preview(text string) string {
	runes := []rune(text)
	if len(runes) > logPreviewLength {
		runes = runes[:logPreviewLength]
	}
	return string(runes) + "..."
}
