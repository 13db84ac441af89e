package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/xaenox/sentimeter/internal/models"
	"go.uber.org/zap"
)

const (
	DefaultTweetsPerMinute = 4
	DefaultMaxTweets       = 30
	tweetPreviewLength     = 60
)

// Analyzer submits a text to the scoring service.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (*models.AnalysisRecord, error)
}

// Summary describes a finished (or interrupted) replay.
type Summary struct {
	Processed   int
	Counts      map[string]int
	Interrupted bool
}

// Runner replays a labeled dataset against the service at a fixed pace.
type Runner struct {
	client          Analyzer
	dataset         []models.DatasetEntry
	clock           clockwork.Clock
	out             io.Writer
	rnd             *rand.Rand
	logger          *zap.Logger
	tweetsPerMinute float64
	maxTweets       int
}

type Option func(*Runner)

func WithClock(clock clockwork.Clock) Option {
	return func(r *Runner) { r.clock = clock }
}

func WithOutput(w io.Writer) Option {
	return func(r *Runner) { r.out = w }
}

// WithRand sets the source used to shuffle the dataset.
func WithRand(rnd *rand.Rand) Option {
	return func(r *Runner) { r.rnd = rnd }
}

func WithLogger(logger *zap.Logger) Option {
	return func(r *Runner) { r.logger = logger }
}

func WithTweetsPerMinute(n float64) Option {
	return func(r *Runner) { r.tweetsPerMinute = n }
}

func WithMaxTweets(n int) Option {
	return func(r *Runner) { r.maxTweets = n }
}

func New(client Analyzer, dataset []models.DatasetEntry, opts ...Option) (*Runner, error) {
	r := &Runner{
		client:          client,
		dataset:         dataset,
		clock:           clockwork.NewRealClock(),
		out:             os.Stdout,
		logger:          zap.NewNop(),
		tweetsPerMinute: DefaultTweetsPerMinute,
		maxTweets:       DefaultMaxTweets,
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.tweetsPerMinute <= 0 {
		return nil, fmt.Errorf("tweets per minute must be positive, got %v", r.tweetsPerMinute)
	}
	if r.maxTweets <= 0 {
		return nil, fmt.Errorf("max tweets must be positive, got %d", r.maxTweets)
	}
	if r.rnd == nil {
		r.rnd = rand.New(rand.NewSource(r.clock.Now().UnixNano()))
	}
	return r, nil
}

// Interval is the pause after every send attempt.
func (r *Runner) Interval() time.Duration {
	return time.Duration(float64(time.Minute) / r.tweetsPerMinute)
}

// Run replays the shuffled dataset until maxTweets items were processed
// successfully, the dataset is exhausted, or ctx is cancelled. The final
// summary is always printed.
func (r *Runner) Run(ctx context.Context) Summary {
	summary := Summary{
		Counts: map[string]int{
			models.LabelPositive: 0,
			models.LabelNegative: 0,
			models.LabelNeutral:  0,
		},
	}

	r.printf("Starting tweet replay stream\n")
	r.printf("Using a pre-labeled tweet dataset with known sentiments\n")
	r.printf("%s\n", strings.Repeat("=", 60))

	interval := r.Interval()
	tweets := make([]models.DatasetEntry, len(r.dataset))
	copy(tweets, r.dataset)
	r.rnd.Shuffle(len(tweets), func(i, j int) { tweets[i], tweets[j] = tweets[j], tweets[i] })

loop:
	for _, tweet := range tweets {
		if summary.Processed >= r.maxTweets {
			break
		}

		if r.send(ctx, tweet, summary.Counts) {
			summary.Processed++
		}
		if ctx.Err() != nil {
			summary.Interrupted = true
			break
		}

		select {
		case <-ctx.Done():
			summary.Interrupted = true
			break loop
		case <-r.clock.After(interval):
		}
	}

	if summary.Interrupted {
		r.printf("\nStream stopped by user\n")
	}
	r.printf("\nStream completed! Processed %d tweets\n", summary.Processed)
	r.printf("Final stats: %s\n", formatCounts(summary.Counts))
	r.printf("Check the /stats endpoint to see how the analyzer performed\n")

	return summary
}

// send posts one tweet and prints the outcome. It reports whether the
// service answered successfully.
func (r *Runner) send(ctx context.Context, tweet models.DatasetEntry, counts map[string]int) bool {
	result, err := r.client.Analyze(ctx, tweet.Text)
	if err != nil {
		var statusErr *StatusError
		switch {
		case ctx.Err() != nil:
			// interrupted mid-request; reported by Run
		case errors.As(err, &statusErr):
			r.printf("API Error: %d\n", statusErr.Code)
		case errors.Is(err, ErrUnreachable):
			r.printf("Cannot connect to API. Make sure the backend server is running!\n")
		default:
			r.printf("Unexpected error: %v\n", err)
		}
		r.logger.Debug("Tweet not processed", zap.Error(err))
		return false
	}

	if _, ok := counts[tweet.Sentiment]; ok {
		counts[tweet.Sentiment]++
	}

	r.printf("[%s]\n", r.clock.Now().Format("15:04:05"))
	r.printf("   Tweet: %s\n", preview(tweet.Text))
	r.printf("   Actual: %s | Predicted: %s\n", strings.ToUpper(tweet.Sentiment), result.Sentiment)
	r.printf("   Confidence: %.1f%%\n", result.Confidence*100)
	r.printf("   Stats: %s\n", formatCounts(counts))
	r.printf("%s\n", strings.Repeat("-", 50))
	return true
}

func (r *Runner) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

func formatCounts(counts map[string]int) string {
	return fmt.Sprintf("+%d | -%d | ~%d",
		counts[models.LabelPositive], counts[models.LabelNegative], counts[models.LabelNeutral])
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) > tweetPreviewLength {
		runes = runes[:tweetPreviewLength]
	}
	return string(runes) + "..."
}
