package classifier

import (
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/xaenox/sentimeter/internal/models"
)

type Classifier interface {
	Classify(text string) (models.Sentiment, float64)
}

// Rand is the random source used to synthesize confidence values.
// *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Lexicon holds the keyword lists used for scoring
type Lexicon struct {
	Positive []string `mapstructure:"positive"`
	Negative []string `mapstructure:"negative"`
}

// DefaultLexicon returns the stock keyword lists. "hate" appears twice in the
// negative list and is counted twice.
func DefaultLexicon() Lexicon {
	return Lexicon{
		Positive: []string{"love", "good", "great", "excellent", "amazing", "fantastic", "wonderful", "happy", "awesome", "perfect"},
		Negative: []string{"hate", "bad", "terrible", "awful", "horrible", "sad", "angry", "disappointing", "worst", "hate"},
	}
}

type KeywordClassifier struct {
	positive []string
	negative []string

	mu  sync.Mutex
	rnd Rand
}

// NewKeywordClassifier creates a classifier for the given lexicon. A nil rnd
// falls back to a time-seeded source.
func NewKeywordClassifier(lexicon Lexicon, rnd Rand) *KeywordClassifier {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &KeywordClassifier{
		positive: lowerAll(lexicon.Positive),
		negative: lowerAll(lexicon.Negative),
		rnd:      rnd,
	}
}

// Classify scores text by substring containment of lexicon entries. Matching
// is not word-bounded, so "badge" counts as "bad".
func (c *KeywordClassifier) Classify(text string) (models.Sentiment, float64) {
	content := strings.ToLower(text)
	pos := countMatches(content, c.positive)
	neg := countMatches(content, c.negative)

	switch {
	case pos > neg:
		return models.Positive, round4(0.8 + c.random()*0.2)
	case neg > pos:
		return models.Negative, round4(0.8 + c.random()*0.2)
	default:
		return models.Neutral, round4(0.5 + c.random()*0.3)
	}
}

func (c *KeywordClassifier) random() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rnd.Float64()
}

func countMatches(content string, keywords []string) int {
	count := 0
	for _, keyword := range keywords {
		if strings.Contains(content, keyword) {
			count++
		}
	}
	return count
}

// round4 rounds to 4 decimals. Rounding can carry a value such as 0.99999 up
// to the exclusive upper bound, so the result is nudged back below it.
func round4(v float64) float64 {
	r := math.Round(v*1e4) / 1e4
	if r > v && (r == 1.0 || r == 0.8) {
		r -= 1e-4
		r = math.Round(r*1e4) / 1e4
	}
	return r
}

func lowerAll(words []string) []string {
	result := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			result = append(result, w)
		}
	}
	return result
}
