package models

// Ground-truth labels used by the replay dataset. They are lowercase on purpose,
// unlike the Sentiment labels produced by the service.
const (
	LabelPositive = "positive"
	LabelNegative = "negative"
	LabelNeutral  = "neutral"
)

// DatasetEntry is a pre-labeled text replayed against the service
type DatasetEntry struct {
	Text      string `json:"text"`
	Sentiment string `json:"sentiment"`
}
