package models

import "strings"

// Sentiment is the classification assigned to a single news article.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
)

// ParseSentiment normalizes a raw label to one of the three supported
// sentiment values. Matching is case-insensitive; anything else is rejected.
func ParseSentiment(raw string) (Sentiment, bool) {
	switch s := strings.TrimSpace(raw); {
	case strings.EqualFold(s, string(SentimentPositive)):
		return SentimentPositive, true
	case strings.EqualFold(s, string(SentimentNegative)):
		return SentimentNegative, true
	case strings.EqualFold(s, string(SentimentNeutral)):
		return SentimentNeutral, true
	default:
		return "", false
	}
}

// SentimentJudgment is the structured outcome of classifying one article.
// Values are immutable once created.
type SentimentJudgment struct {
	Sentiment     Sentiment `json:"sentiment"`
	Reasoning     string    `json:"reasoning"`
	Confidence    float64   `json:"confidence"`
	ArticleTitle  string    `json:"article_title"`
	ArticleSource string    `json:"article_source"`
}
