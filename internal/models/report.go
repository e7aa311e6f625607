package models

// Report is the aggregated, user-facing sentiment summary for one company
// analysis run. Breakdown keys are exactly the sentiments that occurred among
// the analyzed articles; percentages are computed over AnalyzedArticles and
// sum to 100 across present keys. BullCase and BearCase always carry at least
// one entry, with placeholders substituted when no qualifying judgments or
// narrative exist.
type Report struct {
	OverallSentiment     Sentiment             `json:"overall_sentiment"`
	SentimentBreakdown   map[Sentiment]int     `json:"sentiment_breakdown"`
	SentimentPercentages map[Sentiment]float64 `json:"sentiment_percentages"`
	BullCase             []string              `json:"bull_case"`
	BearCase             []string              `json:"bear_case"`
	TotalArticles        int                   `json:"total_articles"`
	AnalyzedArticles     int                   `json:"analyzed_articles"`
	AnalysisTimestamp    string                `json:"analysis_timestamp"`
}
