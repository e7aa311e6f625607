package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/alakhsharma22/Financial-Sentiment-Analyst-Agent/internal/models"
)

const (
	// maxCasePoints caps the bull/bear lists built by the deterministic
	// fallback and the number of reasonings fed into the narrative prompt.
	maxCasePoints = 5

	// reasoningTruncateLen bounds each fallback bullet's source reasoning.
	reasoningTruncateLen = 100

	// overallThreshold is the minimum share the leading sentiment must reach;
	// below it the run is reported Neutral. This is a deliberate "no clear
	// majority" policy.
	overallThreshold = 40.0

	timestampLayout = "2006-01-02 15:04:05"
)

const (
	noDataPlaceholder       = "• No recent news available for analysis"
	bullFallbackPlaceholder = "• Positive market sentiment detected in recent news"
	bearFallbackPlaceholder = "• Some concerns identified in recent coverage"
)

// tieBreakOrder fixes the winner when two sentiments share the top share at
// or above the threshold: Positive > Negative > Neutral.
var tieBreakOrder = []models.Sentiment{
	models.SentimentPositive,
	models.SentimentNegative,
	models.SentimentNeutral,
}

// Synthesizer reduces a sequence of sentiment judgments into a single report.
type Synthesizer struct {
	gen     Generator
	limiter *RequestLimiter
	log     *logrus.Entry
}

// NewSynthesizer creates a report synthesizer. The limiter must be the same
// instance the classifier uses so narrative generation respects the shared
// request budget.
func NewSynthesizer(gen Generator, limiter *RequestLimiter) *Synthesizer {
	if limiter == nil {
		limiter = NewRequestLimiter(DefaultMinRequestInterval)
	}
	return &Synthesizer{
		gen:     gen,
		limiter: limiter,
		log:     logrus.WithField("component", "synthesizer"),
	}
}

// Synthesize builds the final sentiment report for a company. It never fails
// outward: an empty judgment list yields the canonical empty report, narrative
// generation failures degrade to a deterministic fallback, and anything
// unexpected degrades to the empty report as well.
func (s *Synthesizer) Synthesize(ctx context.Context, judgments []models.SentimentJudgment, companyName string) (report *models.Report) {
	defer func() {
		if r := recover(); r != nil {
			s.log.WithField("panic", r).Error("Report synthesis failed, returning empty report")
			report = s.emptyReport()
		}
	}()

	s.log.WithField("company", companyName).Info("Generating final report")

	if len(judgments) == 0 {
		return s.emptyReport()
	}

	breakdown := make(map[models.Sentiment]int)
	for _, j := range judgments {
		breakdown[j.Sentiment]++
	}

	analyzed := len(judgments)
	percentages := make(map[models.Sentiment]float64, len(breakdown))
	for sentiment, count := range breakdown {
		percentages[sentiment] = float64(count) / float64(analyzed) * 100
	}

	bullCase, bearCase := s.generateCases(ctx, judgments, companyName)

	return &models.Report{
		OverallSentiment:     determineOverallSentiment(percentages),
		SentimentBreakdown:   breakdown,
		SentimentPercentages: percentages,
		BullCase:             bullCase,
		BearCase:             bearCase,
		TotalArticles:        analyzed,
		AnalyzedArticles:     analyzed,
		AnalysisTimestamp:    time.Now().Format(timestampLayout),
	}
}

// determineOverallSentiment picks the sentiment with the highest share. Ties
// resolve by the fixed precedence order; a leader below the threshold is
// overridden to Neutral.
func determineOverallSentiment(percentages map[models.Sentiment]float64) models.Sentiment {
	overall := models.SentimentNeutral
	best := -1.0
	for _, sentiment := range tieBreakOrder {
		if pct, ok := percentages[sentiment]; ok && pct > best {
			overall = sentiment
			best = pct
		}
	}

	if best < overallThreshold {
		return models.SentimentNeutral
	}
	return overall
}

// generateCases produces the bull and bear narratives via a second model call,
// degrading to the deterministic fallback on any failure.
func (s *Synthesizer) generateCases(ctx context.Context, judgments []models.SentimentJudgment, companyName string) ([]string, []string) {
	var positive, negative []string
	for _, j := range judgments {
		switch j.Sentiment {
		case models.SentimentPositive:
			positive = append(positive, j.Reasoning)
		case models.SentimentNegative:
			negative = append(negative, j.Reasoning)
		}
	}

	if err := s.limiter.Wait(ctx); err != nil {
		s.log.WithError(err).Warn("Narrative generation aborted, using fallback cases")
		return fallbackCases(judgments)
	}

	reply, err := s.gen.Generate(ctx, narrativePrompt(companyName, positive, negative))
	if err != nil {
		s.log.WithError(err).Warn("Narrative generation failed, using fallback cases")
		return fallbackCases(judgments)
	}

	bullCase, bearCase, err := parseNarrative(reply)
	if err != nil {
		s.log.WithError(err).Warn("Narrative reply unparseable, using fallback cases")
		return fallbackCases(judgments)
	}

	return bullCase, bearCase
}

// narrativePrompt asks the model to distill the collected reasonings into
// bull and bear case points, at most maxCasePoints reasonings per side.
func narrativePrompt(companyName string, positive, negative []string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "You are a financial analyst summarizing market sentiment for %s.\n\n", companyName)
	sb.WriteString("Based on the following sentiment analysis data, create a Bull Case and Bear Case:\n\n")

	sb.WriteString("POSITIVE REASONING (from positive sentiment articles):\n")
	for _, reason := range capStrings(positive, maxCasePoints) {
		fmt.Fprintf(&sb, "- %s\n", reason)
	}

	sb.WriteString("\nNEGATIVE REASONING (from negative sentiment articles):\n")
	for _, reason := range capStrings(negative, maxCasePoints) {
		fmt.Fprintf(&sb, "- %s\n", reason)
	}

	sb.WriteString(`
Instructions:
1. Create 3-5 compelling Bull Case points based on positive sentiment
2. Create 3-5 concerning Bear Case points based on negative sentiment
3. Focus on investment implications and market impact
4. Be specific and actionable
5. Use bullet points for clarity

Return in this JSON format:
{
    "bull_case": [
        "Point 1 about positive developments",
        "Point 2 about growth opportunities",
        "Point 3 about competitive advantages"
    ],
    "bear_case": [
        "Point 1 about risks and challenges",
        "Point 2 about market concerns",
        "Point 3 about potential headwinds"
    ]
}`)

	return sb.String()
}

// narrativePayload mirrors the JSON envelope expected from the narrative call.
type narrativePayload struct {
	BullCase []string `json:"bull_case"`
	BearCase []string `json:"bear_case"`
}

// parseNarrative extracts the bull and bear lists from a raw model reply.
// Both lists must be present and nonempty; the model's own output is used
// verbatim with no further truncation.
func parseNarrative(reply string) ([]string, []string, error) {
	block, ok := ExtractJSONBlock(reply)
	if !ok {
		return nil, nil, fmt.Errorf("no JSON found in response")
	}

	var payload narrativePayload
	if err := json.Unmarshal([]byte(block), &payload); err != nil {
		return nil, nil, fmt.Errorf("decode narrative payload: %w", err)
	}

	if len(payload.BullCase) == 0 || len(payload.BearCase) == 0 {
		return nil, nil, fmt.Errorf("narrative reply missing bull or bear case")
	}

	return payload.BullCase, payload.BearCase, nil
}

// fallbackCases builds deterministic bull/bear lists straight from the
// judgments, walking them in original order. Each entry is the reasoning
// truncated to reasoningTruncateLen characters; each list is capped at
// maxCasePoints and padded with a generic placeholder when empty.
func fallbackCases(judgments []models.SentimentJudgment) ([]string, []string) {
	var bullCase, bearCase []string

	for _, j := range judgments {
		switch j.Sentiment {
		case models.SentimentPositive:
			bullCase = append(bullCase, fmt.Sprintf("• %s...", truncateText(j.Reasoning, reasoningTruncateLen)))
		case models.SentimentNegative:
			bearCase = append(bearCase, fmt.Sprintf("• %s...", truncateText(j.Reasoning, reasoningTruncateLen)))
		}
	}

	if len(bullCase) == 0 {
		bullCase = []string{bullFallbackPlaceholder}
	}
	if len(bearCase) == 0 {
		bearCase = []string{bearFallbackPlaceholder}
	}

	return capStrings(bullCase, maxCasePoints), capStrings(bearCase, maxCasePoints)
}

// emptyReport is the canonical report returned when no judgments exist.
func (s *Synthesizer) emptyReport() *models.Report {
	return &models.Report{
		OverallSentiment:     models.SentimentNeutral,
		SentimentBreakdown:   map[models.Sentiment]int{models.SentimentNeutral: 0},
		SentimentPercentages: map[models.Sentiment]float64{models.SentimentNeutral: 100.0},
		BullCase:             []string{noDataPlaceholder},
		BearCase:             []string{noDataPlaceholder},
		TotalArticles:        0,
		AnalyzedArticles:     0,
		AnalysisTimestamp:    time.Now().Format(timestampLayout),
	}
}

// truncateText cuts a string to at most limit runes.
func truncateText(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}

// capStrings limits a slice to at most n entries.
func capStrings(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
