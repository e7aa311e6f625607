package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/alakhsharma22/Financial-Sentiment-Analyst-Agent/internal/models"
)

// Generator is the abstract text-generation dependency. Implementations may
// return malformed or empty output; callers are expected to parse defensively.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Article is one raw news record handed to the classifier. Empty fields are
// tolerated and embedded in the prompt as empty strings.
type Article struct {
	Title       string
	Description string
	Content     string
	Source      string
}

// defaultConfidence is assumed when the model omits a confidence score.
const defaultConfidence = 0.8

// Classifier maps one article to zero-or-one sentiment judgment by prompting
// the text-generation service and parsing its reply.
type Classifier struct {
	gen     Generator
	limiter *RequestLimiter
	log     *logrus.Entry
}

// NewClassifier creates a classifier using the given generator and request
// limiter. The limiter should be shared with the report synthesizer so both
// respect the same request budget.
func NewClassifier(gen Generator, limiter *RequestLimiter) *Classifier {
	if limiter == nil {
		limiter = NewRequestLimiter(DefaultMinRequestInterval)
	}
	return &Classifier{
		gen:     gen,
		limiter: limiter,
		log:     logrus.WithField("component", "classifier"),
	}
}

// Classify analyzes the sentiment of a single article. Any transport or
// parsing failure is returned as an error so the caller can drop the article
// and continue the batch; there are no retries.
func (c *Classifier) Classify(ctx context.Context, article Article) (*models.SentimentJudgment, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	source := article.Source
	if source == "" {
		source = "Unknown"
	}

	c.log.WithField("title", truncateText(article.Title, 50)).Info("Analyzing article")

	reply, err := c.gen.Generate(ctx, classificationPrompt(article))
	if err != nil {
		return nil, fmt.Errorf("generate sentiment classification: %w", err)
	}

	sentiment, reasoning, confidence, err := parseClassification(reply)
	if err != nil {
		return nil, fmt.Errorf("parse sentiment reply: %w", err)
	}

	return &models.SentimentJudgment{
		Sentiment:     sentiment,
		Reasoning:     reasoning,
		Confidence:    confidence,
		ArticleTitle:  article.Title,
		ArticleSource: source,
	}, nil
}

// classificationPrompt embeds the article text into the sentiment analysis
// prompt, including the expected JSON envelope with a worked example to bias
// the model toward compliant output.
func classificationPrompt(article Article) string {
	fullText := fmt.Sprintf("Title: %s\n\nDescription: %s\n\nContent: %s",
		article.Title, article.Description, article.Content)

	return fmt.Sprintf(`You are a senior financial analyst with expertise in market sentiment analysis.
Analyze the following news article from an investor's perspective and determine its sentiment regarding the company.

Article Text:
%s

Instructions:
1. Determine the overall sentiment as either "Positive", "Negative", or "Neutral"
2. Provide clear reasoning for your sentiment classification
3. Consider factors like:
   - Financial performance implications
   - Market impact potential
   - Strategic developments
   - Regulatory or competitive threats
   - Growth prospects
   - Risk factors

Return your analysis in the following JSON format:
{
    "sentiment": "Positive/Negative/Neutral",
    "reasoning": "Detailed explanation of your sentiment analysis",
    "confidence": 0.85
}

Be objective and focus on investment implications rather than general news sentiment.`, fullText)
}

// classificationPayload mirrors the JSON envelope expected from the model.
// Pointer fields distinguish absent keys from zero values.
type classificationPayload struct {
	Sentiment  *string  `json:"sentiment"`
	Reasoning  *string  `json:"reasoning"`
	Confidence *float64 `json:"confidence"`
}

// parseClassification extracts and validates the sentiment judgment from a
// raw model reply. Missing required fields, undecodable payloads and unknown
// sentiment labels are all reported as errors.
func parseClassification(reply string) (models.Sentiment, string, float64, error) {
	block, ok := ExtractJSONBlock(reply)
	if !ok {
		return "", "", 0, fmt.Errorf("no JSON found in response")
	}

	var payload classificationPayload
	if err := json.Unmarshal([]byte(block), &payload); err != nil {
		return "", "", 0, fmt.Errorf("decode sentiment payload: %w", err)
	}

	if payload.Sentiment == nil || payload.Reasoning == nil {
		return "", "", 0, fmt.Errorf("missing required fields in sentiment response")
	}

	sentiment, ok := models.ParseSentiment(*payload.Sentiment)
	if !ok {
		return "", "", 0, fmt.Errorf("invalid sentiment value: %q", *payload.Sentiment)
	}

	confidence := defaultConfidence
	if payload.Confidence != nil {
		confidence = *payload.Confidence
	}

	return sentiment, strings.TrimSpace(*payload.Reasoning), confidence, nil
}
