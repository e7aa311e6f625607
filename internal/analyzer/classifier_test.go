package analyzer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alakhsharma22/Financial-Sentiment-Analyst-Agent/internal/models"
)

// stubGenerator returns canned replies in order, repeating the last one.
type stubGenerator struct {
	replies []string
	err     error
	calls   int
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	if len(s.replies) == 0 {
		return "", nil
	}
	idx := s.calls - 1
	if idx >= len(s.replies) {
		idx = len(s.replies) - 1
	}
	return s.replies[idx], nil
}

func testLimiter() *RequestLimiter {
	return NewRequestLimiter(time.Millisecond)
}

func TestClassifyFencedReply(t *testing.T) {
	gen := &stubGenerator{replies: []string{
		"```json\n{\"sentiment\":\"positive\",\"reasoning\":\"x\",\"confidence\":0.9}\n```",
	}}
	c := NewClassifier(gen, testLimiter())

	judgment, err := c.Classify(context.Background(), Article{Title: "Acme beats estimates", Source: "Reuters"})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if judgment.Sentiment != models.SentimentPositive {
		t.Fatalf("expected Positive (case-normalized), got %s", judgment.Sentiment)
	}
	if judgment.Confidence != 0.9 {
		t.Fatalf("expected confidence 0.9, got %f", judgment.Confidence)
	}
	if judgment.ArticleTitle != "Acme beats estimates" || judgment.ArticleSource != "Reuters" {
		t.Fatalf("article metadata not carried: %+v", judgment)
	}
}

func TestClassifyBraceScanReply(t *testing.T) {
	gen := &stubGenerator{replies: []string{
		`Sure! Some text {"sentiment":"Neutral","reasoning":"y"} trailing`,
	}}
	c := NewClassifier(gen, testLimiter())

	judgment, err := c.Classify(context.Background(), Article{Title: "Acme update"})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if judgment.Sentiment != models.SentimentNeutral {
		t.Fatalf("expected Neutral, got %s", judgment.Sentiment)
	}
	if judgment.Confidence != defaultConfidence {
		t.Fatalf("expected default confidence %f, got %f", defaultConfidence, judgment.Confidence)
	}
	if judgment.ArticleSource != "Unknown" {
		t.Fatalf("expected source to default to Unknown, got %q", judgment.ArticleSource)
	}
}

func TestClassifyNoJSONReply(t *testing.T) {
	gen := &stubGenerator{replies: []string{"I cannot answer"}}
	c := NewClassifier(gen, testLimiter())

	if _, err := c.Classify(context.Background(), Article{Title: "Acme"}); err == nil {
		t.Fatalf("expected error for brace-free reply")
	}
}

func TestClassifyInvalidSentiment(t *testing.T) {
	gen := &stubGenerator{replies: []string{`{"sentiment":"Bullish","reasoning":"x"}`}}
	c := NewClassifier(gen, testLimiter())

	if _, err := c.Classify(context.Background(), Article{Title: "Acme"}); err == nil {
		t.Fatalf("expected error for out-of-enum sentiment")
	}
}

func TestClassifyMissingRequiredFields(t *testing.T) {
	gen := &stubGenerator{replies: []string{`{"sentiment":"Positive"}`}}
	c := NewClassifier(gen, testLimiter())

	if _, err := c.Classify(context.Background(), Article{Title: "Acme"}); err == nil {
		t.Fatalf("expected error for missing reasoning")
	}
}

func TestClassifyGeneratorFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("quota exceeded")}
	c := NewClassifier(gen, testLimiter())

	if _, err := c.Classify(context.Background(), Article{Title: "Acme"}); err == nil {
		t.Fatalf("expected error when the generator fails")
	}
}

func TestClassifyIdempotent(t *testing.T) {
	reply := "```json\n{\"sentiment\":\"negative\",\"reasoning\":\"margin pressure\",\"confidence\":0.7}\n```"
	gen := &stubGenerator{replies: []string{reply, reply}}
	c := NewClassifier(gen, testLimiter())

	article := Article{Title: "Acme misses", Description: "d", Content: "c", Source: "WSJ"}

	first, err := c.Classify(context.Background(), article)
	if err != nil {
		t.Fatalf("first Classify: %v", err)
	}
	second, err := c.Classify(context.Background(), article)
	if err != nil {
		t.Fatalf("second Classify: %v", err)
	}
	if *first != *second {
		t.Fatalf("expected identical judgments, got %+v vs %+v", first, second)
	}
}
