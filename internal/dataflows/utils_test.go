package dataflows

import (
	"errors"
	"testing"
	"time"
)

func TestCacheManagerRoundTrip(t *testing.T) {
	cache := NewCacheManager(t.TempDir(), time.Hour, true)

	stored := []*NewsArticle{{Title: "Acme beats", Source: "Reuters"}}
	if err := cache.Set("newsapi", "everything", "acme", stored); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var loaded []*NewsArticle
	if !cache.Get("newsapi", "everything", "acme", &loaded) {
		t.Fatalf("expected cache hit")
	}
	if len(loaded) != 1 || loaded[0].Title != "Acme beats" {
		t.Fatalf("unexpected cached value: %+v", loaded)
	}
}

func TestCacheManagerDisabled(t *testing.T) {
	cache := NewCacheManager(t.TempDir(), time.Hour, false)

	if err := cache.Set("a", "b", "c", "value"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var out string
	if cache.Get("a", "b", "c", &out) {
		t.Fatalf("expected miss when cache disabled")
	}
}

func TestCacheManagerExpiry(t *testing.T) {
	cache := NewCacheManager(t.TempDir(), time.Nanosecond, true)

	if err := cache.Set("a", "b", "c", "value"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	var out string
	if cache.Get("a", "b", "c", &out) {
		t.Fatalf("expected expired entry to miss")
	}
}

func TestWithRetryEventualSuccess(t *testing.T) {
	cfg := &RetryConfig{MaxRetries: 3, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond, Multiplier: 2.0}

	attempts := 0
	err := WithRetry(cfg, func() error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithRetry: %v", err)
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
}

func TestWithRetryExhaustion(t *testing.T) {
	cfg := &RetryConfig{MaxRetries: 2, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond, Multiplier: 2.0}

	wantErr := errors.New("permanent")
	err := WithRetry(cfg, func() error { return wantErr })
	if err == nil || !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped original error, got %v", err)
	}
}

func TestValidateSymbol(t *testing.T) {
	if err := ValidateSymbol("AAPL"); err != nil {
		t.Fatalf("ValidateSymbol: %v", err)
	}
	if err := ValidateSymbol(""); err == nil {
		t.Fatalf("expected error for empty symbol")
	}
	if err := ValidateSymbol("WAYTOOLONGSYMBOL"); err == nil {
		t.Fatalf("expected error for oversized symbol")
	}
}
