package analyzer

import (
	"context"
	"testing"
	"time"
)

func TestRequestLimiterEnforcesSpacing(t *testing.T) {
	interval := 50 * time.Millisecond
	limiter := NewRequestLimiter(interval)

	start := time.Now()
	if err := limiter.Wait(context.Background()); err != nil {
		t.Fatalf("first Wait: %v", err)
	}
	if err := limiter.Wait(context.Background()); err != nil {
		t.Fatalf("second Wait: %v", err)
	}
	if elapsed := time.Since(start); elapsed < interval {
		t.Fatalf("second call started after %s, want at least %s", elapsed, interval)
	}
}

func TestRequestLimiterWaitCancelable(t *testing.T) {
	limiter := NewRequestLimiter(time.Hour)

	if err := limiter.Wait(context.Background()); err != nil {
		t.Fatalf("first Wait: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := limiter.Wait(ctx); err == nil {
		t.Fatalf("expected canceled wait to return an error")
	}
}

func TestRequestLimiterDefaultsInterval(t *testing.T) {
	limiter := NewRequestLimiter(0)
	if limiter == nil {
		t.Fatalf("expected limiter for non-positive interval")
	}
}
