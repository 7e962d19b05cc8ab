package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestHostLimiter_WaitWithinBurst(t *testing.T) {
	hl := NewHostLimiter(1.0, 2)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 2; i++ {
		if err := hl.Wait(ctx, "https://example.com/page"); err != nil {
			t.Fatalf("Wait: %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("burst requests took %v, want immediate", elapsed)
	}
}

func TestHostLimiter_PerHostBuckets(t *testing.T) {
	// Burst of 1 per host: a second host must not be throttled by the first.
	hl := NewHostLimiter(0.1, 1)
	ctx := context.Background()

	if err := hl.Wait(ctx, "https://a.example.com"); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	start := time.Now()
	if err := hl.Wait(ctx, "https://b.example.com"); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("second host waited %v, want immediate", elapsed)
	}
}

func TestHostLimiter_InvalidURLProceeds(t *testing.T) {
	hl := NewHostLimiter(0.001, 1)
	if err := hl.Wait(context.Background(), "://not a url"); err != nil {
		t.Errorf("Wait on invalid URL = %v, want nil", err)
	}
}

func TestHostLimiter_CancelledContext(t *testing.T) {
	hl := NewHostLimiter(0.001, 1)
	ctx := context.Background()
	if err := hl.Wait(ctx, "https://example.com"); err != nil {
		t.Fatalf("Wait: %v", err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if err := hl.Wait(cancelled, "https://example.com"); err == nil {
		t.Error("Wait with cancelled context and drained bucket returned nil error")
	}
}

func TestNewHostLimiter_Defaults(t *testing.T) {
	hl := NewHostLimiter(0, 0)
	if err := hl.Wait(context.Background(), "https://example.com"); err != nil {
		t.Errorf("Wait with defaulted limits: %v", err)
	}
}
