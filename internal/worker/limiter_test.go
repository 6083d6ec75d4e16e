package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiterBurstThenThrottle(t *testing.T) {
	l := NewLimiter(1, 2)

	if !l.Allow("openai") {
		t.Errorf("first call within burst should be allowed")
	}
	if !l.Allow("openai") {
		t.Errorf("second call within burst should be allowed")
	}
	if l.Allow("openai") {
		t.Errorf("third immediate call should be throttled")
	}
}

func TestLimiterProvidersAreIndependent(t *testing.T) {
	l := NewLimiter(1, 1)

	if !l.Allow("openai") {
		t.Errorf("openai burst should be allowed")
	}
	if !l.Allow("other") {
		t.Errorf("a different provider has its own bucket")
	}
}

func TestLimiterSetProviderRate(t *testing.T) {
	l := NewLimiter(1, 1)
	l.SetProviderRate("fast", 1000, 5)

	for i := 0; i < 5; i++ {
		if !l.Allow("fast") {
			t.Errorf("call %d within the overridden burst should be allowed", i)
		}
	}
}

func TestLimiterWaitHonorsContext(t *testing.T) {
	l := NewLimiter(0.001, 1)
	if err := l.Wait(context.Background(), "slow"); err != nil {
		t.Fatalf("first wait should pass on burst: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := l.Wait(ctx, "slow"); err == nil {
		t.Errorf("expected context error while throttled")
	}
}

func TestLimiterDefaults(t *testing.T) {
	l := NewLimiter(0, 0)
	if !l.Allow("any") || !l.Allow("any") {
		t.Errorf("default burst of 2 should allow two immediate calls")
	}
}
