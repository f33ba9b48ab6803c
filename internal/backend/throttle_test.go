package backend

import (
	"testing"
	"time"
)

func TestThrottleSpacesCalls(t *testing.T) {
	th := newThrottle(20 * time.Millisecond)
	start := time.Now()
	th.wait()
	th.wait()
	th.wait()
	if elapsed := time.Since(start); elapsed < 40*time.Millisecond {
		t.Fatalf("expected at least 40ms between three calls, got %s", elapsed)
	}
}

func TestThrottleDisabled(t *testing.T) {
	var nilThrottle *throttle
	nilThrottle.wait()
	th := newThrottle(0)
	if th != nil {
		t.Fatalf("expected no throttle for a zero interval")
	}
	start := time.Now()
	for i := 0; i < 100; i++ {
		th.wait()
	}
	if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
		t.Fatalf("expected disabled throttle to return immediately, took %s", elapsed)
	}
}
