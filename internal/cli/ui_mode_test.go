package cli

import (
	"io"
	"strings"
	"testing"
)

// withTerminal overrides TTY detection for a test.
func withTerminal(t *testing.T, isTTY bool) {
	t.Helper()
	previous := isTerminal
	isTerminal = func(io.Writer) bool { return isTTY }
	t.Cleanup(func() { isTerminal = previous })
}

// TestResolveUIModeAuto verifies auto follows TTY detection.
func TestResolveUIModeAuto(t *testing.T) {
	withTerminal(t, true)
	decision, err := resolveUIMode("auto", nil)
	if err != nil || !decision.useLive {
		t.Fatalf("expected live on TTY, got %+v err=%v", decision, err)
	}

	withTerminal(t, false)
	decision, err = resolveUIMode("", nil)
	if err != nil || decision.useLive {
		t.Fatalf("expected plain off TTY, got %+v err=%v", decision, err)
	}
}

// TestResolveUIModeLiveFallsBack verifies live warns and falls back off a
// TTY.
func TestResolveUIModeLiveFallsBack(t *testing.T) {
	withTerminal(t, false)
	decision, err := resolveUIMode("live", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decision.useLive {
		t.Fatalf("expected fallback off TTY")
	}
	if !strings.Contains(decision.warning, "not a TTY") {
		t.Fatalf("expected warning, got %q", decision.warning)
	}
}

// TestResolveUIModePlain verifies plain never starts the UI.
func TestResolveUIModePlain(t *testing.T) {
	withTerminal(t, true)
	decision, err := resolveUIMode("plain", nil)
	if err != nil || decision.useLive {
		t.Fatalf("expected plain, got %+v err=%v", decision, err)
	}
}

// TestResolveUIModeInvalid verifies unknown modes error.
func TestResolveUIModeInvalid(t *testing.T) {
	if _, err := resolveUIMode("fancy", nil); err == nil {
		t.Fatalf("expected error for invalid mode")
	}
}
