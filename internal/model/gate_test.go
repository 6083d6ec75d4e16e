package model

import "testing"

func TestNewGatePanicsOnInvariantViolation(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic when failed > checked")
		}
	}()
	NewGate(GateSafety, false, 1, 2, "broken")
}

func TestCanRelease(t *testing.T) {
	pass := NewGate(GateSafety, true, 3, 0, "ok")
	fail := NewGate(GateQuality, false, 3, 1, "blocked")

	if !CanRelease([]Gate{pass, pass}) {
		t.Errorf("all-pass gates should release")
	}
	if CanRelease([]Gate{pass, fail}) {
		t.Errorf("failed gate must block release")
	}
	if !CanRelease(nil) {
		t.Errorf("no gates means nothing blocks")
	}
}
