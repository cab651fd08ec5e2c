package models

import (
	"testing"
	"time"
)

func TestMatchLabel(t *testing.T) {
	tests := []struct {
		home     string
		away     string
		expected string
	}{
		{"Liverpool", "Real Madrid", "Liverpool vs Real Madrid"},
		{"  Liverpool  ", "Real   Madrid", "Liverpool vs Real Madrid"},
		{"PSG", "Monaco", "PSG vs Monaco"},
	}

	for _, tt := range tests {
		if got := MatchLabel(tt.home, tt.away); got != tt.expected {
			t.Errorf("MatchLabel(%q, %q) = %q, want %q", tt.home, tt.away, got, tt.expected)
		}
	}
}

func TestDedupKey_MatchMode(t *testing.T) {
	a := Pick{Match: "Liverpool vs Real Madrid", Selection: "ML", Bookmaker: "Bet365"}
	b := Pick{Match: "liverpool vs real madrid", Selection: "Over 2.5", Bookmaker: "Bwin"}

	if a.DedupKey(DedupByMatch) != b.DedupKey(DedupByMatch) {
		t.Errorf("match-mode keys should collide regardless of selection/bookmaker:\n  %s\n  %s",
			a.DedupKey(DedupByMatch), b.DedupKey(DedupByMatch))
	}
}

func TestDedupKey_SelectionMode(t *testing.T) {
	a := Pick{Match: "Liverpool vs Real Madrid", Selection: "ML", Bookmaker: "Bet365"}
	b := Pick{Match: "Liverpool vs Real Madrid", Selection: "Over 2.5", Bookmaker: "Bet365"}
	c := Pick{Match: "Liverpool vs Real Madrid", Selection: "ML", Bookmaker: "bet365"}

	if a.DedupKey(DedupBySelection) == b.DedupKey(DedupBySelection) {
		t.Error("different selections must not share a selection-mode key")
	}
	if a.DedupKey(DedupBySelection) != c.DedupKey(DedupBySelection) {
		t.Error("bookmaker comparison should be case-insensitive")
	}
}

func TestRoundPrice(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{2.105, 2.11},
		{1.9999, 2.00},
		{1.70, 1.70},
		{3.333, 3.33},
	}

	for _, tt := range tests {
		if got := RoundPrice(tt.input); got != tt.expected {
			t.Errorf("RoundPrice(%v) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestLocalKickoff(t *testing.T) {
	kickoff := time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)

	local := LocalKickoff(kickoff, 2)
	if local.Hour() != 22 {
		t.Errorf("expected 22:00 at UTC+2, got %s", local.Format("15:04"))
	}
	if !local.Equal(kickoff) {
		t.Error("projection must not change the instant")
	}

	if !LocalKickoff(kickoff, 0).IsZero() {
		t.Error("zero offset means no local projection")
	}
}
