package core

import (
	"math"
	"testing"
)

func TestInterval_ContainsAndSurrounds(t *testing.T) {
	interval := NewInterval(0, 1)

	tests := []struct {
		name      string
		x         float64
		contains  bool
		surrounds bool
	}{
		{"inside", 0.5, true, true},
		{"lower bound", 0, true, false},
		{"upper bound", 1, true, false},
		{"below", -0.1, false, false},
		{"above", 1.1, false, false},
		{"NaN", math.NaN(), false, false},
		{"+Inf", math.Inf(1), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := interval.Contains(tt.x); got != tt.contains {
				t.Errorf("Contains(%f) = %v, want %v", tt.x, got, tt.contains)
			}
			if got := interval.Surrounds(tt.x); got != tt.surrounds {
				t.Errorf("Surrounds(%f) = %v, want %v", tt.x, got, tt.surrounds)
			}
		})
	}
}

func TestInterval_Sentinels(t *testing.T) {
	if EmptyInterval.Contains(0) {
		t.Error("Empty interval should contain nothing")
	}
	if EmptyInterval.Surrounds(0) {
		t.Error("Empty interval should surround nothing")
	}
	if !UniverseInterval.Surrounds(1e300) || !UniverseInterval.Surrounds(-1e300) {
		t.Error("Universe interval should surround every finite value")
	}
	if UniverseInterval.Surrounds(math.NaN()) {
		t.Error("Universe interval should not surround NaN")
	}
}

func TestInterval_Clamp(t *testing.T) {
	intensity := NewInterval(0, 0.999)

	tests := []struct {
		x, expected float64
	}{
		{-1, 0},
		{0.5, 0.5},
		{1, 0.999},
		{0.999, 0.999},
	}

	for _, tt := range tests {
		if got := intensity.Clamp(tt.x); got != tt.expected {
			t.Errorf("Clamp(%f) = %f, want %f", tt.x, got, tt.expected)
		}
	}
}
