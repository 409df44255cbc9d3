package profile

import (
	"testing"
)

func TestBoolOnlyTrue(t *testing.T) {
	ba := newBoolAggregator()
	for range 5 {
		ba.Add(true)
	}
	if got := ba.Render(); got != "true" {
		t.Fatalf("render = %q, want %q", got, "true")
	}
}

func TestBoolOnlyFalse(t *testing.T) {
	ba := newBoolAggregator()
	ba.Add(false)
	if got := ba.Render(); got != "false" {
		t.Fatalf("render = %q, want %q", got, "false")
	}
}

func TestBoolMixedFalseFirst(t *testing.T) {
	ba := newBoolAggregator()
	ba.Add(true)
	ba.Add(true)
	ba.Add(true)
	ba.Add(false)
	ba.Add(false)

	if got := ba.Render(); got != "2×false, 3×true" {
		t.Fatalf("render = %q, want %q", got, "2×false, 3×true")
	}
}

func TestNullRender(t *testing.T) {
	na := newNullAggregator()
	na.Add(nil)
	if got := na.Render(); got != "null" {
		t.Fatalf("render = %q, want %q", got, "null")
	}
}
