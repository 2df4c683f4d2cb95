package field

import (
	"math"
	"testing"
)

func TestTargetStructureMapping(t *testing.T) {
	cases := map[View]float64{
		ViewHome:     0.1,
		ViewMagazine: 0.3,
		ViewEngine:   0.95,
		ViewPrism:    0.95,
		ViewAnalysis: 0.95,
		View("lab"):  0.95,
	}
	for v, want := range cases {
		if got := TargetStructure(v); got != want {
			t.Fatalf("TargetStructure(%q) = %v, want %v", v, got, want)
		}
	}
}

func TestParseView(t *testing.T) {
	v, err := ParseView("  Prism ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != ViewPrism {
		t.Fatalf("got %q, want %q", v, ViewPrism)
	}
	if _, err := ParseView("dashboard"); err == nil {
		t.Fatal("expected error for unknown view")
	}
}

func TestNextCyclesViews(t *testing.T) {
	v := ViewHome
	for range Views {
		v = v.Next()
	}
	if v != ViewHome {
		t.Fatalf("expected to cycle back to home, got %q", v)
	}
	if View("unknown").Next() != ViewHome {
		t.Fatal("unknown view should advance to the first view")
	}
}

func TestLatticeSingleParticle(t *testing.T) {
	x, y := LatticeTarget(0, 1, 1000, 500)
	if x != 180 || y != 90 {
		t.Fatalf("got (%v, %v), want (180, 90)", x, y)
	}
	x, y = LatticeTarget(0, 0, 1000, 500)
	if math.IsNaN(x) || math.IsNaN(y) {
		t.Fatal("zero total produced NaN")
	}
}

func TestLatticeCorners(t *testing.T) {
	const w, h = 1000.0, 800.0
	total := 9
	x0, y0 := LatticeTarget(0, total, w, h)
	x8, y8 := LatticeTarget(8, total, w, h)
	if x0 != 180 || y0 != 144 {
		t.Fatalf("first slot (%v, %v), want (180, 144)", x0, y0)
	}
	if math.Abs(x8-820) > 1e-9 || math.Abs(y8-656) > 1e-9 {
		t.Fatalf("last slot (%v, %v), want (820, 656)", x8, y8)
	}

	// 3 particles -> 2 columns, 2 rows
	x2, y2 := LatticeTarget(2, 3, w, h)
	if x2 != 180 || math.Abs(y2-656) > 1e-9 {
		t.Fatalf("slot 2 of 3 (%v, %v), want (180, 656)", x2, y2)
	}
}

func TestLatticeSingleRow(t *testing.T) {
	// 2 particles -> 2 columns, 1 row: vertical spacing collapses
	_, y0 := LatticeTarget(0, 2, 1000, 800)
	_, y1 := LatticeTarget(1, 2, 1000, 800)
	if y0 != y1 || y0 != 144 {
		t.Fatalf("single row should share y=144, got %v and %v", y0, y1)
	}
}
