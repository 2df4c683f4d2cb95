package field

import (
	"math"
	"testing"

	"github.com/iburimskiy/neural-canvas/internal/config"
)

func TestConnectionThresholdShrinksWithStructure(t *testing.T) {
	loose := ConnectionThreshold(0)
	tight := ConnectionThreshold(1)
	if !(loose > tight) {
		t.Fatalf("expected threshold at 0 (%v) > threshold at 1 (%v)", loose, tight)
	}
	if want := config.ConnectionDistance * 1.1; math.Abs(loose-want) > 1e-9 {
		t.Fatalf("threshold at 0 = %v, want %v", loose, want)
	}
	if want := config.ConnectionDistance * 0.6; math.Abs(tight-want) > 1e-9 {
		t.Fatalf("threshold at 1 = %v, want %v", tight, want)
	}
}

func placedField(structure float64, points [][2]float64) *Field {
	f := &Field{width: 1000, height: 1000, structure: structure, rnd: NewRand(1)}
	f.particles = make([]Particle, len(points))
	for i, pt := range points {
		f.particles[i] = Particle{Index: i, Total: len(points), X: pt[0], Y: pt[1]}
	}
	return f
}

func TestLinkAlphaAndWidth(t *testing.T) {
	f := placedField(0.5, [][2]float64{{100, 100}, {130, 140}, {900, 900}})
	var links []Link
	f.Links(func(l Link) { links = append(links, l) })
	if len(links) != 1 {
		t.Fatalf("expected one link, got %d", len(links))
	}
	l := links[0]
	if l.A != 0 || l.B != 1 {
		t.Fatalf("unexpected pair (%d, %d)", l.A, l.B)
	}
	threshold := ConnectionThreshold(0.5)
	wantAlpha := (1 - 50/threshold) * (0.55 + 0.4*0.5)
	if math.Abs(l.Alpha-wantAlpha) > 1e-9 {
		t.Fatalf("alpha = %v, want %v", l.Alpha, wantAlpha)
	}
	if math.Abs(l.Width-0.7) > 1e-9 {
		t.Fatalf("width = %v, want 0.7", l.Width)
	}
}

func TestLinksRespectThresholdBoundary(t *testing.T) {
	threshold := ConnectionThreshold(1)
	f := placedField(1, [][2]float64{{0, 0}, {threshold + 0.01, 0}, {threshold - 5, 10}})
	if n := f.CountLinks(); n != 2 {
		t.Fatalf("expected 2 links (outer pair excluded), got %d", n)
	}
}

func TestBucketLinksMatchPairwise(t *testing.T) {
	rnd := NewRand(21)
	points := make([][2]float64, config.GridBucketThreshold+200)
	for i := range points {
		points[i] = [2]float64{rnd.Float64()*1400 - 100, rnd.Float64()*900 - 100}
	}

	for _, s := range []float64{0, 0.3, 0.95} {
		f := placedField(s, points)
		threshold := ConnectionThreshold(s)

		want := map[[2]int]Link{}
		for i := range f.particles {
			for j := i + 1; j < len(f.particles); j++ {
				if l, ok := f.link(i, j, threshold); ok {
					want[[2]int{i, j}] = l
				}
			}
		}

		got := map[[2]int]Link{}
		f.Links(func(l Link) {
			key := [2]int{l.A, l.B}
			if _, dup := got[key]; dup {
				t.Fatalf("structure %v: pair %v reported twice", s, key)
			}
			got[key] = l
		})

		if len(got) != len(want) {
			t.Fatalf("structure %v: bucketed %d links, pairwise %d", s, len(got), len(want))
		}
		for key, l := range want {
			if got[key] != l {
				t.Fatalf("structure %v: pair %v differs: %+v vs %+v", s, key, got[key], l)
			}
		}
	}
}

func TestNoLinksForSingleParticle(t *testing.T) {
	f := placedField(0, [][2]float64{{10, 10}})
	if n := f.CountLinks(); n != 0 {
		t.Fatalf("expected no links, got %d", n)
	}
}
