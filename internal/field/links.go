package field

import (
	"math"

	"github.com/iburimskiy/neural-canvas/internal/config"
)

// Link is a connection line between particles A and B (A < B).
type Link struct {
	A, B  int
	Alpha float64
	Width float64
}

// Links calls fn for every pair of particles closer than the connection
// threshold for the current structure level. Pairs are reported once, in
// ascending (A, B) order for the pairwise scan.
func (f *Field) Links(fn func(Link)) {
	threshold := ConnectionThreshold(f.structure)
	if threshold <= 0 || len(f.particles) < 2 {
		return
	}
	if len(f.particles) > config.GridBucketThreshold {
		f.bucketLinks(threshold, fn)
		return
	}
	for i := 0; i < len(f.particles); i++ {
		for j := i + 1; j < len(f.particles); j++ {
			if l, ok := f.link(i, j, threshold); ok {
				fn(l)
			}
		}
	}
}

// CountLinks returns how many links the current frame would draw.
func (f *Field) CountLinks() int {
	n := 0
	f.Links(func(Link) { n++ })
	return n
}

func (f *Field) link(i, j int, threshold float64) (Link, bool) {
	p1, p2 := &f.particles[i], &f.particles[j]
	dx := p1.X - p2.X
	dy := p1.Y - p2.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist >= threshold {
		return Link{}, false
	}
	s := f.structure
	return Link{
		A:     i,
		B:     j,
		Alpha: (1 - dist/threshold) * (config.LinkAlphaBase + config.LinkAlphaGain*s),
		Width: config.LinkWidthBase + config.LinkWidthGain*s,
	}, true
}

type bucketKey struct {
	X, Y int
}

// bucketLinks bins particles into cells one threshold wide so that only
// neighbouring cells need to be compared.
func (f *Field) bucketLinks(threshold float64, fn func(Link)) {
	bins := make(map[bucketKey][]int, len(f.particles))
	keyOf := func(p *Particle) bucketKey {
		return bucketKey{int(math.Floor(p.X / threshold)), int(math.Floor(p.Y / threshold))}
	}
	for i := range f.particles {
		k := keyOf(&f.particles[i])
		bins[k] = append(bins[k], i)
	}

	for i := range f.particles {
		k := keyOf(&f.particles[i])
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				for _, j := range bins[bucketKey{k.X + dx, k.Y + dy}] {
					if j <= i {
						continue
					}
					if l, ok := f.link(i, j, threshold); ok {
						fn(l)
					}
				}
			}
		}
	}
}
