package field

import (
	"math"

	"github.com/iburimskiy/neural-canvas/internal/config"
)

// Kind is a particle's category. It is drawn once at creation and never
// changes.
type Kind uint8

const (
	KindPrimary Kind = iota
	KindSecondary
	KindHighlight
)

func (k Kind) String() string {
	switch k {
	case KindPrimary:
		return "primary"
	case KindSecondary:
		return "secondary"
	case KindHighlight:
		return "highlight"
	default:
		return "unknown"
	}
}

// drawKind picks a kind with the configured 65/25/10 weights.
func drawKind(rnd Rand) Kind {
	r := rnd.Float64()
	switch {
	case r < config.PrimaryKindWeight:
		return KindPrimary
	case r < config.PrimaryKindWeight+config.SecondaryKindWeight:
		return KindSecondary
	default:
		return KindHighlight
	}
}

// Particle is one point of the field. Index and Total fix its lattice slot.
type Particle struct {
	Index, Total int

	X, Y   float64
	VX, VY float64
	TX, TY float64

	Size float64
	Kind Kind
}

func newParticle(index, total int, w, h float64, rnd Rand) Particle {
	p := Particle{Index: index, Total: total}
	p.spawn(w, h, rnd)
	p.Kind = drawKind(rnd)
	if p.Kind == KindHighlight {
		p.Size *= config.HighlightSizeScale
	}
	p.TX, p.TY = LatticeTarget(index, total, w, h)
	return p
}

// spawn re-randomises position, velocity and size. Kind is kept, so the
// highlight size scale is reapplied for an existing highlight particle.
func (p *Particle) spawn(w, h float64, rnd Rand) {
	p.X = rnd.Float64() * w
	p.Y = rnd.Float64() * h
	p.VX = (rnd.Float64() - 0.5) * config.BaseSpeed * config.VelocitySpread
	p.VY = (rnd.Float64() - 0.5) * config.BaseSpeed * config.VelocitySpread
	p.Size = config.MinParticleSize + rnd.Float64()*config.ParticleSizeRange
	if p.Kind == KindHighlight {
		p.Size *= config.HighlightSizeScale
	}
}

func (p *Particle) outside(w, h float64) bool {
	m := config.RespawnMargin
	return p.X < -m || p.X > w+m || p.Y < -m || p.Y > h+m
}

// LatticeTarget returns the crystal slot for particle index of total on a
// w x h viewport. The lattice is ceil(sqrt(total)) columns wide and sits
// inside an 18% margin on every side. A single row or column has zero
// spacing on that axis.
func LatticeTarget(index, total int, w, h float64) (float64, float64) {
	if total < 1 {
		total = 1
	}
	cols := int(math.Ceil(math.Sqrt(float64(total))))
	rows := (total + cols - 1) / cols
	col := index % cols
	row := index / cols

	marginX := w * config.LatticeMargin
	marginY := h * config.LatticeMargin
	spanX := w - 2*marginX
	spanY := h - 2*marginY

	var stepX, stepY float64
	if cols > 1 {
		stepX = spanX / float64(cols-1)
	}
	if rows > 1 {
		stepY = spanY / float64(rows-1)
	}
	return marginX + float64(col)*stepX, marginY + float64(row)*stepY
}
