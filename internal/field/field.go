// Package field simulates the background particle field. The field drifts
// freely at a low structure level and crystallises onto a lattice as the
// structure level rises toward 1.
//
// A Field is not safe for concurrent use; the caller serialises Step,
// Resize and SetView, usually by calling them all from one frame loop.
package field

import (
	"github.com/iburimskiy/neural-canvas/internal/config"
)

// ParticleCount returns the particle count for a viewport width.
func ParticleCount(width float64) int {
	if width < config.MobileBreakpoint {
		return config.MobileParticleCount
	}
	return config.DesktopParticleCount
}

// ConnectionThreshold is the maximum distance at which two particles are
// linked for a given structure level.
func ConnectionThreshold(structure float64) float64 {
	return config.ConnectionDistance * (config.ConnectionLoose - config.ConnectionTighten*structure)
}

// Field owns the particles and the shared structure level.
type Field struct {
	width, height float64
	particles     []Particle
	view          View
	structure     float64
	frames        uint64
	rnd           Rand
}

// New builds a field for a viewport. The structure level starts at the
// target of the initial view.
func New(width, height float64, view View, rnd Rand) *Field {
	if rnd == nil {
		rnd = NewRand(0)
	}
	f := &Field{
		view:      view,
		structure: TargetStructure(view),
		rnd:       rnd,
	}
	f.Resize(width, height)
	return f
}

// Resize replaces every particle with a fresh set sized for the viewport.
// The structure level is kept.
func (f *Field) Resize(width, height float64) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	n := ParticleCount(width)
	particles := make([]Particle, n)
	for i := range particles {
		particles[i] = newParticle(i, n, width, height, f.rnd)
	}
	f.width, f.height = width, height
	f.particles = particles
}

// SetView re-targets the structure level. It does not reset it.
func (f *Field) SetView(v View) { f.view = v }

func (f *Field) View() View { return f.view }
func (f *Field) Structure() float64 { return f.structure }
func (f *Field) Target() float64 { return TargetStructure(f.view) }
func (f *Field) Size() (float64, float64) { return f.width, f.height }
func (f *Field) Len() int { return len(f.particles) }
func (f *Field) Frames() uint64 { return f.frames }
func (f *Field) Particles() []Particle { return f.particles }
func (f *Field) Particle(i int) Particle { return f.particles[i] }

// Step advances the field by one frame.
func (f *Field) Step() {
	target := TargetStructure(f.view)
	f.structure += (target - f.structure) * config.StructureEasing

	s := f.structure
	drift := config.DriftBase - config.DriftDamping*s
	pull := 0.0
	if s > config.PullThreshold {
		pull = config.PullBase + s*config.PullGain
	}

	for i := range f.particles {
		p := &f.particles[i]
		p.X += p.VX * drift
		p.Y += p.VY * drift

		if p.outside(f.width, f.height) {
			p.spawn(f.width, f.height, f.rnd)
			p.TX, p.TY = LatticeTarget(p.Index, p.Total, f.width, f.height)
		}

		if pull > 0 {
			p.X += (p.TX - p.X) * pull
			p.Y += (p.TY - p.Y) * pull
		}
	}
	f.frames++
}
