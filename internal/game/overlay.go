package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/neural-canvas/internal/config"
)

// overlay is the debug panel. Its opacity follows a critically damped
// spring so toggling it fades instead of popping.
type overlay struct {
	spring  harmonica.Spring
	opacity float64
	vel     float64
}

func newOverlay() *overlay {
	return &overlay{
		spring: harmonica.NewSpring(harmonica.FPS(config.OverlayFPS), config.OverlaySpringFreq, config.OverlaySpringDamping),
	}
}

func (o *overlay) update(visible bool) {
	target := 0.0
	if visible {
		target = 1
	}
	o.opacity, o.vel = o.spring.Update(o.opacity, o.vel, target)
}

func (o *overlay) alpha() float64 { return clamp01(o.opacity) }

func (g *Game) drawOverlay(screen *ebiten.Image) {
	a := g.overlay.alpha()
	if a < 0.01 {
		return
	}

	const x, y = 12, 12
	const panelW, panelH = 260, 140
	vector.DrawFilledRect(screen, x-6, y-6, panelW, panelH, color.NRGBA{A: uint8(160 * a)}, false)
	vector.StrokeRect(screen, x-6, y-6, panelW, panelH, 1, color.NRGBA{R: 60, G: 70, B: 90, A: uint8(255 * a)}, false)

	// Text has no alpha, so only print once the panel is mostly in
	if a > 0.5 {
		lines := []string{
			fmt.Sprintf("view      %s", g.fld.View()),
			fmt.Sprintf("structure %.3f -> %.2f", g.fld.Structure(), g.fld.Target()),
			fmt.Sprintf("particles %d  links %d", g.fld.Len(), g.lastLinks),
			fmt.Sprintf("tps %.0f  fps %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()),
			fmt.Sprintf("uptime    %s", formatDuration(time.Since(g.started))),
		}
		if g.skippedFrames > 0 {
			lines = append(lines, fmt.Sprintf("skipped   %d", g.skippedFrames))
		}
		for i, line := range lines {
			ebitenutil.DebugPrintAt(screen, line, x, y+i*14)
		}
	}

	g.drawHistory(screen, x, y+panelH-config.OverlayHistoryHeight-14, a)
}

// drawHistory plots recent structure levels as a sparkline.
func (g *Game) drawHistory(screen *ebiten.Image, x, y int, a float64) {
	levels := g.tap.snapshot(config.OverlayHistoryWidth)
	if len(levels) < 2 {
		return
	}
	w := float64(config.OverlayHistoryWidth)
	h := float64(config.OverlayHistoryHeight)
	step := w / float64(config.OverlayHistoryWidth-1)
	clr := linkColor(a)

	for i := 1; i < len(levels); i++ {
		x0 := float64(x) + float64(i-1)*step
		x1 := float64(x) + float64(i)*step
		y0 := float64(y) + h*(1-clamp01(levels[i-1]))
		y1 := float64(y) + h*(1-clamp01(levels[i]))
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, clr, false)
	}
}
