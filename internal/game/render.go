package game

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/neural-canvas/internal/config"
	"github.com/iburimskiy/neural-canvas/internal/field"
)

type kindStyle struct {
	fill color.NRGBA
}

var (
	kindStyles = map[field.Kind]kindStyle{
		field.KindPrimary:   {fill: withAlpha(mustHex(config.PrimaryColorHex), config.PrimaryAlpha*config.CanvasOpacity)},
		field.KindSecondary: {fill: withAlpha(mustHex(config.SecondaryColorHex), config.SecondaryAlpha*config.CanvasOpacity)},
		field.KindHighlight: {fill: withAlpha(mustHex(config.HighlightColorHex), config.HighlightAlpha*config.CanvasOpacity)},
	}
	connectionColor = mustHex(config.ConnectionColorHex)
)

func styleFor(k field.Kind) kindStyle {
	if s, ok := kindStyles[k]; ok {
		return s
	}
	return kindStyles[field.KindPrimary]
}

func linkColor(alpha float64) color.NRGBA {
	return withAlpha(connectionColor, alpha*config.CanvasOpacity)
}

func (g *Game) Draw(screen *ebiten.Image) {
	if screen == nil || g.fld == nil {
		return
	}
	b := screen.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("draw skipped: %v", r)
		}
	}()

	// Clear background with the vignette
	g.drawBackdrop(screen, b.Dx(), b.Dy())

	g.drawParticles(screen)
	g.drawConnections(screen)

	g.drawOverlay(screen)
}

func (g *Game) drawBackdrop(screen *ebiten.Image, w, h int) {
	if g.backdrop == nil || g.backdropW != w || g.backdropH != h {
		if g.backdrop != nil {
			g.backdrop.Deallocate()
			g.backdrop = nil
		}
		img := rasterizeBackdrop(w, h)
		if img == nil {
			return
		}
		g.backdrop = ebiten.NewImageFromImage(img)
		g.backdropW, g.backdropH = w, h
	}
	screen.DrawImage(g.backdrop, nil)
}

func (g *Game) drawParticles(screen *ebiten.Image) {
	for _, p := range g.fld.Particles() {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size), styleFor(p.Kind).fill, true)
	}
}

func (g *Game) drawConnections(screen *ebiten.Image) {
	particles := g.fld.Particles()
	n := 0
	g.fld.Links(func(l field.Link) {
		p1, p2 := particles[l.A], particles[l.B]
		vector.StrokeLine(screen, float32(p1.X), float32(p1.Y), float32(p2.X), float32(p2.Y), float32(l.Width), linkColor(l.Alpha), true)
		n++
	})
	g.lastLinks = n
}
