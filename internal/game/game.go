// Package game drives a particle field from the ebiten loop and draws it.
package game

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/neural-canvas/internal/config"
	"github.com/iburimskiy/neural-canvas/internal/field"
)

// Options configures a new Game.
type Options struct {
	View    field.View
	Seed    uint64
	Width   int
	Height  int
	Overlay bool
	Rand    field.Rand // overrides Seed when set
}

// Game implements ebiten.Game for the particle field. Update, Draw and
// Layout must be called from the same loop. SetView, ToggleOverlay and
// Close may be called from any goroutine.
type Game struct {
	fld *field.Field

	// viewport
	width, height int
	pendingW      int
	pendingH      int
	resizePending bool

	view   atomic.Value // field.View
	closed atomic.Bool
	torn   bool

	// render state
	backdrop      *ebiten.Image
	backdropW     int
	backdropH     int
	tap           *structureTap
	overlay       *overlay
	overlayWanted atomic.Bool
	lastLinks     int
	started       time.Time
	skippedFrames int
	lastFrameErr  error
}

func NewGame(opts Options) *Game {
	if opts.View == "" {
		opts.View = field.View(config.DefaultView)
	}
	if opts.Width <= 0 {
		opts.Width = config.WindowWidth
	}
	if opts.Height <= 0 {
		opts.Height = config.WindowHeight
	}
	rnd := opts.Rand
	if rnd == nil {
		rnd = field.NewRand(opts.Seed)
	}

	g := &Game{
		fld:     field.New(float64(opts.Width), float64(opts.Height), opts.View, rnd),
		width:   opts.Width,
		height:  opts.Height,
		tap:     newStructureTap(config.HistoryRingSize),
		overlay: newOverlay(),
		started: time.Now(),
	}
	g.view.Store(opts.View)
	g.overlayWanted.Store(opts.Overlay)
	log.Printf("field ready: %dx%d, %d particles, view %s", opts.Width, opts.Height, g.fld.Len(), opts.View)
	return g
}

// SetView changes the view signal. It takes effect on the next frame.
func (g *Game) SetView(v field.View) { g.view.Store(v) }

// View returns the current view signal.
func (g *Game) View() field.View { return g.view.Load().(field.View) }

// ToggleOverlay shows or hides the debug overlay.
func (g *Game) ToggleOverlay() {
	for {
		old := g.overlayWanted.Load()
		if g.overlayWanted.CompareAndSwap(old, !old) {
			return
		}
	}
}

// Close stops the animation. The next Update returns ebiten.Termination and
// later layout changes are ignored.
func (g *Game) Close() { g.closed.Store(true) }

// Field exposes the simulation for inspection. It is nil after teardown.
func (g *Game) Field() *field.Field { return g.fld }

func (g *Game) Update() error {
	if g.closed.Load() {
		g.teardown()
		return ebiten.Termination
	}
	if err := g.frame(); err != nil {
		g.skippedFrames++
		g.lastFrameErr = err
		log.Printf("frame skipped: %v", err)
	}
	return nil
}

// frame runs one update. A panic anywhere in it only costs this frame.
func (g *Game) frame() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = frameError{r}
		}
	}()

	if g.resizePending {
		g.fld.Resize(float64(g.pendingW), float64(g.pendingH))
		g.width, g.height = g.pendingW, g.pendingH
		g.resizePending = false
		log.Printf("resized to %dx%d, %d particles", g.width, g.height, g.fld.Len())
	}

	if v := g.View(); v != g.fld.View() {
		log.Printf("view %s -> %s (target %.2f)", g.fld.View(), v, field.TargetStructure(v))
		g.fld.SetView(v)
	}

	g.fld.Step()
	g.tap.record(g.fld.Structure())
	g.overlay.update(g.overlayWanted.Load())
	return nil
}

func (g *Game) teardown() {
	if g.torn {
		return
	}
	g.torn = true
	g.fld = nil
	if g.backdrop != nil {
		g.backdrop.Deallocate()
		g.backdrop = nil
	}
	log.Printf("animation stopped after %s", formatDuration(time.Since(g.started)))
}

// Layout tracks the window size. A size change is applied at the start of
// the next Update so it never lands in the middle of a frame.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	if g.closed.Load() {
		return g.width, g.height
	}
	if outsideWidth != g.width || outsideHeight != g.height {
		g.pendingW, g.pendingH = outsideWidth, outsideHeight
		g.resizePending = true
	} else {
		g.resizePending = false
	}
	return outsideWidth, outsideHeight
}

type frameError struct {
	value any
}

func (e frameError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}
