package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/neural-canvas/internal/config"
	"github.com/iburimskiy/neural-canvas/internal/field"
	"github.com/iburimskiy/neural-canvas/internal/game"
)

var (
	viewFlag    = flag.String("view", config.DefaultView, "Initial view: home, magazine, engine, prism, analysis")
	seedFlag    = flag.Uint64("seed", 0, "Random seed (0 uses the clock)")
	widthFlag   = flag.Int("width", config.WindowWidth, "Initial window width")
	heightFlag  = flag.Int("height", config.WindowHeight, "Initial window height")
	debugFlag   = flag.Bool("debug", false, "Log to stderr")
	overlayFlag = flag.Bool("overlay", false, "Start with the debug overlay visible")
)

var viewKeys = map[ebiten.Key]field.View{
	ebiten.Key1: field.ViewHome,
	ebiten.Key2: field.ViewMagazine,
	ebiten.Key3: field.ViewEngine,
	ebiten.Key4: field.ViewPrism,
	ebiten.Key5: field.ViewAnalysis,
}

// host plays the part of the page navigation: it owns the current view and
// feeds it to the animator every frame.
type host struct {
	*game.Game
}

func (h *host) Update() error {
	for k, v := range viewKeys {
		if inpututil.IsKeyJustPressed(k) {
			h.SetView(v)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		h.SetView(h.View().Next())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		h.ToggleOverlay()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		h.Close()
	}
	return h.Game.Update()
}

func setupLogging(debug bool) {
	if !debug {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(os.Stderr)
	log.SetPrefix(config.LogPrefix)
	log.SetFlags(log.Ltime | log.Lmicroseconds)
}

func main() {
	flag.Parse()
	setupLogging(*debugFlag)

	view, err := field.ParseView(*viewFlag)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}

	ebiten.SetWindowSize(*widthFlag, *heightFlag)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.NewGame(game.Options{
		View:    view,
		Seed:    *seedFlag,
		Width:   *widthFlag,
		Height:  *heightFlag,
		Overlay: *overlayFlag,
	})
	if err := ebiten.RunGame(&host{Game: g}); err != nil && !errors.Is(err, ebiten.Termination) {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
