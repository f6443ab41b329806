package main

import (
	"errors"
	"flag"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/neon-tree/internal/config"
	"github.com/iburimskiy/neon-tree/internal/game"
)

func main() {
	cfg := config.Default()

	flag.IntVar(&cfg.WindowWidth, "width", cfg.WindowWidth, "initial window width")
	flag.IntVar(&cfg.WindowHeight, "height", cfg.WindowHeight, "initial window height")
	flag.BoolVar(&cfg.Fullscreen, "fullscreen", false, "start fullscreen")
	flag.Int64Var(&cfg.Seed, "seed", 0, "star rotation seed (0 = random)")
	flag.BoolVar(&cfg.Debug, "debug", false, "show frame statistics")
	palette := flag.String("palette", strings.Join(cfg.Palette, ","), "comma separated star colors")
	flag.Parse()

	cfg.Palette = strings.Split(*palette, ",")

	g, err := game.NewGame(cfg, log.Default())
	if err != nil {
		fatal(err)
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetFullscreen(cfg.Fullscreen)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fatal(err)
	}
}

// fatal shows err in a native dialog, then exits.
func fatal(err error) {
	if derr := zenity.Error(err.Error(), zenity.Title("Neon Tree"), zenity.ErrorIcon); derr != nil {
		log.Printf("error dialog: %v", derr)
	}
	log.Fatal(err)
}
