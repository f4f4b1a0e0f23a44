//go:build ebiten

package main

import (
	"errors"
	"flag"

	"falling-sand/internal/app"
	"falling-sand/internal/config"
	"falling-sand/internal/core"
	_ "falling-sand/internal/sims/life"
	"falling-sand/internal/sims/sand"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sandbox, err := config.Load(cfg.ConfigPath)
	if err != nil {
		log.Fatal(err)
	}
	cfg.Merge(flag.CommandLine, &sandbox)
	if err := sandbox.Validate(); err != nil {
		log.Fatal(err)
	}

	factory, ok := core.Sims()[sandbox.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (have %v)", sandbox.Sim, core.Names())
	}

	sim := factory(sandbox.SimOptions())
	sim.Reset(sandbox.Seed)
	if cfg.Scene != "" {
		scene, err := config.LoadScene(cfg.Scene)
		if err != nil {
			log.Fatal(err)
		}
		world, ok := sim.(*sand.World)
		if !ok {
			log.Fatalf("scenes need the sand sim, got %q", sim.Name())
		}
		scene.Apply(world)
	}

	game := app.New(sim, sandbox.Scale, sandbox.Seed)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("falling sand - " + sim.Name())
	ebiten.SetTPS(sandbox.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
