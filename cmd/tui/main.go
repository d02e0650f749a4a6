// cmd/tui/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go-lane-skirmish/internal/app"
	"go-lane-skirmish/internal/defs"
	"go-lane-skirmish/internal/spectate"
	"go-lane-skirmish/internal/tui"

	"github.com/gdamore/tcell/v2"
)

func main() {
	seed := flag.Int64("seed", 0, "PRNG seed (0 = time based)")
	balancePath := flag.String("balance", "", "YAML balance overrides")
	spectateAddr := flag.String("spectate", "", "serve the spectator feed on this address")
	sound := flag.Bool("sound", false, "play cue tones")
	logPath := flag.String("log", "", "write logs to this file (the terminal is taken by the viewer)")
	flag.Parse()

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	balance, err := defs.LoadBalance(*balancePath)
	if err != nil {
		log.Fatal(err)
	}
	game, err := app.NewGame(app.Options{Balance: balance, Seed: *seed})
	if err != nil {
		log.Fatal(err)
	}

	cues, err := tui.NewCues(*sound)
	if err != nil {
		// Без звука играть можно
		log.Printf("Audio initialization failed: %v", err)
	}
	defer cues.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	viewer := tui.NewViewer(screen, game, cues)
	if *spectateAddr != "" {
		hub := spectate.NewHub()
		defer hub.Close()
		go func() {
			if err := hub.ListenAndServe(*spectateAddr); err != nil {
				log.Println(err)
			}
		}()
		viewer.OnTick = func(snap *app.Snapshot) {
			if err := hub.Publish(snap); err != nil {
				log.Println(err)
			}
		}
	}
	viewer.Run()
}
