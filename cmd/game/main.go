// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-lane-skirmish/internal/app"
	"go-lane-skirmish/internal/config"
	"go-lane-skirmish/internal/defs"
	"go-lane-skirmish/internal/spectate"
	"go-lane-skirmish/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/basicfont"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	seed := flag.Int64("seed", 0, "PRNG seed (0 = time based)")
	balancePath := flag.String("balance", "", "YAML balance overrides")
	spectateAddr := flag.String("spectate", "", "serve the spectator feed on this address, e.g. localhost:8080")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
	skipMenu := flag.Bool("skip-menu", false, "start straight in the battle")
	verbose := flag.Bool("v", false, "log rejected input")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	balance, err := defs.LoadBalance(*balancePath)
	if err != nil {
		log.Fatal(err)
	}
	game, err := app.NewGame(app.Options{Balance: balance, Seed: *seed, Verbose: *verbose})
	if err != nil {
		log.Fatal(err)
	}

	face := basicfont.Face7x13
	sm := state.NewStateMachine()
	battle := state.NewBattleState(sm, game, face)

	if *spectateAddr != "" {
		hub := spectate.NewHub()
		defer hub.Close()
		go func() {
			if err := hub.ListenAndServe(*spectateAddr); err != nil {
				log.Println(err)
			}
		}()
		battle.OnTick = func(snap *app.Snapshot) {
			if err := hub.Publish(snap); err != nil {
				log.Println(err)
			}
		}
	}

	if *skipMenu {
		sm.SetState(battle)
	} else {
		sm.SetState(state.NewMenuState(sm, battle, face))
	}

	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Lane Skirmish")
	if err := ebiten.RunGame(appGame); err != nil {
		log.Fatal(err)
	}
}
