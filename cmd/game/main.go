// cmd/game/main.go
package main

import (
	"flag"
	"time"

	"go-dungeon-runner/internal/audio"
	"go-dungeon-runner/internal/audio/player"
	"go-dungeon-runner/internal/config"
	"go-dungeon-runner/internal/defs"
	"go-dungeon-runner/internal/input"
	"go-dungeon-runner/internal/render"
	"go-dungeon-runner/internal/save"
	"go-dungeon-runner/internal/state"
	"go-dungeon-runner/internal/utils"
	"go-dungeon-runner/pkg/logger"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	input          *input.Handler
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.input.Update()
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return render.ScreenSize()
}

func main() {
	configPath := flag.String("config", "", "path to YAML settings")
	seed := flag.Int64("seed", 0, "RNG seed, 0 picks one from the clock")
	mute := flag.Bool("mute", false, "disable sound")
	savePath := flag.String("save", "", `save file path, "" keeps progress in memory`)
	enemiesPath := flag.String("enemies", "", "path to JSON enemy table")
	flag.Parse()

	logger.Init()

	settings, err := config.LoadSettings(*configPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load settings")
	}
	// явно заданные флаги важнее файла
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			settings.Seed = *seed
		case "mute":
			settings.Mute = *mute
		case "save":
			settings.SavePath = *savePath
		}
	})
	if settings.Seed == 0 {
		settings.Seed = time.Now().UnixNano()
	}

	if *enemiesPath != "" {
		if err := defs.LoadEnemyDefinitionsFile(*enemiesPath); err != nil {
			logger.Log.WithError(err).Fatal("Failed to load enemy table")
		}
	}

	var sounds audio.Sink = audio.NullSink{}
	if !settings.Mute {
		sounds = player.New()
	}

	var store save.Store = save.NewMemoryStore()
	if settings.SavePath != "" {
		store = &save.FileStore{Path: settings.SavePath}
	}

	logger.Log.WithFields(logrus.Fields{
		"seed": settings.Seed,
		"save": settings.SavePath,
		"mute": settings.Mute,
	}).Info("Starting dungeon runner")

	in := input.NewHandler()
	ctx := state.NewContext(settings, utils.NewPRNGService(settings.Seed), sounds, save.LoadProfile(store), in)
	sm := state.NewStateMachine()
	sm.SetState(state.NewStartState(sm, ctx))

	app := &AppGame{
		stateMachine:   sm,
		input:          in,
		lastUpdateTime: time.Now(),
	}
	w, h := config.ScreenWidth*settings.WindowScale, config.ScreenHeight*settings.WindowScale
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Dungeon Runner")
	if err := ebiten.RunGame(app); err != nil {
		logger.Log.WithError(err).Fatal("Game loop failed")
	}
}
