// cmd/game/main.go
package main

import (
	"flag"
	"fmt"
	"time"

	"cosmic-mines/internal/assets"
	"cosmic-mines/internal/config"
	"cosmic-mines/internal/event"
	"cosmic-mines/internal/logging"
	"cosmic-mines/internal/records"
	"cosmic-mines/internal/state"
	"cosmic-mines/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
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
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: cosmic-mines [starting-rows]")
	}
	flag.Parse()

	settings, err := config.LoadSettings(nil)
	if err != nil {
		logrus.WithError(err).Fatal("invalid settings")
	}
	log, err := logging.New(settings.LogLevel)
	if err != nil {
		logrus.WithError(err).Fatal("invalid log level")
	}

	startRows := config.ParseStartingRows(flag.Args(), log)
	rng := utils.NewPRNGService(settings.Seed)
	log.WithFields(logrus.Fields{
		"rows":   startRows,
		"seed":   rng.Seed(),
		"assets": settings.AssetsDir,
	}).Info("starting Cosmic Mines")

	store := openRecords(settings, log)
	defer func() {
		if err := store.Close(); err != nil {
			log.WithError(err).Warn("failed to close records")
		}
	}()

	dispatcher := event.NewDispatcher()
	logging.NewGameplayListener(log).Register(dispatcher)
	records.NewRecorder(store, log).Register(dispatcher)

	fonts, err := assets.LoadFonts(settings.AssetsDir, log)
	if err != nil {
		log.WithError(err).Fatal("failed to load fonts")
	}
	sprites, err := assets.NewLoader(settings.AssetsDir, fonts, log).LoadSprites()
	if err != nil {
		log.WithError(err).Fatal("failed to load sprites")
	}

	res := &state.Resources{
		Fonts:     fonts,
		Sprites:   sprites,
		Rng:       rng,
		Events:    dispatcher,
		Records:   store,
		Log:       log,
		StartRows: startRows,
	}
	sm := state.NewStateMachine()
	if settings.SkipIntro {
		sm.SetState(state.NewGameState(sm, res, startRows))
	} else {
		sm.SetState(state.NewTitleState(sm, res))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(settings.WindowSize())
	ebiten.SetWindowTitle(config.WindowTitle)
	if err := ebiten.RunGame(app); err != nil {
		log.WithError(err).Error("game loop stopped")
	}
}

// openRecords falls back to a NopStore when the database cannot be opened,
// so a read-only directory never stops the game.
func openRecords(settings config.Settings, log logrus.FieldLogger) records.Store {
	if settings.NoRecords {
		log.Info("records disabled")
		return records.NopStore{}
	}
	store, err := records.Open(settings.RecordsPath)
	if err != nil {
		log.WithError(err).WithField("path", settings.RecordsPath).Warn("records unavailable")
		return records.NopStore{}
	}
	log.WithField("path", settings.RecordsPath).Info("records opened")
	return store
}
