// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"go-zombie-survival/internal/assets"
	"go-zombie-survival/internal/audio"
	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/defs"
	"go-zombie-survival/internal/input"
	"go-zombie-survival/internal/interfaces"
	"go-zombie-survival/internal/logging"
	"go-zombie-survival/internal/profile"
	"go-zombie-survival/internal/state"
	"go-zombie-survival/internal/telemetry"
	"go-zombie-survival/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

type AppGame struct {
	stateMachine *state.StateMachine
	poller       input.Poller
	renderer     *render.EbitenRenderer
}

func (a *AppGame) Update() error {
	a.stateMachine.Update(a.poller.Poll())
	if a.stateMachine.Done() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.renderer.SetTarget(screen)
	a.stateMachine.Draw(a.renderer)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configDir := flag.String("config", ".", "directory containing "+config.ConfigFileName)
	flag.Parse()

	start := time.Now()
	cfg, err := config.Load(*configDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, logCloser, err := logging.Setup(cfg, os.Stderr, start)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer logCloser.Close()

	weapons := defs.DefaultWeapons()
	if cfg.WeaponsFile != "" {
		if weapons, err = defs.LoadWeaponDefinitions(cfg.WeaponsFile); err != nil {
			logger.Error().Err(err).Str("path", cfg.WeaponsFile).Msg("failed to load weapons")
			return err
		}
	}

	backend, err := createStorageBackend(cfg.Storage, logger)
	if err != nil {
		logger.Error().Err(err).Msg("failed to create storage backend")
		return err
	}
	if err := backend.Init(); err != nil {
		logger.Error().Err(err).Str("type", cfg.Storage.Type).Msg("failed to initialize storage")
		return err
	}
	defer backend.Close()

	metrics, err := telemetry.New(nil)
	if err != nil {
		return fmt.Errorf("failed to create metrics: %w", err)
	}

	env := &state.Env{
		Settings: cfg.Game,
		Weapons:  weapons,
		Assets:   assets.NewTable(),
		Profiles: profile.NewService(backend, logger),
		Sound:    setupAudio(cfg.Audio, logger),
		Metrics:  metrics,
		Logger:   logger,
	}
	if sm, ok := env.Sound.(*audio.SoundManager); ok {
		defer sm.Cleanup()
	}

	sm := state.NewStateMachine(env)
	sm.SetState(state.NewMenuState(sm))
	game := &AppGame{
		stateMachine: sm,
		poller:       input.NewEbitenPoller(),
		renderer:     render.NewEbitenRenderer(),
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.Title)
	ebiten.SetTPS(config.FPS)
	ebiten.SetWindowClosingHandled(true)

	logger.Info().Str("storage", cfg.Storage.Type).Int64("seed", cfg.Game.Seed).Msg("starting")
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error().Err(err).Msg("game loop failed")
		return err
	}
	logger.Info().Dur("uptime", time.Since(start)).Msg("exiting")
	return nil
}

// setupAudio returns nil when audio is off or the device cannot be
// opened; the game then runs silent.
func setupAudio(cfg config.AudioConfig, logger zerolog.Logger) interfaces.SoundPlayer {
	if !cfg.Enabled {
		return nil
	}
	sm := audio.NewSoundManager(cfg.Volume, logger)
	if err := sm.Initialize(); err != nil {
		logger.Warn().Err(err).Msg("audio unavailable, running without sound")
		return nil
	}
	return sm
}
