// internal/app/game.go
package app

import (
	"time"

	"go-zombie-survival/internal/assets"
	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/defs"
	"go-zombie-survival/internal/entity"
	"go-zombie-survival/internal/event"
	"go-zombie-survival/internal/input"
	"go-zombie-survival/internal/interfaces"
	"go-zombie-survival/internal/storage"
	"go-zombie-survival/internal/system"
	"go-zombie-survival/internal/types"
	"go-zombie-survival/internal/ui"
	"go-zombie-survival/internal/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Options configure a new session. Zero values get defaults.
type Options struct {
	Settings config.Settings
	Weapons  defs.WeaponLibrary
	Assets   *assets.Table
	Random   interfaces.Random      // nil: PRNG seeded from Settings.Seed
	Sound    interfaces.SoundPlayer // nil: no audio
	Logger   zerolog.Logger
	User     string
}

// StepResult reports what one frame did.
type StepResult struct {
	Paused bool // the player asked for the pause menu
	Quit   bool // the window is being closed
	Over   bool // the player is dead
}

// Stats summarise a session.
type Stats struct {
	Kills      int
	ShotsFired int
	ShotsHit   int
	Accuracy   float64
	Duration   time.Duration
}

// Game holds one play session: the world and the systems that run it.
type Game struct {
	SessionID uuid.UUID
	User      string

	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Settings        config.Settings
	Weapons         defs.WeaponLibrary

	InputSystem        *system.InputSystem
	SpawnSystem        *system.SpawnSystem
	CombatSystem       *system.CombatSystem
	PlayerSystem       *system.PlayerSystem
	WeaponSystem       *system.WeaponSystem
	MovementSystem     *system.MovementSystem
	StatusEffectSystem *system.StatusEffectSystem
	ProjectileSystem   *system.ProjectileSystem
	LifetimeSystem     *system.LifetimeSystem
	StateSystem        *system.StateSystem
	RenderSystem       *system.RenderSystem
	AudioSystem        *system.AudioSystem

	HUD *ui.HUD

	logger     zerolog.Logger
	savedKills int
}

// NewGame initializes a new session with the player in the centre of the
// screen and no enemies.
func NewGame(opts Options) *Game {
	settings := opts.Settings
	weapons := opts.Weapons
	if weapons == nil {
		weapons = defs.DefaultWeapons()
	}
	table := opts.Assets
	if table == nil {
		table = assets.NewTable()
	}
	rng := opts.Random
	if rng == nil {
		rng = utils.NewPRNGService(settings.Seed)
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	logger := opts.Logger.With().Str("user", opts.User).Logger()

	g := &Game{
		SessionID:       uuid.New(),
		User:            opts.User,
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Settings:        settings,
		Weapons:         weapons,
		HUD:             ui.NewHUD(),
		logger:          logger,
	}
	g.InputSystem = system.NewInputSystem(ecs)
	g.SpawnSystem = system.NewSpawnSystem(ecs, settings, rng, eventDispatcher, logger)
	g.CombatSystem = system.NewCombatSystem(ecs, settings, weapons, table, rng, eventDispatcher, logger)
	g.PlayerSystem = system.NewPlayerSystem(ecs, settings, eventDispatcher)
	g.WeaponSystem = system.NewWeaponSystem(ecs, weapons, rng, eventDispatcher, logger)
	g.MovementSystem = system.NewMovementSystem(ecs)
	g.StatusEffectSystem = system.NewStatusEffectSystem(ecs, settings.SlowRecovery)
	g.ProjectileSystem = system.NewProjectileSystem(ecs)
	g.LifetimeSystem = system.NewLifetimeSystem(ecs)
	g.StateSystem = system.NewStateSystem(ecs, eventDispatcher, logger)
	g.RenderSystem = system.NewRenderSystem(ecs)
	if opts.Sound != nil {
		g.AudioSystem = system.NewAudioSystem(opts.Sound, eventDispatcher)
	}

	system.CreatePlayerEntity(ecs, settings, weapons)
	g.logger.Info().Stringer("session", g.SessionID).Msg("session started")
	return g
}

// Step runs one frame. Pause and quit requests return before the game
// clock moves.
func (g *Game) Step(events []input.Event) StepResult {
	if g.StateSystem.Over() {
		return StepResult{Over: true}
	}

	in := g.InputSystem.Apply(events)
	if in.Quit || in.Pause {
		return StepResult{Paused: in.Pause, Quit: in.Quit}
	}

	g.ECS.Advance(g.Settings.TickDuration())

	g.SpawnSystem.Update()
	g.CombatSystem.Update()

	g.PlayerSystem.Update()
	g.WeaponSystem.ProcessIntent()
	g.WeaponSystem.Update()
	g.MovementSystem.Update()
	g.StatusEffectSystem.Update()
	g.ProjectileSystem.Update()
	g.LifetimeSystem.Update()

	if player := g.ECS.Player(); player != nil {
		player.Intent.ClearOneShots()
	}

	g.StateSystem.Update()
	g.SpawnSystem.UpdateDifficulty(g.Kills())

	return StepResult{Over: g.StateSystem.Over()}
}

// Draw renders the world and the HUD.
func (g *Game) Draw(r interfaces.Renderer) {
	g.RenderSystem.Draw(r)
	g.HUD.Draw(r, g.ECS, g.Weapons)
}

// ReleaseInput drops held keys and buttons, e.g. when the pause menu
// takes over.
func (g *Game) ReleaseInput() {
	g.InputSystem.Release()
}

// Subscribe attaches an extra listener to gameplay events.
func (g *Game) Subscribe(listener event.Listener, eventTypes ...event.EventType) {
	g.EventDispatcher.SubscribeAll(listener, eventTypes...)
}

func (g *Game) Kills() int {
	if player := g.ECS.Player(); player != nil {
		return player.Kills
	}
	return 0
}

func (g *Game) Over() bool {
	return g.StateSystem.Over()
}

func (g *Game) Stats() Stats {
	st := Stats{Duration: g.ECS.Now}
	if player := g.ECS.Player(); player != nil {
		st.Kills = player.Kills
		st.ShotsFired = player.ShotsFired
		st.ShotsHit = player.ShotsHit
		st.Accuracy = player.Accuracy()
	}
	return st
}

// UnsavedKills are the kills not yet added to the profile.
func (g *Game) UnsavedKills() int {
	return g.Kills() - g.savedKills
}

// MarkSaved records that the current kill count reached the profile.
func (g *Game) MarkSaved() {
	g.savedKills = g.Kills()
}

// SessionRecord builds the row stored when the session ends.
func (g *Game) SessionRecord(endedAt time.Time) storage.SessionRecord {
	st := g.Stats()
	return storage.SessionRecord{
		ID:         g.SessionID,
		User:       g.User,
		Kills:      st.Kills,
		ShotsFired: st.ShotsFired,
		ShotsHit:   st.ShotsHit,
		Duration:   st.Duration,
		EndedAt:    endedAt,
	}
}

// Weapon returns the player's current weapon.
func (g *Game) Weapon() types.WeaponType {
	if player := g.ECS.Player(); player != nil {
		return player.Current
	}
	return types.WeaponPistol
}
