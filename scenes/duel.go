package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/quickdraw/assets"
	cfg "github.com/automoto/quickdraw/config"
	"github.com/automoto/quickdraw/duel"
	"github.com/automoto/quickdraw/systems"
	"github.com/automoto/quickdraw/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DuelOptions carries the startup configuration into each duel.
type DuelOptions struct {
	Timing duel.Timing
	Seed   uint64 // 0 picks a random seed per duel
}

// DuelScene runs rounds between the player and the timed opponent until
// the player quits from the pause menu.
type DuelScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	opts         DuelOptions
	once         sync.Once
}

// NewDuelScene creates a duel scene. The first round starts on its first update.
func NewDuelScene(sc SceneChanger, opts DuelOptions) *DuelScene {
	return &DuelScene{sceneChanger: sc, opts: opts}
}

func (ds *DuelScene) Update() {
	ds.once.Do(ds.configure)
	ds.ecs.Update()

	if systems.IsQuitRequested(ds.ecs) {
		systems.StopRound(ds.ecs)
		ds.sceneChanger.ChangeScene(NewMenuScene(ds.sceneChanger, ds.opts))
	}
}

func (ds *DuelScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)
}

func (ds *DuelScene) configure() {
	// Preload assets to avoid lag on first use
	systems.PreloadAllSFX()
	if err := assets.LoadShaders(); err != nil {
		log.Warn().Err(err).Msg("vignette disabled")
	}

	e := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first, even when paused for menu sounds)
	e.AddSystem(systems.UpdateAudio)

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateDebug)
	e.AddSystem(systems.UpdatePause)

	// Duel systems stop while paused
	e.AddSystem(systems.WithPauseCheck(systems.UpdateRound))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateIndicator))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))

	e.AddRenderer(cfg.Default, systems.DrawArena)
	e.AddRenderer(cfg.Default, systems.DrawCharacters)
	e.AddRenderer(cfg.Default, systems.DrawIndicator)
	e.AddRenderer(cfg.Default, systems.DrawFlash)
	e.AddRenderer(cfg.Overlay, systems.DrawHUD)
	e.AddRenderer(cfg.Overlay, systems.DrawDebug)
	e.AddRenderer(cfg.Overlay, systems.DrawPause)

	ds.ecs = e

	layout := assets.MustLoadArena()
	factory.CreateStage(e, layout)
	player := factory.CreatePlayer(e, layout.Player)
	enemy := factory.CreateEnemy(e, layout.Enemy)
	factory.CreateIndicator(e, layout)

	opts := []duel.Option{
		duel.WithObserver(systems.NewRoundObserver(e)),
		duel.WithLogger(log.With().Str("scene", "duel").Logger()),
	}
	if ds.opts.Seed != 0 {
		opts = append(opts, duel.WithSampler(duel.NewSeededSampler(ds.opts.Seed)))
	}

	timer, err := duel.NewRoundTimer(ds.opts.Timing,
		systems.NewCharacterVisual(player),
		systems.NewCharacterVisual(enemy),
		opts...,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid duel timing")
	}

	factory.CreateRound(e, timer)

	timer.StartRound()
}
