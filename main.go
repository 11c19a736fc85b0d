package main

import (
	"flag"
	"os"

	"github.com/automoto/quickdraw/config"
	"github.com/automoto/quickdraw/fonts"
	"github.com/automoto/quickdraw/scenes"
	"github.com/automoto/quickdraw/shared/tuning"
	"github.com/automoto/quickdraw/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(opts scenes.DuelOptions) (*Game, error) {
	for _, f := range []struct {
		name fonts.FontName
		ttf  []byte
		size float64
	}{
		{fonts.Regular, goregular.TTF, 12},
		{fonts.Small, goregular.TTF, 10},
		{fonts.Bold, gobold.TTF, 18},
		{fonts.Title, gobold.TTF, 36},
		{fonts.Cue, gobold.TTF, 48},
	} {
		if err := fonts.LoadFontWithSize(f.name, f.ttf, f.size); err != nil {
			return nil, err
		}
	}

	g := &Game{}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewDuelScene(g, opts)
	} else {
		g.scene = scenes.NewMenuScene(g, opts)
	}

	return g, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	skipMenu := flag.Bool("skip-menu", false, "start directly in a duel")
	debug := flag.Bool("debug", false, "debug logging and round state overlay")
	configPath := flag.String("config", "", "optional YAML tuning file")
	seed := flag.Uint64("seed", 0, "random seed for round delays (0 = random)")
	scale := flag.Int("scale", 0, "window scale (1-3), overrides the saved setting")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	config.Debug.SkipMenu = *skipMenu
	if *debug {
		config.Debug.Verbose = true
		config.Debug.Overlay = true
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	t, err := tuning.Load(config.Duel, *configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid duel timing")
	}
	config.Duel = t

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Warn().Err(err).Msg("could not initialize persistence")
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}
	if *scale > 0 {
		systems.SetWindowScale(*scale)
	}

	game, err := NewGame(scenes.DuelOptions{Timing: t.Timing(), Seed: *seed})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start")
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("game exited with error")
	}
}
