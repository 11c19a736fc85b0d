package config

import (
	"image/color"

	"github.com/automoto/quickdraw/shared/tuning"
)

// ArenaConfig contains backdrop colors for the duel stage
type ArenaConfig struct {
	SkyTop       color.RGBA
	SkyBottom    color.RGBA
	GroundColor  color.RGBA
	HorizonColor color.RGBA
	SkyBands     int // number of gradient bands drawn for the sky
}

// CharacterConfig contains procedural duelist drawing values
type CharacterConfig struct {
	BodyWidth   float32
	BodyHeight  float32
	HeadSize    float32
	SwordLength float32
	SwordWidth  float32
	PlayerColor color.RGBA
	EnemyColor  color.RGBA
	SwordColor  color.RGBA
	LoseTint    color.RGBA // body color when defeated
}

// IndicatorConfig contains the strike cue appearance
type IndicatorConfig struct {
	Text        string
	Color       color.RGBA
	PopDuration float32 // seconds for the pop-in tween
	StartScale  float32
	Scale       float32 // resting scale once popped in
}

// EffectsConfig contains strike feedback values
type EffectsConfig struct {
	ShakeIntensity float64 // pixels
	ShakeFrames    int
	FlashFrames    int
	FlashColor     color.RGBA
}

// HUDConfig contains round/score overlay values
type HUDConfig struct {
	Margin      int
	TextColor   color.RGBA
	WinColor    color.RGBA
	LoseColor   color.RGBA
	BannerY     int
	WinBanner   string
	LoseBanner  string
	EarlyBanner string
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	Title             string
	Subtitle          string
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to the duel
	Verbose  bool // Debug-level logging
	Overlay  bool // Round state overlay, toggled in game with F3
}

// Global configuration instances
var C *Config
var Duel tuning.Tuning
var Arena ArenaConfig
var Character CharacterConfig
var Indicator IndicatorConfig
var HUD HUDConfig
var Effects EffectsConfig
var Pause PauseConfig
var Menu MenuConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Steel        = color.RGBA{R: 210, G: 220, B: 230, A: 255}
	Ink          = color.RGBA{R: 20, G: 20, B: 28, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for duelist facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "Quickdraw",
	}

	// Classic timing: 3-4s until the cue, opponent strikes 1-2s after it
	Duel = tuning.Defaults()

	Arena = ArenaConfig{
		SkyTop:       color.RGBA{R: 250, G: 120, B: 60, A: 255},
		SkyBottom:    color.RGBA{R: 255, G: 210, B: 140, A: 255},
		GroundColor:  color.RGBA{R: 60, G: 40, B: 35, A: 255},
		HorizonColor: color.RGBA{R: 120, G: 60, B: 50, A: 255},
		SkyBands:     24,
	}

	Character = CharacterConfig{
		BodyWidth:   18,
		BodyHeight:  46,
		HeadSize:    14,
		SwordLength: 34,
		SwordWidth:  3,
		PlayerColor: Ink,
		EnemyColor:  color.RGBA{R: 90, G: 20, B: 30, A: 255},
		SwordColor:  Steel,
		LoseTint:    color.RGBA{R: 110, G: 100, B: 100, A: 255},
	}

	Indicator = IndicatorConfig{
		Text:        "!",
		Color:       Red,
		PopDuration: 0.25,
		StartScale:  0.2,
		Scale:       1.0,
	}

	Effects = EffectsConfig{
		ShakeIntensity: 4,
		ShakeFrames:    12,
		FlashFrames:    8,
		FlashColor:     White,
	}

	HUD = HUDConfig{
		Margin:      10,
		TextColor:   White,
		WinColor:    LightGreen,
		LoseColor:   LightRed,
		BannerY:     70,
		WinBanner:   "YOU WIN",
		LoseBanner:  "TOO SLOW",
		EarlyBanner: "TOO EARLY",
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 25, G: 15, B: 20, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		Title:             "QUICKDRAW",
		Subtitle:          "Wait for the signal. Strike first.",
		TitleY:            90,
		MenuStartY:        170,
		MenuItemHeight:    30,
		MenuItemGap:       12,
		MenuOptions:       []string{"Duel", "Exit"},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
	}
}
