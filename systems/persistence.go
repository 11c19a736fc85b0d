package systems

import (
	"encoding/json"

	cfg "github.com/automoto/quickdraw/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/rs/zerolog/log"
)

// SavedSettings represents the settings data stored on disk.
// Scores are never saved.
type SavedSettings struct {
	SFXVolume   float64 `json:"sfxVolume"`
	Fullscreen  bool    `json:"fullscreen"`
	WindowScale int     `json:"windowScale"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "quickdraw",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil, nil when nothing
// has been saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Warn().Err(err).Msg("could not load settings")
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Warn().Err(err).Msg("could not parse saved settings")
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Warn().Err(err).Msg("could not serialize settings")
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Warn().Err(err).Msg("could not save settings")
		return err
	}
	return nil
}

// SaveCurrentSettings snapshots the live audio and window state
func SaveCurrentSettings() {
	_ = SaveSettings(&SavedSettings{
		SFXVolume:   globalSFXVolume,
		Fullscreen:  ebiten.IsFullscreen(),
		WindowScale: currentWindowScale,
	})
}

var currentWindowScale = 2

// SetWindowScale resizes the window to a multiple of the logical screen size.
// Unknown scales are ignored.
func SetWindowScale(scale int) {
	for _, s := range cfg.SettingsMenu.WindowScales {
		if s != scale {
			continue
		}
		currentWindowScale = scale
		if !ebiten.IsFullscreen() {
			ebiten.SetWindowSize(cfg.C.Width*scale, cfg.C.Height*scale)
		}
		return
	}
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference.
// Used during startup before scenes are created.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	globalSFXVolume = clampVolume(saved.SFXVolume)
	ebiten.SetFullscreen(saved.Fullscreen)

	SetWindowScale(saved.WindowScale)
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
