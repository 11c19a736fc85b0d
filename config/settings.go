package config

// SettingsMenuConfig contains the values the pause menu cycles through
type SettingsMenuConfig struct {
	VolumeSteps  []float64
	WindowScales []int
}

// SettingsMenu is the global settings menu configuration
var SettingsMenu SettingsMenuConfig

func init() {
	SettingsMenu = SettingsMenuConfig{
		VolumeSteps:  []float64{0, 0.25, 0.5, 0.75, 1.0},
		WindowScales: []int{1, 2, 3},
	}
}
