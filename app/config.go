package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/plus3/playpark/logger"
)

// Config holds the startup settings read from the TOML config file
type Config struct {
	Window   WindowConfig  `toml:"window"`
	Assets   AssetConfig   `toml:"assets"`
	Controls ControlConfig `toml:"controls"`
	Overlay  OverlayConfig `toml:"overlay"`
}

// WindowConfig configures the GLFW window
type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	VSync  bool   `toml:"vsync"`
}

// AssetConfig locates the model, texture and shader files
type AssetConfig struct {
	Dir string `toml:"dir"`
}

// ControlConfig tunes the camera controls
type ControlConfig struct {
	MouseSensitivity float32 `toml:"mouse_sensitivity"`
	MoveSpeed        float32 `toml:"move_speed"`
}

// OverlayConfig configures the debug overlay
type OverlayConfig struct {
	Enabled bool `toml:"enabled"`
}

// DefaultConfig returns the settings used when no config file exists
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:  "playpark",
			Width:  800,
			Height: 800,
			VSync:  true,
		},
		Assets: AssetConfig{
			Dir: "assets",
		},
		Controls: ControlConfig{
			MouseSensitivity: 0.2,
			MoveSpeed:        5,
		},
		Overlay: OverlayConfig{
			Enabled: true,
		},
	}
}

// LoadConfig reads the config file, layering it over the defaults. A
// missing file is not an error; malformed TOML is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Logf("config", "%s not found, using defaults", path)
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("config: %s: %w", path, err)
	}

	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return DefaultConfig(), fmt.Errorf("config: %s: window size must be positive", path)
	}

	logger.Logf("config", "loaded %s", path)
	return cfg, nil
}
