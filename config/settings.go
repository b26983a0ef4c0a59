package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// SettingsFile is looked up in the working directory; defaults apply
// when it is absent.
const SettingsFile = "galaxy.json"

type Settings struct {
	Window     WindowSettings       `json:"window"`
	Server     ServerSettings       `json:"server"`
	Generation GenerationParameters `json:"generation"`
}

type WindowSettings struct {
	Width     int `json:"width"`
	Height    int `json:"height"`
	TargetFPS int `json:"targetFps"`
}

type ServerSettings struct {
	Port             int `json:"port"`
	UpdateIntervalMs int `json:"updateIntervalMs"`
}

// DefaultSettings returns the built-in configuration.
func DefaultSettings() Settings {
	return Settings{
		Window: WindowSettings{
			Width:     1280,
			Height:    720,
			TargetFPS: 60,
		},
		Server: ServerSettings{
			Port:             8080,
			UpdateIntervalMs: 500,
		},
		Generation: DefaultParameters(),
	}
}

// LoadSettings reads SettingsFile from path, falling back to defaults
// when the file does not exist. A present-but-broken file is an error;
// silently generating a default galaxy over a typo would be worse.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Printf("No %s found, using defaults\n", path)
			return settings, nil
		}
		return settings, err
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(&settings); err != nil {
		return settings, fmt.Errorf("error parsing %s: %v", path, err)
	}

	fmt.Printf("Loaded settings: %d stars, galaxy radius %.0f pc\n",
		settings.Generation.StarCount, settings.Generation.GalaxyRadius)
	return settings, nil
}

// SaveSettings writes the current configuration back out, so a tuned
// parameter set survives a restart.
func SaveSettings(path string, settings Settings) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(settings); err != nil {
		return fmt.Errorf("error writing %s: %v", path, err)
	}
	return nil
}

// ReloadInto re-reads the settings file and pushes the generation
// block into the store, marking it dirty if anything changed.
func ReloadInto(path string, store *Store) error {
	settings, err := LoadSettings(path)
	if err != nil {
		return err
	}
	if settings.Generation != store.Peek() {
		store.Mutate(func(p *GenerationParameters) {
			*p = settings.Generation
		})
	}
	return nil
}
