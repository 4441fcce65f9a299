package gui

import (
	"encoding/json"
	"os"
)

// Config is the optional JSON config file: a theme to activate and any
// number of custom themes it may refer to.
type Config struct {
	Theme  string     `json:"theme"`
	Themes []ThemeHex `json:"themes"`
}

// ReadConfig loads a config file from path.
func ReadConfig(path string) (Config, error) {
	var config Config
	data, err := os.ReadFile(path)
	if err != nil {
		return config, err
	}
	if err := json.Unmarshal(data, &config); err != nil {
		return config, err
	}
	return config, nil
}

// ResolveTheme picks the theme named want from the config's themes, falling
// back to the built-in default when want is empty. Built-in themes may be
// referred to by name without restating them in the config.
func ResolveTheme(want string, config Config) (Theme, error) {
	if want == "" {
		want = config.Theme
	}
	if want == "" || want == ThemeBasic.Name {
		return ThemeBasic, nil
	}
	return ImportThemes(want, config.Themes)
}
