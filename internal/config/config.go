package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const appName = "grimoire"

// DefaultArtWidth is the width in terminal cells of generated card art
const DefaultArtWidth = 32

// Config represents the application configuration
type Config struct {
	DefaultDeck string `toml:"default_deck"`
	ArtWidth    int    `toml:"art_width"`
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	return xdgDir("XDG_DATA_HOME", ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// GetXDGCacheHome returns XDG_CACHE_HOME or default path
func GetXDGCacheHome() string {
	return xdgDir("XDG_CACHE_HOME", ".cache")
}

func xdgDir(env string, fallback ...string) string {
	if dir := os.Getenv(env); dir != "" {
		return dir
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{homeDir}, fallback...)...)
}

// GetDeckLibraryPath returns the path to the deck library
func GetDeckLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), appName, "decks")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), appName, "config.toml")
}

// GetCacheDir returns the directory for generated files such as card art
func GetCacheDir() string {
	return filepath.Join(GetXDGCacheHome(), appName)
}

// LoadConfig loads the config file
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	var config Config
	_, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}

	if config.ArtWidth <= 0 {
		config.ArtWidth = DefaultArtWidth
	}

	return &config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := &Config{
		ArtWidth: DefaultArtWidth,
	}

	if err := writeConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

func writeConfig(config *Config) error {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %v", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}

	return nil
}

// GetDeckPath returns the path to a deck file, either in the deck library or a relative path.
// Names in the library may be given with or without the .toml extension.
func GetDeckPath(deckName string) (string, error) {
	libraryPath := GetDeckLibraryPath()
	candidates := []string{filepath.Join(libraryPath, deckName)}
	if !strings.HasSuffix(deckName, ".toml") {
		candidates = append(candidates, filepath.Join(libraryPath, deckName+".toml"))
	}

	for _, deckPath := range candidates {
		if info, err := os.Stat(deckPath); err == nil && !info.IsDir() {
			return deckPath, nil
		}
	}

	// If not found in the library, treat as a relative path
	if info, err := os.Stat(deckName); err == nil && !info.IsDir() {
		return deckName, nil
	}

	return "", fmt.Errorf("deck not found: %s", deckName)
}

// GetDefaultDeck returns the default deck name from config
func GetDefaultDeck() (string, error) {
	config, err := LoadConfig()
	if err != nil {
		return "", err
	}

	return config.DefaultDeck, nil
}

// SetDefaultDeck sets the default deck in the config
func SetDefaultDeck(deckName string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.DefaultDeck = deckName
	return writeConfig(config)
}
