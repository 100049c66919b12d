package config

import (
	"os"
	"path/filepath"
	"testing"
)

func setXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(root, "cache"))
	return root
}

func TestPathsFollowXDG(t *testing.T) {
	root := setXDG(t)

	if got, want := GetDeckLibraryPath(), filepath.Join(root, "data", "grimoire", "decks"); got != want {
		t.Errorf("GetDeckLibraryPath() = %q, want %q", got, want)
	}
	if got, want := GetConfigFilePath(), filepath.Join(root, "config", "grimoire", "config.toml"); got != want {
		t.Errorf("GetConfigFilePath() = %q, want %q", got, want)
	}
	if got, want := GetCacheDir(), filepath.Join(root, "cache", "grimoire"); got != want {
		t.Errorf("GetCacheDir() = %q, want %q", got, want)
	}
}

func TestPathsFallBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")

	if got, want := GetXDGDataHome(), filepath.Join(home, ".local", "share"); got != want {
		t.Errorf("GetXDGDataHome() = %q, want %q", got, want)
	}
	if got, want := GetXDGConfigHome(), filepath.Join(home, ".config"); got != want {
		t.Errorf("GetXDGConfigHome() = %q, want %q", got, want)
	}
}

func TestLoadConfigCreatesDefault(t *testing.T) {
	setXDG(t)

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if config.DefaultDeck != "" || config.ArtWidth != DefaultArtWidth {
		t.Errorf("unexpected default config: %+v", config)
	}
	if _, err := os.Stat(GetConfigFilePath()); err != nil {
		t.Errorf("config file not written: %v", err)
	}
}

func TestSetDefaultDeck(t *testing.T) {
	setXDG(t)

	if err := SetDefaultDeck("simic-graves"); err != nil {
		t.Fatalf("SetDefaultDeck() error: %v", err)
	}
	got, err := GetDefaultDeck()
	if err != nil {
		t.Fatalf("GetDefaultDeck() error: %v", err)
	}
	if got != "simic-graves" {
		t.Errorf("GetDefaultDeck() = %q", got)
	}
}

func TestGetDeckPath(t *testing.T) {
	setXDG(t)
	library := GetDeckLibraryPath()
	if err := os.MkdirAll(library, 0755); err != nil {
		t.Fatal(err)
	}
	deckFile := filepath.Join(library, "mono-green.toml")
	if err := os.WriteFile(deckFile, []byte("name = \"Mono Green\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"mono-green", "mono-green.toml"} {
		got, err := GetDeckPath(name)
		if err != nil || got != deckFile {
			t.Errorf("GetDeckPath(%q) = %q, %v", name, got, err)
		}
	}

	if _, err := GetDeckPath("missing"); err == nil {
		t.Error("expected error for missing deck")
	}
}
