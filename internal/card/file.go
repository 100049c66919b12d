package card

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// Decode reads a card from TOML.
func Decode(r io.Reader) (*Card, error) {
	var c Card
	if _, err := toml.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("error decoding card: %w", err)
	}
	return &c, nil
}

// LoadFile reads a card from a TOML file.
func LoadFile(path string) (*Card, error) {
	var c Card
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return nil, fmt.Errorf("error parsing card file %s: %w", path, err)
	}
	return &c, nil
}

// Encode writes a card as TOML.
func Encode(w io.Writer, c Card) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("error encoding card: %w", err)
	}
	return nil
}

// SaveFile writes a card to path, replacing any existing file.
func SaveFile(path string, c Card) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating card file: %w", err)
	}
	defer file.Close()

	return Encode(file, c)
}
