package deck

import (
	"fmt"

	"github.com/arcanaland/grimoire/internal/card"
)

// Format is a play format a deck is built for. The list is incomplete.
type Format int

const (
	FormatStandard Format = iota
	FormatModern
	FormatPioneer
	FormatHistoric
	FormatLegacy
	FormatVintage
	FormatPauper
	FormatSealed
	FormatBoosterDraft
	FormatRochesterDraft
	FormatCommander
	FormatCommanderDuel
)

var formatNames = []string{
	"Standard", "Modern", "Pioneer", "Historic", "Legacy", "Vintage", "Pauper",
	"Sealed", "Booster Draft", "Rochester Draft", "Commander", "Commander Duel",
}

func Formats() []Format {
	formats := make([]Format, len(formatNames))
	for i := range formatNames {
		formats[i] = Format(i)
	}
	return formats
}

func (f Format) Valid() bool { return f >= FormatStandard && f <= FormatCommanderDuel }

func (f Format) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// Key returns the snake_case form used in deck files.
func (f Format) Key() string {
	return card.NameKey(f.String())
}

func (f Format) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("invalid format: %d", int(f))
	}
	return []byte(f.Key()), nil
}

func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ParseFormat accepts a display name ("Booster Draft") or key ("booster_draft").
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats() {
		if card.NameMatches(s, f.String()) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown format: %q", s)
}
