package card

import (
	"fmt"
	"strings"
)

// CardType is a card supertype, seen on the left side of the type line before the dash.
type CardType int

const (
	TypeBasicLand CardType = iota
	TypeLand
	TypeCreature
	TypeArtifact
	TypeEnchantment
	TypePlaneswalker
	TypeInstant
	TypeSorcery
)

var cardTypeNames = []string{"Basic Land", "Land", "Creature", "Artifact", "Enchantment", "Planeswalker", "Instant", "Sorcery"}

// CardTypes returns every card type in declaration order.
func CardTypes() []CardType {
	return []CardType{TypeBasicLand, TypeLand, TypeCreature, TypeArtifact, TypeEnchantment, TypePlaneswalker, TypeInstant, TypeSorcery}
}

func (t CardType) Valid() bool { return t >= TypeBasicLand && t <= TypeSorcery }

func (t CardType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("CardType(%d)", int(t))
	}
	return cardTypeNames[t]
}

// Key returns the snake_case form used in card files.
func (t CardType) Key() string { return NameKey(t.String()) }

func (t CardType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid card type: %d", int(t))
	}
	return []byte(t.Key()), nil
}

func (t *CardType) UnmarshalText(text []byte) error {
	parsed, err := ParseCardType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseCardType accepts a display name ("Basic Land") or key ("basic_land").
func ParseCardType(s string) (CardType, error) {
	for _, t := range CardTypes() {
		if NameMatches(s, t.String()) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown card type: %q", s)
}

// ManaColor is one of the five colors (WUBRG) or colorless.
type ManaColor int

const (
	ColorWhite ManaColor = iota
	ColorBlue
	ColorBlack
	ColorRed
	ColorGreen
	ColorColorless
)

var manaColorNames = []string{"White", "Blue", "Black", "Red", "Green", "Colorless"}

// WUBRG abbreviations, with C for colorless.
var manaColorSymbols = []string{"W", "U", "B", "R", "G", "C"}

// ManaColors returns every mana color in WUBRG order, colorless last.
func ManaColors() []ManaColor {
	return []ManaColor{ColorWhite, ColorBlue, ColorBlack, ColorRed, ColorGreen, ColorColorless}
}

func (c ManaColor) Valid() bool { return c >= ColorWhite && c <= ColorColorless }

func (c ManaColor) String() string {
	if !c.Valid() {
		return fmt.Sprintf("ManaColor(%d)", int(c))
	}
	return manaColorNames[c]
}

// Symbol returns the single-letter mana symbol (W, U, B, R, G or C).
func (c ManaColor) Symbol() string {
	if !c.Valid() {
		return "?"
	}
	return manaColorSymbols[c]
}

func (c ManaColor) Key() string { return NameKey(c.String()) }

func (c ManaColor) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid mana color: %d", int(c))
	}
	return []byte(c.Key()), nil
}

func (c *ManaColor) UnmarshalText(text []byte) error {
	parsed, err := ParseManaColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseManaColor accepts a color name ("Green", "green") or its symbol ("G").
func ParseManaColor(s string) (ManaColor, error) {
	for _, c := range ManaColors() {
		if NameMatches(s, c.String()) || strings.EqualFold(strings.TrimSpace(s), c.Symbol()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown mana color: %q", s)
}

// Rarity is seen as the color of the set symbol on the type line.
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityMythicRare
	RarityLand
	RaritySpecial
	RarityToken
)

var rarityNames = []string{"Common", "Uncommon", "Rare", "Mythic Rare", "Land", "Special", "Token"}

func Rarities() []Rarity {
	return []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityMythicRare, RarityLand, RaritySpecial, RarityToken}
}

func (r Rarity) Valid() bool { return r >= RarityCommon && r <= RarityToken }

func (r Rarity) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rarity(%d)", int(r))
	}
	return rarityNames[r]
}

func (r Rarity) Key() string { return NameKey(r.String()) }

func (r Rarity) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid rarity: %d", int(r))
	}
	return []byte(r.Key()), nil
}

func (r *Rarity) UnmarshalText(text []byte) error {
	parsed, err := ParseRarity(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func ParseRarity(s string) (Rarity, error) {
	for _, r := range Rarities() {
		if NameMatches(s, r.String()) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown rarity: %q", s)
}

// NameKey turns a display name into its file key ("Mythic Rare" -> "mythic_rare").
func NameKey(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "_"))
}

// NameMatches compares ignoring case, spaces, underscores and hyphens,
// so "MythicRare", "mythic_rare" and "Mythic Rare" all match.
func NameMatches(a, b string) bool {
	return squash(a) == squash(b)
}

func squash(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}
