package card

import (
	"fmt"
	"strings"
)

// Card represents a single printing of a Magic the Gathering card.
type Card struct {
	Name        string      `toml:"name"`         // Name above the artwork
	Supertypes  []CardType  `toml:"supertypes"`   // e.g. Artifact Creature
	Subtypes    []string    `toml:"subtypes"`     // e.g. Human Soldier
	IsLegendary bool        `toml:"is_legendary"` // Leftmost supertype on the type line
	Rules       []string    `toml:"rules"`        // One paragraph of rules text each
	FlavorText  string      `toml:"flavor_text"`  // Italic text below the rules, may be empty
	Power       int         `toml:"power"`        // Only meaningful for creatures
	Toughness   int         `toml:"toughness"`    // Only meaningful for creatures
	Colors      []ManaColor `toml:"colors"`
	ManaCost    ManaCost    `toml:"mana_cost"`
	Illustrator string      `toml:"illustrator"`
	Set         Set         `toml:"set"`
	SetNumber   int         `toml:"set_number"` // 1-based index in the set
	Rarity      Rarity      `toml:"rarity"`
	Price       *Price      `toml:"price,omitempty"` // nil when never fetched
	IsFoil      bool        `toml:"is_foil"`
}

// ManaCost is the cost of a spell or an activated ability.
type ManaCost struct {
	Colorless int           `toml:"colorless"` // Generic mana of any color
	Colored   []ColoredMana `toml:"colored"`   // Each color should appear once
}

// ColoredMana is a requirement of Amount mana of a single color.
type ColoredMana struct {
	Color  ManaColor `toml:"color"`
	Amount int       `toml:"amount"`
}

// Set is the release a card was printed in (e.g. "Portal Second Age (P02)").
type Set struct {
	Code        string `toml:"code"` // Usually three characters
	Name        string `toml:"name"`
	CardCount   uint32 `toml:"card_count"`
	ReleaseDate Date   `toml:"release_date"`
}

// Price is a point-in-time quote for a card.
type Price struct {
	USD       float64 `toml:"usd"`
	FetchDate Date    `toml:"fetch_date"`
}

func (p Price) String() string {
	return fmt.Sprintf("$%.2f (%s)", p.USD, p.FetchDate)
}

// Total sums the generic and colored requirements. Negative amounts are
// not guarded against and reduce the total.
func (m ManaCost) Total() int {
	total := m.Colorless
	for _, c := range m.Colored {
		total += c.Amount
	}
	return total
}

// String renders the cost in symbol notation, e.g. {4}{G}{G}{G}.
func (m ManaCost) String() string {
	var b strings.Builder
	if m.Colorless > 0 || len(m.Colored) == 0 {
		fmt.Fprintf(&b, "{%d}", m.Colorless)
	}
	for _, c := range m.Colored {
		for i := 0; i < c.Amount; i++ {
			fmt.Fprintf(&b, "{%s}", c.Color.Symbol())
		}
	}
	return b.String()
}

// ConvertedManaCost is the total mana needed to cast the card, not
// counting activated abilities or rulings.
func (c *Card) ConvertedManaCost() int {
	return c.ManaCost.Total()
}

// IsInBooster reports whether the card is a regular booster printing.
// Cards numbered past the set's card count are duplicate reprints that
// carry a single collector number instead of "n/count". Negative numbers
// are never booster cards.
func (c *Card) IsInBooster() bool {
	return c.SetNumber >= 0 && uint64(c.SetNumber) <= uint64(c.Set.CardCount)
}

func (c *Card) HasType(t CardType) bool {
	for _, st := range c.Supertypes {
		if st == t {
			return true
		}
	}
	return false
}

// IsCreature reports whether power and toughness apply to the card.
func (c *Card) IsCreature() bool {
	return c.HasType(TypeCreature)
}

func (c *Card) HasColor(color ManaColor) bool {
	for _, cc := range c.Colors {
		if cc == color {
			return true
		}
	}
	return false
}

// TypeLine renders the printed type line, e.g. "Legendary Creature — Insect".
func (c *Card) TypeLine() string {
	var parts []string
	if c.IsLegendary {
		parts = append(parts, "Legendary")
	}
	for _, t := range c.Supertypes {
		parts = append(parts, t.String())
	}
	line := strings.Join(parts, " ")
	if len(c.Subtypes) > 0 {
		line += " — " + strings.Join(c.Subtypes, " ")
	}
	return line
}

// CollectorNumber renders the set number the way it is printed: "156/307"
// for booster cards and just the number for duplicate reprints.
func (c *Card) CollectorNumber() string {
	if c.IsInBooster() {
		return fmt.Sprintf("%d/%d", c.SetNumber, c.Set.CardCount)
	}
	return fmt.Sprintf("%d", c.SetNumber)
}
