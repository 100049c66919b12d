package deck

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/grimoire/internal/card"
)

// Deck represents a Magic the Gathering deck
type Deck struct {
	Name      *string     `toml:"name,omitempty"`
	Format    *Format     `toml:"format,omitempty"`
	Maindeck  []card.Card `toml:"maindeck"`
	Sideboard []card.Card `toml:"sideboard"`

	// File the deck was loaded from, empty for decks built in memory
	Path string `toml:"-"`
}

// LoadDeck loads a deck from a TOML file
func LoadDeck(deckPath string) (*Deck, error) {
	if _, err := os.Stat(deckPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("deck file not found: %s", deckPath)
	}

	var d Deck
	if _, err := toml.DecodeFile(deckPath, &d); err != nil {
		return nil, fmt.Errorf("error parsing deck file: %v", err)
	}
	d.Path = deckPath

	return &d, nil
}

// SaveDeck writes the deck to a TOML file
func SaveDeck(deckPath string, d *Deck) error {
	file, err := os.Create(deckPath)
	if err != nil {
		return fmt.Errorf("error creating deck file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(d); err != nil {
		return fmt.Errorf("error encoding deck: %v", err)
	}

	return nil
}

// DisplayName returns the deck name, falling back to the file name
func (d *Deck) DisplayName() string {
	if d.Name != nil && *d.Name != "" {
		return *d.Name
	}
	if d.Path != "" {
		return strings.TrimSuffix(filepath.Base(d.Path), filepath.Ext(d.Path))
	}
	return "Untitled"
}

// Count returns the number of cards in the maindeck and sideboard
func (d *Deck) Count() (maindeck, sideboard int) {
	return len(d.Maindeck), len(d.Sideboard)
}

// ManaCurve counts maindeck spells by converted mana cost. Lands are skipped.
func (d *Deck) ManaCurve() map[int]int {
	curve := make(map[int]int)
	for i := range d.Maindeck {
		c := &d.Maindeck[i]
		if isLand(c) {
			continue
		}
		curve[c.ConvertedManaCost()]++
	}
	return curve
}

// AverageCMC is the mean converted mana cost of the maindeck spells.
func (d *Deck) AverageCMC() float64 {
	total, spells := 0, 0
	for i := range d.Maindeck {
		c := &d.Maindeck[i]
		if isLand(c) {
			continue
		}
		total += c.ConvertedManaCost()
		spells++
	}
	if spells == 0 {
		return 0
	}
	return float64(total) / float64(spells)
}

// Colors returns every color appearing on maindeck cards, in WUBRG order.
func (d *Deck) Colors() []card.ManaColor {
	present := make(map[card.ManaColor]bool)
	for _, c := range d.Maindeck {
		for _, col := range c.Colors {
			present[col] = true
		}
	}

	var colors []card.ManaColor
	for _, col := range card.ManaColors() {
		if present[col] {
			colors = append(colors, col)
		}
	}
	return colors
}

// Value sums the known USD prices of every card in the deck. Cards
// without a fetched price are counted in unpriced.
func (d *Deck) Value() (usd float64, unpriced int) {
	for _, list := range [][]card.Card{d.Maindeck, d.Sideboard} {
		for _, c := range list {
			if c.Price == nil {
				unpriced++
				continue
			}
			usd += c.Price.USD
		}
	}
	return usd, unpriced
}

// CurveSteps returns the costs present in the curve in ascending order
func CurveSteps(curve map[int]int) []int {
	steps := make([]int, 0, len(curve))
	for cmc := range curve {
		steps = append(steps, cmc)
	}
	sort.Ints(steps)
	return steps
}

func isLand(c *card.Card) bool {
	return c.HasType(card.TypeLand) || c.HasType(card.TypeBasicLand)
}
