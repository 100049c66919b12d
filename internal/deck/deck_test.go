package deck

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/arcanaland/grimoire/internal/card"
)

func forest() card.Card {
	return card.Card{
		Name:       "Forest",
		Supertypes: []card.CardType{card.TypeBasicLand},
		Subtypes:   []string{"Forest"},
		Set:        card.Set{Code: "C18", Name: "Commander 2018", CardCount: 307},
		SetNumber:  304,
		Rarity:     card.RarityLand,
	}
}

func counterspell() card.Card {
	return card.Card{
		Name:       "Counterspell",
		Supertypes: []card.CardType{card.TypeInstant},
		Colors:     []card.ManaColor{card.ColorBlue},
		ManaCost:   card.ManaCost{Colored: []card.ColoredMana{{Color: card.ColorBlue, Amount: 2}}},
		Set:        card.Set{Code: "MH2", Name: "Modern Horizons 2", CardCount: 303},
		SetNumber:  267,
		Rarity:     card.RarityUncommon,
		Price:      &card.Price{USD: 1.25, FetchDate: card.NewDate(2023, 5, 1)},
	}
}

func sampleDeck() *Deck {
	name := "Simic Graves"
	return &Deck{
		Name:      &name,
		Maindeck:  []card.Card{card.MoldgrafMonstrosity(), counterspell(), forest(), forest()},
		Sideboard: []card.Card{counterspell()},
	}
}

func TestCount(t *testing.T) {
	main, side := sampleDeck().Count()
	if main != 4 || side != 1 {
		t.Errorf("Count() = %d, %d, want 4, 1", main, side)
	}
}

func TestManaCurveSkipsLands(t *testing.T) {
	curve := sampleDeck().ManaCurve()
	want := map[int]int{7: 1, 2: 1}
	if !reflect.DeepEqual(curve, want) {
		t.Errorf("ManaCurve() = %v, want %v", curve, want)
	}
	if steps := CurveSteps(curve); !reflect.DeepEqual(steps, []int{2, 7}) {
		t.Errorf("CurveSteps() = %v", steps)
	}
}

func TestAverageCMC(t *testing.T) {
	if got := sampleDeck().AverageCMC(); got != 4.5 {
		t.Errorf("AverageCMC() = %v, want 4.5", got)
	}
	if got := (&Deck{Maindeck: []card.Card{forest()}}).AverageCMC(); got != 0 {
		t.Errorf("AverageCMC() of lands = %v, want 0", got)
	}
}

func TestColorsInWUBRGOrder(t *testing.T) {
	got := sampleDeck().Colors()
	want := []card.ManaColor{card.ColorBlue, card.ColorGreen}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Colors() = %v, want %v", got, want)
	}
}

func TestValue(t *testing.T) {
	usd, unpriced := sampleDeck().Value()
	if usd < 2.969 || usd > 2.971 {
		t.Errorf("Value() usd = %v, want 2.97", usd)
	}
	if unpriced != 2 {
		t.Errorf("Value() unpriced = %d, want 2", unpriced)
	}
}

func TestDisplayName(t *testing.T) {
	if got := sampleDeck().DisplayName(); got != "Simic Graves" {
		t.Errorf("DisplayName() = %q", got)
	}
	d := &Deck{Path: "/decks/mono-green.toml"}
	if got := d.DisplayName(); got != "mono-green" {
		t.Errorf("DisplayName() = %q, want mono-green", got)
	}
	if got := (&Deck{}).DisplayName(); got != "Untitled" {
		t.Errorf("DisplayName() = %q, want Untitled", got)
	}
}

func TestSaveAndLoadDeck(t *testing.T) {
	d := sampleDeck()
	format := FormatCommander
	d.Format = &format

	path := filepath.Join(t.TempDir(), "simic.toml")
	if err := SaveDeck(path, d); err != nil {
		t.Fatalf("SaveDeck() error: %v", err)
	}

	loaded, err := LoadDeck(path)
	if err != nil {
		t.Fatalf("LoadDeck() error: %v", err)
	}
	if loaded.Path != path {
		t.Errorf("Path = %q", loaded.Path)
	}
	if loaded.Format == nil || *loaded.Format != FormatCommander {
		t.Errorf("Format = %v", loaded.Format)
	}
	if loaded.DisplayName() != "Simic Graves" {
		t.Errorf("Name = %q", loaded.DisplayName())
	}
	if !reflect.DeepEqual(loaded.Maindeck[0], d.Maindeck[0]) {
		t.Errorf("maindeck card changed:\n got %+v\nwant %+v", loaded.Maindeck[0], d.Maindeck[0])
	}
	if main, side := loaded.Count(); main != 4 || side != 1 {
		t.Errorf("Count() = %d, %d", main, side)
	}
}

func TestLoadDeckErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadDeck(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("expected error for missing deck")
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("format = \"type_1\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDeck(bad); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats() {
		for _, s := range []string{f.String(), f.Key()} {
			got, err := ParseFormat(s)
			if err != nil || got != f {
				t.Errorf("ParseFormat(%q) = %v, %v", s, got, err)
			}
		}
	}
	for _, s := range []string{"BoosterDraft", "booster-draft", " Commander Duel "} {
		if _, err := ParseFormat(s); err != nil {
			t.Errorf("ParseFormat(%q) error: %v", s, err)
		}
	}
	if FormatRochesterDraft.Key() != "rochester_draft" {
		t.Errorf("Key() = %q, want rochester_draft", FormatRochesterDraft.Key())
	}
	if len(Formats()) != 12 {
		t.Errorf("len(Formats()) = %d, want 12", len(Formats()))
	}
}
