package card

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const moldgrafTOML = `
name = "Moldgraf Monstrosity"
supertypes = ["creature"]
subtypes = ["Insect"]
is_legendary = false
rules = ["Trample"]
flavor_text = "The border between life and death is as thin as a layer of topsoil."
power = 8
toughness = 8
colors = ["green"]
illustrator = "Tomasz Jedruszek"
set_number = 156
rarity = "rare"
is_foil = false

[mana_cost]
colorless = 4

[[mana_cost.colored]]
color = "G"
amount = 3

[set]
code = "C18"
name = "Commander 2018"
card_count = 307
release_date = "2018-08-09"

[price]
usd = 0.47
fetch_date = "2022-09-11"
`

func TestDecode(t *testing.T) {
	c, err := Decode(strings.NewReader(moldgrafTOML))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	if c.ConvertedManaCost() != 7 {
		t.Errorf("ConvertedManaCost() = %d, want 7", c.ConvertedManaCost())
	}
	if !c.IsCreature() || c.Rarity != RarityRare {
		t.Errorf("unexpected types/rarity: %v %v", c.Supertypes, c.Rarity)
	}
	if c.Set.ReleaseDate != NewDate(2018, 8, 9) {
		t.Errorf("ReleaseDate = %v", c.Set.ReleaseDate)
	}
	if c.Price == nil || c.Price.USD != 0.47 {
		t.Errorf("Price = %v", c.Price)
	}
}

func TestDecodeWithoutPrice(t *testing.T) {
	src := strings.Replace(moldgrafTOML, "[price]\nusd = 0.47\nfetch_date = \"2022-09-11\"\n", "", 1)
	c, err := Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if c.Price != nil {
		t.Errorf("Price = %v, want nil", c.Price)
	}
}

func TestDecodeRejectsUnknownEnum(t *testing.T) {
	src := strings.Replace(moldgrafTOML, `rarity = "rare"`, `rarity = "ultra"`, 1)
	if _, err := Decode(strings.NewReader(src)); err == nil {
		t.Fatal("expected error for unknown rarity")
	}
}

func TestSaveAndLoadFile(t *testing.T) {
	want := MoldgrafMonstrosity()
	path := filepath.Join(t.TempDir(), "moldgraf.toml")

	if err := SaveFile(path, want); err != nil {
		t.Fatalf("SaveFile() error: %v", err)
	}
	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if !reflect.DeepEqual(*got, want) {
		t.Errorf("card changed across save/load:\n got %+v\nwant %+v", *got, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte(`rarity = "rare"`)) {
		t.Errorf("rarity not written as key:\n%s", data)
	}
}

func TestEncodeOmitsMissingPrice(t *testing.T) {
	c := MoldgrafMonstrosity()
	c.Price = nil

	var buf bytes.Buffer
	if err := Encode(&buf, c); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if strings.Contains(buf.String(), "[price]") {
		t.Errorf("unexpected price table:\n%s", buf.String())
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2018-08-09", NewDate(2018, 8, 9), false},
		{"2022-09-11T00:00:00Z", NewDate(2022, 9, 11), false},
		{"09/11/2022", Date{}, true},
		{"", Date{}, true},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDateString(t *testing.T) {
	d := NewDate(2018, 8, 9)
	if d.String() != "2018-08-09" {
		t.Errorf("String() = %q", d.String())
	}
	if d.Time().Weekday().String() != "Thursday" {
		t.Errorf("Time() = %v", d.Time())
	}
	if !(Date{}).IsZero() || d.IsZero() {
		t.Error("IsZero mismatch")
	}
}
