package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"golang.org/x/term"

	"github.com/arcanaland/grimoire/internal/card"
)

var manaAttrs = map[card.ManaColor][]colorize.Attribute{
	card.ColorWhite:     {colorize.FgHiWhite, colorize.Bold},
	card.ColorBlue:      {colorize.FgHiBlue, colorize.Bold},
	card.ColorBlack:     {colorize.FgHiBlack, colorize.Bold},
	card.ColorRed:       {colorize.FgHiRed, colorize.Bold},
	card.ColorGreen:     {colorize.FgHiGreen, colorize.Bold},
	card.ColorColorless: {colorize.FgWhite},
}

var (
	label = colorize.New(colorize.FgCyan).SprintFunc()
	value = colorize.New(colorize.FgHiWhite).SprintfFunc()
	muted = colorize.New(colorize.Italic, colorize.FgWhite).SprintFunc()
)

// ManaSymbols renders a mana cost with each symbol in its color.
func ManaSymbols(m card.ManaCost) string {
	var b strings.Builder
	if m.Colorless > 0 || len(m.Colored) == 0 {
		b.WriteString(colorize.New(colorize.FgWhite).Sprintf("{%d}", m.Colorless))
	}
	for _, cm := range m.Colored {
		symbol := colorize.New(manaAttrs[cm.Color]...).Sprintf("{%s}", cm.Color.Symbol())
		b.WriteString(strings.Repeat(symbol, max(cm.Amount, 0)))
	}
	return b.String()
}

// CardLines returns the card information, one terminal line per entry.
// Rules and flavor text are wrapped to width.
func CardLines(c *card.Card, width int) []string {
	var lines []string

	lines = append(lines, value("%s", c.Name)+"  "+ManaSymbols(c.ManaCost))
	lines = append(lines, label(c.TypeLine()))

	if len(c.Rules) > 0 || c.FlavorText != "" {
		lines = append(lines, "")
	}
	for _, rule := range c.Rules {
		lines = append(lines, wrapText(rule, width)...)
	}
	if c.FlavorText != "" {
		for _, line := range wrapText(c.FlavorText, width) {
			lines = append(lines, muted(line))
		}
	}

	lines = append(lines, "")
	if c.IsCreature() {
		lines = append(lines, label("P/T:    ")+value("%d/%d", c.Power, c.Toughness))
	}
	lines = append(lines, label("CMC:    ")+value("%d", c.ConvertedManaCost()))
	lines = append(lines, label("Set:    ")+value("%s (%s) · %s", c.Set.Name, c.Set.Code, c.Set.ReleaseDate))
	lines = append(lines, label("Number: ")+value("%s", c.CollectorNumber())+boosterNote(c))
	lines = append(lines, label("Rarity: ")+value("%s", c.Rarity))
	if c.Illustrator != "" {
		lines = append(lines, label("Illus.: ")+value("%s", c.Illustrator))
	}

	finish := "Nonfoil"
	if c.IsFoil {
		finish = "Foil"
	}
	lines = append(lines, label("Finish: ")+value("%s", finish))

	if c.Price != nil {
		lines = append(lines, label("Price:  ")+value("$%.2f", c.Price.USD)+muted(fmt.Sprintf(" as of %s", c.Price.FetchDate)))
	} else {
		lines = append(lines, label("Price:  ")+muted("not fetched"))
	}

	return lines
}

func boosterNote(c *card.Card) string {
	if c.IsInBooster() {
		return ""
	}
	return muted(" (not in boosters)")
}

// TerminalWidth returns the width of stdout, or 80 when it is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// Card writes the card information to w, with art on the left when given.
func Card(w io.Writer, c *card.Card, art string, termWidth int) {
	var artLines []string
	maxArtWidth := 0
	if art != "" {
		artLines = strings.Split(strings.TrimRight(art, "\n"), "\n")
		for _, line := range artLines {
			if vw := visibleWidth(line); vw > maxArtWidth {
				maxArtWidth = vw
			}
		}
	}

	spacing := 0
	if maxArtWidth > 0 {
		spacing = 4
	}
	infoStartCol := maxArtWidth + spacing

	infoWidth := termWidth - infoStartCol - 4
	if infoWidth < 20 {
		infoWidth = 20
	}
	infoLines := CardLines(c, infoWidth)

	fmt.Fprintln(w)

	maxLines := max(len(artLines), len(infoLines))
	for i := 0; i < maxLines; i++ {
		fmt.Fprint(w, "  ")
		if i < len(artLines) {
			fmt.Fprint(w, artLines[i])
			fmt.Fprint(w, strings.Repeat(" ", infoStartCol-visibleWidth(artLines[i])))
		} else {
			fmt.Fprint(w, strings.Repeat(" ", infoStartCol))
		}

		if i < len(infoLines) {
			fmt.Fprint(w, infoLines[i])
		}

		fmt.Fprintln(w)
	}

	fmt.Fprintln(w)
}
