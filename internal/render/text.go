package render

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// SGR and other CSI sequences, e.g. "\x1b[38;2;1;2;3m"
var csiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[@-~]`)

// wrapText breaks text into lines of at most width visible runes. Words
// longer than width get a line of their own. A width below 1 disables wrapping.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	if width < 1 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	line := words[0]
	lineWidth := visibleWidth(line)
	for _, word := range words[1:] {
		w := visibleWidth(word)
		if lineWidth+1+w > width {
			lines = append(lines, line)
			line, lineWidth = word, w
			continue
		}
		line += " " + word
		lineWidth += 1 + w
	}
	return append(lines, line)
}

func stripAnsi(s string) string {
	return csiPattern.ReplaceAllString(s, "")
}

// visibleWidth counts the runes a terminal shows, ignoring escape sequences
func visibleWidth(s string) int {
	return utf8.RuneCountInString(stripAnsi(s))
}
