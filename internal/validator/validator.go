package validator

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/arcanaland/grimoire/internal/card"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	CardPath string
	Results  ValidationResults
}

func NewValidator(cardPath string) *Validator {
	return &Validator{
		CardPath: cardPath,
		Results:  ValidationResults{},
	}
}

// Validate loads the card file and checks it. The returned error is only
// set when the file cannot be read or decoded; broken card invariants end
// up in Results.Errors.
func (v *Validator) Validate() (ValidationResults, error) {
	if _, err := os.Stat(v.CardPath); os.IsNotExist(err) {
		return v.Results, fmt.Errorf("card file not found: %s", v.CardPath)
	}

	c, err := card.LoadFile(v.CardPath)
	if err != nil {
		return v.Results, err
	}

	v.ValidateCard(c)
	return v.Results, nil
}

// ValidateCard runs every check against an already decoded card.
func (v *Validator) ValidateCard(c *card.Card) {
	v.validateInvariants(c)
	v.validateCreatureStats(c)
	v.validateSet(c)
	v.validateColors(c)
	v.validateCredits(c)
}

func (v *Validator) validateInvariants(c *card.Card) {
	err := c.Validate()
	if err == nil {
		return
	}

	var verrs card.ValidationErrors
	if !errors.As(err, &verrs) {
		v.Results.Errors = append(v.Results.Errors, err.Error())
		return
	}
	for _, e := range verrs {
		v.Results.Errors = append(v.Results.Errors, e.Error())
	}
}

// validateCreatureStats warns about power/toughness on cards they do not apply to
func (v *Validator) validateCreatureStats(c *card.Card) {
	if c.IsCreature() {
		return
	}
	if c.Power != 0 || c.Toughness != 0 {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("power/toughness %d/%d set on a non-creature card", c.Power, c.Toughness))
	}
}

func (v *Validator) validateSet(c *card.Card) {
	if len(c.Set.Code) != 3 {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("set code %q is not three characters", c.Set.Code))
	}

	if c.Set.ReleaseDate.IsZero() {
		v.Results.Warnings = append(v.Results.Warnings, "set.release_date is missing")
	}

	// Negative numbers are already reported as errors
	if c.SetNumber >= 1 && !c.IsInBooster() {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("set_number %d is past the set's %d cards (not a booster card)", c.SetNumber, c.Set.CardCount))
	}
}

// validateColors checks that every colored mana symbol shows up in the card colors
func (v *Validator) validateColors(c *card.Card) {
	var missing []string
	for _, cm := range c.ManaCost.Colored {
		if cm.Color == card.ColorColorless || !cm.Color.Valid() {
			continue
		}
		if !c.HasColor(cm.Color) {
			missing = append(missing, cm.Color.String())
		}
	}

	if len(missing) > 0 {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("mana cost uses colors not listed in colors: %s", strings.Join(missing, ", ")))
	}
}

func (v *Validator) validateCredits(c *card.Card) {
	if strings.TrimSpace(c.Illustrator) == "" {
		v.Results.Warnings = append(v.Results.Warnings, "illustrator is empty")
	}

	if c.IsLegendary && c.HasType(card.TypeBasicLand) {
		v.Results.Warnings = append(v.Results.Warnings, "basic lands are not normally legendary")
	}
}
