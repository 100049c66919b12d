package card

import (
	"fmt"
	"strings"
)

// ValidationError describes a single broken invariant of a card.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is every invariant a card breaks, in field order.
type ValidationErrors []*ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the invariants the model does not enforce on
// construction. It returns nil or a ValidationErrors.
func (c *Card) Validate() error {
	var errs ValidationErrors
	add := func(field, format string, args ...interface{}) {
		errs = append(errs, &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if strings.TrimSpace(c.Name) == "" {
		add("name", "is required")
	}
	for i, t := range c.Supertypes {
		if !t.Valid() {
			add(fmt.Sprintf("supertypes[%d]", i), "unknown card type %d", int(t))
		}
	}
	for i, col := range c.Colors {
		if !col.Valid() {
			add(fmt.Sprintf("colors[%d]", i), "unknown mana color %d", int(col))
		}
	}

	if c.ManaCost.Colorless < 0 {
		add("mana_cost.colorless", "must not be negative, got %d", c.ManaCost.Colorless)
	}
	seen := make(map[ManaColor]bool)
	for i, cm := range c.ManaCost.Colored {
		field := fmt.Sprintf("mana_cost.colored[%d]", i)
		if !cm.Color.Valid() {
			add(field, "unknown mana color %d", int(cm.Color))
		}
		if cm.Amount < 0 {
			add(field, "amount must not be negative, got %d", cm.Amount)
		}
		if seen[cm.Color] {
			add(field, "color %s appears more than once", cm.Color)
		}
		seen[cm.Color] = true
	}

	if c.SetNumber < 1 {
		add("set_number", "must be at least 1, got %d", c.SetNumber)
	}
	if !c.Rarity.Valid() {
		add("rarity", "unknown rarity %d", int(c.Rarity))
	}
	if c.Price != nil && c.Price.USD < 0 {
		add("price.usd", "must not be negative, got %.2f", c.Price.USD)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
