package card

// MoldgrafMonstrosity returns the Commander 2018 printing of Moldgraf
// Monstrosity. It is used as the sample card by the CLI.
func MoldgrafMonstrosity() Card {
	return Card{
		Name:        "Moldgraf Monstrosity",
		Supertypes:  []CardType{TypeCreature},
		Subtypes:    []string{"Insect"},
		IsLegendary: false,
		Rules: []string{
			"Trample",
			"When Moldgraf Monstrosity dies, exile it, then return two creature cards at random from your graveyard to the battlefield.",
		},
		FlavorText: "The border between life and death is as thin as a layer of topsoil.",
		Power:      8,
		Toughness:  8,
		Colors:     []ManaColor{ColorGreen},
		ManaCost: ManaCost{
			Colorless: 4,
			Colored:   []ColoredMana{{Color: ColorGreen, Amount: 3}},
		},
		Illustrator: "Tomasz Jedruszek",
		Set: Set{
			Code:        "C18",
			Name:        "Commander 2018",
			CardCount:   307,
			ReleaseDate: NewDate(2018, 8, 9),
		},
		SetNumber: 156,
		Rarity:    RarityRare,
		Price:     &Price{USD: 0.47, FetchDate: NewDate(2022, 9, 11)},
		IsFoil:    false,
	}
}
