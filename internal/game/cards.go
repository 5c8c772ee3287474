package game

import "fmt"

// Card identifies one card kind on the ring. Findable cards encode their
// attributes in the name as "{color}_{pattern}_{eyes}"; the remaining kinds
// are special cards with fixed names.
type Card string

const (
	CardVentilation     Card = "ventilation"
	CardEyesMutation    Card = "eyes_mutation"
	CardStripesMutation Card = "stripes_mutation"
	CardColorsMutation  Card = "colors_mutation"
	CardRedLab          Card = "red_lab"
	CardBlueLab         Card = "blue_lab"
	CardYellowLab       Card = "yellow_lab"
)

// IsMutation reports whether the card flips a target attribute.
func (c Card) IsMutation() bool {
	return c == CardEyesMutation || c == CardStripesMutation || c == CardColorsMutation
}

// IsLab reports whether the card is one of the three lab markers.
func (c Card) IsLab() bool {
	return c == CardRedLab || c == CardBlueLab || c == CardYellowLab
}

// Color of an amoeba card.
type Color string

const (
	ColorRed  Color = "red"
	ColorBlue Color = "blue"
)

// Pattern of an amoeba card.
type Pattern string

const (
	PatternStripe Pattern = "stripe"
	PatternDot    Pattern = "dot"
)

// Target is the attribute tuple the player is hunting for. Eyes is 1 or 2.
type Target struct {
	Color   Color   `json:"color"`
	Pattern Pattern `json:"pattern"`
	Eyes    int     `json:"eyes"`
}

// Card returns the findable card matching the current attributes.
func (t Target) Card() Card {
	return Card(fmt.Sprintf("%s_%s_%d", t.Color, t.Pattern, t.Eyes))
}

// FlipEyes toggles the eye count between 1 and 2.
func (t Target) FlipEyes() Target {
	if t.Eyes == 1 {
		t.Eyes = 2
	} else {
		t.Eyes = 1
	}
	return t
}

// FlipPattern toggles stripe and dot.
func (t Target) FlipPattern() Target {
	if t.Pattern == PatternStripe {
		t.Pattern = PatternDot
	} else {
		t.Pattern = PatternStripe
	}
	return t
}

// FlipColor toggles red and blue.
func (t Target) FlipColor() Target {
	if t.Color == ColorRed {
		t.Color = ColorBlue
	} else {
		t.Color = ColorRed
	}
	return t
}

// Flip applies the mutation card to the target. Non-mutation cards leave
// the target unchanged.
func (t Target) Flip(c Card) Target {
	switch c {
	case CardEyesMutation:
		return t.FlipEyes()
	case CardStripesMutation:
		return t.FlipPattern()
	case CardColorsMutation:
		return t.FlipColor()
	}
	return t
}

// DefaultCardCounts is the base game configuration: 2 of each findable
// amoeba, 3 ventilations, 1 of each mutation, 1 of each lab. 25 cards total.
func DefaultCardCounts() map[Card]int {
	counts := map[Card]int{
		CardVentilation:     3,
		CardEyesMutation:    1,
		CardStripesMutation: 1,
		CardColorsMutation:  1,
		CardRedLab:          1,
		CardBlueLab:         1,
		CardYellowLab:       1,
	}
	for _, color := range []Color{ColorRed, ColorBlue} {
		for _, pattern := range []Pattern{PatternStripe, PatternDot} {
			for _, eyes := range []int{1, 2} {
				counts[Target{Color: color, Pattern: pattern, Eyes: eyes}.Card()] = 2
			}
		}
	}
	return counts
}
