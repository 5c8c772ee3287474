package game

// Dice outcome spaces. The lab die pairs an arrow color (travel direction)
// with a lab color; the three attribute dice are six-sided with three faces
// of each value.
var (
	labFaces = [6]struct {
		Direction Direction
		Lab       Card
	}{
		{DirectionWhite, CardBlueLab},
		{DirectionWhite, CardRedLab},
		{DirectionWhite, CardYellowLab},
		{DirectionBlack, CardBlueLab},
		{DirectionBlack, CardRedLab},
		{DirectionBlack, CardYellowLab},
	}
	attrFaces = [6]int{1, 1, 1, 2, 2, 2}
)

// Throw is the outcome of one round's dice: travel direction, starting lab
// and the initial target attributes. It is immutable once the round begins
// and kept as a snapshot so a silent resolution can be replayed.
type Throw struct {
	Direction Direction `json:"direction"`
	Lab       Card      `json:"lab"`
	Target    Target    `json:"target"`
}

// ThrowDice rolls the four independent dice.
func ThrowDice(rng RNG) Throw {
	lab := labFaces[rng.Intn(len(labFaces))]
	return Throw{
		Direction: lab.Direction,
		Lab:       lab.Lab,
		Target: Target{
			Eyes:    attrFaces[rng.Intn(len(attrFaces))],
			Pattern: patternFromDie(attrFaces[rng.Intn(len(attrFaces))]),
			Color:   colorFromDie(attrFaces[rng.Intn(len(attrFaces))]),
		},
	}
}

func patternFromDie(v int) Pattern {
	if v == 1 {
		return PatternStripe
	}
	return PatternDot
}

func colorFromDie(v int) Color {
	if v == 1 {
		return ColorRed
	}
	return ColorBlue
}

// ManualThrow builds a Throw from manually entered die values, for playing
// along with physical dice. Every value is validated against the allowed
// outcome sets before any state changes.
func ManualThrow(direction, lab string, eyes, stripes, colors int) (Throw, error) {
	d := Direction(direction)
	if d != DirectionWhite && d != DirectionBlack {
		return Throw{}, ErrInvalidDirection
	}
	var labCard Card
	switch lab {
	case "red":
		labCard = CardRedLab
	case "blue":
		labCard = CardBlueLab
	case "yellow":
		labCard = CardYellowLab
	default:
		return Throw{}, ErrInvalidLab
	}
	for _, v := range []int{eyes, stripes, colors} {
		if v != 1 && v != 2 {
			return Throw{}, ErrInvalidAttribute
		}
	}
	return Throw{
		Direction: d,
		Lab:       labCard,
		Target: Target{
			Eyes:    eyes,
			Pattern: patternFromDie(stripes),
			Color:   colorFromDie(colors),
		},
	}, nil
}
