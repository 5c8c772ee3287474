package game

import "slices"

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// Deck is the shuffled ring of cards for one game. The sequence is fixed
// after construction; the only later mutation is a full reversal when the
// traversal direction changes (see Cursor).
type Deck struct {
	cards []Card
}

// NewDeck expands the count map into a concrete multiset, removes one
// instance of start, shuffles the remainder uniformly and puts start back
// at position 0. The result is treated as a ring.
func NewDeck(counts map[Card]int, start Card, rng RNG) (*Deck, error) {
	if len(counts) == 0 {
		return nil, ErrBadCardCounts
	}
	total := 0
	for _, n := range counts {
		if n < 0 {
			return nil, ErrBadCardCounts
		}
		total += n
	}
	if counts[start] < 1 {
		return nil, ErrStartCardMissing
	}

	// Expand in sorted key order: map iteration order varies per run, and
	// the pre-shuffle sequence must be stable for a given RNG to yield the
	// same ring.
	kinds := make([]Card, 0, len(counts))
	for card := range counts {
		kinds = append(kinds, card)
	}
	slices.Sort(kinds)

	cards := make([]Card, 0, total-1)
	for _, card := range kinds {
		n := counts[card]
		if card == start {
			n--
		}
		for range n {
			cards = append(cards, card)
		}
	}

	// Fisher-Yates over everything but the start card.
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}

	deck := &Deck{cards: make([]Card, 0, total)}
	deck.cards = append(deck.cards, start)
	deck.cards = append(deck.cards, cards...)
	return deck, nil
}

// Size returns the fixed number of cards on the ring.
func (d *Deck) Size() int { return len(d.cards) }

// At returns the card at ring position i.
func (d *Deck) At(i int) Card { return d.cards[i] }

// Cards returns a copy of the ring in its current visitation order,
// for the renderer to lay out.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

func (d *Deck) reverse() {
	for i, j := 0, len(d.cards)-1; i < j; i, j = i+1, j-1 {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}
