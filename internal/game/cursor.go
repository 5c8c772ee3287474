package game

// Direction of travel around the ring, named after the arrow die faces.
type Direction string

const (
	DirectionWhite Direction = "white"
	DirectionBlack Direction = "black"
)

// Cursor walks a Deck as a ring. Direction changes are realized by
// reversing the underlying sequence and resetting the offset, so a card
// keeps its ring slot when the renderer re-derives layout angles.
type Cursor struct {
	deck      *Deck
	next      int // ring position of the next draw
	direction Direction
	last      Card
}

// NewCursor starts a cursor whose first Advance draws ring position 0.
func NewCursor(deck *Deck, direction Direction) *Cursor {
	return &Cursor{deck: deck, direction: direction}
}

// Advance draws one card along the ring, wrapping at the end. The visible
// flag is renderer pacing metadata only: it tells the caller whether to
// animate this step and has no effect on the index arithmetic, so a silent
// resolution and an animated replay visit identical cards.
func (c *Cursor) Advance(visible bool) Card {
	c.last = c.deck.At(c.next)
	c.next = (c.next + 1) % c.deck.Size()
	return c.last
}

// SetDirection is a no-op when the direction is unchanged; otherwise it
// reverses.
func (c *Cursor) SetDirection(d Direction) {
	if d == c.direction {
		return
	}
	c.ReverseDirection()
}

// ReverseDirection flips the travel direction and mirrors the ring's
// visitation order in place; the offset resets to 0 and the card multiset
// is untouched. Mirroring the sequence instead of negating the index keeps
// "same card at same ring slot" for the renderer.
func (c *Cursor) ReverseDirection() {
	if c.direction == DirectionBlack {
		c.direction = DirectionWhite
	} else {
		c.direction = DirectionBlack
	}
	c.deck.reverse()
	c.next = 0
	c.last = ""
}

// SeekTo advances invisibly until target is drawn. A full circuit is
// enough for any card present; absence means a broken configuration and
// returns ErrCardNotFound.
func (c *Cursor) SeekTo(target Card) error {
	for range c.deck.Size() {
		if c.Advance(false) == target {
			return nil
		}
	}
	return ErrCardNotFound
}

// Direction returns the current travel direction.
func (c *Cursor) Direction() Direction { return c.direction }

// Offset returns the ring position the next draw will land on, relative to
// the current visitation order.
func (c *Cursor) Offset() int { return c.next }

// Position returns the ring slot of the most recently drawn card. Only
// meaningful after at least one draw since the last reversal.
func (c *Cursor) Position() int {
	return (c.next - 1 + c.deck.Size()) % c.deck.Size()
}

// LastDrawn returns the most recently drawn card, or "" before the first
// draw and right after a reversal.
func (c *Cursor) LastDrawn() Card { return c.last }
