package game

// Round owns a shuffled ring and resolves successive rounds on it: the
// dice throw picks a start lab, direction and initial target, the engine
// walks the ring until FOUND or DIED, and the same ring carries over to
// the next throw. Outcomes are pulled one Step at a time; stopping early
// needs no cleanup.
type Round struct {
	counts map[Card]int
	rng    RNG
	deck   *Deck
	cursor *Cursor
	engine *Engine
	throw  Throw // immutable snapshot of this round's dice
}

// NewRound throws the dice and builds a fresh ring starting at the thrown
// lab under the thrown direction.
func NewRound(counts map[Card]int, rng RNG) (*Round, error) {
	return newRound(counts, ThrowDice(rng), rng)
}

// NewManualRound is NewRound with dice entered by hand (already validated
// by ManualThrow).
func NewManualRound(counts map[Card]int, throw Throw, rng RNG) (*Round, error) {
	return newRound(counts, throw, rng)
}

func newRound(counts map[Card]int, throw Throw, rng RNG) (*Round, error) {
	deck, err := NewDeck(counts, throw.Lab, rng)
	if err != nil {
		return nil, err
	}
	cursor := NewCursor(deck, throw.Direction)
	return &Round{
		counts: counts,
		rng:    rng,
		deck:   deck,
		cursor: cursor,
		engine: NewEngine(cursor, throw.Target),
		throw:  throw,
	}, nil
}

// Throw returns this round's dice snapshot.
func (r *Round) Throw() Throw { return r.throw }

// Cards returns the ring in its current visitation order.
func (r *Round) Cards() []Card { return r.deck.Cards() }

// Size returns the ring size.
func (r *Round) Size() int { return r.deck.Size() }

// Step draws and resolves the next card. Calling Step after the round is
// done keeps drawing; callers are expected to check Done.
func (r *Round) Step(visible bool) Outcome { return r.engine.Step(visible) }

// Done reports whether the current round reached a terminal outcome.
func (r *Round) Done() bool { return r.engine.Done() }

// Position returns the ring slot of the most recently drawn card, for the
// renderer to point at.
func (r *Round) Position() int { return r.cursor.Position() }

// Resolve drains the round invisibly and returns every outcome up to and
// including the terminal one.
func (r *Round) Resolve() []Outcome {
	var outcomes []Outcome
	for !r.engine.Done() {
		outcomes = append(outcomes, r.engine.Step(false))
	}
	return outcomes
}

// Replay rewinds to this round's start: seeks back to the thrown lab under
// the unchanged direction without visible steps and resets the target to
// the initial dice snapshot. Stepping again then reproduces the identical
// outcome sequence, this time for the renderer to animate.
func (r *Round) Replay() error {
	if err := r.cursor.SeekTo(r.throw.Lab); err != nil {
		return err
	}
	r.engine.reset(r.throw.Target)
	return nil
}

// Next throws fresh dice and starts a new round on the same ring: the
// direction change (if any) reverses the visitation order, then the cursor
// seeks invisibly to the new start lab.
func (r *Round) Next() error {
	return r.NextManual(ThrowDice(r.rng))
}

// NextManual is Next with dice entered by hand.
func (r *Round) NextManual(throw Throw) error {
	r.cursor.SetDirection(throw.Direction)
	if err := r.cursor.SeekTo(throw.Lab); err != nil {
		return err
	}
	r.engine.reset(throw.Target)
	r.throw = throw
	return nil
}
