package game

// Terminal marks how a round ended, if it did.
type Terminal string

const (
	TerminalNone  Terminal = ""
	TerminalFound Terminal = "found"
	TerminalDied  Terminal = "died"
)

// Outcome is the structured result of one engine step. It carries both the
// draw result and the redraw boundary that the renderer used to get as a
// separate empty emission; Boundary is true for the draws that end a frame
// (every draw except mutations and ventilation teleports).
type Outcome struct {
	Drawn    Card     `json:"drawn"`
	Seeking  Card     `json:"seeking"` // target formatted as a card name, after this draw
	Match    bool     `json:"match"`
	Terminal Terminal `json:"terminal,omitempty"`
	Skipped  int      `json:"skipped,omitempty"` // cards consumed invisibly by a ventilation teleport
	Boundary bool     `json:"boundary"`
}

// Engine resolves card effects for one round: attribute mutations,
// ventilation teleports and the win/death checks. The caller pulls one
// Outcome at a time via Step until Done.
type Engine struct {
	cursor    *Cursor
	target    Target
	mutations int // consecutive mutation draws since the last non-mutation draw
	terminal  Terminal
}

// NewEngine resolves draws from cursor against the given initial target.
func NewEngine(cursor *Cursor, target Target) *Engine {
	return &Engine{cursor: cursor, target: target}
}

// Step draws the next card and applies its effect. The visible flag is
// forwarded to the cursor untouched; the state transition is identical
// either way.
func (e *Engine) Step(visible bool) Outcome {
	card := e.cursor.Advance(visible)

	if card == CardVentilation {
		// Teleport: skip invisibly to the paired ventilation elsewhere on
		// the ring. Skipped cards get no mutation or match checks.
		skipped := 0
		for e.cursor.Advance(false) != CardVentilation {
			skipped++
		}
		return Outcome{Drawn: card, Seeking: e.target.Card(), Skipped: skipped + 1}
	}

	if card.IsMutation() {
		e.target = e.target.Flip(card)
		if e.mutations == 3 {
			// Fourth consecutive mutation: the amoeba over-mutates and dies.
			e.terminal = TerminalDied
			return Outcome{Drawn: card, Seeking: e.target.Card(), Terminal: TerminalDied}
		}
		e.mutations++
		return Outcome{Drawn: card, Seeking: e.target.Card()}
	}

	e.mutations = 0
	seeking := e.target.Card()
	if card == seeking {
		e.terminal = TerminalFound
		return Outcome{Drawn: card, Seeking: seeking, Match: true, Terminal: TerminalFound, Boundary: true}
	}
	return Outcome{Drawn: card, Seeking: seeking, Boundary: true}
}

// Done reports whether the round reached FOUND or DIED.
func (e *Engine) Done() bool { return e.terminal != TerminalNone }

// Terminal returns how the round ended, or TerminalNone while seeking.
func (e *Engine) Terminal() Terminal { return e.terminal }

// Target returns the current (possibly mutated) target attributes.
func (e *Engine) Target() Target { return e.target }

// reset rearms the engine with a fresh target for a replay or a new round.
func (e *Engine) reset(target Target) {
	e.target = target
	e.mutations = 0
	e.terminal = TerminalNone
}
