package frontend

import (
	"fmt"
	"math"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"

	"github.com/amoebalab/menavky/internal/game"
)

const (
	boardSize = 800
	cardSize  = 80
)

// Board is the single game page: the ring of cards around the dice panel.
type Board struct {
	app.Compo
	Error string

	onUpdate func()
}

func (b *Board) OnMount(ctx app.Context) {
	klog.V(1).Infof("Board: OnMount called")
	b.onUpdate = func() {
		ctx.Dispatch(func(ctx app.Context) {})
	}
	State.Listeners["board"] = b.onUpdate

	if app.IsServer {
		return
	}
	if State.Conn == nil {
		if err := State.ConnectWS(); err != nil {
			b.Error = fmt.Sprintf("Failed to connect: %v", err)
			klog.Errorf("Board: %s", b.Error)
		}
	}
}

func (b *Board) OnDismount() {
	delete(State.Listeners, "board")
}

func (b *Board) onCardClick(i int, card game.Card) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		e.PreventDefault()
		if State.Solved {
			return
		}
		klog.V(1).Infof("Board: clicked slot %d (%s)", i, card)
		State.SendClick(i, card)
	}
}

func (b *Board) Render() app.UI {
	if b.Error != "" {
		return app.Main().Class("container").Body(
			app.Article().Body(
				app.H2().Text("Error"),
				app.P().Style("color", "red").Text(b.Error),
			),
		)
	}

	if len(State.Cards) == 0 {
		return app.Main().Class("container").Body(
			app.Div().Aria("busy", "true").Text("Shuffling the lab..."),
		)
	}

	return app.Main().Class("container").Body(
		app.H2().Text(fmt.Sprintf("Round %d: find the amoeba!", State.Round)),
		b.renderRing(),
		b.renderStatus(),
	)
}

// renderRing lays the cards out on a circle, largest that fits the board,
// with the dice panel in the middle.
func (b *Board) renderRing() app.UI {
	cards := State.Cards
	radius := float64(boardSize-cardSize) / 2
	center := float64(boardSize) / 2
	theta := 2 * math.Pi / float64(len(cards))

	tiles := make([]app.UI, 0, len(cards)+1)
	for i, card := range cards {
		angle := float64(i) * theta
		x := center + radius*math.Cos(angle) - cardSize/2
		y := center + radius*math.Sin(angle) - cardSize/2

		class := "card-tile"
		if i == State.Pointer {
			class += " card-current"
		}
		tiles = append(tiles, app.Img().
			Class(class).
			Src(fmt.Sprintf("/web/images/cards/%s.png", card)).
			Alt(string(card)).
			Style("position", "absolute").
			Style("left", fmt.Sprintf("%.0fpx", x)).
			Style("top", fmt.Sprintf("%.0fpx", y)).
			Style("width", fmt.Sprintf("%dpx", cardSize)).
			Style("height", fmt.Sprintf("%dpx", cardSize)).
			Style("transform", fmt.Sprintf("rotate(%.0fdeg)", angle/math.Pi*180+90)).
			OnClick(b.onCardClick(i, card)))
	}
	tiles = append(tiles, b.renderDicePanel())

	return app.Div().
		Class("board").
		Style("position", "relative").
		Style("width", fmt.Sprintf("%dpx", boardSize)).
		Style("height", fmt.Sprintf("%dpx", boardSize)).
		Body(tiles...)
}

// renderDicePanel shows the thrown dice: the start lab, the direction arrow
// and the initial target attributes the player mutates in their head.
func (b *Board) renderDicePanel() app.UI {
	throw := State.Throw
	arrow := "⟳"
	if throw.Direction == game.DirectionBlack {
		arrow = "⟲"
	}

	items := []app.UI{
		app.Img().
			Src(fmt.Sprintf("/web/images/cards/%s.png", throw.Target.Card())).
			Alt(string(throw.Target.Card())).
			Style("width", fmt.Sprintf("%dpx", cardSize+cardSize/2)),
		app.Img().
			Src(fmt.Sprintf("/web/images/cards/%s.png", throw.Lab)).
			Alt(string(throw.Lab)).
			Style("width", fmt.Sprintf("%dpx", cardSize)),
		app.Div().
			Class(fmt.Sprintf("arrow arrow-%s", throw.Direction)).
			Style("font-size", "48px").
			Text(arrow),
	}
	if State.LastStep != nil {
		items = append(items, app.Img().
			Src(fmt.Sprintf("/web/images/cards/%s.png", State.LastStep.Outcome.Seeking)).
			Alt(string(State.LastStep.Outcome.Seeking)).
			Style("width", fmt.Sprintf("%dpx", cardSize)))
	}

	return app.Div().
		Class("dice-panel").
		Style("position", "absolute").
		Style("left", "50%").
		Style("top", "50%").
		Style("transform", "translate(-50%, -50%)").
		Style("text-align", "center").
		Body(items...)
}

func (b *Board) renderStatus() app.UI {
	if State.Error != "" {
		return app.P().Style("color", "red").Text(State.Error)
	}
	if State.Result == nil {
		return app.P().Class("ins").Text("Follow the dice and click the card the amoeba ends on.")
	}
	if !State.Result.Correct {
		return app.P().Text("Not that one. Keep looking.")
	}
	switch State.Result.Terminal {
	case game.TerminalDied:
		return app.P().Text("Correct! The amoeba over-mutated and died. Watch the replay...")
	default:
		return app.P().Text("Correct! Watch the replay...")
	}
}
