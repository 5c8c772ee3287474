package game

import "testing"

func findable(color Color, pattern Pattern, eyes int) Card {
	return Target{Color: color, Pattern: pattern, Eyes: eyes}.Card()
}

func TestTargetCardName(t *testing.T) {
	got := Target{Color: ColorRed, Pattern: PatternStripe, Eyes: 1}.Card()
	if got != Card("red_stripe_1") {
		t.Errorf("expected red_stripe_1, got %s", got)
	}
}

func TestTargetFlipInvolution(t *testing.T) {
	start := Target{Color: ColorRed, Pattern: PatternStripe, Eyes: 1}

	once := start.Flip(CardEyesMutation)
	want := Target{Color: ColorRed, Pattern: PatternStripe, Eyes: 2}
	if once != want {
		t.Errorf("expected %+v after eyes mutation, got %+v", want, once)
	}
	if twice := once.Flip(CardEyesMutation); twice != start {
		t.Errorf("expected %+v after double flip, got %+v", start, twice)
	}

	for _, m := range []Card{CardEyesMutation, CardStripesMutation, CardColorsMutation} {
		if got := start.Flip(m).Flip(m); got != start {
			t.Errorf("%s applied twice: expected %+v, got %+v", m, start, got)
		}
	}
}

func TestEngineMatchEndsRound(t *testing.T) {
	// Deck and scenario fixed: red_lab is drawn first and does not match,
	// red_stripe_1 matches the initial target.
	deck := testDeck(
		CardRedLab,
		findable(ColorRed, PatternStripe, 1),
		CardVentilation,
		CardVentilation,
		findable(ColorBlue, PatternStripe, 1),
	)
	engine := NewEngine(NewCursor(deck, DirectionWhite), Target{Color: ColorRed, Pattern: PatternStripe, Eyes: 1})

	out := engine.Step(true)
	if out.Drawn != CardRedLab || out.Match {
		t.Fatalf("first draw: expected non-matching red_lab, got %+v", out)
	}
	if out.Seeking != Card("red_stripe_1") {
		t.Errorf("expected seeking red_stripe_1, got %s", out.Seeking)
	}
	if !out.Boundary {
		t.Error("normal draw should mark a frame boundary")
	}

	out = engine.Step(true)
	if !out.Match || out.Terminal != TerminalFound {
		t.Fatalf("second draw: expected FOUND on red_stripe_1, got %+v", out)
	}
	if !engine.Done() {
		t.Error("engine should be done after FOUND")
	}
}

func TestEngineVentilationTeleport(t *testing.T) {
	// Same deck, different target: the ventilation pair is consumed
	// invisibly and the skipped card gets no match check.
	deck := testDeck(
		CardRedLab,
		findable(ColorRed, PatternStripe, 1),
		CardVentilation,
		CardVentilation,
		findable(ColorBlue, PatternStripe, 1),
	)
	engine := NewEngine(NewCursor(deck, DirectionWhite), Target{Color: ColorBlue, Pattern: PatternStripe, Eyes: 1})

	if out := engine.Step(true); out.Match {
		t.Fatalf("red_lab should not match, got %+v", out)
	}
	if out := engine.Step(true); out.Match {
		t.Fatalf("red_stripe_1 should not match blue target, got %+v", out)
	}

	out := engine.Step(true)
	if out.Drawn != CardVentilation {
		t.Fatalf("expected ventilation draw, got %+v", out)
	}
	if out.Skipped != 1 {
		t.Errorf("expected 1 card consumed by the teleport, got %d", out.Skipped)
	}
	if out.Match || out.Terminal != TerminalNone || out.Boundary {
		t.Errorf("ventilation must not match, end, or mark a boundary: %+v", out)
	}

	// Resumes after the paired ventilation: blue_stripe_1 matches now.
	out = engine.Step(true)
	if out.Drawn != findable(ColorBlue, PatternStripe, 1) || out.Terminal != TerminalFound {
		t.Fatalf("expected FOUND on blue_stripe_1 after teleport, got %+v", out)
	}
}

func TestEngineVentilationSkipsChecks(t *testing.T) {
	// Between the two ventilations sit the exact target card and a
	// mutation; neither may take effect while teleporting.
	target := Target{Color: ColorRed, Pattern: PatternDot, Eyes: 2}
	deck := testDeck(
		CardRedLab,
		CardVentilation,
		target.Card(),
		CardColorsMutation,
		CardVentilation,
		target.Card(),
	)
	engine := NewEngine(NewCursor(deck, DirectionWhite), target)

	engine.Step(true) // red_lab
	out := engine.Step(true)
	if out.Drawn != CardVentilation || out.Skipped != 3 {
		t.Fatalf("expected teleport over 3 cards, got %+v", out)
	}
	if engine.Target() != target {
		t.Errorf("skipped mutation must not flip the target: %+v", engine.Target())
	}

	out = engine.Step(true)
	if out.Terminal != TerminalFound {
		t.Fatalf("expected FOUND on the copy after the teleport, got %+v", out)
	}
}

func TestEngineDiesOnFourthConsecutiveMutation(t *testing.T) {
	deck := testDeck(
		CardRedLab,
		CardEyesMutation,
		CardStripesMutation,
		CardColorsMutation,
		CardEyesMutation,
		findable(ColorRed, PatternStripe, 1),
	)
	engine := NewEngine(NewCursor(deck, DirectionWhite), Target{Color: ColorRed, Pattern: PatternStripe, Eyes: 1})

	engine.Step(true) // red_lab
	for i := range 3 {
		out := engine.Step(true)
		if out.Terminal != TerminalNone {
			t.Fatalf("mutation %d should not be terminal: %+v", i+1, out)
		}
		if out.Boundary {
			t.Errorf("mutation %d must not mark a frame boundary", i+1)
		}
	}

	out := engine.Step(true)
	if out.Terminal != TerminalDied {
		t.Fatalf("fourth consecutive mutation: expected DIED, got %+v", out)
	}
	if out.Drawn != CardEyesMutation {
		t.Errorf("terminal cause should be the mutation card, got %s", out.Drawn)
	}
	if !engine.Done() || engine.Terminal() != TerminalDied {
		t.Error("engine should report DIED")
	}
}

func TestEngineNonMutationResetsCounter(t *testing.T) {
	// Three mutations, a lab in between, then three more: no death.
	deck := testDeck(
		CardRedLab,
		CardEyesMutation,
		CardStripesMutation,
		CardColorsMutation,
		CardBlueLab,
		CardEyesMutation,
		CardStripesMutation,
		CardColorsMutation,
	)
	engine := NewEngine(NewCursor(deck, DirectionWhite), Target{Color: ColorRed, Pattern: PatternStripe, Eyes: 1})

	for range 8 {
		out := engine.Step(true)
		if out.Terminal == TerminalDied {
			t.Fatalf("death despite intervening non-mutation draw: %+v", out)
		}
	}
}

func TestEngineMutationFlipsTarget(t *testing.T) {
	deck := testDeck(CardRedLab, CardColorsMutation, findable(ColorBlue, PatternStripe, 1))
	engine := NewEngine(NewCursor(deck, DirectionWhite), Target{Color: ColorRed, Pattern: PatternStripe, Eyes: 1})

	engine.Step(true) // red_lab
	out := engine.Step(true)
	if out.Seeking != Card("blue_stripe_1") {
		t.Fatalf("color mutation should retarget to blue_stripe_1, got %s", out.Seeking)
	}

	out = engine.Step(true)
	if out.Terminal != TerminalFound {
		t.Fatalf("expected FOUND on mutated target, got %+v", out)
	}
}
