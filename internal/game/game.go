package game

import "time"

// Version of the game.
// Bumping this number will eventually make clients reload the WASM.
//
// If you set this to an empty string, a random version number will be
// used, and force the reload of the WASM on every restart (the reload
// still only happens after the first page is loaded, so there is a delay).
// This is useful during development.
var Version = "v0.1.0"

// DefaultStepDelay is the pause before each animated draw. Invisible
// advancement skips it entirely.
var DefaultStepDelay = 550 * time.Millisecond
