package game

import "errors"

var (
	// Configuration errors: fatal before a round starts.
	ErrStartCardMissing = errors.New("start card has zero count in configuration")
	ErrBadCardCounts    = errors.New("card counts must be non-negative and non-empty")

	// ErrCardNotFound means a seek target is absent from the deck. With a
	// well-formed configuration this cannot happen; treat it as a defect.
	ErrCardNotFound = errors.New("card not found in deck")

	// Manual dice entry validation.
	ErrInvalidDirection = errors.New("direction must be white or black")
	ErrInvalidLab       = errors.New("lab must be red, blue or yellow")
	ErrInvalidAttribute = errors.New("attribute die value must be 1 or 2")
)
