package session

import "errors"

var (
	ErrGameOver            = errors.New("session: game is over")
	ErrHintNeedsFirstClick = errors.New("session: hint before first click")
	ErrNoHintsLeft         = errors.New("session: no hints left")
	ErrNoHintFound         = errors.New("session: no hintable tile")
)

// Message is the player-facing text for a session error.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrHintNeedsFirstClick):
		return "Click a tile first before using a hint!"
	case errors.Is(err, ErrNoHintFound):
		return "No hintable tile found. Try again later."
	case errors.Is(err, ErrNoHintsLeft):
		return "No hints left."
	case errors.Is(err, ErrGameOver):
		return "The game is over."
	}
	return ""
}
