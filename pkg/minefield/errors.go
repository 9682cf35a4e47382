package minefield

import "errors"

var (
	ErrInvalidSize     = errors.New("minefield: invalid board size")
	ErrOutOfBounds     = errors.New("minefield: point out of bounds")
	ErrAlreadyPlaced   = errors.New("minefield: mines already placed")
	ErrInvalidLayout   = errors.New("minefield: invalid mine layout")
	ErrNotStarted      = errors.New("minefield: mines not placed yet")
	ErrNoHintAvailable = errors.New("minefield: no hintable tile")
)
