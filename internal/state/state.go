// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State is one screen of the game.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine runs the current screen and swaps screens.
type StateMachine struct {
	current State
	pending State
}

// NewStateMachine creates a machine with no state.
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState exits the current state and enters newState.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Request schedules newState to replace the current one once the current
// Update returns, so a state never runs after it has exited.
func (sm *StateMachine) Request(newState State) {
	sm.pending = newState
}

// Current returns the running state.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update runs the current state, then applies a requested switch.
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
	if sm.pending != nil {
		next := sm.pending
		sm.pending = nil
		sm.SetState(next)
	}
}

// Draw draws the current state.
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
