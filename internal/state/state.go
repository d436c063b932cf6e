// internal/state/state.go
package state

import (
	"time"

	"tulip-bouquet/pkg/canvas"
)

// State общий интерфейс состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	// Draw renders one frame; now is the time since the loop started.
	Draw(ctx canvas.Context, now time.Duration)
	Exit()
}

// StateMachine переключает состояния и передаёт им кадры
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current is the active state, nil before the first SetState.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(ctx canvas.Context, now time.Duration) {
	if sm.current != nil {
		sm.current.Draw(ctx, now)
	}
}
