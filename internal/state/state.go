// internal/state/state.go
package state

import (
	"fmt"

	"go-dungeon-runner/pkg/logger"

	"github.com/hajimehoshi/ebiten/v2"
)

// State — интерфейс для всех экранов
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine держит стек экранов. Обновляется и рисуется только верхний;
// оверлей (пауза) сам решает, рисовать ли экран под собой.
type StateMachine struct {
	stack []State
}

// NewStateMachine создаёт машину с пустым стеком.
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState закрывает все экраны стека, сверху вниз, и открывает newState.
// nil оставляет стек пустым.
func (sm *StateMachine) SetState(newState State) {
	for len(sm.stack) > 0 {
		sm.pop()
	}
	if newState != nil {
		sm.Push(newState)
	}
}

// Push открывает экран поверх текущего. Нижний экран не получает Exit.
func (sm *StateMachine) Push(s State) {
	sm.stack = append(sm.stack, s)
	logger.Log.WithField("state", name(s)).WithField("depth", len(sm.stack)).Debug("State entered")
	s.Enter()
}

// Pop закрывает верхний экран и возвращает управление нижнему без повторного Enter.
// Последний экран стека не снимается.
func (sm *StateMachine) Pop() {
	if len(sm.stack) < 2 {
		return
	}
	sm.pop()
}

func (sm *StateMachine) pop() {
	top := sm.stack[len(sm.stack)-1]
	sm.stack[len(sm.stack)-1] = nil
	sm.stack = sm.stack[:len(sm.stack)-1]
	top.Exit()
	logger.Log.WithField("state", name(top)).Debug("State exited")
}

// Current возвращает верхний экран или nil.
func (sm *StateMachine) Current() State {
	if len(sm.stack) == 0 {
		return nil
	}
	return sm.stack[len(sm.stack)-1]
}

// Depth — число открытых экранов.
func (sm *StateMachine) Depth() int {
	return len(sm.stack)
}

func (sm *StateMachine) Update(deltaTime float64) {
	if s := sm.Current(); s != nil {
		s.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if s := sm.Current(); s != nil {
		s.Draw(screen)
	}
}

func name(s State) string {
	return fmt.Sprintf("%T", s)
}
