// internal/state/pause_state.go
package state

import (
	"image/color"

	"go-dungeon-runner/internal/config"
	"go-dungeon-runner/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

var overlayColor = color.RGBA{0, 0, 0, 128}

// pausable — экран, который умеет останавливать свои обновления.
type pausable interface {
	State
	Pause()
	Resume()
}

// PauseState рисует предыдущий экран под затемнением и не обновляет его.
type PauseState struct {
	stateMachine  *StateMachine
	previousState pausable
	ctx           *Context
}

func NewPauseState(sm *StateMachine, prevState pausable, ctx *Context) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		ctx:           ctx,
	}
}

func (s *PauseState) Enter() {
	s.previousState.Pause()
}

func (s *PauseState) Exit() {}

func (s *PauseState) Update(deltaTime float64) {
	if s.ctx.Input.PausePressed() {
		s.previousState.Resume()
		s.stateMachine.Pop()
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), overlayColor, false)
	ui.DrawOutlined(screen, "PAUSED", float64(w)/2, float64(h)/2-ui.LineHeight/2, config.TextLightColor, config.TextDarkColor, 1, ui.AlignCenter)
}
