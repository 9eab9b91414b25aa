// internal/input/input.go
package input

import (
	"go-dungeon-runner/internal/action"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyBindings — раскладка клавиатуры.
var KeyBindings = map[ebiten.Key]action.Action{
	ebiten.KeyArrowUp:      action.Up,
	ebiten.KeyW:            action.Up,
	ebiten.KeyArrowDown:    action.Down,
	ebiten.KeyS:            action.Down,
	ebiten.KeyArrowLeft:    action.Left,
	ebiten.KeyA:            action.Left,
	ebiten.KeyArrowRight:   action.Right,
	ebiten.KeyD:            action.Right,
	ebiten.KeyControlLeft:  action.Block,
	ebiten.KeyControlRight: action.Block,
	ebiten.KeyEnter:        action.Attack,
	ebiten.KeySpace:        action.Jump,
}

// PadBindings — раскладка стандартного геймпада.
var PadBindings = map[ebiten.StandardGamepadButton]action.Action{
	ebiten.StandardGamepadButtonLeftTop:      action.Up,
	ebiten.StandardGamepadButtonLeftBottom:   action.Down,
	ebiten.StandardGamepadButtonLeftLeft:     action.Left,
	ebiten.StandardGamepadButtonLeftRight:    action.Right,
	ebiten.StandardGamepadButtonFrontTopLeft: action.Block,
	ebiten.StandardGamepadButtonRightBottom:  action.Attack,
	ebiten.StandardGamepadButtonRightRight:   action.Jump,
}

// стик срабатывает после мертвой зоны
const axisDeadZone = 0.5

// Map собирает маску по предикату нажатия.
func Map[K comparable](bindings map[K]action.Action, pressed func(K) bool) action.Action {
	a := action.None
	for k, bit := range bindings {
		if pressed(k) {
			a |= bit
		}
	}
	return a
}

// Axes переводит положение стика в направления.
func Axes(x, y float64) action.Action {
	a := action.None
	switch {
	case x <= -axisDeadZone:
		a |= action.Left
	case x >= axisDeadZone:
		a |= action.Right
	}
	switch {
	case y <= -axisDeadZone:
		a |= action.Up
	case y >= axisDeadZone:
		a |= action.Down
	}
	return a
}

// Handler читает клавиатуру и геймпады каждый кадр.
type Handler struct {
	gamepads []ebiten.GamepadID
	previous action.Action
	current  action.Action
	pause    bool
}

func NewHandler() *Handler {
	return &Handler{}
}

// Update опрашивает устройства. Вызывается один раз за кадр.
func (h *Handler) Update() {
	a := Map(KeyBindings, ebiten.IsKeyPressed)
	pause := inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP)

	h.gamepads = ebiten.AppendGamepadIDs(h.gamepads[:0])
	for _, id := range h.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		a |= Map(PadBindings, func(b ebiten.StandardGamepadButton) bool {
			return ebiten.IsStandardGamepadButtonPressed(id, b)
		})
		a |= Axes(
			ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
			ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
		)
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight) {
			pause = true
		}
	}
	h.Feed(a, pause)
}

// Feed записывает кадр ввода. Update вызывает его с состоянием устройств.
func (h *Handler) Feed(a action.Action, pause bool) {
	h.previous = h.current
	h.current = a
	h.pause = pause
}

// Actions — удерживаемые действия.
func (h *Handler) Actions() action.Action {
	return h.current
}

// JustPressed сообщает о битах, нажатых в этом кадре.
func (h *Handler) JustPressed(a action.Action) bool {
	return h.current.Has(a) && !h.previous.Has(a)
}

// PausePressed: Escape или P на клавиатуре, Start на геймпаде.
func (h *Handler) PausePressed() bool {
	return h.pause
}
