// internal/action/action.go
package action

// Action — битовая маска намерений игрока или ИИ.
type Action uint8

const (
	None   Action = 0
	Up     Action = 1 << 0
	Down   Action = 1 << 1
	Left   Action = 1 << 2
	Right  Action = 1 << 3
	Block  Action = 1 << 4
	Attack Action = 1 << 5
	Jump   Action = 1 << 6

	Directions = Up | Down | Left | Right
)

// Has проверяет, что все биты a установлены.
func (m Action) Has(a Action) bool {
	return m&a == a && a != None
}

// With возвращает маску с добавленными битами.
func (m Action) With(a Action) Action {
	return m | a
}

// Without возвращает маску без указанных битов.
func (m Action) Without(a Action) Action {
	return m &^ a
}

func (m Action) String() string {
	if m == None {
		return "None"
	}
	names := []struct {
		bit  Action
		name string
	}{
		{Up, "Up"}, {Down, "Down"}, {Left, "Left"}, {Right, "Right"},
		{Block, "Block"}, {Attack, "Attack"}, {Jump, "Jump"},
	}
	s := ""
	for _, n := range names {
		if m&n.bit != 0 {
			if s != "" {
				s += "|"
			}
			s += n.name
		}
	}
	return s
}
