// internal/ui/menu.go
package ui

import (
	"image/color"

	"go-dungeon-runner/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// MenuItem — строка меню.
type MenuItem struct {
	Label    string
	Detail   string // цена или состояние, справа
	Active   bool   // выбран или надет
	Disabled bool
}

// Menu — вертикальный список с курсором, управляется с клавиатуры.
type Menu struct {
	X, Y     float64
	Width    float64
	Title    string
	Items    []MenuItem
	Focused  bool
	selected int
}

func NewMenu(x, y, width float64, title string) *Menu {
	return &Menu{X: x, Y: y, Width: width, Title: title, Focused: true}
}

// SetItems заменяет строки, курсор остается в пределах списка.
func (m *Menu) SetItems(items []MenuItem) {
	m.Items = items
	m.clamp()
}

func (m *Menu) clamp() {
	if m.selected >= len(m.Items) {
		m.selected = len(m.Items) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// Move сдвигает курсор с переходом через край.
func (m *Menu) Move(delta int) {
	n := len(m.Items)
	if n == 0 {
		return
	}
	m.selected = ((m.selected+delta)%n + n) % n
}

func (m *Menu) Selected() int {
	return m.selected
}

func (m *Menu) Select(i int) {
	m.selected = i
	m.clamp()
}

func itemColor(it MenuItem) color.Color {
	switch {
	case it.Disabled:
		return config.WallColor
	case it.Active:
		return config.CoinColor
	}
	return config.TextLightColor
}

// Draw рисует заголовок и строки. Курсор подсвечен рамкой, если меню в фокусе.
func (m *Menu) Draw(screen *ebiten.Image) {
	y := m.Y
	if m.Title != "" {
		DrawText(screen, m.Title, m.X+m.Width/2, y, config.TextLightColor, AlignCenter)
		y += LineHeight * 1.5
	}
	for i, it := range m.Items {
		if m.Focused && i == m.selected {
			vector.StrokeRect(screen, float32(m.X-2), float32(y-1), float32(m.Width+4), LineHeight+2, 1, borderColor, false)
		}
		c := itemColor(it)
		DrawText(screen, it.Label, m.X, y, c, AlignLeft)
		if it.Detail != "" {
			DrawText(screen, it.Detail, m.X+m.Width, y, c, AlignRight)
		}
		y += LineHeight + 2
	}
}
