// internal/ui/health_bar.go
package ui

import (
	"image/color"

	"go-dungeon-runner/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hpBarWidth  = 80
	hpBarHeight = 8
	borderWidth = 1
)

var borderColor = color.White

// HealthBar отображает здоровье героя полосой.
type HealthBar struct {
	X, Y float32
}

func NewHealthBar(x, y float32) *HealthBar {
	return &HealthBar{X: x, Y: y}
}

// fillWidth — ширина заполненной части внутри обводки.
func fillWidth(hp, maxHP int) float32 {
	if maxHP <= 0 || hp <= 0 {
		return 0
	}
	ratio := float64(hp) / float64(maxHP)
	if ratio > 1 {
		ratio = 1
	}
	return float32(float64(hpBarWidth-borderWidth*2) * ratio)
}

// Draw отрисовывает полосу здоровья.
func (b *HealthBar) Draw(screen *ebiten.Image, hp, maxHP int) {
	vector.DrawFilledRect(screen, b.X, b.Y, hpBarWidth, hpBarHeight, config.HPBarBackground, false)
	vector.StrokeRect(screen, b.X, b.Y, hpBarWidth, hpBarHeight, borderWidth, borderColor, false)
	if w := fillWidth(hp, maxHP); w > 0 {
		vector.DrawFilledRect(screen, b.X+borderWidth, b.Y+borderWidth, w, hpBarHeight-borderWidth*2, config.HPBarColor, false)
	}
}
