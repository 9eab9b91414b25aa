// internal/ui/hud.go
package ui

import (
	"fmt"

	"go-dungeon-runner/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

// HUDState — данные кадра для HUD.
type HUDState struct {
	Coins int
	HP    int
	MaxHP int
	Band  int
}

// HUD собирает монеты, здоровье и номер полосы.
type HUD struct {
	width  int
	health *HealthBar
	band   *BandIndicator
}

// NewHUD раскладывает элементы по ширине экрана.
func NewHUD(width, bossPeriod int) *HUD {
	return &HUD{
		width:  width,
		health: NewHealthBar(4, 4),
		band:   NewBandIndicator(float64(width)-20, 2, bossPeriod),
	}
}

// CoinsLabel форматирует счетчик монет.
func CoinsLabel(coins int) string {
	return fmt.Sprintf("$%d", coins)
}

func (h *HUD) Draw(screen *ebiten.Image, s HUDState) {
	h.health.Draw(screen, s.HP, s.MaxHP)
	DrawOutlined(screen, CoinsLabel(s.Coins), 4, 14, config.CoinColor, config.TextDarkColor, 1, AlignLeft)
	h.band.Draw(screen, s.Band)
}

// Banner рисует крупную надпись по центру экрана, например "YOU DIED".
func Banner(screen *ebiten.Image, title, hint string) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	cx, cy := float64(w)/2, float64(h)/2
	DrawOutlined(screen, title, cx, cy-LineHeight, config.HitColor, config.TextDarkColor, 1, AlignCenter)
	if hint != "" {
		DrawText(screen, hint, cx, cy+LineHeight, config.TextLightColor, AlignCenter)
	}
}
