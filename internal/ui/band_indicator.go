// internal/ui/band_indicator.go
package ui

import (
	"image/color"
	"strings"

	"go-dungeon-runner/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

// BandIndicator отображает номер текущей полосы римскими цифрами.
type BandIndicator struct {
	X, Y             float64
	Color            color.RGBA
	BossColor        color.RGBA
	OutlineColor     color.RGBA
	OutlineThickness int
	BossPeriod       int
}

// NewBandIndicator создает индикатор, x — центр надписи.
func NewBandIndicator(x, y float64, bossPeriod int) *BandIndicator {
	return &BandIndicator{
		X:                x,
		Y:                y,
		Color:            config.TextLightColor,
		BossColor:        config.HitColor,
		OutlineColor:     config.TextDarkColor,
		OutlineThickness: 1,
		BossPeriod:       bossPeriod,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// colorFor: полосы с боссом красные.
func (i *BandIndicator) colorFor(band int) color.RGBA {
	if i.BossPeriod > 0 && band%i.BossPeriod == 0 {
		return i.BossColor
	}
	return i.Color
}

// Draw отрисовывает индикатор. Нулевая полоса не показывается.
func (i *BandIndicator) Draw(screen *ebiten.Image, band int) {
	if band <= 0 {
		return
	}
	DrawOutlined(screen, toRoman(band), i.X, i.Y, i.colorFor(band), i.OutlineColor, i.OutlineThickness, AlignCenter)
}
