// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Align — выравнивание текста по горизонтали.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Face — общий моноширинный шрифт интерфейса.
var Face text.Face = text.NewGoXFace(basicfont.Face7x13)

// LineHeight — высота строки шрифта.
const LineHeight = 13

// Measure возвращает ширину строки в пикселях.
func Measure(s string) float64 {
	w, _ := text.Measure(s, Face, LineHeight)
	return w
}

// alignX сдвигает x с учетом выравнивания.
func alignX(x, width float64, align Align) float64 {
	switch align {
	case AlignCenter:
		return x - width/2
	case AlignRight:
		return x - width
	}
	return x
}

// DrawText рисует строку, верх строки на y.
func DrawText(screen *ebiten.Image, s string, x, y float64, c color.Color, align Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(alignX(x, Measure(s), align), y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, Face, op)
}

// DrawOutlined рисует строку с обводкой толщиной thickness.
func DrawOutlined(screen *ebiten.Image, s string, x, y float64, c, outline color.Color, thickness int, align Align) {
	for dy := -thickness; dy <= thickness; dy++ {
		for dx := -thickness; dx <= thickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			DrawText(screen, s, x+float64(dx), y+float64(dy), outline, align)
		}
	}
	DrawText(screen, s, x, y, c, align)
}
