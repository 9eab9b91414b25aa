// internal/render/view.go
package render

import (
	"go-dungeon-runner/internal/config"

	"github.com/go-gl/mathgl/mgl64"
)

// View — ортографическая проекция: Z уходит в экранный Y, камера двигается по X.
type View struct {
	Camera float64
	Scale  float64
}

// NewView создает проекцию с масштабом логического экрана.
func NewView(camera float64) View {
	return View{Camera: camera, Scale: config.PixelScale}
}

// ScreenSize — размер логического экрана в пикселях.
func ScreenSize() (int, int) {
	return config.ScreenWidth * config.PixelScale, config.ScreenHeight * config.PixelScale
}

// ToScreen переводит точку мира в пиксели. Камера стоит в центре экрана по X.
func (v View) ToScreen(p mgl64.Vec3) (float64, float64) {
	x := p[0] - v.Camera + config.ScreenWidth/2
	y := config.ScreenHeight/2 - p[1] + p[2]
	return x * v.Scale, y * v.Scale
}
