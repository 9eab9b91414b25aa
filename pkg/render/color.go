// pkg/render/color.go
package render

import (
	"hash/fnv"
	"image/color"
)

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// Modulate multiplies base by tint channel-wise and scales alpha by a in [0, 1].
func Modulate(base, tint color.RGBA, a float64) color.RGBA {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	mul := func(x, y uint8) uint8 {
		return uint8(uint16(x) * uint16(y) / 255)
	}
	return color.RGBA{
		R: mul(base.R, tint.R),
		G: mul(base.G, tint.G),
		B: mul(base.B, tint.B),
		A: uint8(float64(mul(base.A, tint.A)) * a),
	}
}

// Floats returns the color as premultiplication-free components for ebiten vertices.
func Floats(c color.RGBA) (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}

// NameColor derives a stable opaque color from a name.
// Channels stay above 64 so placeholders remain visible on a dark background.
func NameColor(name string) color.RGBA {
	h := fnv.New32a()
	h.Write([]byte(name))
	v := h.Sum32()
	return color.RGBA{
		R: 64 + uint8(v%192),
		G: 64 + uint8((v>>8)%192),
		B: 64 + uint8((v>>16)%192),
		A: 255,
	}
}
