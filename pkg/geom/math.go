package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Damp гасит скорость к нулю на |v*friction*dt| по каждой оси и никогда не меняет знак.
func Damp(v mgl64.Vec3, friction, dt float64) mgl64.Vec3 {
	for k := 0; k < 3; k++ {
		mag := math.Abs(v[k]) - math.Abs(v[k]*friction*dt)
		if mag <= 0 {
			v[k] = 0
			continue
		}
		v[k] = math.Copysign(mag, v[k])
	}
	return v
}

// Clamp ограничивает точку коробкой [min, max] по каждой оси.
func Clamp(v, min, max mgl64.Vec3) mgl64.Vec3 {
	for k := 0; k < 3; k++ {
		v[k] = mgl64.Clamp(v[k], min[k], max[k])
	}
	return v
}
