// pkg/geom/aabb.go
package geom

import "github.com/go-gl/mathgl/mgl64"

// AABB — выровненный по осям параллелепипед в локальных или мировых координатах.
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// Box создает AABB из двух углов.
func Box(minX, minY, minZ, maxX, maxY, maxZ float64) AABB {
	return AABB{
		Min: mgl64.Vec3{minX, minY, minZ},
		Max: mgl64.Vec3{maxX, maxY, maxZ},
	}
}

// IsZero сообщает, что коробка не задана.
func (b AABB) IsZero() bool {
	return b == AABB{}
}

// Transform переводит оба угла матрицей m и заново упорядочивает их по осям,
// так как отражение по X меняет местами min и max.
func (b AABB) Transform(m mgl64.Mat4) AABB {
	p := mgl64.TransformCoordinate(b.Min, m)
	q := mgl64.TransformCoordinate(b.Max, m)
	var out AABB
	for k := 0; k < 3; k++ {
		lo, hi := p[k], q[k]
		if lo > hi {
			lo, hi = hi, lo
		}
		out.Min[k] = lo
		out.Max[k] = hi
	}
	return out
}

// Translate сдвигает коробку без поворота.
func (b AABB) Translate(v mgl64.Vec3) AABB {
	return AABB{Min: b.Min.Add(v), Max: b.Max.Add(v)}
}

// Intersect: пересечение по всем трем осям, касание считается пересечением.
func Intersect(a, b AABB) bool {
	for k := 0; k < 3; k++ {
		if a.Min[k] > b.Max[k] || b.Min[k] > a.Max[k] {
			return false
		}
	}
	return true
}

// BodyTransform строит матрицу тела: перенос в pos, при взгляде назад ось X отражается.
func BodyTransform(pos mgl64.Vec3, faceForward bool) mgl64.Mat4 {
	m := mgl64.Translate3D(pos[0], pos[1], pos[2])
	if !faceForward {
		m = m.Mul4(mgl64.Scale3D(-1, 1, 1))
	}
	return m
}
