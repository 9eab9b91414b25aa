package geom

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func randomBox(rng *rand.Rand) AABB {
	var b AABB
	for k := 0; k < 3; k++ {
		a := rng.Float64()*40 - 20
		c := rng.Float64()*40 - 20
		b.Min[k], b.Max[k] = math.Min(a, c), math.Max(a, c)
	}
	return b
}

func TestIntersectIsSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	for i := 0; i < 500; i++ {
		a, b := randomBox(rng), randomBox(rng)
		assert.Equal(t, Intersect(a, b), Intersect(b, a))
	}
}

func TestIntersect(t *testing.T) {
	char := Box(-4, 0, -2, 4, 8, 2)

	tests := []struct {
		name   string
		a, b   AABB
		expect bool
	}{
		{"same position", char, char, true},
		{"touching edge", char, char.Translate(mgl64.Vec3{8, 0, 0}), true},
		{"separated on x", char, char.Translate(mgl64.Vec3{8.01, 0, 0}), false},
		{"separated on z only", char, char.Translate(mgl64.Vec3{0, 0, 5}), false},
		{"separated on y only", char, char.Translate(mgl64.Vec3{0, 9, 0}), false},
		{"contained", char, Box(-1, 1, -1, 1, 2, 1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, Intersect(tt.a, tt.b))
		})
	}
}

func TestTransformFlipsSensorWhenFacingBack(t *testing.T) {
	sensor := Box(0, 2, -2, 6, 8, 2)
	pos := mgl64.Vec3{10, 0, 3}

	forward := sensor.Transform(BodyTransform(pos, true))
	assert.InDelta(t, 10, forward.Min[0], 1e-9)
	assert.InDelta(t, 16, forward.Max[0], 1e-9)
	assert.InDelta(t, 1, forward.Min[2], 1e-9)
	assert.InDelta(t, 5, forward.Max[2], 1e-9)

	back := sensor.Transform(BodyTransform(pos, false))
	assert.InDelta(t, 4, back.Min[0], 1e-9)
	assert.InDelta(t, 10, back.Max[0], 1e-9)
	assert.InDelta(t, 2, back.Min[1], 1e-9)
	assert.InDelta(t, 8, back.Max[1], 1e-9)
}

func TestDampNeverChangesSign(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		v := mgl64.Vec3{rng.Float64()*200 - 100, rng.Float64()*200 - 100, rng.Float64()*200 - 100}
		friction := rng.Float64() * 40
		dt := rng.Float64() * 0.5
		out := Damp(v, friction, dt)
		for k := 0; k < 3; k++ {
			if out[k] != 0 {
				assert.Equal(t, math.Signbit(v[k]), math.Signbit(out[k]))
			}
			assert.LessOrEqual(t, math.Abs(out[k]), math.Abs(v[k]))
		}
	}
}

func TestClamp(t *testing.T) {
	min := mgl64.Vec3{-28, 0, -12}
	max := mgl64.Vec3{1000, 0, 28}

	assert.Equal(t, mgl64.Vec3{-28, 0, 28}, Clamp(mgl64.Vec3{-1e9, 5, 1e9}, min, max))
	assert.Equal(t, mgl64.Vec3{3, 0, 4}, Clamp(mgl64.Vec3{3, 0, 4}, min, max))
}
