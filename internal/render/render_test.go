package render

import (
	"image/color"
	"testing"

	"go-dungeon-runner/internal/config"
	"go-dungeon-runner/internal/defs"
	"go-dungeon-runner/internal/entity"
	"go-dungeon-runner/internal/utils"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtlasKnowsGameSprites(t *testing.T) {
	a := NewAtlas()
	known := a.Len()
	for _, s := range []entity.Sprite{defs.SpriteHero, defs.SpriteAxe, defs.SpriteSteelShield, defs.SpriteChestOpen, defs.SpriteArrow, SpriteWall3} {
		r := a.Region(s)
		assert.Positive(t, r.Width, s)
		assert.Positive(t, r.Height, s)
	}
	assert.Equal(t, known, a.Len())

	r := a.Region("unknown")
	assert.Equal(t, 8.0, r.Width)
	assert.Equal(t, 8.0, r.Height)
	assert.Equal(t, known+1, a.Len())
}

func TestViewProjectsDepthToScreenY(t *testing.T) {
	v := View{Camera: 100, Scale: 1}

	x, y := v.ToScreen(mgl64.Vec3{100, 0, 0})
	assert.Equal(t, float64(config.ScreenWidth/2), x)
	assert.Equal(t, float64(config.ScreenHeight/2), y)

	_, nearY := v.ToScreen(mgl64.Vec3{100, 0, 10})
	_, highY := v.ToScreen(mgl64.Vec3{100, 5, 0})
	assert.Greater(t, nearY, y, "closer rows are drawn lower")
	assert.Less(t, highY, y, "height goes up the screen")

	w, h := ScreenSize()
	assert.Equal(t, config.ScreenWidth*config.PixelScale, w)
	assert.Equal(t, config.ScreenHeight*config.PixelScale, h)
}

func TestBatchMirrorsHeldSprites(t *testing.T) {
	b := NewSpriteBatch(NewAtlas())
	pos := mgl64.Vec3{10, 0, 0}
	b.Submit(defs.SpriteAxe, pos, 1, 1, config.White)
	b.Submit(defs.SpriteAxe, pos, -1, 1, config.White)

	quads := b.Quads(View{Camera: 10, Scale: 1})
	require.Len(t, quads, 2)
	center := float32(config.ScreenWidth / 2)
	assert.Greater(t, (quads[0].X0+quads[0].X1)/2, center)
	assert.Less(t, (quads[1].X0+quads[1].X1)/2, center)
	assert.Less(t, quads[0].Y0, quads[0].Y1)
	assert.Equal(t, 2, b.Len(), "Quads does not consume the queue")
}

func TestBatchAppliesTintAndSkipsInvisible(t *testing.T) {
	b := NewSpriteBatch(NewAtlas())
	b.Submit(defs.SpriteHero, mgl64.Vec3{}, 1, 0, config.White)
	b.Submit(defs.SpriteHero, mgl64.Vec3{}, 1, 1, color.RGBA{0, 0, 0, 255})

	quads := b.Quads(NewView(0))
	require.Len(t, quads, 1)
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, quads[0].Color)
}

func TestParticlesStayInsideBoxes(t *testing.T) {
	ps := NewParticleSystem(utils.NewPRNGService(3))
	min, max := mgl64.Vec3{-2, 3, -2}, mgl64.Vec3{2, 5, 2}
	ps.Submit(config.ParticleCount, config.ParticleLifeTime, min, max, mgl64.Vec3{-1, 0, 0}, mgl64.Vec3{1, 1, 0}, config.HitColor)

	require.Equal(t, config.ParticleCount, ps.Len())
	for _, p := range ps.Particles() {
		for k := 0; k < 3; k++ {
			assert.GreaterOrEqual(t, p.Position[k], min[k])
			assert.LessOrEqual(t, p.Position[k], max[k])
		}
		assert.Less(t, p.LifeTime, config.ParticleLifeTime)
		assert.Equal(t, config.HitColor, p.Color)
	}
}

func TestParticlesFallAndExpire(t *testing.T) {
	ps := NewParticleSystem(utils.NewPRNGService(5))
	ps.Submit(10, 1, mgl64.Vec3{}, mgl64.Vec3{}, mgl64.Vec3{}, mgl64.Vec3{}, config.White)
	ps.particles[0].LifeTime = 10

	ps.Update(0.1)
	p := ps.Particles()[0]
	for _, q := range ps.Particles() {
		if q.LifeTime == 10 {
			p = q
		}
	}
	assert.Less(t, p.Velocity[1], 0.0)
	assert.Less(t, p.Position[1], 0.0)
	assert.InDelta(t, 0.99, p.Alpha(), 1e-9)

	ps.Update(1)
	require.Equal(t, 1, ps.Len())
	ps.Clear()
	assert.Zero(t, ps.Len())
}

func TestParticlesAreCapped(t *testing.T) {
	ps := NewParticleSystem(utils.NewPRNGService(1))
	ps.max = 15
	ps.Submit(10, 1, mgl64.Vec3{}, mgl64.Vec3{}, mgl64.Vec3{}, mgl64.Vec3{}, config.White)
	ps.Submit(10, 1, mgl64.Vec3{}, mgl64.Vec3{}, mgl64.Vec3{}, mgl64.Vec3{}, config.White)
	assert.Equal(t, 15, ps.Len())
}

func TestBackgroundTiles(t *testing.T) {
	bg := NewBackground(0.37)
	assert.Equal(t, bg.WallSprite(12), bg.WallSprite(12))
	assert.Equal(t, SpriteWall0, NewBackground(0).WallSprite(5))

	b := NewSpriteBatch(NewAtlas())
	bg.Submit(b, 123.5)
	assert.Equal(t, (floorRows+1)*(tileCols+1), b.Len())
	for _, it := range b.items {
		assert.Zero(t, (int(it.position[0])+tileSize/2)%tileSize, "tiles are aligned to the world grid")
	}
}
