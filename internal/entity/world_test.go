package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorldLookupAndDanglingReference(t *testing.T) {
	w := NewWorld()
	hero := NewCharacter(10, "hero")
	heroID := w.SetHero(hero)
	rat := NewEnemy("rat", 5, "rat")
	ratID := w.AddEnemy(rat)

	assert.NotEqual(t, heroID, ratID)
	assert.Same(t, hero, w.Character(heroID))
	assert.Same(t, &rat.Character, w.Character(ratID))

	w.PruneEnemies(func(*Enemy) bool { return false })
	assert.Nil(t, w.Character(ratID), "removed enemy must not resolve")
	_, ok := w.Lookup(0)
	assert.False(t, ok)
}

func TestWorldPruneSwapsWithLast(t *testing.T) {
	w := NewWorld()
	a := NewEnemy("a", 1, "a")
	b := NewEnemy("b", 1, "b")
	c := NewEnemy("c", 1, "c")
	w.AddEnemy(a)
	w.AddEnemy(b)
	w.AddEnemy(c)

	removed := w.PruneEnemies(func(e *Enemy) bool { return e != a })

	assert.Equal(t, 1, removed)
	require.Len(t, w.Enemies, 2)
	assert.Same(t, c, w.Enemies[0])
	assert.Same(t, b, w.Enemies[1])
}

func TestWorldBodiesOrder(t *testing.T) {
	w := NewWorld()
	hero := NewCharacter(10, "hero")
	w.SetHero(hero)
	e := NewEnemy("rat", 5, "rat")
	w.AddEnemy(e)
	chest := NewChest(10)
	w.AddItem(chest)
	p := NewProjectile(mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, "arrow")
	w.AddItem(p)

	bodies := w.Bodies(nil)
	require.Len(t, bodies, 4)
	assert.Equal(t, KindCharacter, bodies[0].Kind())
	assert.Equal(t, KindEnemy, bodies[1].Kind())
	assert.Equal(t, KindChest, bodies[2].Kind())
	assert.Equal(t, KindProjectile, bodies[3].Kind())

	removed := w.PruneItems(func(e Entity) bool { return e.Kind() != KindProjectile })
	assert.Equal(t, 1, removed)
	_, ok := w.Lookup(p.ID)
	assert.False(t, ok)
}

func TestProjectileLifecycle(t *testing.T) {
	p := NewProjectile(mgl64.Vec3{}, mgl64.Vec3{-40, 0, 2}, "arrow")
	p.LifeTime = 1

	p.Velocity = mgl64.Vec3{}
	p.Update(0.1)
	assert.Equal(t, p.InitialVelocity, p.Velocity)
	assert.False(t, p.FaceForward)
	require.Len(t, p.Sensors, 1)
	assert.Equal(t, p.Hitbox, p.Sensors[0])

	p.Update(1)
	assert.True(t, p.IsDead)
	assert.Empty(t, p.Sensors)

	q := NewProjectile(mgl64.Vec3{}, mgl64.Vec3{40, 0, 0}, "arrow")
	q.HitPoint = 0
	assert.False(t, q.IsLive())
	q.Update(0.01)
	assert.True(t, q.IsDead)
}

func TestChestOpensOnce(t *testing.T) {
	c := NewChest(150)

	coins, ok := c.Open()
	assert.True(t, ok)
	assert.Equal(t, 150, coins)

	coins, ok = c.Open()
	assert.False(t, ok)
	assert.Zero(t, coins)
}

func TestEnemyFleeingAndLoot(t *testing.T) {
	e := NewEnemy("goblin", 20, "goblin")
	e.FleeThreshold = 0.5
	e.Coins = 12

	assert.False(t, e.IsFleeing())
	e.HitPoint = 10
	assert.True(t, e.IsFleeing())

	assert.Equal(t, 12, e.TakeCoins())
	assert.Zero(t, e.TakeCoins())
}
