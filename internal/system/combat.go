// internal/system/combat.go
package system

import (
	"image/color"

	"go-dungeon-runner/internal/audio"
	"go-dungeon-runner/internal/config"
	"go-dungeon-runner/internal/entity"
	"go-dungeon-runner/internal/event"
	"go-dungeon-runner/pkg/logger"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
)

// ParticleSink принимает вспышки частиц: count частиц живут lifeTime секунд,
// позиции и скорости выбираются равномерно в заданных коробках.
type ParticleSink interface {
	Submit(count int, lifeTime float64, posMin, posMax, velMin, velMax mgl64.Vec3, c color.RGBA)
}

// CombatSystem разбирает пересечения, найденные физикой, и начисляет монеты.
type CombatSystem struct {
	particles ParticleSink
	sounds    audio.Sink
	events    *event.Dispatcher
	coins     int
}

func NewCombatSystem(particles ParticleSink, sounds audio.Sink, events *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		particles: particles,
		sounds:    sounds,
		events:    events,
	}
}

// Coins — монеты, собранные за текущий забег.
func (s *CombatSystem) Coins() int {
	return s.coins
}

// ResetCoins обнуляет счет перед новым забегом.
func (s *CombatSystem) ResetCoins() {
	s.coins = 0
}

func (s *CombatSystem) credit(amount int) {
	if amount <= 0 {
		return
	}
	s.coins = min(config.MaxCoins, s.coins+amount)
	s.events.Dispatch(event.Event{Type: event.CoinsChanged, Data: event.CoinsData{Delta: amount, Total: s.coins}})
}

// OnHit — обработчик столкновений для PhysicsSystem.Simulate.
// Порядок разбора: сундук, снаряд, персонаж.
func (s *CombatSystem) OnHit(target, aggressor entity.Entity, sensor int) {
	switch t := target.(type) {
	case *entity.Chest:
		s.hitChest(t, aggressor)
	case *entity.Projectile:
		s.hitProjectile(t, aggressor)
	case *entity.Character:
		s.hitCharacter(t, nil, aggressor)
	case *entity.Enemy:
		s.hitCharacter(&t.Character, t, aggressor)
	}
}

// heroSide: удар нанес герой или его снаряд.
func heroSide(aggressor entity.Entity) bool {
	switch a := aggressor.(type) {
	case *entity.Character:
		return a.IsHero
	case *entity.Projectile:
		return a.Faction == entity.FactionHero
	}
	return false
}

func characterOf(e entity.Entity) *entity.Character {
	switch v := e.(type) {
	case *entity.Character:
		return v
	case *entity.Enemy:
		return &v.Character
	}
	return nil
}

func (s *CombatSystem) hitChest(chest *entity.Chest, aggressor entity.Entity) {
	if chest.IsOpen || !heroSide(aggressor) {
		return
	}
	coins, ok := chest.Open()
	if !ok {
		return
	}
	logger.Log.WithFields(logrus.Fields{"chest": chest.ID, "coins": coins}).Debug("Chest opened")
	s.sounds.Play(audio.CueCoin)
	s.events.Dispatch(event.Event{Type: event.ChestOpened, Data: event.CoinsData{Delta: coins, Total: s.coins + coins}})
	s.credit(coins)
}

func (s *CombatSystem) hitProjectile(p *entity.Projectile, aggressor entity.Entity) {
	if !p.IsLive() {
		return
	}

	damage := 0
	switch a := aggressor.(type) {
	case *entity.Character, *entity.Enemy:
		c := characterOf(a)
		if c.IsDead || c.Faction() == p.Faction {
			return
		}
		damage = attackDamage(c)
	case *entity.Projectile:
		// встречные снаряды гасят друг друга: второй вызов пары проходит и после гибели первого
		if a.Faction == p.Faction {
			return
		}
		damage = a.Damage
		s.particles.Submit(config.ParticleCount, config.ParticleLifeTime,
			p.Position.Add(mgl64.Vec3{-2, 3, -2}), p.Position.Add(mgl64.Vec3{2, 5, 2}),
			mgl64.Vec3{-8, 0, -1}, mgl64.Vec3{8, 6, 1}, a.HitColor)
		s.sounds.Play(audio.CueBlast)
	default:
		return
	}
	p.HitPoint -= damage
}

func attackDamage(c *entity.Character) int {
	if c.Weapon != nil {
		return c.Weapon.Damage
	}
	return c.Attack
}

func (s *CombatSystem) hitCharacter(c *entity.Character, enemy *entity.Enemy, aggressor entity.Entity) {
	if c.IsDead {
		return
	}

	var (
		damage     int
		pushBack   = 1.0
		hitColor   = config.HitColor
		effect     = entity.EffectNone
		sharp      bool
		projectile *entity.Projectile
	)
	switch a := aggressor.(type) {
	case *entity.Character, *entity.Enemy:
		ac := characterOf(a)
		if ac.IsDead || ac.Faction() == c.Faction() {
			return
		}
		damage = attackDamage(ac)
		if ac.Weapon != nil {
			pushBack = ac.Weapon.PushBack
			sharp = ac.Weapon.IsSharp
		}
	case *entity.Projectile:
		if !a.IsLive() || a.Faction == c.Faction() {
			return
		}
		damage = a.Damage
		hitColor = a.HitColor
		effect = a.Effect
		sharp = a.IsSharp
		projectile = a
	default:
		return
	}
	if damage <= 0 {
		return
	}
	if effect == entity.EffectPushback {
		pushBack *= config.PushbackEffectScale
	}

	from := aggressor.Base().Position
	dir := 1.0
	if c.Position[0] < from[0] {
		dir = -1
	}
	frontAttack := (c.FaceForward && dir < 0) || (!c.FaceForward && dir > 0)

	hit := c.Damage(damage, frontAttack, effect)

	scale := 1.0
	if !hit {
		scale = 0.5
	}
	c.Velocity = mgl64.Vec3{
		dir * config.KnockbackSpeed * pushBack * float64(damage) * scale,
		0,
		(c.Position[2] - from[2]) * config.KnockbackDepth * scale,
	}

	if projectile != nil {
		if hit || c.Shield == nil {
			projectile.HitPoint = 0
		} else {
			projectile.HitPoint -= c.Shield.Damage
		}
	}

	particleColor := config.BlockColor
	if hit {
		particleColor = hitColor
		if effect == entity.EffectFreeze {
			particleColor = config.IceHitColor
		}
	}
	velMin, velMax := mgl64.Vec3{-4, 0, -1}, mgl64.Vec3{16, 6, 1}
	if dir < 0 {
		velMin, velMax = mgl64.Vec3{-16, 0, -1}, mgl64.Vec3{4, 6, 1}
	}
	s.particles.Submit(config.ParticleCount, config.ParticleLifeTime,
		c.Position.Add(mgl64.Vec3{-2, 3, -2}), c.Position.Add(mgl64.Vec3{2, 5, 2}),
		velMin, velMax, particleColor)

	switch {
	case !hit:
		s.sounds.Play(audio.CueBlock)
	case sharp:
		s.sounds.Play(audio.CueCut)
	default:
		s.sounds.Play(audio.CueHit)
	}

	if enemy != nil && enemy.IsDead && heroSide(aggressor) {
		coins := enemy.TakeCoins()
		logger.Log.WithFields(logrus.Fields{"enemy": enemy.Name, "coins": coins}).Debug("Enemy killed")
		s.events.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{Name: enemy.Name, Coins: coins}})
		s.credit(coins)
	}
}
