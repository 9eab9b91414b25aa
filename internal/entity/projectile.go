// internal/entity/projectile.go
package entity

import (
	"image/color"

	"go-dungeon-runner/internal/config"

	"github.com/go-gl/mathgl/mgl64"
)

// Projectile — снаряд с постоянной баллистической скоростью.
type Projectile struct {
	Body

	Owner    ID
	Faction  Faction
	Sprite   Sprite
	LifeTime float64
	Age      float64
	Damage   int
	Effect   Effect
	HitColor color.RGBA
	IsSharp  bool
	HitPoint int

	InitialVelocity mgl64.Vec3
}

// NewProjectile создает снаряд в точке position, летящий со скоростью velocity.
func NewProjectile(position, velocity mgl64.Vec3, sprite Sprite) *Projectile {
	return &Projectile{
		Body: Body{
			Position:    position,
			Velocity:    velocity,
			FaceForward: velocity[0] >= 0,
			Hitbox:      config.HitBoxChar,
			Friction:    config.DefaultFriction,
		},
		Sprite:          sprite,
		LifeTime:        config.DefaultProjectileLifeTime,
		Damage:          1,
		HitColor:        config.HitColor,
		HitPoint:        config.DefaultProjectileHitPoint,
		InitialVelocity: velocity,
	}
}

func (p *Projectile) Kind() Kind { return KindProjectile }

// IsLive: снаряд еще может наносить урон.
func (p *Projectile) IsLive() bool {
	return !p.IsDead && p.HitPoint > 0
}

// Update восстанавливает скорость и сенсор, проверяет время жизни.
func (p *Projectile) Update(dt float64) {
	p.Sensors = p.Sensors[:0]
	if p.IsDead {
		return
	}
	p.Age += dt
	if p.HitPoint <= 0 || p.Age > p.LifeTime {
		p.IsDead = true
		return
	}

	p.Velocity = p.InitialVelocity
	p.Sensors = append(p.Sensors, p.Hitbox)
	if p.Velocity[0] < 0 {
		p.FaceForward = false
	} else if p.Velocity[0] > 0 {
		p.FaceForward = true
	}
}
