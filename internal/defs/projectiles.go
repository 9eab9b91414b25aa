// internal/defs/projectiles.go
package defs

import (
	"go-dungeon-runner/internal/config"
	"go-dungeon-runner/internal/entity"

	"github.com/go-gl/mathgl/mgl64"
)

func launch(position mgl64.Vec3, faceForward bool, speed float64, sprite entity.Sprite) *entity.Projectile {
	dir := 1.0
	if !faceForward {
		dir = -1
	}
	return entity.NewProjectile(position, mgl64.Vec3{dir * speed, 0, 0}, sprite)
}

// CreateArrow — стрела длинного лука.
func CreateArrow(position mgl64.Vec3, faceForward bool) *entity.Projectile {
	p := launch(position, faceForward, 96, SpriteArrow)
	p.LifeTime = 2
	p.Damage = 4
	p.Effect = entity.EffectPushback
	p.HitColor = config.ArrowHitColor
	p.IsSharp = true
	return p
}

// CreateShortArrow — стрела короткого лука, летит недалеко.
func CreateShortArrow(position mgl64.Vec3, faceForward bool) *entity.Projectile {
	p := launch(position, faceForward, 80, SpriteArrow)
	p.LifeTime = 0.8
	p.Damage = 4
	p.Effect = entity.EffectPushback
	p.HitColor = config.ArrowHitColor
	p.IsSharp = true
	return p
}

func CreateFireball(position mgl64.Vec3, faceForward bool) *entity.Projectile {
	p := launch(position, faceForward, 40, SpriteFireball)
	p.Damage = 6
	p.HitColor = config.FireHitColor
	return p
}

// CreateIceball замораживает цель.
func CreateIceball(position mgl64.Vec3, faceForward bool) *entity.Projectile {
	p := launch(position, faceForward, 32, SpriteIceball)
	p.Damage = 4
	p.Effect = entity.EffectFreeze
	p.HitColor = config.IceHitColor
	return p
}

func CreateHolyAttack(position mgl64.Vec3, faceForward bool) *entity.Projectile {
	p := launch(position, faceForward, 20, SpriteHoly)
	p.LifeTime = 1
	p.Damage = 5
	p.HitColor = config.HolyHitColor
	return p
}
