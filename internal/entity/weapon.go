// internal/entity/weapon.go
package entity

import (
	"go-dungeon-runner/pkg/geom"

	"github.com/go-gl/mathgl/mgl64"
)

// ProjectileFactory создает снаряд в точке стрелка.
type ProjectileFactory func(position mgl64.Vec3, faceForward bool) *Projectile

// Weapon — неизменяемое описание оружия или щита. Экземпляры разделяются между персонажами.
type Weapon struct {
	Name             string
	Damage           int
	Sprite           Sprite
	Hitbox           geom.AABB
	Speed            float64 // длительность удара
	TwoHanded        bool
	PushBack         float64
	IsSharp          bool
	CreateProjectile ProjectileFactory
}

// IsRanged сообщает, что оружие стреляет.
func (w *Weapon) IsRanged() bool {
	return w != nil && w.CreateProjectile != nil
}

// Armor — неизменяемое описание брони.
type Armor struct {
	Name        string
	Sprite      Sprite
	Armor       int
	RecoverRate float64
}
