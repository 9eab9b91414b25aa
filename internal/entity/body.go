// internal/entity/body.go
package entity

import (
	"go-dungeon-runner/pkg/geom"

	"github.com/go-gl/mathgl/mgl64"
)

// ID — слабая ссылка на сущность в мире. Ноль означает "нет ссылки".
type ID uint32

// Kind — закрытый набор видов сущностей.
type Kind int

const (
	KindCharacter Kind = iota
	KindEnemy
	KindProjectile
	KindChest
)

func (k Kind) String() string {
	switch k {
	case KindCharacter:
		return "character"
	case KindEnemy:
		return "enemy"
	case KindProjectile:
		return "projectile"
	case KindChest:
		return "chest"
	}
	return "unknown"
}

// Faction определяет стороны конфликта для дружественного огня.
type Faction int

const (
	FactionMonster Faction = iota
	FactionHero
)

// Effect — статусный эффект попадания.
type Effect int

const (
	EffectNone Effect = iota
	EffectPushback
	EffectFreeze
)

// Sprite — имя спрайта в атласе рендерера.
type Sprite string

// Body — физическое тело: позиция, скорость, хитбокс и сенсоры.
type Body struct {
	ID          ID
	Position    mgl64.Vec3
	Velocity    mgl64.Vec3
	FaceForward bool
	Hitbox      geom.AABB
	Sensors     []geom.AABB // живут один кадр
	Friction    float64
	IsDead      bool
}

// Base возвращает само тело. Через встраивание метод доступен у всех видов сущностей.
func (b *Body) Base() *Body {
	return b
}

// Entity — общий интерфейс сущностей, участвующих в физике.
type Entity interface {
	Base() *Body
	Kind() Kind
	Update(dt float64)
}

func decay(timer, dt float64) float64 {
	timer -= dt
	if timer < 0 {
		return 0
	}
	return timer
}
