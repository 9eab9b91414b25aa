// internal/system/physics.go
package system

import (
	"go-dungeon-runner/internal/entity"
	"go-dungeon-runner/pkg/geom"

	"github.com/go-gl/mathgl/mgl64"
)

// HitFunc вызывается при пересечении сенсора агрессора с хитбоксом цели.
type HitFunc func(target, aggressor entity.Entity, sensor int)

// PhysicsSystem интегрирует движение и ищет пересечения сенсоров с хитбоксами.
type PhysicsSystem struct {
	min mgl64.Vec3
	max mgl64.Vec3
}

func NewPhysicsSystem(min, max mgl64.Vec3) *PhysicsSystem {
	return &PhysicsSystem{min: min, max: max}
}

// Bounds возвращает границы мира.
func (s *PhysicsSystem) Bounds() (mgl64.Vec3, mgl64.Vec3) {
	return s.min, s.max
}

// Simulate двигает тела и перебирает все упорядоченные пары (i, j), i != j.
// Пара, у которой сенсоры есть с обеих сторон, дает два вызова onHit.
func (s *PhysicsSystem) Simulate(dt float64, entities []entity.Entity, onHit HitFunc) {
	for _, e := range entities {
		s.integrate(e.Base(), dt)
	}
	if onHit == nil {
		return
	}

	for i, target := range entities {
		tb := target.Base()
		hitbox := tb.Hitbox.Translate(tb.Position)
		for j, aggressor := range entities {
			if i == j {
				continue
			}
			ab := aggressor.Base()
			if len(ab.Sensors) == 0 {
				continue
			}
			m := geom.BodyTransform(ab.Position, ab.FaceForward)
			// onHit может менять сенсоры, поэтому длина перечитывается
			for k := 0; k < len(ab.Sensors); k++ {
				if geom.Intersect(hitbox, ab.Sensors[k].Transform(m)) {
					onHit(target, aggressor, k)
				}
			}
		}
	}
}

func (s *PhysicsSystem) integrate(b *entity.Body, dt float64) {
	b.Position = geom.Clamp(b.Position.Add(b.Velocity.Mul(dt)), s.min, s.max)
	b.Velocity = geom.Damp(b.Velocity, b.Friction, dt)
}
