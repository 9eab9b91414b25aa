// internal/render/particles.go
package render

import (
	"image/color"

	"go-dungeon-runner/internal/config"
	"go-dungeon-runner/internal/utils"
	palette "go-dungeon-runner/pkg/render"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Particle — одна точка вспышки.
type Particle struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Age      float64
	LifeTime float64
	Color    color.RGBA
}

// Alpha убывает линейно за время жизни.
func (p *Particle) Alpha() float64 {
	if p.LifeTime <= 0 {
		return 0
	}
	return mgl64.Clamp(1-p.Age/p.LifeTime, 0, 1)
}

// ParticleSystem интегрирует частицы на CPU и рисует их квадратами.
type ParticleSystem struct {
	rng       *utils.PRNGService
	particles []Particle
	max       int
}

func NewParticleSystem(rng *utils.PRNGService) *ParticleSystem {
	return &ParticleSystem{
		rng:       rng,
		particles: make([]Particle, 0, 256),
		max:       config.MaxParticles,
	}
}

// Submit добавляет вспышку. Время жизни каждой частицы случайно в [0, lifeTime).
// Сверх лимита частицы отбрасываются.
func (s *ParticleSystem) Submit(count int, lifeTime float64, posMin, posMax, velMin, velMax mgl64.Vec3, c color.RGBA) {
	for i := 0; i < count && len(s.particles) < s.max; i++ {
		var p Particle
		for k := 0; k < 3; k++ {
			p.Position[k] = s.rng.Range(posMin[k], posMax[k])
			p.Velocity[k] = s.rng.Range(velMin[k], velMax[k])
		}
		p.LifeTime = s.rng.Float64() * lifeTime
		p.Color = c
		s.particles = append(s.particles, p)
	}
}

// Update двигает частицы с гравитацией и удаляет отжившие.
func (s *ParticleSystem) Update(dt float64) {
	gravity := mgl64.Vec3{0, -config.ParticleGravity, 0}
	for i := 0; i < len(s.particles); {
		p := &s.particles[i]
		p.Age += dt
		if p.Age >= p.LifeTime {
			last := len(s.particles) - 1
			s.particles[i] = s.particles[last]
			s.particles = s.particles[:last]
			continue
		}
		p.Velocity = p.Velocity.Add(gravity.Mul(dt))
		p.Position = p.Position.Add(p.Velocity.Mul(dt))
		i++
	}
}

// Particles — живые частицы.
func (s *ParticleSystem) Particles() []Particle {
	return s.particles
}

func (s *ParticleSystem) Len() int {
	return len(s.particles)
}

// Clear удаляет все частицы.
func (s *ParticleSystem) Clear() {
	s.particles = s.particles[:0]
}

// Draw рисует частицы квадратами в одну единицу мира.
func (s *ParticleSystem) Draw(screen *ebiten.Image, v View) {
	size := float32(v.Scale)
	for i := range s.particles {
		p := &s.particles[i]
		x, y := v.ToScreen(p.Position)
		c := palette.Modulate(p.Color, config.White, p.Alpha())
		vector.DrawFilledRect(screen, float32(x)-size/2, float32(y)-size/2, size, size, c, false)
	}
}
