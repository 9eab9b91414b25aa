// internal/entity/character.go
package entity

import (
	"go-dungeon-runner/internal/action"
	"go-dungeon-runner/internal/config"

	"github.com/go-gl/mathgl/mgl64"
)

// Character — герой или основа врага.
type Character struct {
	Body

	HitPoint    int
	MaxHitPoint int
	Speed       float64
	Attack      int // урон без оружия
	AttackDelay float64
	IsHero      bool

	Weapon *Weapon
	Shield *Weapon
	Armor  *Armor
	Sprite Sprite

	Actions action.Action

	// Снаряд, выпущенный в последнем обновлении. Забирается экраном через TakeProjectile.
	Projectile *Projectile

	// Состояние боя и анимации
	IsAttacking   float64
	IsHit         float64
	IsFrozen      float64
	IsBlocking    bool
	IsWalking     bool
	HitEffect     Effect
	Fade          float64
	BlockedDamage int
	ShieldBroken  float64

	healTimer float64
}

// NewCharacter создает персонажа с базовыми параметрами.
func NewCharacter(hitPoint int, sprite Sprite) *Character {
	return &Character{
		Body: Body{
			Position:    config.Origin,
			FaceForward: true,
			Hitbox:      config.HitBoxChar,
			Friction:    config.CharacterFriction,
		},
		HitPoint:    hitPoint,
		MaxHitPoint: hitPoint,
		Speed:       config.DefaultSpeed,
		Attack:      config.DefaultAttack,
		AttackDelay: config.DefaultAttackDelay,
		Sprite:      sprite,
	}
}

func (c *Character) Kind() Kind { return KindCharacter }

// Faction возвращает сторону персонажа.
func (c *Character) Faction() Faction {
	if c.IsHero {
		return FactionHero
	}
	return FactionMonster
}

// Stunned: после попадания или заморозки персонаж не управляется.
func (c *Character) Stunned() bool {
	return c.IsHit > 0 || c.IsFrozen > 0
}

// IsFullyDead сообщает, что анимация исчезновения закончилась.
func (c *Character) IsFullyDead() bool {
	return c.IsDead && c.Fade >= config.FadeDuration
}

// Alpha — прозрачность с учетом исчезновения после смерти.
func (c *Character) Alpha() float64 {
	if !c.IsDead {
		return 1
	}
	return mgl64.Clamp(1-c.Fade/config.FadeDuration, 0, 1)
}

// TakeProjectile отдает ожидающий снаряд и очищает слот.
func (c *Character) TakeProjectile() *Projectile {
	p := c.Projectile
	c.Projectile = nil
	return p
}

// Update переводит текущие действия в состояние и скорость персонажа.
func (c *Character) Update(dt float64) {
	c.Sensors = c.Sensors[:0]
	c.IsWalking = false
	c.IsAttacking = decay(c.IsAttacking, dt)
	c.IsHit = decay(c.IsHit, dt)
	c.IsFrozen = decay(c.IsFrozen, dt)

	if c.IsDead {
		c.IsBlocking = false
		c.Fade += dt
		return
	}

	c.ShieldBroken = decay(c.ShieldBroken, dt)
	// щит восстанавливается только после окончания перерыва
	if c.Shield != nil && c.ShieldBroken <= 0 && c.BlockedDamage >= config.ShieldBreakFactor*c.Shield.Damage {
		c.BlockedDamage = 0
	}
	c.regenerate(dt)

	c.IsBlocking = c.Shield != nil && c.Actions.Has(action.Block) && c.ShieldBroken <= 0

	if !c.IsBlocking && !c.Stunned() && c.IsAttacking <= 0 && c.Actions.Has(action.Attack) {
		c.startAttack()
	}

	if c.Actions.Has(action.Left) && !c.Actions.Has(action.Right) {
		c.FaceForward = false
	} else if c.Actions.Has(action.Right) {
		c.FaceForward = true
	}

	if c.Stunned() {
		return
	}

	drag := 1.0
	if c.IsBlocking {
		drag = config.BlockDrag
	}
	depth := c.Speed * config.ForwardScale * drag
	lateral := c.Speed * drag

	// каждое направление перезаписывает скорость, побеждает последний бит
	v := mgl64.Vec3{}
	if c.Actions.Has(action.Up) {
		v = mgl64.Vec3{0, 0, -depth}
	}
	if c.Actions.Has(action.Down) {
		v = mgl64.Vec3{0, 0, depth}
	}
	if c.Actions.Has(action.Left) {
		v = mgl64.Vec3{-lateral, 0, v[2]}
	}
	if c.Actions.Has(action.Right) {
		v = mgl64.Vec3{lateral, 0, v[2]}
	}
	c.Velocity = v
	c.IsWalking = v[0] != 0 || v[1] != 0 || v[2] != 0
}

func (c *Character) attackDuration() float64 {
	if c.Weapon != nil && c.Weapon.Speed > 0 {
		return c.Weapon.Speed
	}
	return config.DefaultAttackSpeed
}

func (c *Character) startAttack() {
	c.IsAttacking = c.attackDuration()

	hitbox := config.HitBoxWeaponSmall
	if c.Weapon != nil && !c.Weapon.Hitbox.IsZero() {
		hitbox = c.Weapon.Hitbox
	}
	c.Sensors = append(c.Sensors, hitbox)

	if c.Weapon.IsRanged() {
		p := c.Weapon.CreateProjectile(c.Position, c.FaceForward)
		p.Owner = c.ID
		p.Faction = c.Faction()
		p.InitialVelocity[2] = c.Velocity[2]
		c.Projectile = p
	}
}

func (c *Character) regenerate(dt float64) {
	if !c.IsHero || c.HitPoint >= c.MaxHitPoint {
		c.healTimer = 0
		return
	}
	interval := config.HealInterval
	if c.Armor != nil {
		interval -= c.Armor.RecoverRate
	}
	if interval < config.MinHealInterval {
		interval = config.MinHealInterval
	}
	c.healTimer += dt
	if c.healTimer >= interval {
		c.healTimer = 0
		c.HitPoint++
	}
}

// Damage наносит урон. Возвращает true, если удар не был заблокирован.
func (c *Character) Damage(amount int, frontAttack bool, effect Effect) bool {
	if c.IsDead {
		return false
	}

	if c.Armor != nil && c.Armor.Armor > 0 && amount > 0 {
		amount -= c.Armor.Armor
		if amount < 1 {
			amount = 1
		}
	}

	blocked := frontAttack && c.IsBlocking && c.Shield != nil
	if c.IsBlocking && !frontAttack {
		// удар во фланг сбивает блок, но не портит щит
		c.IsBlocking = false
		c.ShieldBroken = max(c.ShieldBroken, config.FlankBlockPenalty)
	}

	if blocked {
		rating := c.Shield.Damage
		absorbed := min(amount, rating)
		c.BlockedDamage += absorbed
		if c.BlockedDamage >= config.ShieldBreakFactor*rating {
			blocked = false
			c.IsBlocking = false
			c.ShieldBroken = config.ShieldBreakDuration
		} else {
			amount -= absorbed
		}
	}

	if amount > 0 {
		c.HitPoint -= amount
		c.hit(effect)
	}
	if c.HitPoint <= 0 {
		c.HitPoint = 0
		c.die()
	}
	return !blocked
}

func (c *Character) hit(effect Effect) {
	c.IsHit = config.HitDuration
	c.HitEffect = effect
	if effect == EffectFreeze {
		c.IsFrozen = config.FreezeDuration
	}
}

func (c *Character) die() {
	c.IsDead = true
	c.IsBlocking = false
	c.IsAttacking = 0
	c.Sensors = c.Sensors[:0]
	c.Projectile = nil
}
