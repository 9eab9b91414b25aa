// internal/system/ai.go
package system

import (
	"math"

	"go-dungeon-runner/internal/action"
	"go-dungeon-runner/internal/config"
	"go-dungeon-runner/internal/entity"
	"go-dungeon-runner/internal/utils"
)

// Strategy выбирает действия врага на очередном шаге решения.
// target равен nil, если цели нет или ссылка повисла.
type Strategy interface {
	Decide(e *entity.Enemy, target *entity.Character, t float64) action.Action
}

// AISystem раз в interval секунд переписывает маску действий каждого врага.
type AISystem struct {
	world      *entity.World
	rng        *utils.PRNGService
	interval   float64
	time       float64
	strategies map[entity.Behavior]Strategy
}

func NewAISystem(world *entity.World, rng *utils.PRNGService, interval float64) *AISystem {
	if interval <= 0 {
		interval = config.DecisionInterval
	}
	return &AISystem{
		world:    world,
		rng:      rng,
		interval: interval,
		strategies: map[entity.Behavior]Strategy{
			entity.BehaviorSkirmisher: &skirmisher{rng: rng},
			entity.BehaviorRanged:     &ranged{rng: rng},
			entity.BehaviorIdle:       idle{},
		},
	}
}

// Time — внутренние часы системы, от них считаются задержки атаки и блока.
func (s *AISystem) Time() float64 {
	return s.time
}

// Reset сбрасывает часы перед новым забегом.
func (s *AISystem) Reset() {
	s.time = 0
}

func (s *AISystem) Update(dt float64) {
	s.time += dt
	for _, e := range s.world.Enemies {
		if e.IsDead {
			e.Actions = action.None
			continue
		}
		e.DecisionTimer += dt
		if e.DecisionTimer < s.interval {
			continue
		}
		e.DecisionTimer = 0

		strategy, ok := s.strategies[e.Behavior]
		if !ok {
			strategy = s.strategies[entity.BehaviorSkirmisher]
		}
		e.Actions = strategy.Decide(e, s.world.Character(e.Target), s.time)
	}
}

// engaged: цель жива и достаточно близко по X.
func engaged(e *entity.Enemy, target *entity.Character) bool {
	if target == nil || target.IsDead {
		return false
	}
	return math.Abs(e.Position[0]-target.Position[0]) <= config.EngageDistance
}

// wander перебрасывает каждый бит направления, зажатые биты держатся дольше.
func wander(rng *utils.PRNGService, current action.Action) action.Action {
	next := action.None
	for _, bit := range []action.Action{action.Left, action.Right, action.Up, action.Down} {
		p := config.WanderChance - config.WanderIdlePenalty
		if current.Has(bit) {
			p = config.WanderChance + config.WanderHoldBonus
		}
		if rng.Chance(p) {
			next |= bit
		}
	}
	return next
}

// strikeRange — досягаемость оружия по X и Z.
func strikeRange(c *entity.Character) (float64, float64) {
	hitbox := config.HitBoxWeaponSmall
	if c.Weapon != nil && !c.Weapon.Hitbox.IsZero() {
		hitbox = c.Weapon.Hitbox
	}
	return hitbox.Max[0], hitbox.Max[2]
}

// faceTarget добавляет бит, разворачивающий врага к цели.
func faceTarget(e *entity.Enemy, distX float64) action.Action {
	switch {
	case e.FaceForward && distX > 0:
		return action.Left
	case !e.FaceForward && distX < 0:
		return action.Right
	}
	return action.None
}

// flee уводит врага от цели: по X только вблизи и без блока, по Z всегда.
func flee(distX, distZ float64, blocking bool) action.Action {
	a := action.None
	if math.Abs(distX) < config.FleeDistance && !blocking {
		if distX > 0 {
			a |= action.Right
		} else {
			a |= action.Left
		}
	}
	if distZ > 0 {
		a |= action.Down
	} else {
		a |= action.Up
	}
	return a
}

type skirmisher struct {
	rng *utils.PRNGService
}

func (s *skirmisher) Decide(e *entity.Enemy, target *entity.Character, t float64) action.Action {
	if !engaged(e, target) {
		return wander(s.rng, e.Actions)
	}

	distX := e.Position[0] - target.Position[0]
	distZ := e.Position[2] - target.Position[2]
	rangeX, rangeZ := strikeRange(&e.Character)
	inStrikeX := math.Abs(distX) <= rangeX

	a := action.None
	if math.Abs(distZ) <= rangeZ {
		switch {
		case e.Shield != nil && t-e.LastBlockTime < config.BlockHoldTime:
			a |= action.Block
		case s.canBlock(e, t) && s.rng.Chance(1-e.Aggressive) &&
			(inStrikeX || (target.Weapon.IsRanged() && math.Abs(distX) <= config.RangedBlockDistance)):
			a |= action.Block
			e.LastBlockTime = t
		case inStrikeX && s.rng.Chance(e.Aggressive) && t-e.LastAttackTime > e.AttackDelay:
			a |= action.Attack
			e.LastAttackTime = t
		}
		a |= faceTarget(e, distX)
	}

	if e.IsFleeing() {
		return a | flee(distX, distZ, a.Has(action.Block))
	}
	if s.rng.Chance(config.ApproachChance) {
		if math.Abs(distZ) > rangeZ {
			if distZ > 0 {
				a |= action.Up
			} else {
				a |= action.Down
			}
		}
		if !inStrikeX {
			if distX > 0 {
				a |= action.Left
			} else {
				a |= action.Right
			}
		}
	}
	return a
}

func (s *skirmisher) canBlock(e *entity.Enemy, t float64) bool {
	return e.Shield != nil && e.ShieldBroken <= 0 &&
		t-e.LastBlockTime >= config.BlockHoldTime+config.BlockCooldown
}

// ranged держит дистанцию, выравнивается по Z и стреляет.
type ranged struct {
	rng *utils.PRNGService
}

func (r *ranged) Decide(e *entity.Enemy, target *entity.Character, t float64) action.Action {
	if !engaged(e, target) {
		return wander(r.rng, e.Actions)
	}

	distX := e.Position[0] - target.Position[0]
	distZ := e.Position[2] - target.Position[2]
	if e.IsFleeing() {
		return flee(distX, distZ, false)
	}

	a := action.None
	aligned := math.Abs(distZ) <= config.RangedAlignDepth
	if !aligned {
		if distZ > 0 {
			a |= action.Up
		} else {
			a |= action.Down
		}
	}

	if math.Abs(distX) < config.RangedKeepDistance {
		if distX > 0 {
			a |= action.Right
		} else {
			a |= action.Left
		}
		return a
	}

	turn := faceTarget(e, distX)
	if turn != action.None {
		return a | turn
	}
	if aligned && t-e.LastAttackTime > e.AttackDelay && r.rng.Chance(e.Aggressive) {
		a |= action.Attack
		e.LastAttackTime = t
	}
	return a
}

// idle — манекен.
type idle struct{}

func (idle) Decide(*entity.Enemy, *entity.Character, float64) action.Action {
	return action.None
}
