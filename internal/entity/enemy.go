// internal/entity/enemy.go
package entity

import (
	"math"

	"go-dungeon-runner/internal/config"
)

// Behavior выбирает стратегию ИИ при создании врага.
type Behavior int

const (
	BehaviorSkirmisher Behavior = iota // ближний бой, поведение по умолчанию
	BehaviorRanged                     // держит дистанцию и стреляет
	BehaviorIdle                       // ничего не делает
)

func (b Behavior) String() string {
	switch b {
	case BehaviorSkirmisher:
		return "skirmisher"
	case BehaviorRanged:
		return "ranged"
	case BehaviorIdle:
		return "idle"
	}
	return "unknown"
}

// Enemy — персонаж под управлением ИИ.
type Enemy struct {
	Character

	Name           string
	Target         ID
	Coins          int
	FleeThreshold  float64
	Aggressive     float64
	LastAttackTime float64
	LastBlockTime  float64
	Behavior       Behavior

	// накопитель времени до следующего решения ИИ
	DecisionTimer float64
}

// NewEnemy создает врага с параметрами по умолчанию.
func NewEnemy(name string, hitPoint int, sprite Sprite) *Enemy {
	return &Enemy{
		Character:      *NewCharacter(hitPoint, sprite),
		Name:           name,
		Coins:          1,
		FleeThreshold:  config.DefaultFleeThreshold,
		Aggressive:     config.DefaultAggressive,
		LastAttackTime: math.Inf(-1),
		LastBlockTime:  math.Inf(-1),
		Behavior:       BehaviorSkirmisher,
	}
}

func (e *Enemy) Kind() Kind { return KindEnemy }

// HealthFraction — доля оставшегося здоровья.
func (e *Enemy) HealthFraction() float64 {
	if e.MaxHitPoint <= 0 {
		return 0
	}
	return float64(e.HitPoint) / float64(e.MaxHitPoint)
}

// IsFleeing сообщает, что здоровье опустилось до порога бегства.
func (e *Enemy) IsFleeing() bool {
	return e.HealthFraction() <= e.FleeThreshold
}

// TakeCoins забирает добычу. Повторный вызов вернет ноль.
func (e *Enemy) TakeCoins() int {
	coins := e.Coins
	e.Coins = 0
	return coins
}
