// internal/defs/enemies.go
package defs

import (
	"fmt"
	"math"

	"go-dungeon-runner/internal/config"
	"go-dungeon-runner/internal/entity"
	"go-dungeon-runner/internal/utils"

	"github.com/go-gl/mathgl/mgl64"
)

// Идентификаторы врагов из enemies.json.
const (
	EnemyRat            = "rat"
	EnemyBat            = "bat"
	EnemySpider         = "spider"
	EnemyGoblin         = "goblin"
	EnemySnake          = "snake"
	EnemySlime          = "slime"
	EnemySlime2         = "slime2"
	EnemySlime3         = "slime3"
	EnemyMinotaur       = "minotaur"
	EnemyMinotaur2      = "minotaur2"
	EnemyMinotaurArcher = "minotaur_archer"
	EnemySkeleton       = "skeleton"
	EnemySkeleton2      = "skeleton2"
	EnemySkeletonArcher = "skeleton_archer"
	EnemySkeletonMage   = "skeleton_mage"
	EnemyDemonSkeleton  = "demon_skeleton"
)

// EnemyDefinition holds all the static data for a specific type of enemy.
// Нулевые числовые поля означают значение по умолчанию, кроме flee_threshold.
type EnemyDefinition struct {
	ID            string   `json:"id"`
	Sprite        string   `json:"sprite"`
	HitPoint      int      `json:"hitpoint"`
	Attack        int      `json:"attack"`
	Coins         int      `json:"coins"`
	CoinsBonus    float64  `json:"coins_bonus"` // гоблин: монеты = hp + rand*hp*bonus
	FleeThreshold *float64 `json:"flee_threshold"`
	AttackDelay   float64  `json:"attack_delay"`
	Speed         float64  `json:"speed"`
	Aggressive    float64  `json:"aggressive"`
	Weapon        string   `json:"weapon"`
	Shield        string   `json:"shield"`
	Behavior      string   `json:"behavior"`
}

// EnemyOption переопределяет параметры рецепта на месте вызова.
type EnemyOption func(*entity.Enemy)

// WithHitPoint задает здоровье.
func WithHitPoint(hp int) EnemyOption {
	return func(e *entity.Enemy) {
		e.HitPoint = hp
		e.MaxHitPoint = hp
	}
}

// WithTarget задает цель преследования.
func WithTarget(id entity.ID) EnemyOption {
	return func(e *entity.Enemy) {
		e.Target = id
	}
}

// WithBehavior меняет стратегию ИИ.
func WithBehavior(b entity.Behavior) EnemyOption {
	return func(e *entity.Enemy) {
		e.Behavior = b
	}
}

func parseBehavior(name string) (entity.Behavior, error) {
	switch name {
	case "", "skirmisher":
		return entity.BehaviorSkirmisher, nil
	case "ranged":
		return entity.BehaviorRanged, nil
	case "idle":
		return entity.BehaviorIdle, nil
	}
	return 0, fmt.Errorf("unknown behavior %q", name)
}

func (d EnemyDefinition) validate() error {
	if d.ID == "" {
		return fmt.Errorf("enemy definition without id")
	}
	if d.HitPoint <= 0 {
		return fmt.Errorf("enemy %s: hitpoint must be positive", d.ID)
	}
	if d.Weapon != "" {
		if _, ok := Weapons[d.Weapon]; !ok {
			return fmt.Errorf("enemy %s: unknown weapon %s", d.ID, d.Weapon)
		}
	}
	if d.Shield != "" {
		if _, ok := Weapons[d.Shield]; !ok {
			return fmt.Errorf("enemy %s: unknown shield %s", d.ID, d.Shield)
		}
	}
	if _, err := parseBehavior(d.Behavior); err != nil {
		return fmt.Errorf("enemy %s: %w", d.ID, err)
	}
	return nil
}

// CreateEnemy собирает врага по рецепту id. rng нужен для случайной добычи.
func CreateEnemy(id string, position mgl64.Vec3, rng *utils.PRNGService, opts ...EnemyOption) (*entity.Enemy, error) {
	def, ok := EnemyLibrary[id]
	if !ok {
		return nil, fmt.Errorf("enemy definition not found for ID: %s", id)
	}

	e := entity.NewEnemy(def.ID, def.HitPoint, entity.Sprite(def.Sprite))
	e.Position = position
	if def.Attack > 0 {
		e.Attack = def.Attack
	}
	if def.AttackDelay > 0 {
		e.AttackDelay = def.AttackDelay
	}
	if def.Speed > 0 {
		e.Speed = def.Speed
	}
	if def.Aggressive > 0 {
		e.Aggressive = def.Aggressive
	}
	if def.FleeThreshold != nil {
		e.FleeThreshold = *def.FleeThreshold
	}
	if def.Weapon != "" {
		e.Weapon = Weapons[def.Weapon]
	}
	if def.Shield != "" {
		e.Shield = Weapons[def.Shield]
	}
	e.Behavior, _ = parseBehavior(def.Behavior)

	for _, opt := range opts {
		opt(e)
	}

	// монеты считаются после переопределений, гоблин зависит от итогового здоровья
	switch {
	case def.CoinsBonus > 0:
		hp := float64(e.MaxHitPoint)
		e.Coins = int(math.Floor(hp + rng.Float64()*hp*def.CoinsBonus))
	case def.Coins > 0:
		e.Coins = def.Coins
	}
	return e, nil
}

// MustCreateEnemy — CreateEnemy для идентификаторов из встроенной таблицы.
func MustCreateEnemy(id string, position mgl64.Vec3, rng *utils.PRNGService, opts ...EnemyOption) *entity.Enemy {
	e, err := CreateEnemy(id, position, rng, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// CreateChest создает сундук с монетами в диапазоне [min, max).
func CreateChest(position mgl64.Vec3, min, max int, rng *utils.PRNGService) *entity.Chest {
	if max <= min {
		max = min + 1
	}
	c := entity.NewChest(int(math.Floor(rng.Range(float64(min), float64(max)))))
	c.Position = position
	return c
}

// CreateDefaultChest — сундук с диапазоном по умолчанию.
func CreateDefaultChest(position mgl64.Vec3, rng *utils.PRNGService) *entity.Chest {
	return CreateChest(position, config.DefaultChestMin, config.DefaultChestMax, rng)
}
