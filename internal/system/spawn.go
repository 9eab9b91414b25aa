// internal/system/spawn.go
package system

import (
	"math"

	"go-dungeon-runner/internal/config"
	"go-dungeon-runner/internal/defs"
	"go-dungeon-runner/internal/entity"
	"go-dungeon-runner/internal/event"
	"go-dungeon-runner/internal/utils"
	"go-dungeon-runner/pkg/logger"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
)

// SpawnSystem заполняет уровень врагами, когда герой входит в новую полосу.
type SpawnSystem struct {
	world  *entity.World
	rng    *utils.PRNGService
	events *event.Dispatcher

	band     float64
	period   int
	cycle    int
	min, max mgl64.Vec3

	maxSpawn int
}

func NewSpawnSystem(world *entity.World, rng *utils.PRNGService, events *event.Dispatcher, settings config.Settings) *SpawnSystem {
	min, max := settings.Bounds()
	return &SpawnSystem{
		world:  world,
		rng:    rng,
		events: events,
		band:   settings.BandSize,
		period: settings.BossBandPeriod,
		cycle:  settings.BandCycle,
		min:    min,
		max:    max,
	}
}

// Reset возвращает курсор полос в начало.
func (s *SpawnSystem) Reset() {
	s.maxSpawn = 0
}

// MaxSpawn — номер последней обработанной полосы.
func (s *SpawnSystem) MaxSpawn() int {
	return s.maxSpawn
}

// Update создает врагов для новой полосы, если x ее открыл. Возвращает число новых сущностей.
func (s *SpawnSystem) Update(x float64, hero *entity.Character) int {
	spawn := int(math.Ceil(x / s.band))
	if spawn <= s.maxSpawn {
		return 0
	}
	s.maxSpawn = spawn

	spawnPosX := float64(spawn) * s.band
	spawnID := spawn % s.cycle
	multiplier := spawn / s.cycle
	boss := spawn%s.period == 0

	s.events.Dispatch(event.Event{Type: event.BandEntered, Data: event.BandData{Band: spawn, Boss: boss}})

	count := 0
	if s.rng.Chance(config.GoblinChance) {
		pos := spawnPosX
		if !s.rng.Chance(config.SpawnPosChance) {
			pos = hero.Position[0] - config.GoblinTrail
		}
		count += s.spawnEnemy(defs.EnemyGoblin, pos, config.GoblinSpread, hero)
	}

	progress := float64(spawnID + multiplier)
	total := s.rng.RandRange(1+progress/4, 3+progress/3, 6)
	for attempt := 0; count < total && attempt < config.SpawnAttempts; attempt++ {
		pos := spawnPosX
		if !s.rng.Chance(config.SpawnPosChance) {
			pos = hero.Position[0] - config.TrailOffset
		}
		if id, ok := s.pickArchetype(spawnID); ok {
			count += s.spawnEnemy(id, pos, config.SpawnSpread, hero)
		}
	}

	if boss {
		chest := defs.CreateChest(s.randomPosition(spawnPosX, config.ChestSpread),
			config.DefaultChestMin+spawn*20, config.DefaultChestMax+spawn*25, s.rng)
		s.world.AddItem(chest)
		count++
		count += s.spawnBossWave(spawnID/s.period, spawnPosX, multiplier, hero)
	}

	logger.Log.WithFields(logrus.Fields{
		"band":     spawn,
		"spawn_id": spawnID,
		"count":    count,
		"boss":     boss,
	}).Debug("Band spawned")
	return count
}

// pickArchetype проходит таблицу по порядку и возвращает врага первого прошедшего архетипа.
func (s *SpawnSystem) pickArchetype(spawnID int) (string, bool) {
	for _, a := range defs.Archetypes {
		if spawnID <= a.MinSpawnID {
			continue
		}
		if !s.rng.Chance(a.Chance) {
			continue
		}
		if s.rng.RandRange(a.Lo, a.Hi, s.cycle) <= spawnID {
			continue
		}
		return s.rng.ChooseWeighted(a.Enemies), true
	}
	return "", false
}

func (s *SpawnSystem) spawnBossWave(bossType int, spawnPosX float64, multiplier int, hero *entity.Character) int {
	wave, ok := defs.BossWaves[bossType]
	if !ok {
		return 0
	}
	logger.Log.WithFields(logrus.Fields{"wave": wave.Name, "x": spawnPosX}).Debug("Boss wave")

	count := 0
	for _, g := range wave.Groups {
		n := g.Count + g.CountStep*multiplier
		if g.CountMax > 0 {
			n = s.rng.RandRange(float64(g.CountMin+multiplier), float64(g.CountMax+2*multiplier), 6)
		}
		for i := 0; i < n; i++ {
			pos := spawnPosX
			if g.TrailChance > 0 && s.rng.Chance(g.TrailChance) {
				pos = hero.Position[0] - config.TrailOffset
			}
			count += s.spawnEnemy(s.rng.ChooseWeighted(g.Enemies), pos, g.Spread, hero)
		}
	}
	return count
}

func (s *SpawnSystem) randomPosition(x, spread float64) mgl64.Vec3 {
	return mgl64.Vec3{
		float64(s.rng.RandRange(x-spread, x+spread, 6)),
		0,
		float64(s.rng.RandRange(s.min[2], s.max[2], 6)),
	}
}

func (s *SpawnSystem) spawnEnemy(id string, x, spread float64, hero *entity.Character) int {
	e, err := defs.CreateEnemy(id, s.randomPosition(x, spread), s.rng, defs.WithTarget(hero.ID))
	if err != nil {
		logger.Log.WithError(err).Warn("Failed to spawn enemy")
		return 0
	}
	s.world.AddEnemy(e)
	return 1
}
