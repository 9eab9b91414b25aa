// internal/defs/waves.go
package defs

import "go-dungeon-runner/internal/utils"

// Archetype — строка таблицы обычного спавна. Враг появляется, если прошел бросок Chance
// и RandRange(Lo, Hi, цикл полос) оказался больше номера полосы. Чем глубже полоса,
// тем реже проходят слабые архетипы.
type Archetype struct {
	Name       string
	Chance     float64
	Lo, Hi     float64
	MinSpawnID int // архетип доступен, только если номер полосы больше этого значения
	Enemies    []utils.WeightedEntry
}

// Archetypes проверяются по порядку, первый прошедший дает врага.
var Archetypes = []Archetype{
	{Name: "rat", Chance: 0.5, Lo: -4, Hi: 4, MinSpawnID: -1, Enemies: []utils.WeightedEntry{{ID: EnemyRat, Weight: 1}}},
	{Name: "bat", Chance: 0.5, Lo: -4, Hi: 8, MinSpawnID: -1, Enemies: []utils.WeightedEntry{{ID: EnemyBat, Weight: 1}}},
	{Name: "spider", Chance: 0.5, Lo: 0, Hi: 20, MinSpawnID: -1, Enemies: []utils.WeightedEntry{{ID: EnemySpider, Weight: 1}}},
	{Name: "slime", Chance: 0.6, Lo: 0, Hi: 32, MinSpawnID: -1, Enemies: []utils.WeightedEntry{
		{ID: EnemySlime, Weight: 60}, {ID: EnemySlime2, Weight: 25}, {ID: EnemySlime3, Weight: 15},
	}},
	{Name: "skeleton", Chance: 0.5, Lo: 0, Hi: 40, MinSpawnID: -1, Enemies: []utils.WeightedEntry{
		{ID: EnemySkeleton, Weight: 1}, {ID: EnemySkeleton2, Weight: 1},
	}},
	{Name: "snake", Chance: 0.5, Lo: 0, Hi: 40, MinSpawnID: 14, Enemies: []utils.WeightedEntry{{ID: EnemySnake, Weight: 1}}},
	{Name: "minotaur", Chance: 0.5, Lo: 0, Hi: 56, MinSpawnID: 22, Enemies: []utils.WeightedEntry{
		{ID: EnemyMinotaur, Weight: 1}, {ID: EnemyMinotaur2, Weight: 1},
	}},
}

// SpawnGroup — группа одинаково размещенных врагов внутри встречи с боссом.
type SpawnGroup struct {
	Enemies []utils.WeightedEntry
	// Фиксированное число: Count + multiplier*CountStep.
	Count     int
	CountStep int
	// Если CountMax > 0, число случайно: RandRange(CountMin+m, CountMax+2m).
	CountMin int
	CountMax int
	// Разброс по X вокруг точки появления.
	Spread float64
	// Вероятность появиться позади героя, а не в точке полосы.
	TrailChance float64
}

// BossWaveDefinition описывает встречу, которая появляется на каждой восьмой полосе.
type BossWaveDefinition struct {
	Name   string
	Groups []SpawnGroup
}

// BossWaves определяет встречи по номеру (номер полосы / 8).
var BossWaves = map[int]BossWaveDefinition{
	0: {
		Name: "skeleton warband",
		Groups: []SpawnGroup{
			{
				Enemies: []utils.WeightedEntry{
					{ID: EnemySkeleton, Weight: 4}, {ID: EnemySkeleton2, Weight: 4},
					{ID: EnemySkeletonArcher, Weight: 1}, {ID: EnemySkeletonMage, Weight: 1},
				},
				CountMin: 6, CountMax: 9, Spread: 24, TrailChance: 0.5,
			},
			{Enemies: []utils.WeightedEntry{{ID: EnemyDemonSkeleton, Weight: 1}}, Count: 1, CountStep: 1, Spread: 8},
		},
	},
	1: {
		Name: "slime swarm",
		Groups: []SpawnGroup{
			{Enemies: []utils.WeightedEntry{{ID: EnemySlime3, Weight: 1}}, Count: 1, Spread: 4},
			{
				Enemies: []utils.WeightedEntry{
					{ID: EnemySlime, Weight: 50}, {ID: EnemySlime2, Weight: 30}, {ID: EnemySlime3, Weight: 20},
				},
				CountMin: 10, CountMax: 15, Spread: 32,
			},
		},
	},
	2: {
		Name: "snake pack",
		Groups: []SpawnGroup{
			{Enemies: []utils.WeightedEntry{{ID: EnemySnake, Weight: 1}}, Count: 3, CountStep: 1, Spread: 24},
		},
	},
	3: {
		Name: "minotaur group",
		Groups: []SpawnGroup{
			{
				Enemies: []utils.WeightedEntry{
					{ID: EnemyMinotaur, Weight: 2}, {ID: EnemyMinotaur2, Weight: 2}, {ID: EnemyMinotaurArcher, Weight: 1},
				},
				Count: 3, CountStep: 1, Spread: 18,
			},
		},
	},
}

// Placement — враг и точка появления.
type Placement struct {
	Enemy    string
	Position [3]float64
}

// OpeningEnemies встречают героя в начале забега.
var OpeningEnemies = []Placement{
	{Enemy: EnemyMinotaur2, Position: [3]float64{12, 0, 8}},
	{Enemy: EnemySkeleton, Position: [3]float64{24, 0, 24}},
	{Enemy: EnemySkeleton2, Position: [3]float64{-12, 0, 12}},
	{Enemy: EnemyDemonSkeleton, Position: [3]float64{24, 0, -12}},
}
