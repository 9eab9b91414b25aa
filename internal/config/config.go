// internal/config/config.go
package config

import (
	"image/color"

	"go-dungeon-runner/pkg/geom"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	ScreenWidth  = 64 // видимая ширина мира в единицах
	ScreenHeight = 64
	WindowScale  = 10
	PixelScale   = 4 // пикселей логического экрана на единицу мира
	MaxDeltaTime = 0.06

	MaxSafeInteger = 1<<53 - 1
	MaxCoins       = 999999

	// Физика
	CharacterFriction = 16.0
	DefaultFriction   = 1.0

	// Движение персонажа
	DefaultSpeed = 24.0
	ForwardScale = 0.66 // ось Z медленнее оси X
	BlockDrag    = 0.5

	// Бой
	DefaultHitPoint     = 10
	DefaultAttack       = 1
	DefaultAttackSpeed  = 0.5
	HitDuration         = 0.3
	FreezeDuration      = 1.5
	ShieldBreakFactor   = 5
	ShieldBreakDuration = 1.0
	FlankBlockPenalty   = 0.5
	FadeDuration        = 1.0
	HealInterval        = 3.0
	MinHealInterval     = 0.5
	KnockbackSpeed      = 24.0
	KnockbackDepth      = 12.0
	PushbackEffectScale = 2.0
	ParticleCount       = 20
	ParticleLifeTime    = 0.3
	ParticleGravity     = 10.0
	MaxParticles        = 8 * 8 * 100

	// Снаряды
	DefaultProjectileLifeTime = 3.0
	DefaultProjectileHitPoint = 1

	// ИИ
	DecisionInterval     = 0.2
	EngageDistance       = 128.0
	FleeDistance         = 196.0
	RangedBlockDistance  = 64.0
	RangedKeepDistance   = 40.0
	BlockHoldTime        = 0.4
	BlockCooldown        = 1.0
	DefaultAggressive    = 0.5
	DefaultFleeThreshold = 0.2
	DefaultAttackDelay   = 1.0
	ApproachChance       = 0.5
	RangedAlignDepth     = 2.0
	WanderChance         = 0.01 // базовая вероятность бита при блуждании
	WanderHoldBonus      = 0.05 // бит уже зажат
	WanderIdlePenalty    = 0.04 // бит отпущен

	// Спавн
	SpawnPoint      = 32.0 // размер полосы
	BigSpawnPoint   = 8    // каждая восьмая полоса с боссом и сундуком
	EndPoint        = 32   // длина цикла полос
	DespawnDistance = 128.0
	GoblinChance    = 0.15
	SpawnPosChance  = 0.8 // иначе враг появляется позади героя
	SpawnSpread     = 32.0
	GoblinSpread    = 12.0
	ChestSpread     = 12.0
	TrailOffset     = 32.0
	GoblinTrail     = 16.0
	SpawnAttempts   = 256 // предел бросков на одну полосу

	// Экономика
	DefaultChestMin = 100
	DefaultChestMax = 200

	// Сохранение
	DefaultSavePath = "dungeon-runner-save.json"

	// Звук
	SoundPoolSize    = 10
	FootstepInterval = 0.3
	SoundVolume      = 0.2
)

var (
	WorldMin = mgl64.Vec3{-28, 0, -12}
	WorldMax = mgl64.Vec3{MaxSafeInteger, 0, 28}
	Origin   = mgl64.Vec3{0, 0, 8}
)

// Формы хитбоксов в локальных координатах.
var (
	HitBoxChar         = geom.Box(-4, 0, -2, 4, 8, 2)
	HitBoxWeaponSmall  = geom.Box(0, 2, -2, 4, 6, 2)
	HitBoxWeaponNormal = geom.Box(0, 2, -2, 6, 8, 2)
	HitBoxWeaponLarge  = geom.Box(0, 0, -4, 10, 8, 4)
	HitBoxWeaponXLarge = geom.Box(0, 2, -2, 12, 8, 2)
	HitBoxNone         = geom.AABB{}
)

var (
	White           = color.RGBA{255, 255, 255, 255}
	BackgroundColor = color.RGBA{20, 16, 24, 255}
	FloorColor      = color.RGBA{44, 36, 48, 255}
	WallColor       = color.RGBA{70, 58, 76, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	CoinColor       = color.RGBA{255, 215, 0, 255}
	HPBarColor      = color.RGBA{210, 40, 40, 255}
	HPBarBackground = color.RGBA{40, 10, 10, 255}

	HitColor      = color.RGBA{230, 30, 30, 255}
	BlockColor    = color.RGBA{204, 204, 204, 255}
	FireHitColor  = color.RGBA{255, 140, 20, 255}
	IceHitColor   = color.RGBA{120, 200, 255, 255}
	HolyHitColor  = color.RGBA{255, 250, 180, 255}
	ArrowHitColor = color.RGBA{200, 60, 60, 255}
)
