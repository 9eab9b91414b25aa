package defs

import (
	"testing"

	"go-dungeon-runner/internal/config"
	"go-dungeon-runner/internal/entity"
	"go-dungeon-runner/internal/utils"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedEnemyTableResolves(t *testing.T) {
	rng := utils.NewPRNGService(12345)
	for id := range EnemyLibrary {
		e, err := CreateEnemy(id, config.Origin, rng)
		require.NoError(t, err, id)
		assert.Equal(t, e.HitPoint, e.MaxHitPoint)
		assert.Greater(t, e.Speed, 0.0)
	}
	for _, a := range Archetypes {
		for _, entry := range a.Enemies {
			assert.Contains(t, EnemyLibrary, entry.ID)
		}
	}
	for _, wave := range BossWaves {
		for _, g := range wave.Groups {
			for _, entry := range g.Enemies {
				assert.Contains(t, EnemyLibrary, entry.ID)
			}
		}
	}
}

func TestCreateEnemyRecipes(t *testing.T) {
	rng := utils.NewPRNGService(12345)
	pos := mgl64.Vec3{10, 0, 4}

	minotaur := MustCreateEnemy(EnemyMinotaur, pos, rng, WithTarget(3))
	assert.Equal(t, 90, minotaur.HitPoint)
	assert.Same(t, WeaponGreatAxe, minotaur.Weapon)
	assert.Same(t, ShieldSteel, minotaur.Shield)
	assert.Equal(t, 0.0, minotaur.FleeThreshold)
	assert.Equal(t, entity.ID(3), minotaur.Target)
	assert.Equal(t, pos, minotaur.Position)

	rat := MustCreateEnemy(EnemyRat, pos, rng)
	assert.Equal(t, config.DefaultAttack, rat.Attack)
	assert.Nil(t, rat.Weapon)
	assert.Equal(t, 2, rat.Coins)

	demon := MustCreateEnemy(EnemyDemonSkeleton, pos, rng)
	assert.Equal(t, 0.8, demon.Aggressive)

	archer := MustCreateEnemy(EnemySkeletonArcher, pos, rng)
	assert.Equal(t, entity.BehaviorRanged, archer.Behavior)
	assert.True(t, archer.Weapon.IsRanged())

	_, err := CreateEnemy("dragon", pos, rng)
	assert.Error(t, err)
}

func TestGoblinCoinsFollowHitPoint(t *testing.T) {
	rng := utils.NewPRNGService(7)
	for i := 0; i < 50; i++ {
		g := MustCreateEnemy(EnemyGoblin, config.Origin, rng, WithHitPoint(40))
		assert.GreaterOrEqual(t, g.Coins, 40)
		assert.Less(t, g.Coins, 60)
		assert.Equal(t, 1.0, g.FleeThreshold)
		assert.Same(t, WeaponMoneyBag, g.Shield)
	}
}

func TestLoadEnemyDefinitionsValidates(t *testing.T) {
	saved := EnemyLibrary
	defer func() { EnemyLibrary = saved }()

	assert.Error(t, LoadEnemyDefinitions([]byte(`not json`)))
	assert.ErrorContains(t, LoadEnemyDefinitions([]byte(`[{"id":"x","hitpoint":5,"weapon":"LASER"}]`)), "unknown weapon")
	assert.ErrorContains(t, LoadEnemyDefinitions([]byte(`[{"id":"x","hitpoint":0}]`)), "hitpoint")
	assert.ErrorContains(t, LoadEnemyDefinitions([]byte(`[{"id":"x","hitpoint":5,"behavior":"berserk"}]`)), "behavior")
	assert.Equal(t, saved, EnemyLibrary, "failed load keeps the previous library")

	require.NoError(t, LoadEnemyDefinitions([]byte(`[{"id":"dummy","hitpoint":5,"behavior":"idle"}]`)))
	e := MustCreateEnemy("dummy", config.Origin, utils.NewPRNGService(1))
	assert.Equal(t, entity.BehaviorIdle, e.Behavior)
	assert.Equal(t, config.DefaultFleeThreshold, e.FleeThreshold)
}

func TestCreateHeroUnlocks(t *testing.T) {
	tests := []struct {
		name   string
		hero   Hero
		unlock Unlockable
		weapon *entity.Weapon
		shield *entity.Weapon
		armor  *entity.Armor
		hp     int
	}{
		{"knight default", HeroKnight, 0, WeaponAxe, nil, ArmorKnight, 50},
		{"knight shield", HeroKnight, UnlockShield, WeaponAxe, ShieldWooden, ArmorKnight, 50},
		{"knight steel shield wins", HeroKnight, UnlockShield | UnlockSteelShield | UnlockSword, WeaponSword, ShieldSteel, ArmorKnight, 50},
		{"spear drops shield", HeroKnight, UnlockSpear | UnlockShield, WeaponSpear, nil, ArmorKnight, 50},
		{"crusader", HeroKnight, UnlockArmor, WeaponAxe, nil, ArmorCrusader, 50},
		{"rogue bow", HeroRogue, UnlockBow, WeaponBow, nil, ArmorRogue, 40},
		{"mage default", HeroMage, 0, WeaponFireStaff, nil, ArmorMage, 30},
		{"priest", HeroMage, UnlockPriest, WeaponStaff, nil, ArmorPriest, 30},
		{"ice staff", HeroMage, UnlockIceStaff, WeaponIceStaff, nil, ArmorMage, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := CreateHero(tt.hero, tt.unlock, config.Origin)
			assert.True(t, c.IsHero)
			assert.Same(t, tt.weapon, c.Weapon)
			assert.Same(t, tt.armor, c.Armor)
			assert.Equal(t, tt.hp, c.HitPoint)
			if tt.shield == nil {
				assert.Nil(t, c.Shield)
			} else {
				assert.Same(t, tt.shield, c.Shield)
			}
		})
	}
}

func TestProjectileFactoriesFollowFacing(t *testing.T) {
	pos := mgl64.Vec3{5, 0, 5}

	arrow := CreateArrow(pos, false)
	assert.Equal(t, -96.0, arrow.InitialVelocity[0])
	assert.False(t, arrow.FaceForward)
	assert.Equal(t, entity.EffectPushback, arrow.Effect)
	assert.True(t, arrow.IsSharp)

	ice := CreateIceball(pos, true)
	assert.Equal(t, 32.0, ice.InitialVelocity[0])
	assert.Equal(t, entity.EffectFreeze, ice.Effect)
	assert.Equal(t, config.DefaultProjectileLifeTime, ice.LifeTime)

	holy := CreateHolyAttack(pos, true)
	assert.Equal(t, 1.0, holy.LifeTime)
	assert.Equal(t, pos, holy.Position)
}

func TestCreateChestRange(t *testing.T) {
	rng := utils.NewPRNGService(3)
	for i := 0; i < 100; i++ {
		c := CreateChest(config.Origin, 260, 400, rng)
		assert.GreaterOrEqual(t, c.Coins, 260)
		assert.Less(t, c.Coins, 400)
		assert.False(t, c.IsOpen)
	}
}
