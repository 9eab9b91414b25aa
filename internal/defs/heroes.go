// internal/defs/heroes.go
package defs

import (
	"go-dungeon-runner/internal/entity"

	"github.com/go-gl/mathgl/mgl64"
)

// Hero — битовая маска классов героя.
type Hero int

const (
	HeroKnight Hero = 1 << 0
	HeroRogue  Hero = 1 << 1
	HeroMage   Hero = 1 << 2
)

// Unlockable — битовая маска покупаемых улучшений.
type Unlockable int

const (
	UnlockShield      Unlockable = 1 << 0
	UnlockSword       Unlockable = 1 << 1
	UnlockArmor       Unlockable = 1 << 2
	UnlockSteelShield Unlockable = 1 << 3
	UnlockSpear       Unlockable = 1 << 4
	UnlockIceStaff    Unlockable = 1 << 5
	UnlockBow         Unlockable = 1 << 6
	UnlockPriest      Unlockable = 1 << 7
)

const (
	unlockTwoHanded = UnlockBow | UnlockSpear | UnlockIceStaff | UnlockPriest
	unlockWeapons   = UnlockSword | unlockTwoHanded
	unlockShields   = UnlockShield | UnlockSteelShield
	unlockArmors    = UnlockArmor | UnlockPriest
)

// UnlockableInfo описывает улучшение в магазине.
type UnlockableInfo struct {
	Name     string
	Type     Unlockable
	Coins    int
	Required Unlockable // нужно купить заранее
	Exclude  Unlockable // снимается при выборе
}

// HeroUnlocks описывает героя и его улучшения.
type HeroUnlocks struct {
	Name    string
	Hero    Hero
	Coins   int
	Unlocks []UnlockableInfo
}

var UnlockTable = []HeroUnlocks{
	{
		Name:  "KNIGHT",
		Hero:  HeroKnight,
		Coins: 0,
		Unlocks: []UnlockableInfo{
			{Name: "SHIELD", Type: UnlockShield, Coins: 300, Exclude: unlockShields | unlockTwoHanded},
			{Name: "SWORD", Type: UnlockSword, Coins: 600, Exclude: unlockWeapons},
			{Name: "STEEL SHIELD", Type: UnlockSteelShield, Coins: 900, Required: UnlockShield, Exclude: unlockShields | unlockTwoHanded},
			{Name: "SPEAR", Type: UnlockSpear, Coins: 1800, Exclude: unlockWeapons | unlockShields},
			{Name: "ARMOR", Type: UnlockArmor, Coins: 2100, Exclude: unlockArmors},
		},
	},
	{
		Name:  "ROGUE",
		Hero:  HeroRogue,
		Coins: 3000,
		Unlocks: []UnlockableInfo{
			{Name: "SWORD", Type: UnlockSword, Coins: 600, Exclude: unlockWeapons},
			{Name: "BOW", Type: UnlockBow, Coins: 2100, Exclude: unlockWeapons},
		},
	},
	{
		Name:  "MAGE",
		Hero:  HeroMage,
		Coins: 4500,
		Unlocks: []UnlockableInfo{
			{Name: "ICE STAFF", Type: UnlockIceStaff, Coins: 2100, Exclude: unlockWeapons | unlockShields},
			{Name: "PRIEST", Type: UnlockPriest, Coins: 2100, Exclude: unlockArmors | unlockWeapons | unlockShields},
		},
	},
}

// HeroInfo находит запись таблицы по герою.
func HeroInfo(hero Hero) (HeroUnlocks, bool) {
	for _, h := range UnlockTable {
		if h.Hero == hero {
			return h, true
		}
	}
	return HeroUnlocks{}, false
}

type heroStats struct {
	hp     int
	speed  float64
	armor  *entity.Armor
	weapon *entity.Weapon
}

var heroBase = map[Hero]heroStats{
	HeroKnight: {hp: 50, speed: 24, armor: ArmorKnight, weapon: WeaponAxe},
	HeroRogue:  {hp: 40, speed: 32, armor: ArmorRogue, weapon: WeaponKnife},
	HeroMage:   {hp: 30, speed: 20, armor: ArmorMage, weapon: WeaponFireStaff},
}

// CreateHero собирает героя с учетом выбранных улучшений.
func CreateHero(hero Hero, unlock Unlockable, position mgl64.Vec3) *entity.Character {
	base, ok := heroBase[hero]
	if !ok {
		base = heroBase[HeroKnight]
	}

	c := entity.NewCharacter(base.hp, SpriteHero)
	c.IsHero = true
	c.Speed = base.speed
	c.Position = position
	c.Armor = base.armor
	c.Weapon = base.weapon

	switch {
	case unlock&UnlockArmor != 0:
		c.Armor = ArmorCrusader
	case unlock&UnlockPriest != 0:
		c.Armor = ArmorPriest
	}

	switch {
	case unlock&UnlockPriest != 0:
		c.Weapon = WeaponStaff
	case unlock&UnlockIceStaff != 0:
		c.Weapon = WeaponIceStaff
	case unlock&UnlockBow != 0:
		c.Weapon = WeaponBow
	case unlock&UnlockSpear != 0:
		c.Weapon = WeaponSpear
	case unlock&UnlockSword != 0:
		c.Weapon = WeaponSword
	}

	// щит только при одноручном оружии
	if !c.Weapon.TwoHanded {
		switch {
		case unlock&UnlockSteelShield != 0:
			c.Shield = ShieldSteel
		case unlock&UnlockShield != 0:
			c.Shield = ShieldWooden
		}
	}
	return c
}
