// internal/defs/weapons.go
package defs

import (
	"go-dungeon-runner/internal/config"
	"go-dungeon-runner/internal/entity"
)

func weapon(name string, damage int, sprite entity.Sprite, opts ...func(*entity.Weapon)) *entity.Weapon {
	w := &entity.Weapon{
		Name:     name,
		Damage:   damage,
		Sprite:   sprite,
		Hitbox:   config.HitBoxNone,
		Speed:    config.DefaultAttackSpeed,
		PushBack: 1,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Оружие и щиты. Значения общие для всех владельцев и не меняются.
var (
	WeaponBow = weapon("BOW", 2, SpriteBow, func(w *entity.Weapon) {
		w.Hitbox, w.Speed, w.TwoHanded, w.PushBack, w.IsSharp = config.HitBoxWeaponNormal, 0.6, true, 4, true
		w.CreateProjectile = CreateArrow
	})
	WeaponShortBow = weapon("SHORTBOW", 1, SpriteBow, func(w *entity.Weapon) {
		w.Hitbox, w.Speed, w.TwoHanded, w.PushBack, w.IsSharp = config.HitBoxWeaponNormal, 0.6, true, 4, true
		w.CreateProjectile = CreateShortArrow
	})
	WeaponAxe = weapon("AXE", 3, SpriteAxe, func(w *entity.Weapon) {
		w.Hitbox, w.IsSharp = config.HitBoxWeaponNormal, true
	})
	WeaponKnife = weapon("KNIFE", 2, SpriteKnife, func(w *entity.Weapon) {
		w.Hitbox, w.Speed, w.IsSharp = config.HitBoxWeaponSmall, 0.2, true
	})
	WeaponSword = weapon("SWORD", 5, SpriteSword, func(w *entity.Weapon) {
		w.Hitbox, w.IsSharp = config.HitBoxWeaponNormal, true
	})
	WeaponGreatAxe = weapon("GREATAXE", 8, SpriteGreatAxe, func(w *entity.Weapon) {
		w.Hitbox, w.Speed, w.IsSharp = config.HitBoxWeaponLarge, 1, true
	})
	WeaponSpear = weapon("SPEAR", 8, SpriteSpear, func(w *entity.Weapon) {
		w.Hitbox, w.Speed, w.TwoHanded, w.IsSharp = config.HitBoxWeaponXLarge, 0.6, true, true
	})
	WeaponDoubleAxe = weapon("DOUBLEAXE", 12, SpriteDoubleAxe, func(w *entity.Weapon) {
		w.Hitbox, w.Speed, w.TwoHanded, w.IsSharp = config.HitBoxWeaponLarge, 0.9, true, true
	})
	WeaponStaff = weapon("STAFF", 3, SpriteStaff, func(w *entity.Weapon) {
		w.Hitbox, w.Speed, w.TwoHanded, w.PushBack = config.HitBoxWeaponNormal, 0.5, true, 2
		w.CreateProjectile = CreateHolyAttack
	})
	WeaponFireStaff = weapon("FIRESTAFF", 2, SpriteFireStaff, func(w *entity.Weapon) {
		w.Hitbox, w.Speed, w.TwoHanded, w.PushBack = config.HitBoxWeaponNormal, 0.7, true, 4
		w.CreateProjectile = CreateFireball
	})
	WeaponIceStaff = weapon("ICESTAFF", 2, SpriteIceStaff, func(w *entity.Weapon) {
		w.Hitbox, w.Speed, w.TwoHanded, w.PushBack = config.HitBoxWeaponNormal, 0.6, true, 4
		w.CreateProjectile = CreateIceball
	})
	WeaponMoneyBag = weapon("MONEYBAG", 1, SpriteMoneyBag, func(w *entity.Weapon) {
		w.Hitbox, w.Speed, w.TwoHanded = config.HitBoxWeaponNormal, 1, true
	})

	ShieldSmall  = weapon("SMALLSHIELD", 3, SpriteSmallShield)
	ShieldWooden = weapon("WOODENSHIELD", 4, SpriteWoodenShield)
	ShieldSteel  = weapon("STEELSHIELD", 6, SpriteSteelShield)
)

// Weapons — библиотека оружия по имени, используется загрузчиком врагов.
var Weapons = indexWeapons(
	WeaponBow, WeaponShortBow, WeaponAxe, WeaponKnife, WeaponSword, WeaponGreatAxe,
	WeaponSpear, WeaponDoubleAxe, WeaponStaff, WeaponFireStaff, WeaponIceStaff, WeaponMoneyBag,
	ShieldSmall, ShieldWooden, ShieldSteel,
)

func indexWeapons(weapons ...*entity.Weapon) map[string]*entity.Weapon {
	m := make(map[string]*entity.Weapon, len(weapons))
	for _, w := range weapons {
		m[w.Name] = w
	}
	return m
}

// Броня героев.
var (
	ArmorKnight   = &entity.Armor{Name: "KNIGHT", Sprite: SpriteKnightHelm}
	ArmorRogue    = &entity.Armor{Name: "ROGUE", Sprite: SpriteRobinHood}
	ArmorMage     = &entity.Armor{Name: "MAGE", Sprite: SpriteWizard}
	ArmorCrusader = &entity.Armor{Name: "CRUSADER", Sprite: SpriteCrusader, Armor: 1}
	ArmorPriest   = &entity.Armor{Name: "PRIEST", Sprite: SpritePriest, RecoverRate: 1}
)
