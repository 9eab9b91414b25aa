// internal/defs/sprites.go
package defs

import "go-dungeon-runner/internal/entity"

// Имена спрайтов. Рендерер строит по ним атлас-заглушку.
const (
	SpriteHero          entity.Sprite = "hero"
	SpriteRat           entity.Sprite = "rat"
	SpriteBat           entity.Sprite = "bat"
	SpriteSpider        entity.Sprite = "spider"
	SpriteGoblin        entity.Sprite = "goblin"
	SpriteSnake         entity.Sprite = "snake"
	SpriteSlime         entity.Sprite = "slime"
	SpriteBlueSlime     entity.Sprite = "blueslime"
	SpriteRedSlime      entity.Sprite = "redslime"
	SpriteMinotaur      entity.Sprite = "minotaur"
	SpriteSkeleton      entity.Sprite = "skeleton"
	SpriteDemonSkeleton entity.Sprite = "demonskeleton"
	SpriteChest         entity.Sprite = "chest"
	SpriteChestOpen     entity.Sprite = "chestopen"

	SpriteBow          entity.Sprite = "bow"
	SpriteAxe          entity.Sprite = "axe"
	SpriteKnife        entity.Sprite = "knife"
	SpriteSword        entity.Sprite = "sword"
	SpriteGreatAxe     entity.Sprite = "greataxe"
	SpriteSpear        entity.Sprite = "spear"
	SpriteDoubleAxe    entity.Sprite = "doubleaxe"
	SpriteStaff        entity.Sprite = "staff"
	SpriteFireStaff    entity.Sprite = "firestaff"
	SpriteIceStaff     entity.Sprite = "icestaff"
	SpriteSmallShield  entity.Sprite = "smallshield"
	SpriteWoodenShield entity.Sprite = "woodenshield"
	SpriteSteelShield  entity.Sprite = "steelshield"
	SpriteMoneyBag     entity.Sprite = "moneybag"

	SpriteKnightHelm entity.Sprite = "knighthelm"
	SpriteRobinHood  entity.Sprite = "robinhood"
	SpriteWizard     entity.Sprite = "wizard"
	SpriteCrusader   entity.Sprite = "crusader"
	SpritePriest     entity.Sprite = "priest"

	SpriteArrow    entity.Sprite = "arrow"
	SpriteFireball entity.Sprite = "fireball"
	SpriteIceball  entity.Sprite = "iceball"
	SpriteHoly     entity.Sprite = "holy"
)
