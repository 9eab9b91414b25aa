// internal/render/atlas.go
package render

import (
	"image/color"

	"go-dungeon-runner/internal/defs"
	"go-dungeon-runner/internal/entity"
	palette "go-dungeon-runner/pkg/render"
)

// Region — прямоугольник-заглушка спрайта в мировых единицах.
// Якорь внизу по центру, OffsetX сдвигает вдоль направления взгляда.
type Region struct {
	Color   color.RGBA
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
}

// Служебные спрайты фона.
const (
	SpriteFloor entity.Sprite = "floor"
	SpriteWall0 entity.Sprite = "wall0"
	SpriteWall1 entity.Sprite = "wall1"
	SpriteWall2 entity.Sprite = "wall2"
	SpriteWall3 entity.Sprite = "wall3"
)

const weaponOffset = 4

// Atlas сопоставляет имени спрайта его заглушку.
type Atlas struct {
	regions map[entity.Sprite]Region
}

func body(name entity.Sprite) Region {
	return Region{Color: palette.NameColor(string(name)), Width: 8, Height: 8}
}

func held(name entity.Sprite) Region {
	return Region{Color: palette.NameColor(string(name)), Width: 8, Height: 4, OffsetX: weaponOffset, OffsetY: 2}
}

// NewAtlas строит атлас для всех известных спрайтов.
func NewAtlas() *Atlas {
	a := &Atlas{regions: make(map[entity.Sprite]Region)}

	for _, s := range []entity.Sprite{
		defs.SpriteHero, defs.SpriteRat, defs.SpriteBat, defs.SpriteSpider, defs.SpriteGoblin,
		defs.SpriteSnake, defs.SpriteSlime, defs.SpriteBlueSlime, defs.SpriteRedSlime,
		defs.SpriteMinotaur, defs.SpriteSkeleton, defs.SpriteDemonSkeleton,
	} {
		a.regions[s] = body(s)
	}

	for _, s := range []entity.Sprite{
		defs.SpriteBow, defs.SpriteAxe, defs.SpriteKnife, defs.SpriteSword, defs.SpriteGreatAxe,
		defs.SpriteSpear, defs.SpriteDoubleAxe, defs.SpriteStaff, defs.SpriteFireStaff,
		defs.SpriteIceStaff, defs.SpriteMoneyBag,
	} {
		a.regions[s] = held(s)
	}
	for _, s := range []entity.Sprite{defs.SpriteSmallShield, defs.SpriteWoodenShield, defs.SpriteSteelShield} {
		r := held(s)
		r.Width, r.Height, r.OffsetY = 3, 6, 1
		a.regions[s] = r
	}

	// шлемы поверх головы
	for _, s := range []entity.Sprite{defs.SpriteKnightHelm, defs.SpriteRobinHood, defs.SpriteCrusader, defs.SpritePriest} {
		a.regions[s] = Region{Color: palette.NameColor(string(s)), Width: 6, Height: 3, OffsetY: 5}
	}
	a.regions[defs.SpriteWizard] = Region{Color: palette.NameColor(string(defs.SpriteWizard)), Width: 6, Height: 8, OffsetY: 5}

	a.regions[defs.SpriteChest] = Region{Color: color.RGBA{140, 90, 40, 255}, Width: 8, Height: 6}
	a.regions[defs.SpriteChestOpen] = Region{Color: color.RGBA{255, 215, 0, 255}, Width: 8, Height: 7}

	a.regions[defs.SpriteArrow] = Region{Color: color.RGBA{220, 220, 200, 255}, Width: 4, Height: 1, OffsetY: 4}
	a.regions[defs.SpriteFireball] = Region{Color: color.RGBA{255, 120, 20, 255}, Width: 3, Height: 3, OffsetY: 3}
	a.regions[defs.SpriteIceball] = Region{Color: color.RGBA{120, 200, 255, 255}, Width: 3, Height: 3, OffsetY: 3}
	a.regions[defs.SpriteHoly] = Region{Color: color.RGBA{255, 250, 180, 255}, Width: 3, Height: 3, OffsetY: 3}

	a.regions[SpriteFloor] = Region{Color: color.RGBA{0x47, 0x2d, 0x3c, 255}, Width: 8, Height: 8}
	for i, s := range []entity.Sprite{SpriteWall0, SpriteWall1, SpriteWall2, SpriteWall3} {
		c := color.RGBA{70, 58, 76, 255}
		for k := 0; k < i; k++ {
			c = palette.DarkenColor(c)
			c.R += 24
		}
		a.regions[s] = Region{Color: c, Width: 8, Height: 16}
	}
	return a
}

// Region возвращает заглушку. Неизвестный спрайт получает квадрат 8x8 цвета по имени.
func (a *Atlas) Region(s entity.Sprite) Region {
	if r, ok := a.regions[s]; ok {
		return r
	}
	r := body(s)
	a.regions[s] = r
	return r
}

// Len — число известных спрайтов.
func (a *Atlas) Len() int {
	return len(a.regions)
}
