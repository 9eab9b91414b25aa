// internal/render/background.go
package render

import (
	"math"

	"go-dungeon-runner/internal/config"
	"go-dungeon-runner/internal/entity"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	tileSize   = 8
	tileCols   = 10
	floorRows  = 6
	floorDepth = -8
	wallDepth  = -16
)

// Background — пол и стена подземелья. Рисунок стены зависит от seed и номера колонки.
type Background struct {
	seed float64
}

func NewBackground(seed float64) *Background {
	return &Background{seed: seed}
}

// WallSprite выбирает вариант стены для колонки.
func (bg *Background) WallSprite(column int) entity.Sprite {
	c := float64(column)
	rand := math.Mod(c*c*bg.seed+c*7*bg.seed*bg.seed, 1)
	if rand < 0 {
		rand++
	}
	switch {
	case rand < 0.6:
		return SpriteWall0
	case rand < 0.75:
		return SpriteWall1
	case rand < 0.85:
		return SpriteWall2
	}
	return SpriteWall3
}

// Submit отправляет тайлы фона в очередь. Фон идет раньше сущностей.
func (bg *Background) Submit(b *SpriteBatch, camera float64) {
	offset := math.Floor(camera / tileSize)
	dx := math.Mod(camera, tileSize)
	left := camera - config.ScreenWidth/2 - tileSize/2 - dx

	for r := 0; r < floorRows; r++ {
		for j := 0; j <= tileCols; j++ {
			pos := mgl64.Vec3{left + float64(j*tileSize), 0, floorDepth + float64(r*tileSize)}
			b.Submit(SpriteFloor, pos, 1, 1, config.White)
		}
	}
	for j := 0; j <= tileCols; j++ {
		pos := mgl64.Vec3{left + float64(j*tileSize), 0, wallDepth}
		b.Submit(bg.WallSprite(int(offset)+j), pos, 1, 1, config.White)
	}
}
