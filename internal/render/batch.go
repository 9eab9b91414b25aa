// internal/render/batch.go
package render

import (
	"image"
	"image/color"

	"go-dungeon-runner/internal/entity"
	palette "go-dungeon-runner/pkg/render"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// индексы uint16: не больше 16383 квадов за один вызов
const maxBatchQuads = (1<<16 - 1) / 4

type submission struct {
	sprite   entity.Sprite
	position mgl64.Vec3
	faceSign float64
	alpha    float64
	tint     color.RGBA
}

// Quad — прямоугольник спрайта на экране.
type Quad struct {
	X0, Y0, X1, Y1 float32
	Color          color.RGBA
}

// SpriteBatch копит спрайты кадра и рисует их одним DrawTriangles.
type SpriteBatch struct {
	atlas   *Atlas
	items   []submission
	fillImg *ebiten.Image
	vs      []ebiten.Vertex
	is      []uint16
}

func NewSpriteBatch(atlas *Atlas) *SpriteBatch {
	return &SpriteBatch{
		atlas: atlas,
		items: make([]submission, 0, 256),
		vs:    make([]ebiten.Vertex, 0, 1024),
		is:    make([]uint16, 0, 1536),
	}
}

// Submit ставит спрайт в очередь кадра.
func (b *SpriteBatch) Submit(sprite entity.Sprite, position mgl64.Vec3, faceSign, alpha float64, tint color.RGBA) {
	b.items = append(b.items, submission{sprite: sprite, position: position, faceSign: faceSign, alpha: alpha, tint: tint})
}

// Len — число спрайтов в очереди.
func (b *SpriteBatch) Len() int {
	return len(b.items)
}

// Quads проецирует очередь, не трогая ее. Пустые по альфе спрайты пропускаются.
func (b *SpriteBatch) Quads(v View) []Quad {
	quads := make([]Quad, 0, len(b.items))
	for _, it := range b.items {
		if q, ok := b.quad(it, v); ok {
			quads = append(quads, q)
		}
	}
	return quads
}

func (b *SpriteBatch) quad(it submission, v View) (Quad, bool) {
	r := b.atlas.Region(it.sprite)
	c := palette.Modulate(r.Color, it.tint, it.alpha)
	if c.A == 0 {
		return Quad{}, false
	}
	sign := 1.0
	if it.faceSign < 0 {
		sign = -1
	}
	cx := it.position[0] + sign*r.OffsetX
	bottom := it.position[1] + r.OffsetY
	x0, y0 := v.ToScreen(mgl64.Vec3{cx - r.Width/2, bottom + r.Height, it.position[2]})
	x1, y1 := v.ToScreen(mgl64.Vec3{cx + r.Width/2, bottom, it.position[2]})
	return Quad{X0: float32(x0), Y0: float32(y0), X1: float32(x1), Y1: float32(y1), Color: c}, true
}

// Flush рисует очередь в порядке отправки и очищает ее.
func (b *SpriteBatch) Flush(screen *ebiten.Image, v View) {
	if len(b.items) == 0 {
		return
	}
	if b.fillImg == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		b.fillImg = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	b.vs, b.is = b.vs[:0], b.is[:0]
	for _, q := range b.Quads(v) {
		if len(b.vs)/4 >= maxBatchQuads {
			b.draw(screen)
		}
		b.appendQuad(q)
	}
	b.draw(screen)
	b.items = b.items[:0]
}

func (b *SpriteBatch) appendQuad(q Quad) {
	cr, cg, cb, ca := palette.Floats(q.Color)
	base := uint16(len(b.vs))
	for _, p := range [4][2]float32{{q.X0, q.Y0}, {q.X1, q.Y0}, {q.X0, q.Y1}, {q.X1, q.Y1}} {
		b.vs = append(b.vs, ebiten.Vertex{
			DstX: p[0], DstY: p[1],
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		})
	}
	b.is = append(b.is, base, base+1, base+2, base+1, base+3, base+2)
}

func (b *SpriteBatch) draw(screen *ebiten.Image) {
	if len(b.is) == 0 {
		return
	}
	screen.DrawTriangles(b.vs, b.is, b.fillImg, &ebiten.DrawTrianglesOptions{})
	b.vs, b.is = b.vs[:0], b.is[:0]
}
