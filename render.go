package main

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/ringrush/ecs"
	"github.com/milk9111/ringrush/ecs/component"
)

// pixelsPerUnit maps one world unit (a tile) to screen pixels.
const pixelsPerUnit = 64

var sortingLayers = map[string]int{
	"Background": 0,
	"Default":    1,
	"Items":      2,
	"Foreground": 3,
}

var (
	skyColor      = color.RGBA{R: 0x5c, G: 0x94, B: 0xfc, A: 0xff}
	colliderColor = color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff}
	fallbackColor = color.RGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}
)

type drawItem struct {
	e     ecs.Entity
	layer int
}

// Renderer draws every visible sprite as a flat rectangle relative to the
// camera view.
type Renderer struct {
	debug bool
	items []drawItem
}

func NewRenderer(debug bool) *Renderer {
	return &Renderer{debug: debug}
}

func (r *Renderer) Draw(w *ecs.World, screen *ebiten.Image, camX, camY float64) {
	screen.Fill(skyColor)
	if w == nil {
		return
	}

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	originX := camX - float64(sw)/2/pixelsPerUnit
	originY := camY - float64(sh)/2/pixelsPerUnit
	view := Rect{X: originX, Y: originY, Width: float64(sw) / pixelsPerUnit, Height: float64(sh) / pixelsPerUnit}

	r.items = r.items[:0]
	ecs.ForEach2(w, component.SpriteComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, s *component.Sprite, t *component.Transform) {
		if s.Hidden || !view.Intersects(centeredRect(t.X, t.Y, t.ScaleX, t.ScaleY)) {
			return
		}
		r.items = append(r.items, drawItem{e: e, layer: sortingLayers[s.SortingLayer]})
	})
	sort.SliceStable(r.items, func(i, j int) bool {
		if r.items[i].layer != r.items[j].layer {
			return r.items[i].layer < r.items[j].layer
		}
		return r.items[i].e < r.items[j].e
	})

	for _, item := range r.items {
		s, _ := ecs.Get(w, item.e, component.SpriteComponent.Kind())
		t, _ := ecs.Get(w, item.e, component.TransformComponent.Kind())
		clr := s.Color
		if clr.A == 0 {
			clr = fallbackColor
		}
		if p, ok := ecs.Get(w, item.e, component.PlayerComponent.Kind()); ok && p.Invincible() && w.Clock().Step%8 < 4 {
			clr.A /= 2
		}
		if particles, ok := ecs.Get(w, item.e, component.ParticlesComponent.Kind()); ok && particles.Count > 0 {
			r.drawParticles(w, item.e, screen, t, particles.Count, clr, originX, originY)
			continue
		}
		b := centeredRect(t.X, t.Y, t.ScaleX, t.ScaleY)
		vector.DrawFilledRect(screen,
			float32((b.X-originX)*pixelsPerUnit), float32((b.Y-originY)*pixelsPerUnit),
			float32(b.Width*pixelsPerUnit), float32(b.Height*pixelsPerUnit),
			clr, false)
	}

	if r.debug {
		r.drawColliders(w, screen, originX, originY)
	}
}

// drawParticles scatters count small squares that spread while the TTL
// runs out.
func (r *Renderer) drawParticles(w *ecs.World, e ecs.Entity, screen *ebiten.Image, t *component.Transform, count int, clr color.RGBA, originX, originY float64) {
	spread := 0.3
	if ttl, ok := ecs.Get(w, e, component.TTLComponent.Kind()); ok {
		spread += max(0, 0.6-ttl.Seconds) * 2
	}
	const size = 0.25
	for i := 0; i < count; i++ {
		dx := spread
		if i%2 == 0 {
			dx = -spread
		}
		dy := -spread
		if i >= count/2 {
			dy = spread / 2
		}
		x := (t.X + dx - size/2 - originX) * pixelsPerUnit
		y := (t.Y + dy - size/2 - originY) * pixelsPerUnit
		vector.DrawFilledRect(screen, float32(x), float32(y), size*pixelsPerUnit, size*pixelsPerUnit, clr, false)
	}
}

func (r *Renderer) drawColliders(w *ecs.World, screen *ebiten.Image, originX, originY float64) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, body *component.PhysicsBody, t *component.Transform) {
		bw, bh := body.Footprint(t)
		b := centeredRect(t.X, t.Y, bw, bh)
		vector.StrokeRect(screen,
			float32((b.X-originX)*pixelsPerUnit), float32((b.Y-originY)*pixelsPerUnit),
			float32(b.Width*pixelsPerUnit), float32(b.Height*pixelsPerUnit),
			1, colliderColor, false)
	})
}
