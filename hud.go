package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/ringrush/session"
	"golang.org/x/image/font/basicfont"
)

// HUD is the display host: it keeps the last string for each surface and
// draws the in-game counters.
type HUD struct {
	texts map[session.Surface]string
	face  ebtext.Face
}

func NewHUD() *HUD {
	return &HUD{
		texts: make(map[session.Surface]string),
		face:  ebtext.NewGoXFace(basicfont.Face7x13),
	}
}

func (h *HUD) SetText(surface session.Surface, text string) {
	h.texts[surface] = text
}

func (h *HUD) Text(surface session.Surface) string {
	return h.texts[surface]
}

var hudColumns = []struct {
	label   string
	surface session.Surface
	x       float64
}{
	{label: "SCORE", surface: session.SurfacePoints, x: 40},
	{label: "RINGS", surface: session.SurfaceRings, x: 360},
	{label: "TIME", surface: session.SurfaceTime, x: 680},
}

func (h *HUD) Draw(screen *ebiten.Image) {
	const scale = 2
	for _, col := range hudColumns {
		h.drawLine(screen, col.label, col.x, 20, scale)
		h.drawLine(screen, h.texts[col.surface], col.x, 48, scale)
	}
}

func (h *HUD) drawLine(screen *ebiten.Image, s string, x, y, scale float64) {
	if s == "" {
		return
	}
	op := &ebtext.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.White)
	ebtext.Draw(screen, s, h.face, op)
}
