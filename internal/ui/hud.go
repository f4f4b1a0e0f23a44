//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"falling-sand/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int

	controls     *Controls
	panelOffsetX int
	title        string
	status       []string

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	width = max(width, 0)
	h := &HUD{
		sim:      sim,
		width:    width,
		controls: NewControls(sim, width),
		title:    buildTitle(sim),
	}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	return h
}

// Update refreshes the cached parameter snapshot from the simulation and handles
// HUD clicks.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		return
	}
	snap := provider.Parameters()
	h.controls.Refresh(snap)
	h.status = h.status[:0]
	for _, group := range snap.Groups {
		for _, p := range group.Params {
			if p.Type == core.ParamTypeText || strings.HasPrefix(p.Key, "count_") {
				h.status = append(h.status, fmt.Sprintf("%s: %s", p.Label, p.Value))
			}
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if mx >= h.panelOffsetX {
			h.controls.Click(mx-h.panelOffsetX, my)
		}
	}
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := h.sim.Size().H * max(scale, 1)
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:] + " Controls"
}

var (
	headerColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimmedColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	enabledBG    = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	disabledBG   = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	enabledText  = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	disabledText = color.RGBA{R: 120, G: 120, B: 130, A: 255}
)

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, headerY, headerColor)
	if h.controls.Len() == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, headerY+infoSpacing, dimmedColor)
	}
	for i := range h.controls.states {
		state := &h.controls.states[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, labelColor)

		valueColor := labelColor
		if !state.hasValue {
			valueColor = dimmedColor
		}
		valueWidth := text.BoundString(face, state.value).Dx()
		valueX := state.minusRect.Min.X - buttonGap - valueWidth
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		_, minusOK := h.controls.target(state, -1)
		_, plusOK := h.controls.target(state, 1)
		h.drawButton(state.minusRect, "-", minusOK)
		h.drawButton(state.plusRect, "+", plusOK)
	}

	y := controlsTop + h.controls.Len()*lineHeight + labelBaseline
	for _, line := range h.status {
		text.Draw(h.panel, line, face, panelPadding, y, dimmedColor)
		y += 18
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg, fg := enabledBG, enabledText
	if !enabled {
		bg, fg = disabledBG, disabledText
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
