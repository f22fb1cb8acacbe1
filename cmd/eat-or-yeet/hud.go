package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/adrian-miasik/eat-or-yeet/catalog"
	"github.com/adrian-miasik/eat-or-yeet/constants"
	"github.com/adrian-miasik/eat-or-yeet/status"
)

// hud draws score and multiplier state from status metrics only
type hud struct {
	reg    *status.Registry
	styles [catalog.CategoryCount]tcell.Style
	base   tcell.Style
	alert  tcell.Style
}

func newHUD(reg *status.Registry) *hud {
	h := &hud{
		reg:   reg,
		base:  tcell.StyleDefault.Foreground(tcell.ColorWhite),
		alert: tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
	}
	for _, c := range catalog.Categories() {
		h.styles[c] = tcell.StyleDefault.Foreground(categoryColor(c))
	}
	return h
}

// categoryColor spreads categories evenly around the hue wheel
func categoryColor(c catalog.Category) tcell.Color {
	hue := 360.0 * float64(c) / float64(catalog.CategoryCount)
	r, g, b := colorful.Hsv(hue, constants.CategorySaturation, constants.CategoryValue).RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// style returns the display style of a food, colored by its first category
func (h *hud) style(d *catalog.Descriptor) tcell.Style {
	if d == nil {
		return h.base
	}
	cats := d.Categories().Categories()
	if len(cats) == 0 {
		return h.base
	}
	return h.styles[cats[0]]
}

func (h *hud) draw(screen tcell.Screen, width, height int, paused bool) {
	top := height - constants.HUDHeight
	if top < 0 || width <= 0 {
		return
	}

	total := h.reg.Ints.Get(status.KeyScoreTotal).Load()
	toWin := h.reg.Ints.Get(status.KeyScoreToWin).Load()
	delta := h.reg.Ints.Get(status.KeyScoreDelta).Load()
	active := h.reg.Ints.Get(status.KeyBonusActive).Load()

	line := fmt.Sprintf("Score: %d/%d  last %+d  bonuses %d", total, toWin, delta, active)
	if last := h.reg.Strings.Get(status.KeyLastFood).Load(); last != "" {
		line += "  (" + last + ")"
	}
	x := drawText(screen, 0, top, width, line, h.base)

	switch {
	case h.reg.Bools.Get(status.KeyGameEnded).Load():
		drawText(screen, x+2, top, width, "YOU WIN! ctrl-r to restart", h.alert)
	case paused:
		drawText(screen, x+2, top, width, "PAUSED", h.alert)
	}

	x = drawText(screen, 0, top+1, width,
		fmt.Sprintf("global x%.2f", h.reg.Floats.Get(status.KeyMultiplierGlobal).Get()), h.base)
	for i, c := range catalog.Categories() {
		m := h.reg.Floats.Get(status.MultiplierKey(c.String())).Get()
		label := fmt.Sprintf("%d:%s x%.1f", i+1, c, m)
		x = drawText(screen, x+2, top+1, x+2+constants.CategoryLabelWidth, label, h.styles[c])
		if x >= width {
			break
		}
	}

	drawText(screen, 0, top+2, width,
		"a-z eat  A-Z yeet  ! global  1-7 category  space pause  ctrl-r reset  esc quit", h.base.Dim(true))
}

// drawText writes s from column x, stopping before column limit; returns the column after the text
func drawText(screen tcell.Screen, x, y, limit int, s string, style tcell.Style) int {
	w, _ := screen.Size()
	if limit > w {
		limit = w
	}
	if x >= limit {
		return x
	}
	s = runewidth.Truncate(s, limit-x, "")
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		screen.SetContent(x, y, r, nil, style)
		x += rw
	}
	return x
}
