package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const (
	pickerOffset = 1
	menuOffsetX  = 0
	menuOffsetY  = 0
)

// AlignConfig docks a popover to an anchor. Points[0] is the corner of the
// popover, Points[1] the corner of the anchor it is placed on; corners are
// "tl", "tr", "bl" and "br". Offset shifts the result in cells. The adjust
// flags flip, then clamp, the popover along an axis when it would leave the
// screen.
type AlignConfig struct {
	Points  [2]string
	Offset  [2]int
	AdjustX bool
	AdjustY bool
}

// ColorPickerAlign places the picker beside the anchor row: its right edge
// on the row's left edge. In the upper half of the screen the picker hangs
// down from the row, in the lower half it grows upwards.
func ColorPickerAlign(anchor Rect, screenHeight int) AlignConfig {
	if anchor.Y > screenHeight/2 {
		return AlignConfig{
			Points: [2]string{"br", "bl"},
			Offset: [2]int{0, -pickerOffset},
		}
	}
	return AlignConfig{
		Points: [2]string{"tr", "tl"},
		Offset: [2]int{0, pickerOffset},
	}
}

// MenuAlign places the menu under the name label, right edges aligned
func MenuAlign() AlignConfig {
	return AlignConfig{
		Points:  [2]string{"tr", "br"},
		Offset:  [2]int{menuOffsetX, menuOffsetY},
		AdjustX: true,
		AdjustY: true,
	}
}

// Place returns the top-left cell of a w x h popover aligned to anchor
func Place(cfg AlignConfig, anchor Rect, w, h int, screen Rect) (int, int) {
	x, y := placeRaw(cfg, anchor, w, h)

	if cfg.AdjustY && overflows(y, h, screen.Y, screen.H) {
		flipped := cfg
		flipped.Points = [2]string{flipVertical(cfg.Points[0]), flipVertical(cfg.Points[1])}
		flipped.Offset[1] = -cfg.Offset[1]
		_, fy := placeRaw(flipped, anchor, w, h)
		if !overflows(fy, h, screen.Y, screen.H) {
			y = fy
		}
		y = clamp(y, screen.Y, screen.Y+screen.H-h)
	}

	if cfg.AdjustX && overflows(x, w, screen.X, screen.W) {
		flipped := cfg
		flipped.Points = [2]string{flipHorizontal(cfg.Points[0]), flipHorizontal(cfg.Points[1])}
		flipped.Offset[0] = -cfg.Offset[0]
		fx, _ := placeRaw(flipped, anchor, w, h)
		if !overflows(fx, w, screen.X, screen.W) {
			x = fx
		}
		x = clamp(x, screen.X, screen.X+screen.W-w)
	}

	return x, y
}

func placeRaw(cfg AlignConfig, anchor Rect, w, h int) (int, int) {
	sx, sy := cornerOffset(cfg.Points[0], w, h)
	tx, ty := cornerOffset(cfg.Points[1], anchor.W, anchor.H)
	return anchor.X + tx - sx + cfg.Offset[0], anchor.Y + ty - sy + cfg.Offset[1]
}

// cornerOffset returns the position of a corner relative to the top-left of
// a w x h box, treating edges as the lines between cells
func cornerOffset(point string, w, h int) (int, int) {
	var x, y int
	if strings.HasPrefix(point, "b") {
		y = h
	}
	if strings.HasSuffix(point, "r") {
		x = w
	}
	return x, y
}

func flipVertical(point string) string {
	if strings.HasPrefix(point, "b") {
		return "t" + point[1:]
	}
	return "b" + point[1:]
}

func flipHorizontal(point string) string {
	if strings.HasSuffix(point, "r") {
		return point[:1] + "l"
	}
	return point[:1] + "r"
}

func overflows(pos, size, start, length int) bool {
	return pos < start || pos+size > start+length
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Overlay draws panel over base with its top-left cell at (x, y). Lines of
// base are cut around the panel so styling on either side survives.
func Overlay(base, panel string, x, y int) string {
	if panel == "" {
		return base
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	baseLines := strings.Split(base, "\n")
	panelLines := strings.Split(panel, "\n")
	panelW := lipgloss.Width(panel)

	for len(baseLines) < y+len(panelLines) {
		baseLines = append(baseLines, "")
	}

	for i, line := range panelLines {
		row := baseLines[y+i]
		rowW := xansi.StringWidth(row)
		if rowW < x {
			row += strings.Repeat(" ", x-rowW)
			rowW = x
		}

		left := xansi.Cut(row, 0, x)
		right := ""
		if rowW > x+panelW {
			right = xansi.Cut(row, x+panelW, rowW)
		}

		if n := xansi.StringWidth(line); n < panelW {
			line += strings.Repeat(" ", panelW-n)
		}
		baseLines[y+i] = left + line + right
	}

	return strings.Join(baseLines, "\n")
}
