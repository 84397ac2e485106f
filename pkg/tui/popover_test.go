package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorPickerAlign(t *testing.T) {
	upper := ColorPickerAlign(Rect{Y: 5}, 40)
	assert.Equal(t, [2]string{"tr", "tl"}, upper.Points)
	assert.Equal(t, [2]int{0, pickerOffset}, upper.Offset)

	lower := ColorPickerAlign(Rect{Y: 30}, 40)
	assert.Equal(t, [2]string{"br", "bl"}, lower.Points)
	assert.Equal(t, [2]int{0, -pickerOffset}, lower.Offset)

	// exactly half way still hangs down
	assert.Equal(t, upper.Points, ColorPickerAlign(Rect{Y: 20}, 40).Points)
}

func TestPlace(t *testing.T) {
	screen := Rect{W: 100, H: 40}

	tests := []struct {
		name   string
		cfg    AlignConfig
		anchor Rect
		w, h   int
		wantX  int
		wantY  int
	}{
		{
			name:   "picker in the upper half",
			cfg:    ColorPickerAlign(Rect{Y: 5}, screen.H),
			anchor: Rect{X: 50, Y: 5, W: 30, H: 1},
			w:      22, h: 5,
			wantX: 28, wantY: 6,
		},
		{
			name:   "picker in the lower half",
			cfg:    ColorPickerAlign(Rect{Y: 30}, screen.H),
			anchor: Rect{X: 50, Y: 30, W: 30, H: 1},
			w:      22, h: 5,
			wantX: 28, wantY: 25,
		},
		{
			name:   "menu below the name",
			cfg:    MenuAlign(),
			anchor: Rect{X: 55, Y: 10, W: 20, H: 1},
			w:      14, h: 11,
			wantX: 61, wantY: 11,
		},
		{
			name:   "menu flips above near the bottom",
			cfg:    MenuAlign(),
			anchor: Rect{X: 55, Y: 35, W: 20, H: 1},
			w:      14, h: 11,
			wantX: 61, wantY: 24,
		},
		{
			name:   "menu flips right near the left edge",
			cfg:    MenuAlign(),
			anchor: Rect{X: 2, Y: 10, W: 5, H: 1},
			w:      14, h: 11,
			wantX: 2, wantY: 11,
		},
		{
			name:   "menu clamped when neither side fits",
			cfg:    MenuAlign(),
			anchor: Rect{X: 55, Y: 20, W: 20, H: 1},
			w:      14, h: 30,
			wantX: 61, wantY: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := Place(tt.cfg, tt.anchor, tt.w, tt.h, screen)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}

func TestOverlay(t *testing.T) {
	tests := []struct {
		name  string
		base  string
		panel string
		x, y  int
		want  string
	}{
		{
			name:  "inside the base",
			base:  "abcdef\nghijkl",
			panel: "XY",
			x:     2, y: 1,
			want: "abcdef\nghXYkl",
		},
		{
			name:  "past the end of the base",
			base:  "ab",
			panel: "Z",
			x:     4, y: 2,
			want: "ab\n\n    Z",
		},
		{
			name:  "ragged panel lines are padded",
			base:  "......\n......",
			panel: "AB\nC",
			x:     1, y: 0,
			want: ".AB...\n.C ...",
		},
		{
			name:  "empty panel",
			base:  "abc",
			panel: "",
			want:  "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlay(tt.base, tt.panel, tt.x, tt.y))
		})
	}
}
