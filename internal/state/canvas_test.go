package state

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPresetSizes(t *testing.T) {
	tests := []struct {
		preset CanvasPreset
		w, h   int
	}{
		{PresetSmall, 400, 300},
		{PresetMedium, 800, 600},
		{PresetLarge, 1200, 900},
		{CanvasPreset("bogus"), 800, 600},
	}
	for _, tt := range tests {
		w, h := PresetSize(tt.preset)
		require.Equal(t, tt.w, w, "preset %s", tt.preset)
		require.Equal(t, tt.h, h, "preset %s", tt.preset)
	}
}

func TestParseCanvasSize(t *testing.T) {
	w, h := ParseCanvasSize("640", "480")
	require.Equal(t, 640, w)
	require.Equal(t, 480, h)

	// Non-numeric or non-positive input falls back to the default pair.
	for _, in := range [][2]string{{"abc", "480"}, {"640", ""}, {"-1", "480"}, {"0", "0"}} {
		w, h = ParseCanvasSize(in[0], in[1])
		require.Equal(t, DefaultWidth, w)
		require.Equal(t, DefaultHeight, h)
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#ff8800")
	require.NoError(t, err)
	require.Equal(t, uint8(0xff), c.R)
	require.Equal(t, uint8(0x88), c.G)
	require.Equal(t, uint8(0x00), c.B)

	_, err = ParseHexColor("red")
	require.Error(t, err)
}

func TestElementIDsAreOrdered(t *testing.T) {
	a := NewElement(ToolBrush, "#000000", 3, Point{})
	b := NewElement(ToolBrush, "#000000", 3, Point{})
	require.NotEqual(t, a.ID, b.ID)
}
