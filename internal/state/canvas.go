package state

import "strconv"

// CanvasPreset names one of the fixed canvas sizes offered by the UI.
type CanvasPreset string

const (
	PresetSmall  CanvasPreset = "small"  // 400x300
	PresetMedium CanvasPreset = "medium" // 800x600
	PresetLarge  CanvasPreset = "large"  // 1200x900
)

// PresetSize returns the pixel dimensions for a preset. Unknown names get the
// medium size.
func PresetSize(p CanvasPreset) (w, h int) {
	switch p {
	case PresetSmall:
		return 400, 300
	case PresetLarge:
		return 1200, 900
	default:
		return DefaultWidth, DefaultHeight
	}
}

// ParseCanvasSize validates a user-supplied custom size. Anything that is not
// a pair of positive integers falls back to the default rather than failing
// the operation.
func ParseCanvasSize(ws, hs string) (w, h int) {
	w, werr := strconv.Atoi(ws)
	h, herr := strconv.Atoi(hs)
	if werr != nil || herr != nil || w <= 0 || h <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return w, h
}
