package main

import (
	"os"

	"LayerBoard/internal/state"
	"LayerBoard/internal/ui"
)

func main() {
	preset := state.PresetMedium
	if len(os.Args) > 1 {
		preset = state.CanvasPreset(os.Args[1])
	}
	ui.RunApp(preset)
}
