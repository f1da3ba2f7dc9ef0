package render

import (
	termui "github.com/gizak/termui/v3"
)

const (
	cmdNone = iota
	cmdQuit
	cmdReset
	cmdDelayCoarseDown
	cmdDelayCoarseUp
	cmdDelayFineDown
	cmdDelayFineUp
	cmdDecayDown
	cmdDecayUp
	cmdBrightnessDown
	cmdBrightnessUp
	cmdRedraw
)

// Key bindings match the original instrument: coarse/fine delay on
// -/= and [/], decay on ,/. and brightness on ;/'.
func command(e termui.Event) int {
	switch e.ID {
	case "q", "<C-c>", "<Escape>":
		return cmdQuit
	case "r":
		return cmdReset
	case "-":
		return cmdDelayCoarseDown
	case "=", "+":
		return cmdDelayCoarseUp
	case "[":
		return cmdDelayFineDown
	case "]":
		return cmdDelayFineUp
	case ",":
		return cmdDecayDown
	case ".":
		return cmdDecayUp
	case ";":
		return cmdBrightnessDown
	case "'":
		return cmdBrightnessUp
	case "<Resize>":
		return cmdRedraw
	}
	return cmdNone
}
