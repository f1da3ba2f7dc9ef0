package render

import (
	"fmt"

	"github.com/eiannone/keyboard"
	"github.com/fatih/color"

	"github.com/sondreh/ftmplay/audio"
	"github.com/sondreh/ftmplay/settings"
)

const headlessPrompt = "< -/= coarse delay | [/] fine delay | (r)eset | (q)uit >"

// RunHeadless drives the knobs without the termui visualizer: plain
// console output, one key at a time. Decay and brightness have
// nothing to act on here and are ignored.
func RunHeadless(clock *audio.Clock) error {
	if err := keyboard.Open(); err != nil {
		return err
	}
	defer keyboard.Close()

	color.Yellow(headlessPrompt)
	wasHalted := false

	for {
		char, key, err := keyboard.GetKey()
		if err != nil {
			return err
		}

		if key == keyboard.KeyEsc || char == 'q' {
			return nil
		}

		switch char {
		case 'r':
			clock.RequestReset()
			color.Red("Machine reset")
			wasHalted = false
		case '-':
			printDelay(clock.AdjustDelay(-settings.CoarseDelayStep))
		case '=', '+':
			printDelay(clock.AdjustDelay(settings.CoarseDelayStep))
		case '[':
			printDelay(clock.AdjustDelay(-settings.FineDelayStep))
		case ']':
			printDelay(clock.AdjustDelay(settings.FineDelayStep))
		case 'v':
			snap := clock.Snapshot()
			color.Cyan("state=%d head=%d cycle=%d fill=%d",
				snap.State, snap.Head, snap.Cycle, clock.FillFrames())
		}

		if clock.Halted() && !wasHalted {
			wasHalted = true
			color.Red("Machine halted: %s", clock.HaltErr())
			color.Yellow("Press 'r' to reset")
		}
	}
}

func printDelay(delay int) {
	delayMs := 1000.0 * float64(delay) / float64(settings.SampleRate)
	fmt.Printf("* delay=%d samples (%.1fms)\n", delay, delayMs)
}
