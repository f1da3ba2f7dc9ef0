package render

import (
	"fmt"
	"strings"
	"time"

	termui "github.com/gizak/termui/v3"
	ui "github.com/gizak/termui/v3"
	widgets "github.com/gizak/termui/v3/widgets"

	"github.com/sondreh/ftmplay/audio"
	"github.com/sondreh/ftmplay/machine"
	"github.com/sondreh/ftmplay/settings"
)

// Shades from faded to freshly written
var shades = []rune(" .:-=+*#%@")

var headerStyle = termui.NewStyle(termui.ColorCyan)

// View draws the tape as a scrolling band of shaded cells. Freshly
// written cells light up and fade at the decay rate, the terminal
// rendition of the original's canvas-alpha trails.
type View struct {
	clock *audio.Clock

	intensity []float64 // one slot per tape cell
	history   []string  // recent aggregated rows, newest last

	brightness int
	decay      int
}

func NewView(clock *audio.Clock) *View {
	return &View{
		clock:      clock,
		brightness: settings.Brightness,
		decay:      settings.DecayRate,
	}
}

// Run owns the terminal until quit. The audio producer keeps running
// in the speaker goroutine; this loop only reads snapshots and feeds
// knob changes back through the clock's atomics.
func (v *View) Run() error {
	if err := ui.Init(); err != nil {
		return err
	}
	defer ui.Close()

	ticker := time.NewTicker(time.Second / time.Duration(settings.FPS))
	defer ticker.Stop()
	events := ui.PollEvents()

	for {
		select {
		case e := <-events:
			if quit := v.handleEvent(e); quit {
				return nil
			}
		case <-ticker.C:
			v.draw()
		}
	}
}

func (v *View) handleEvent(e termui.Event) (quit bool) {
	switch command(e) {
	case cmdQuit:
		return true
	case cmdReset:
		v.clock.RequestReset()
		for i := range v.intensity {
			v.intensity[i] = 0
		}
		v.history = nil
	case cmdDelayCoarseDown:
		v.clock.AdjustDelay(-settings.CoarseDelayStep)
	case cmdDelayCoarseUp:
		v.clock.AdjustDelay(settings.CoarseDelayStep)
	case cmdDelayFineDown:
		v.clock.AdjustDelay(-settings.FineDelayStep)
	case cmdDelayFineUp:
		v.clock.AdjustDelay(settings.FineDelayStep)
	case cmdDecayDown:
		if v.decay > 0 {
			v.decay--
		}
	case cmdDecayUp:
		if v.decay < settings.MaxDecayRate {
			v.decay++
		}
	case cmdBrightnessDown:
		if v.brightness > 0 {
			v.brightness--
		}
	case cmdBrightnessUp:
		if v.brightness < settings.MaxBrightness {
			v.brightness++
		}
	case cmdRedraw:
		v.draw()
	}
	return false
}

func (v *View) draw() {
	snap := v.clock.Snapshot()
	v.absorb(snap)

	width, height := termui.TerminalDimensions()
	if width < 4 || height < 6 {
		return
	}

	header := widgets.NewParagraph()
	header.Border = false
	header.TextStyle = headerStyle
	header.Text = v.statusLine(snap)
	header.SetRect(0, 0, width, 2)

	band := widgets.NewParagraph()
	band.Border = false
	band.Text = v.bandText(snap, width, height-3)
	band.SetRect(0, 2, width, height-1)

	keys := widgets.NewParagraph()
	keys.Border = false
	keys.Text = "[q:](fg:black,bg:white) quit [|](fg:white) " +
		"[r:](fg:black,bg:white) reset [|](fg:white) " +
		"[-/=:](fg:black,bg:white) coarse delay [|](fg:white) " +
		"[,/.:](fg:black,bg:white) decay [|](fg:white) " +
		"[;/':](fg:black,bg:white) brightness"
	keys.SetRect(0, height-1, width, height)

	ui.Render(header, band, keys)
}

func (v *View) statusLine(snap machine.Snapshot) string {
	delay := v.clock.Delay()
	delayMs := 1000.0 * float64(delay) / float64(settings.SampleRate)
	line := fmt.Sprintf("ftmplay  N=%d  %dHz  delay=%d (%.1fms)  brightness=%d  fade=%d  "+
		"state=%d head=%d cycle=%d",
		len(snap.Tape), settings.SampleRate, delay, delayMs,
		v.brightness, v.decay, snap.State, snap.Head, snap.Cycle)
	if snap.Halted {
		line += fmt.Sprintf("\n[HALTED: %s -- press r to reset](fg:white,bg:red)",
			v.clock.HaltErr())
	}
	return line
}

// absorb folds one snapshot into the per-cell intensities: written
// cells light up at the current brightness, everything fades by the
// decay rate.
func (v *View) absorb(snap machine.Snapshot) {
	if len(v.intensity) != len(snap.Tape) {
		v.intensity = make([]float64, len(snap.Tape))
	}

	fade := float64(v.decay) / float64(settings.MaxDecayRate+1)
	ink := float64(v.brightness) / float64(settings.MaxBrightness)

	for i, sym := range snap.Tape {
		v.intensity[i] -= fade * v.intensity[i]
		if sym > 0 {
			lit := ink * float64(sym)
			if lit > 1.0 {
				lit = 1.0
			}
			if lit > v.intensity[i] {
				v.intensity[i] = lit
			}
		}
	}
}

// bandText maps the N intensities down to the terminal width and
// scrolls one row per frame.
func (v *View) bandText(snap machine.Snapshot, width int, rows int) string {
	cols := width
	if cols < 1 {
		cols = 1
	}
	perCol := (len(v.intensity) + cols - 1) / cols
	if perCol < 1 {
		perCol = 1
	}

	row := make([]rune, cols)
	for c := 0; c < cols; c++ {
		peak := 0.0
		for i := c * perCol; i < (c+1)*perCol && i < len(v.intensity); i++ {
			if v.intensity[i] > peak {
				peak = v.intensity[i]
			}
		}
		idx := int(peak * float64(len(shades)-1))
		if idx >= len(shades) {
			idx = len(shades) - 1
		}
		row[c] = shades[idx]
	}

	// Head marker line on top of the scrolling band
	marker := make([]rune, cols)
	for i := range marker {
		marker[i] = ' '
	}
	headCol := snap.Head / perCol
	if headCol >= 0 && headCol < cols {
		marker[headCol] = 'v'
	}

	v.history = append(v.history, string(row))
	if max := rows - 1; max > 0 && len(v.history) > max {
		v.history = v.history[len(v.history)-max:]
	}

	lines := make([]string, 0, len(v.history)+1)
	lines = append(lines, string(marker))
	for i := len(v.history) - 1; i >= 0; i-- {
		lines = append(lines, v.history[i])
	}
	return strings.Join(lines, "\n")
}
