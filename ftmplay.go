package main

import (
	"flag"
	"fmt"
	"syscall"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/sondreh/ftmplay/audio"
	"github.com/sondreh/ftmplay/machine"
	"github.com/sondreh/ftmplay/reader"
	"github.com/sondreh/ftmplay/render"
	"github.com/sondreh/ftmplay/settings"
	"github.com/sondreh/ftmplay/writer"
)

func parseCommandLineParameters() {
	flag.StringVar(&settings.ProgramFile, "program", settings.ProgramFile, "Rule-table CSV file")
	flag.IntVar(&settings.TapeLength, "n", settings.TapeLength, "Tape length (cells)")
	flag.IntVar(&settings.SampleRate, "rate", settings.SampleRate, "Audio samplerate (Hz)")
	flag.IntVar(&settings.DelaySamples, "delay", settings.DelaySamples, "Initial R/W delay (samples)")
	flag.IntVar(&settings.FPS, "fps", settings.FPS, "Visualizer framerate")
	flag.StringVar(&settings.OutputWav, "out", settings.OutputWav, "Render to a wav-file instead of playing live")
	flag.Float64Var(&settings.RenderSeconds, "seconds", settings.RenderSeconds, "Seconds to render with -out")
	flag.BoolVar(&settings.PrintRules, "print-rules", settings.PrintRules, "Print a rule listing after loading")
	flag.BoolVar(&settings.Headless, "no-ui", settings.Headless, "Run without the visualizer")
	flag.BoolVar(&settings.SeedTape, "seed", settings.SeedTape, "Seed a 1 at N/4 on reset")
	flag.Parse()

	// Keep the delay ceiling at ~1 second of samples
	settings.MaxDelay = settings.SampleRate
}

func buildEngine(table *machine.RuleTable) *machine.Engine {
	tape := machine.NewTape(settings.TapeLength)
	if settings.SeedTape {
		tape.Set(settings.TapeLength/4, 1)
	}
	return machine.NewEngine(table, tape)
}

func main() {
	fmt.Printf("* ftmplay v%s\n", settings.Version)
	parseCommandLineParameters()

	table, err := reader.ReadProgram(settings.ProgramFile)
	if err != nil {
		fmt.Printf("Loading program failed: %s\n", err)
		syscall.Exit(-1)
	}
	fmt.Printf("* Loaded '%s': %d rules, %d states\n",
		settings.ProgramFile, table.Size(), len(table.States()))

	if settings.PrintRules {
		reader.PrintRules(table)
	}

	clock := audio.NewClock(buildEngine(table), settings.DelaySamples)

	if settings.OutputWav != "" {
		samples := writer.Capture(clock, settings.RenderSeconds, settings.SampleRate)
		if err := writer.SaveAsWAV(settings.OutputWav, samples, settings.SampleRate); err != nil {
			fmt.Printf("Writing wav failed: %s\n", err)
			syscall.Exit(-1)
		}
		if clock.Halted() {
			fmt.Printf("* Machine halted during render: %s\n", clock.HaltErr())
		}
		return
	}

	sr := beep.SampleRate(settings.SampleRate)
	bufferLen := sr.N(time.Duration(settings.BufferMs) * time.Millisecond)
	if err := speaker.Init(sr, bufferLen); err != nil {
		fmt.Printf("Audio init failed: %s\n", err)
		syscall.Exit(-1)
	}
	speaker.Play(clock)

	if settings.Headless {
		err = render.RunHeadless(clock)
	} else {
		err = render.NewView(clock).Run()
	}
	speaker.Close()

	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		syscall.Exit(-1)
	}
}
