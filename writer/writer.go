package writer

import (
	"fmt"
	"os"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"

	"github.com/sondreh/ftmplay/audio"
)

// CaptureStreamer replays an already captured block of frames into a
// wav encoder.
type CaptureStreamer struct {
	Data           [][2]float64
	SamplesWritten int
}

func (cs *CaptureStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := 0; i < len(samples); i++ {
		if cs.SamplesWritten+i >= len(cs.Data) {
			return i, false
		}
		samples[i][0] = cs.Data[cs.SamplesWritten+i][0]
		samples[i][1] = cs.Data[cs.SamplesWritten+i][1]
	}

	cs.SamplesWritten += len(samples)
	return len(samples), cs.SamplesWritten < len(cs.Data)
}

func (cs *CaptureStreamer) Err() error {
	return nil
}

// Capture pulls seconds worth of frames from the clock. Pure machine
// arithmetic, so the result is identical on every run.
func Capture(clock *audio.Clock, seconds float64, sampleRate int) [][2]float64 {
	frames := int(seconds * float64(sampleRate))
	samples := make([][2]float64, frames)
	clock.Stream(samples)
	return samples
}

// SaveAsWAV writes captured frames as 16-bit stereo PCM.
func SaveAsWAV(filename string, samples [][2]float64, sampleRate int) error {
	fmt.Printf("* Writing to '%s' (%d samples @ %dHz)\n",
		filename, len(samples), sampleRate)

	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "creating '%s'", filename)
	}
	defer file.Close()

	format := beep.Format{
		SampleRate:  beep.SampleRate(sampleRate),
		NumChannels: 2,
		Precision:   2,
	}
	if err := wav.Encode(file, &CaptureStreamer{Data: samples}, format); err != nil {
		return errors.Wrapf(err, "encoding '%s'", filename)
	}
	return nil
}
