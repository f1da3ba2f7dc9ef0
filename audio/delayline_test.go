package audio

import (
	"testing"

	"github.com/sondreh/ftmplay/machine"
)

func Test_DelayThreeCycles(t *testing.T) {
	d := NewDelayLine(3)

	// Output at cycle t must be the input from cycle t-3; zeros
	// before that.
	inputs := []machine.Symbol{1, 2, 1, 0, 2, 1, 1, 0}
	for i, in := range inputs {
		out := d.Process(in)
		var expected machine.Symbol
		if i >= 3 {
			expected = inputs[i-3]
		}
		if out != expected {
			t.Fatalf("Cycle %d: got %d, expected %d", i, out, expected)
		}
	}
}

func Test_ZeroDelayPassesThrough(t *testing.T) {
	d := NewDelayLine(0)
	for _, in := range []machine.Symbol{0, 1, 2, 1} {
		if out := d.Process(in); out != in {
			t.Errorf("Zero delay altered %d -> %d", in, out)
		}
	}
}

func Test_ResizeRefillsDeterministically(t *testing.T) {
	d := NewDelayLine(3)
	for _, in := range []machine.Symbol{1, 2, 1} {
		d.Process(in)
	}

	// Grow: all history is dropped, the next 7 outputs are zeros
	d.Resize(7)
	if d.Delay() != 7 {
		t.Fatalf("Delay after resize = %d, expected 7", d.Delay())
	}
	for i := 0; i < 7; i++ {
		if out := d.Process(1); out != 0 {
			t.Fatalf("Output %d after growing: got %d, expected 0", i, out)
		}
	}
	if out := d.Process(1); out != 1 {
		t.Fatalf("Ring did not start delivering after 7 pushes: got %d", out)
	}

	// Shrink back: again zeros first, no stale values
	d.Resize(3)
	for i := 0; i < 3; i++ {
		if out := d.Process(2); out != 0 {
			t.Fatalf("Output %d after shrinking: got %d, expected 0", i, out)
		}
	}
	if out := d.Process(2); out != 2 {
		t.Fatalf("Ring did not start delivering after 3 pushes: got %d", out)
	}
}

func Test_ResizeToSameSizeKeepsHistory(t *testing.T) {
	d := NewDelayLine(2)
	d.Process(1)
	d.Resize(2)
	d.Process(2)
	if out := d.Process(0); out != 1 {
		t.Errorf("No-op resize dropped history: got %d, expected 1", out)
	}
}

func Test_FlushZeroes(t *testing.T) {
	d := NewDelayLine(2)
	d.Process(2)
	d.Process(2)
	d.Flush()
	if out := d.Process(1); out != 0 {
		t.Errorf("Flush left %d in the ring", out)
	}
}

func Test_NegativeDelayClampsToZero(t *testing.T) {
	d := NewDelayLine(-5)
	if d.Delay() != 0 {
		t.Errorf("Negative delay gave length %d", d.Delay())
	}
}
