package audio

import "github.com/sondreh/ftmplay/machine"

// DelayLine shifts the W channel D cycles behind the R channel. A
// fixed ring of D symbols: Process pushes the newest W and returns
// the one from D cycles ago. The first D outputs after a reset or a
// resize are zeros, never stale data.
type DelayLine struct {
	buf []machine.Symbol
	pos int
}

func NewDelayLine(delay int) *DelayLine {
	d := &DelayLine{}
	d.Resize(delay)
	return d
}

// Delay returns the current offset in cycles.
func (d *DelayLine) Delay() int {
	return len(d.buf)
}

// Resize changes the offset. The ring is rebuilt and flushed to
// zeros; resampling old history would make the output depend on when
// the knob was turned.
func (d *DelayLine) Resize(delay int) {
	if delay < 0 {
		delay = 0
	}
	if delay == len(d.buf) {
		return
	}
	d.buf = make([]machine.Symbol, delay)
	d.pos = 0
}

// Flush zeroes the ring, as if no W had been produced yet. Used on
// machine reset.
func (d *DelayLine) Flush() {
	for i := range d.buf {
		d.buf[i] = 0
	}
	d.pos = 0
}

// Process feeds one W symbol in and returns the W from Delay() cycles
// ago. With a zero delay the input passes straight through.
func (d *DelayLine) Process(w machine.Symbol) machine.Symbol {
	if len(d.buf) == 0 {
		return w
	}
	out := d.buf[d.pos]
	d.buf[d.pos] = w
	d.pos = (d.pos + 1) % len(d.buf)
	return out
}
