package audio

import (
	"sync"
	"sync/atomic"

	"github.com/sondreh/ftmplay/machine"
	"github.com/sondreh/ftmplay/settings"
)

// Clock couples the machine to the audio stream: one engine cycle per
// sample slot, left channel = R, right channel = W through the delay
// line. It implements beep.Streamer so the speaker pulls frames
// directly; nothing is ever fabricated or dropped on the way.
//
// The engine and delay line are owned by whoever holds the lock,
// normally the speaker goroutine inside Stream. Knob changes and
// resets come in through atomics and are applied at the next cycle
// boundary, so the input goroutine never blocks the producer.
type Clock struct {
	delayTarget int64
	resetFlag   int32
	fillFrames  uint64

	mu     sync.Mutex
	engine *machine.Engine
	delay  *DelayLine
}

func NewClock(engine *machine.Engine, delay int) *Clock {
	c := &Clock{
		engine: engine,
		delay:  NewDelayLine(clampDelay(delay)),
	}
	atomic.StoreInt64(&c.delayTarget, int64(c.delay.Delay()))
	return c
}

func clampDelay(d int) int {
	if d < settings.MinDelay {
		return settings.MinDelay
	}
	if d > settings.MaxDelay {
		return settings.MaxDelay
	}
	return d
}

// SetDelay requests a new R/W offset. Safe to call from the input
// goroutine; takes effect at the next cycle boundary.
func (c *Clock) SetDelay(d int) {
	atomic.StoreInt64(&c.delayTarget, int64(clampDelay(d)))
}

// AdjustDelay nudges the offset by step samples and returns the new
// (clamped) value.
func (c *Clock) AdjustDelay(step int) int {
	d := clampDelay(c.Delay() + step)
	atomic.StoreInt64(&c.delayTarget, int64(d))
	return d
}

func (c *Clock) Delay() int {
	return int(atomic.LoadInt64(&c.delayTarget))
}

// RequestReset schedules a full machine rebuild. The running cycle
// finishes; the reset happens before the next one. Requesting twice
// is the same as requesting once.
func (c *Clock) RequestReset() {
	atomic.StoreInt32(&c.resetFlag, 1)
}

// Applied at a cycle boundary, lock held.
func (c *Clock) applyPending() {
	if atomic.CompareAndSwapInt32(&c.resetFlag, 1, 0) {
		c.engine.Reset()
		c.delay.Flush()
		atomic.StoreUint64(&c.fillFrames, 0)
	}
	if target := int(atomic.LoadInt64(&c.delayTarget)); target != c.delay.Delay() {
		c.delay.Resize(target)
	}
}

// Tick produces exactly one stereo frame.
func (c *Clock) Tick() (left, right float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tick()
}

func (c *Clock) tick() (float64, float64) {
	c.applyPending()

	if c.engine.Halted() {
		atomic.AddUint64(&c.fillFrames, 1)
		return Silence, Silence
	}

	r, w, err := c.engine.Step()
	if err != nil {
		// The machine just halted; this and every following
		// slot carries silence until a reset.
		atomic.AddUint64(&c.fillFrames, 1)
		return Silence, Silence
	}

	return SymbolToAmplitude(r), SymbolToAmplitude(c.delay.Process(w))
}

// Stream implements beep.Streamer. Every requested slot is exactly
// one machine cycle (or a counted fill frame after a halt).
func (c *Clock) Stream(samples [][2]float64) (n int, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range samples {
		left, right := c.tick()
		samples[i][0] = left
		samples[i][1] = right
	}
	return len(samples), true
}

func (c *Clock) Err() error {
	return nil
}

// FillFrames counts the silence frames emitted since the machine
// halted. Non-zero means the machine stopped, not the audio.
func (c *Clock) FillFrames() uint64 {
	return atomic.LoadUint64(&c.fillFrames)
}

func (c *Clock) Halted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.Halted()
}

// HaltErr returns what stopped the machine, or nil.
func (c *Clock) HaltErr() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.Err()
}

// Snapshot hands the renderer a copy of the last fully completed
// cycle. Never a reference into the live tape.
func (c *Clock) Snapshot() machine.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.Snapshot()
}
