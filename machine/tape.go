package machine

// Tape is the machine's finite memory: N cells and a head index.
// Exactly one cell is written per cycle, which is what keeps the
// stream replayable from the initial tape and the rule table.
type Tape struct {
	cells []Symbol
	head  int
}

func NewTape(n int) *Tape {
	return &Tape{cells: make([]Symbol, n)}
}

func (t *Tape) Len() int {
	return len(t.cells)
}

func (t *Tape) Head() int {
	return t.head
}

// Read returns the symbol under the head.
func (t *Tape) Read() Symbol {
	return t.cells[t.head]
}

// Write replaces the symbol under the head. Nothing else is touched.
func (t *Tape) Write(s Symbol) {
	t.cells[t.head] = s
}

// Move shifts the head one cell. The tape wraps around at both ends:
// moving Right from cell N-1 lands on cell 0 and vice versa, so every
// rule table keeps running forever.
func (t *Tape) Move(d Direction) {
	n := len(t.cells)
	t.head = ((t.head+int(d))%n + n) % n
}

// Cell reads an arbitrary position. Only used for seeding and
// inspection, never by the engine's cycle path.
func (t *Tape) Cell(i int) Symbol {
	return t.cells[i]
}

// Set writes an arbitrary position. Only valid before a run or
// between resets.
func (t *Tape) Set(i int, s Symbol) {
	t.cells[i] = s
}

// Cells returns a copy of the tape contents.
func (t *Tape) Cells() []Symbol {
	out := make([]Symbol, len(t.cells))
	copy(out, t.cells)
	return out
}
