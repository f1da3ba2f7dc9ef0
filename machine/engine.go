package machine

// Engine steps the automaton, one cycle per audio sample. A cycle is:
// read the cell under the head, look up the rule, write, move, switch
// state. The (R, W) pair of every cycle becomes one stereo frame.
//
// The whole path is integer arithmetic on a fixed table: identical
// (table, initial tape, start state) always reproduce the identical
// sample stream.
type Engine struct {
	table *RuleTable
	tape  *Tape

	state State
	cycle uint64

	halted  bool
	haltErr error

	// Initial tape image, restored on Reset
	initial []Symbol
}

// Snapshot is an immutable view of a fully completed cycle, for the
// renderer. It shares no memory with the live machine.
type Snapshot struct {
	State  State
	Head   int
	Cycle  uint64
	Halted bool
	Tape   []Symbol
}

// NewEngine takes ownership of the tape. The tape's current contents
// become the reset image.
func NewEngine(table *RuleTable, tape *Tape) *Engine {
	e := &Engine{
		table:   table,
		tape:    tape,
		state:   StartState,
		initial: tape.Cells(),
	}
	return e
}

// Step runs exactly one cycle and returns the (R, W) pair. On a
// missing rule the machine halts without touching the tape; the error
// sticks until Reset.
func (e *Engine) Step() (r Symbol, w Symbol, err error) {
	if e.halted {
		return 0, 0, e.haltErr
	}

	r = e.tape.Read()
	rule, err := e.table.Lookup(e.state, r)
	if err != nil {
		e.halted = true
		e.haltErr = err
		return 0, 0, err
	}

	e.tape.Write(rule.Write)
	e.tape.Move(rule.Move)
	e.state = rule.Next
	e.cycle++

	return r, rule.Write, nil
}

// Reset restores the initial tape image, start state and cycle zero.
// Resetting an already-reset machine is a no-op.
func (e *Engine) Reset() {
	for i, s := range e.initial {
		e.tape.Set(i, s)
	}
	e.tape.head = 0
	e.state = StartState
	e.cycle = 0
	e.halted = false
	e.haltErr = nil
}

// ReplaceTable swaps in a freshly loaded rule table and resets. Used
// when the program file is re-read.
func (e *Engine) ReplaceTable(table *RuleTable) {
	e.table = table
	e.Reset()
}

func (e *Engine) State() State {
	return e.state
}

func (e *Engine) Head() int {
	return e.tape.Head()
}

func (e *Engine) Cycle() uint64 {
	return e.cycle
}

func (e *Engine) Halted() bool {
	return e.halted
}

// Err returns the halt cause, or nil while running.
func (e *Engine) Err() error {
	return e.haltErr
}

func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		State:  e.state,
		Head:   e.tape.Head(),
		Cycle:  e.cycle,
		Halted: e.halted,
		Tape:   e.tape.Cells(),
	}
}
