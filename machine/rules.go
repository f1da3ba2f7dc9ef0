package machine

import "sort"

// Symbol is a tape cell value. Symbols double as audio amplitudes
// (see the audio package) so the alphabet is kept small and bounded.
type Symbol int32

// State identifies an automaton state (the "pc" column in the
// program file).
type State int

// StartState is where every run begins.
const StartState State = 1

// Writable symbols are 0..MaxSymbol. Reads must have a rule for 0 and
// 1 in every state; a rule may still write a 2 to mark the tape.
const MaxSymbol Symbol = 2

type Direction int

const (
	Left  Direction = -1
	Stay  Direction = 0
	Right Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "L"
	case Right:
		return "R"
	}
	return "S"
}

// Rule is one transition: what to write, where to move, which state
// comes next.
type Rule struct {
	Write Symbol
	Move  Direction
	Next  State
}

type ruleKey struct {
	state State
	read  Symbol
}

// RuleTable is the automaton's transition function. It is immutable
// once validated; a reload on reset replaces it wholesale.
type RuleTable struct {
	rules map[ruleKey]Rule
}

func NewRuleTable() *RuleTable {
	return &RuleTable{rules: make(map[ruleKey]Rule)}
}

// Add registers one transition. Malformed rules are rejected here so
// the engine never sees them.
func (t *RuleTable) Add(state State, read Symbol, rule Rule) error {
	if read < 0 || read > MaxSymbol {
		return loadErrorf("read symbol must be 0..%d, got %d", MaxSymbol, read)
	}
	if rule.Write < 0 || rule.Write > MaxSymbol {
		return loadErrorf("write symbol must be 0..%d, got %d", MaxSymbol, rule.Write)
	}
	if rule.Move != Left && rule.Move != Right && rule.Move != Stay {
		return loadErrorf("bad move direction %d in rule (%d,%d)", rule.Move, state, read)
	}
	key := ruleKey{state: state, read: read}
	if _, dup := t.rules[key]; dup {
		return loadErrorf("duplicate rule for state=%d read=%d", state, read)
	}
	t.rules[key] = rule
	return nil
}

// Validate checks totality: every declared state must handle reads 0
// and 1. Writes of 2 are legal, so a (state, 2) pair without a rule is
// only caught at runtime, as a MissingRuleError.
func (t *RuleTable) Validate() error {
	if len(t.rules) == 0 {
		return loadErrorf("rule table is empty")
	}
	for _, state := range t.States() {
		for read := Symbol(0); read <= 1; read++ {
			if _, ok := t.rules[ruleKey{state: state, read: read}]; !ok {
				return loadErrorf("missing rule for state=%d read=%d", state, read)
			}
		}
	}
	return nil
}

// Lookup returns the transition for (state, read), or a
// MissingRuleError if the table has none.
func (t *RuleTable) Lookup(state State, read Symbol) (Rule, error) {
	rule, ok := t.rules[ruleKey{state: state, read: read}]
	if !ok {
		return Rule{}, &MissingRuleError{State: state, Read: read}
	}
	return rule, nil
}

func (t *RuleTable) Size() int {
	return len(t.rules)
}

// States returns the declared states in ascending order.
func (t *RuleTable) States() []State {
	seen := make(map[State]bool)
	var states []State
	for key := range t.rules {
		if !seen[key.state] {
			seen[key.state] = true
			states = append(states, key.state)
		}
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })
	return states
}

// Each visits every rule in (state, read) order. Used for listings.
func (t *RuleTable) Each(visit func(state State, read Symbol, rule Rule)) {
	keys := make([]ruleKey, 0, len(t.rules))
	for key := range t.rules {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].state != keys[j].state {
			return keys[i].state < keys[j].state
		}
		return keys[i].read < keys[j].read
	})
	for _, key := range keys {
		visit(key.state, key.read, t.rules[key])
	}
}
