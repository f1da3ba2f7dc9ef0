package machine

import "fmt"

// MissingRuleError is raised when the engine reaches a (state, symbol)
// pair the rule table has no entry for. It halts the machine; only a
// reset recovers.
type MissingRuleError struct {
	State State
	Read  Symbol
}

func (e *MissingRuleError) Error() string {
	return fmt.Sprintf("no rule for state=%d read=%d", e.State, e.Read)
}

// LoadError is raised while building a rule table from an external
// definition. A failed load never leaves a partially built machine
// behind.
type LoadError struct {
	Reason string
}

func (e *LoadError) Error() string {
	return e.Reason
}

func loadErrorf(format string, args ...interface{}) *LoadError {
	return &LoadError{Reason: fmt.Sprintf(format, args...)}
}
