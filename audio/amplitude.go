package audio

import "github.com/sondreh/ftmplay/machine"

// One symbol unit maps to 12000/32768 of full scale, i.e. symbol 1
// plays as the int16 value 12000. Linear and invertible over the
// alphabet, and constant for the whole run.
const SymbolStep = 12000.0 / 32768.0

// Silence is what the delay line is filled with and what a halted
// machine emits.
const Silence = 0.0

func SymbolToAmplitude(s machine.Symbol) float64 {
	return float64(s) * SymbolStep
}

func AmplitudeToSymbol(a float64) machine.Symbol {
	return machine.Symbol(a/SymbolStep + 0.5)
}
