package chipsfx

// Phase is a fixed-point position within one waveform cycle.
//
// The whole cycle is mapped onto [0, 65536): 0 is the cycle start
// and 65535 is the last step before it repeats.
// All Phase arithmetic wraps modulo 65536, so an oscillator can
// advance forever without any explicit range checks.
type Phase uint16

// Add advances p by delta, wrapping around the cycle end.
func (p Phase) Add(delta Phase) Phase { return p + delta }

// Mul scales p by k, wrapping around the cycle end.
// Mul(2) is a phase of the same oscillator one octave up.
func (p Phase) Mul(k uint16) Phase { return Phase(uint16(p) * k) }

// HighByte returns the 8 most significant bits of the phase.
// Most generators only need this coarse position.
func (p Phase) HighByte() uint8 { return uint8(p >> 8) }
