package chipsfx

// NumPitches is the pitch table size.
// Note pitches at or above this value produce no tone.
const NumPitches = 64

// C-0 to D#-5, tuned to A4=440Hz.
var pitchTable = [NumPitches]uint16{
	65, 69, 73, 78, 82, 87, 92, 98,
	104, 110, 117, 123, 131, 139, 147, 156,
	165, 175, 185, 196, 208, 220, 233, 247,
	262, 277, 294, 311, 330, 349, 370, 392,
	415, 440, 466, 494, 523, 554, 587, 622,
	659, 698, 740, 784, 831, 880, 932, 988,
	1047, 1109, 1175, 1245, 1319, 1397, 1480, 1568,
	1661, 1760, 1865, 1976, 2093, 2217, 2349, 2489,
}

// PitchFrequency returns the frequency (in Hz) of the given pitch index.
// The ok result is false for pitches that don't select a tone.
func PitchFrequency(pitch uint8) (hz uint16, ok bool) {
	if pitch >= NumPitches {
		return 0, false
	}
	return pitchTable[pitch], true
}

// calcPhaseIncrement returns the per-sample phase step for the given pitch.
// The pitch must be in [0, NumPitches).
func calcPhaseIncrement(pitch uint8) Phase {
	freq := uint32(pitchTable[pitch])
	return Phase(freq * 65536 / SampleRate)
}
