package chipsfx

type noteKind uint8

const (
	noteTone noteKind = iota
	noteRest
	noteInvalid
)

type compiledNote struct {
	// state holds the oscillator parameters of this note.
	// The active and reset bits are always zero here.
	state voiceState
	kind  noteKind
}

type compiledEffect struct {
	samplesPerNote int
	loopStart      int
	loopEnd        int
	looping        bool

	notes [NotesPerEffect]compiledNote
}

// compileBank converts the sound effects into a form that
// makes the frame update a simple table lookup:
// all divisions and note classifications are done here, once.
func compileBank(effects []SoundEffect) []compiledEffect {
	result := make([]compiledEffect, len(effects))
	for i := range effects {
		compileEffect(&result[i], &effects[i])
	}
	return result
}

func compileEffect(dst *compiledEffect, e *SoundEffect) {
	dst.samplesPerNote = calcSamplesPerNote(e.Speed)
	dst.loopStart = int(e.LoopStart)
	dst.loopEnd = int(e.LoopEnd)
	dst.looping = e.Loops()
	for i, n := range e.Notes {
		dst.notes[i] = compileNote(n)
	}
}

func compileNote(n Note) compiledNote {
	if n.Waveform >= NumWaveforms || n.Volume > 7 {
		return compiledNote{kind: noteInvalid}
	}
	switch {
	case n.Volume == 0:
		// A rest keeps the channel running, but silent.
		return compiledNote{
			state: makeVoiceState(0, 0, n.Waveform),
			kind:  noteRest,
		}
	case n.IsTone():
		return compiledNote{
			state: makeVoiceState(calcPhaseIncrement(n.Pitch), n.Volume, n.Waveform),
			kind:  noteTone,
		}
	default:
		return compiledNote{kind: noteInvalid}
	}
}
