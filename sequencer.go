package chipsfx

// Everything in this file runs in the frame context.

func (v *voice) start(index int, e *compiledEffect) {
	v.sfx = e
	v.sfxIndex = index
	v.noteIndex = 0
	v.sampleCount = 0
	v.samplesPerNote = e.samplesPerNote
	v.looping = e.looping

	// A dead first note never starts the voice.
	n := &e.notes[0]
	v.restart(n.state.WithActive(n.kind == noteTone))
}

func (v *voice) stop() {
	st := v.load()
	if !st.IsActive() {
		return
	}
	v.publish(st.WithActive(false))
}

func (v *voice) tick() {
	st := v.load()
	if !st.IsActive() || v.sfx == nil {
		return
	}

	v.sampleCount += samplesPerFrame
	if v.sampleCount < v.samplesPerNote {
		return
	}
	v.sampleCount = 0
	v.noteIndex++

	if v.looping && v.noteIndex >= v.sfx.loopEnd {
		v.noteIndex = v.sfx.loopStart
	} else if v.noteIndex >= NotesPerEffect {
		v.noteIndex = NotesPerEffect - 1
		v.publish(st.WithActive(false))
		return
	}

	n := &v.sfx.notes[v.noteIndex]
	switch n.kind {
	case noteTone, noteRest:
		v.publish(n.state.WithActive(true))
	default:
		v.publish(st.WithActive(false))
	}
}
