package chipsfx

// NextSample generates one output sample.
//
// It's the only method that may be called from the sample context.
// It never blocks and never allocates; the work is bounded by
// the fixed number of channels.
//
// The result is an unsigned 8-bit amplitude, 128 is silence.
func (e *Engine) NextSample() uint8 {
	// This function is called at the sample rate.
	// Keep it branch-light and free of any calls that may allocate.

	sum := int32(0)
	numMixed := int32(0)

	for i := range e.voices {
		v := &e.voices[i]
		st, reset := v.acquire()
		if reset {
			v.phase = 0
		}

		volume := st.Volume()
		if !st.IsActive() || volume == 0 {
			continue
		}

		raw := st.Waveform().Sample(v.phase, &e.noise)
		sum += (int32(raw) - 128) * int32(volume) / 7
		v.phase = v.phase.Add(st.PhaseIncrement())
		numMixed++
	}

	// Averaging keeps the level independent of the number of playing channels.
	if numMixed > 0 {
		sum /= numMixed
	}

	master := int32(e.masterVolume.Load())
	return uint8(clamp(128+sum*master/255, 0, 255))
}

// ReadSamples fills dst with consecutive NextSample results.
// Like NextSample, it should only be called from the sample context.
func (e *Engine) ReadSamples(dst []uint8) {
	for i := range dst {
		dst[i] = e.NextSample()
	}
}
