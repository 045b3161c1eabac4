package chipsfx

// NotesPerEffect is the fixed length of every SoundEffect note sequence.
const NotesPerEffect = 32

// Note is a single step of a SoundEffect.
type Note struct {
	// Pitch selects the pitch table entry.
	// Values at or above NumPitches mean "no tone".
	Pitch uint8

	// Waveform selects the generator, see WaveTriangle and friends.
	Waveform Waveform

	// Volume is a level in [0, 7]; zero makes this note a rest.
	Volume uint8

	// Effect is stored for data fidelity only.
	// The engine never interprets it.
	Effect uint8
}

// IsTone reports whether n selects a pitch table entry.
func (n Note) IsTone() bool { return n.Pitch < NumPitches }

// SoundEffect is a canned sound: a playback speed, loop bounds
// and a fixed sequence of notes.
//
// Sound effects are immutable game content;
// they're loaded once and then referenced by their index.
type SoundEffect struct {
	// Speed is the duration of every note in speed units.
	// A single unit is samplesPerSpeedUnit samples long.
	// Zero is treated as 1.
	Speed uint8

	// LoopStart and LoopEnd are indexes into Notes.
	// Looping is enabled only if LoopEnd > LoopStart;
	// LoopEnd itself is excluded from the loop.
	LoopStart uint8
	LoopEnd   uint8

	Notes [NotesPerEffect]Note
}

// Loops reports whether this sound effect repeats forever.
func (e *SoundEffect) Loops() bool { return e.LoopEnd > e.LoopStart }

// Duration returns the upper bound of the number of output samples
// this sound effect lasts when it plays all of its notes once.
// A looping effect never ends; a note with no tone and a non-zero volume
// ends the playback earlier.
//
// The note advancement is frame-quantized (see Engine.Tick),
// so the result is always a multiple of a frame length.
func (e *SoundEffect) Duration() int {
	framesPerNote := (calcSamplesPerNote(e.Speed) + samplesPerFrame - 1) / samplesPerFrame
	return NotesPerEffect * framesPerNote * samplesPerFrame
}

func calcSamplesPerNote(speed uint8) int {
	return clampMin(int(speed)*samplesPerSpeedUnit, minSamplesPerNote)
}
