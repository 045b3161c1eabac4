package chipsfx

import (
	"sync/atomic"
)

const (
	// SampleRate is the output sample rate in Hz.
	SampleRate = 22050

	// FrameRate is the number of Tick calls per second the engine assumes.
	FrameRate = 60

	// NumChannels is the number of voices that can play simultaneously.
	NumChannels = 4

	// DefaultMasterVolume is the master volume level used when
	// EngineConfig.MasterVolume is not set.
	DefaultMasterVolume = 200

	// TriggerStop is a special Trigger sfx index that stops the channel.
	TriggerStop = -1

	// TriggerStopAll is a special Trigger sfx index that stops every channel.
	TriggerStopAll = -2
)

const (
	samplesPerFrame     = SampleRate / FrameRate
	samplesPerSpeedUnit = 183
	minSamplesPerNote   = 183
)

// Engine is a fixed-size pool of voices that play sound effects.
//
// The engine is driven by two independent periodic callers:
//
//   - the frame context calls Tick once per rendered frame,
//     and Trigger/Stop/SetMasterVolume in response to the game events;
//   - the sample context calls NextSample (or reads a Stream) at SampleRate.
//
// Every method except NextSample and ReadSamples belongs to the frame context.
// These two contexts may run on different goroutines: the frame context
// publishes every note change as one atomic word and the sample context
// never waits for anything. A Trigger always restarts the oscillator
// from a zero phase, no matter how many triggers happen between two samples.
// Calling frame context methods from several goroutines at once is not supported.
//
// Invalid arguments (unknown sfx or channel indexes) are silently ignored.
type Engine struct {
	effects []compiledEffect

	voices [NumChannels]voice

	// Only accessed from the sample context.
	noise Noise

	masterVolume atomic.Uint32
}

// EngineConfig configures the engine creation.
type EngineConfig struct {
	// Effects is the sound effect table.
	// The sfx index used in Trigger is an index into this slice.
	//
	// The table is copied and compiled, changing it after
	// the engine is created has no effect.
	Effects []SoundEffect

	// MasterVolume is the initial master volume level.
	//
	// A zero value means DefaultMasterVolume.
	// Use SetMasterVolume(0) to mute the engine.
	MasterVolume uint8

	// NoiseSeed is the initial shared noise register value.
	//
	// A zero value means DefaultNoiseSeed.
	NoiseSeed uint16
}

// NewEngine allocates the engine with all of its voices idle.
//
// This is the only place where the engine allocates memory.
func NewEngine(config EngineConfig) *Engine {
	applyConfigDefaults(&config)

	e := &Engine{
		effects: compileBank(config.Effects),
		noise:   NewNoise(config.NoiseSeed),
	}
	e.masterVolume.Store(uint32(config.MasterVolume))
	for i := range e.voices {
		e.voices[i].sfxIndex = -1
	}
	return e
}

func applyConfigDefaults(config *EngineConfig) {
	if config.MasterVolume == 0 {
		config.MasterVolume = DefaultMasterVolume
	}
	if config.NoiseSeed == 0 {
		config.NoiseSeed = DefaultNoiseSeed
	}
}

// NumEffects returns the sound effect table size.
func (e *Engine) NumEffects() int { return len(e.effects) }

// Trigger starts playing the sound effect sfx on the given channel.
// Whatever was playing on that channel is replaced, the playback starts
// from the first note.
//
// Two negative sfx values are special:
//   - TriggerStop stops the channel
//   - TriggerStopAll stops all channels
//
// For both of them the channel index still has to be valid.
//
// Out of range sfx or channel indexes make this call a no-op.
func (e *Engine) Trigger(sfx, channel int) {
	if channel < 0 || channel >= NumChannels {
		return
	}

	switch {
	case sfx == TriggerStop:
		e.voices[channel].stop()
	case sfx == TriggerStopAll:
		e.StopAll()
	case sfx >= 0 && sfx < len(e.effects):
		e.voices[channel].start(sfx, &e.effects[sfx])
	}
}

// Stop silences the channel immediately.
// Stopping an idle channel does nothing.
func (e *Engine) Stop(channel int) {
	e.Trigger(TriggerStop, channel)
}

// StopAll silences every channel immediately.
func (e *Engine) StopAll() {
	for i := range e.voices {
		e.voices[i].stop()
	}
}

// Tick advances the note sequencing of all channels by one frame.
// It should be called FrameRate times per second.
func (e *Engine) Tick() {
	for i := range e.voices {
		e.voices[i].tick()
	}
}

// SetMasterVolume sets the master volume level.
// Zero mutes the output, 255 is the full scale.
func (e *Engine) SetMasterVolume(level uint8) {
	e.masterVolume.Store(uint32(level))
}

// MasterVolume returns the current master volume level.
func (e *Engine) MasterVolume() uint8 {
	return uint8(e.masterVolume.Load())
}

// Playing reports the sfx index and the current note index of the channel.
// Both values are -1 if the channel is idle (or doesn't exist).
func (e *Engine) Playing(channel int) (sfx, note int) {
	if channel < 0 || channel >= NumChannels {
		return -1, -1
	}
	v := &e.voices[channel]
	if !v.IsActive() {
		return -1, -1
	}
	return v.sfxIndex, v.noteIndex
}

// IsIdle reports whether none of the channels is playing.
func (e *Engine) IsIdle() bool {
	for i := range e.voices {
		if e.voices[i].IsActive() {
			return false
		}
	}
	return true
}
