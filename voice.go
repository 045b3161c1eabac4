package chipsfx

import (
	"sync/atomic"
)

// voiceState packs everything the sample context needs to know about
// the current note into a single word, so the frame context can replace
// it with one atomic store.
//
// Bit layout:
//
//	0-15  phase increment
//	16-18 volume
//	19-21 waveform
//	22    active flag
//	23    phase reset request
type voiceState uint32

const (
	stateVolumeShift   = 16
	stateWaveformShift = 19
	stateActiveBit     = 1 << 22
	stateResetBit      = 1 << 23
)

func makeVoiceState(inc Phase, volume uint8, w Waveform) voiceState {
	return voiceState(uint32(inc) |
		(uint32(volume&0b111) << stateVolumeShift) |
		(uint32(w&0b111) << stateWaveformShift))
}

func (s voiceState) PhaseIncrement() Phase { return Phase(s) }

func (s voiceState) Volume() uint8 { return uint8(s>>stateVolumeShift) & 0b111 }

func (s voiceState) Waveform() Waveform { return Waveform(s>>stateWaveformShift) & 0b111 }

func (s voiceState) IsActive() bool { return s&stateActiveBit != 0 }

func (s voiceState) WithActive(active bool) voiceState {
	if active {
		return s | stateActiveBit
	}
	return s &^ stateActiveBit
}

// voice is a single playback channel.
//
// The fields are split by the execution context that owns them.
// The only shared field is state: it's written by the frame context
// and read by the sample context.
type voice struct {
	state atomic.Uint32

	// Sample context data.
	phase Phase

	// Frame context data.
	sfx            *compiledEffect
	sfxIndex       int
	noteIndex      int
	sampleCount    int
	samplesPerNote int
	looping        bool
}

func (v *voice) load() voiceState {
	return voiceState(v.state.Load())
}

// publish replaces the note state.
// A reset request that the sample context hasn't consumed yet is kept.
func (v *voice) publish(s voiceState) {
	for {
		old := v.state.Load()
		next := (uint32(s) &^ stateResetBit) | (old & stateResetBit)
		if v.state.CompareAndSwap(old, next) {
			return
		}
	}
}

// restart replaces the note state and asks the sample context
// to start the oscillator from a zero phase.
func (v *voice) restart(s voiceState) {
	v.state.Store(uint32(s | stateResetBit))
}

// acquire is the sample context side of the handoff.
// It returns the current state and reports whether a phase reset
// was requested since the previous call; the request is consumed.
func (v *voice) acquire() (voiceState, bool) {
	for {
		st := v.state.Load()
		if st&stateResetBit == 0 {
			return voiceState(st), false
		}
		if v.state.CompareAndSwap(st, st&^stateResetBit) {
			return voiceState(st &^ stateResetBit), true
		}
	}
}

// IsActive can be called from either context.
func (v *voice) IsActive() bool {
	return v.load().IsActive()
}
