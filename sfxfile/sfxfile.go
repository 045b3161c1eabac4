package sfxfile

import (
	"fmt"
	"io"
)

const (
	// NotesPerEffect is the number of note slots in every effect.
	NotesPerEffect = 32

	// EffectSize is the binary record size of a single effect:
	// 32 two-byte notes followed by a four-byte header.
	EffectSize = NotesPerEffect*2 + 4

	// MaxEffects is the number of effects in a full bank.
	MaxEffects = 64

	// NumPitches is the number of playable pitches.
	// Notes with a higher pitch and a non-zero volume are dead notes.
	NumPitches = 64
)

// Bank is a decoded sound effect bank.
// This is a raw format that is not optimized for anything.
type Bank struct {
	Effects []Effect
}

type Effect struct {
	// EditorMode holds the editor view and filter switches.
	// It doesn't affect the playback.
	EditorMode uint8

	Speed     uint8
	LoopStart uint8
	LoopEnd   uint8

	Notes [NotesPerEffect]Note
}

// IsEmpty reports whether e has no audible notes:
// every note either has zero volume or is a dead note (pitch >= NumPitches).
func (e *Effect) IsEmpty() bool {
	for _, n := range e.Notes {
		if n.Volume != 0 && n.Pitch < NumPitches {
			return false
		}
	}
	return true
}

type Note struct {
	Pitch    uint8
	Waveform uint8
	Volume   uint8
	Effect   uint8
}

// Parse reads a binary bank image and decodes it.
//
// The data is a sequence of EffectSize records; every note is
// a little endian word:
//
//	bits 0-5   pitch
//	bits 6-8   waveform
//	bits 9-11  volume
//	bits 12-14 effect
//	bit  15    custom instrument flag
//
// The notes are followed by editor mode, speed, loop start and loop end bytes.
//
// The 6-bit pitch field can't hold pitches >= NumPitches, so a binary
// image never contains dead notes; use a cart (see ParseCart) to keep them.
//
// A non-nil error is usually a *ParseError object.
func Parse(r io.Reader) (*Bank, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read data: %w", err)
	}
	return ParseFromBytes(data)
}

// ParseFromBytes is like Parse, but it decodes the provided bytes directly.
func ParseFromBytes(data []byte) (*Bank, error) {
	p := &parser{data: data}
	if err := p.Parse(); err != nil {
		return nil, err
	}
	return &p.bank, nil
}

// ParseCart reads a textual cartridge and decodes its __sfx__ section.
//
// Every line of that section describes one effect with 168 hex digits:
// editor mode, speed, loop start and loop end (two digits each)
// followed by 32 notes of 5 digits: pitch (2), waveform, volume, effect.
// All other cartridge sections are skipped.
//
// Pitches are kept verbatim, values >= NumPitches included.
//
// A non-nil error is usually a *ParseError object.
func ParseCart(r io.Reader) (*Bank, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read data: %w", err)
	}
	p := &cartParser{data: data}
	if err := p.Parse(); err != nil {
		return nil, err
	}
	return &p.bank, nil
}
