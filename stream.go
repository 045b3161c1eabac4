package chipsfx

import (
	"errors"
	"io"
)

// StreamFormat describes the PCM encoding produced by a Stream.
type StreamFormat int

const (
	// FormatU8Mono is one unsigned byte per sample, 128 is silence.
	// This is the native engine output format.
	FormatU8Mono StreamFormat = iota

	// FormatS16Stereo is a signed 16-bit little endian stereo frame per sample.
	// This is what ebiten/audio package expects.
	FormatS16Stereo
)

// BytesPerFrame returns the number of bytes a single sample occupies.
func (f StreamFormat) BytesPerFrame() int {
	if f == FormatS16Stereo {
		return 4
	}
	return 1
}

// Stream wraps the engine, making it possible to Read() its PCM bytes.
//
// The reader is the sample context consumer: pass it to the audio
// player (Ebitengine audio.NewPlayer or oto Context.NewPlayer) and
// the player goroutine will pull the samples while the game goroutine
// keeps calling Engine.Tick.
//
// A stream never ends, an idle engine produces silence.
type Stream struct {
	engine  *Engine
	format  StreamFormat
	bytePos int
}

// NewStream creates a PCM stream of the given format.
func NewStream(e *Engine, format StreamFormat) *Stream {
	return &Stream{
		engine: e,
		format: format,
	}
}

// Format returns the stream encoding format.
func (s *Stream) Format() StreamFormat { return s.format }

// Read puts next PCM bytes into provided slice.
//
// Only whole frames are written: if len(b) is not a multiple of
// the frame size, n<len(b) will be returned.
func (s *Stream) Read(b []byte) (int, error) {
	// This function dominates the execution time of the audio goroutine.
	// It must not allocate.

	written := 0
	switch s.format {
	case FormatU8Mono:
		s.engine.ReadSamples(b)
		written = len(b)

	case FormatS16Stereo:
		n := len(b) &^ 0b11
		for i := 0; i < n; i += 4 {
			v := uint16(int16(int(s.engine.NextSample())-128) << 8)
			putPCM(b[i:], v, v)
		}
		written = n

	default:
		return 0, errors.New("unsupported stream format")
	}

	s.bytePos += written
	return written, nil
}

// Seek partially implements io.Seeker.
//
// The only supported operation is (0, SeekCurrent)
// which reports the number of bytes produced so far.
func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	if offset == 0 && whence == io.SeekCurrent {
		return int64(s.bytePos), nil
	}
	return 0, errors.New("unsupported Seek call")
}

func putPCM(b []byte, left, right uint16) {
	b[0] = byte(left)
	b[1] = byte(left >> 8)
	b[2] = byte(right)
	b[3] = byte(right >> 8)
}
