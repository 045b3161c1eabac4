package sfxfile_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/quasilyte/chipsfx/sfxfile"
)

func encodeNote(pitch, waveform, volume, effect uint16) uint16 {
	return pitch | (waveform << 6) | (volume << 9) | (effect << 12)
}

func makeRecord(notes []uint16, header [4]byte) []byte {
	record := make([]byte, sfxfile.EffectSize)
	for i, n := range notes {
		binary.LittleEndian.PutUint16(record[i*2:], n)
	}
	copy(record[sfxfile.NotesPerEffect*2:], header[:])
	return record
}

func TestParse(t *testing.T) {
	var data []byte
	data = append(data, makeRecord([]uint16{
		encodeNote(50, 2, 3, 1),
		encodeNote(63, 7, 7, 7),
		encodeNote(0, 0, 0, 0),
		encodeNote(12, 6, 5, 0),
	}, [4]byte{1, 5, 2, 9})...)
	data = append(data, makeRecord(nil, [4]byte{0, 16, 0, 0})...)

	bank, err := sfxfile.Parse(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if len(bank.Effects) != 2 {
		t.Fatalf("got %d effects, want 2", len(bank.Effects))
	}

	e := &bank.Effects[0]
	if e.EditorMode != 1 || e.Speed != 5 || e.LoopStart != 2 || e.LoopEnd != 9 {
		t.Errorf("header: got mode=%d speed=%d loop=%d-%d", e.EditorMode, e.Speed, e.LoopStart, e.LoopEnd)
	}
	wantNotes := []sfxfile.Note{
		{Pitch: 50, Waveform: 2, Volume: 3, Effect: 1},
		{Pitch: 63, Waveform: 7, Volume: 7, Effect: 7},
		{},
		{Pitch: 12, Waveform: 6, Volume: 5},
	}
	for i, want := range wantNotes {
		if e.Notes[i] != want {
			t.Errorf("note %d: got %+v, want %+v", i, e.Notes[i], want)
		}
	}
	if e.IsEmpty() {
		t.Errorf("effect 0 should not be empty")
	}
	if !bank.Effects[1].IsEmpty() || bank.Effects[1].Speed != 16 {
		t.Errorf("effect 1: got %+v", bank.Effects[1])
	}
}

func TestParseErrors(t *testing.T) {
	full := makeRecord(nil, [4]byte{0, 1, 0, 0})

	custom := makeRecord([]uint16{0, 0, 0, 1 << 15}, [4]byte{0, 1, 0, 0})

	badLoop := makeRecord(nil, [4]byte{0, 1, 0, 33})

	tests := []struct {
		name    string
		data    []byte
		message string
		offset  int
	}{
		{
			name:    "empty",
			data:    nil,
			message: "bank: no effects found",
			offset:  0,
		},
		{
			name:    "truncated",
			data:    append(append([]byte{}, full...), 1, 0),
			message: "sfx[1].note[1]: unexpected EOF while reading note word",
			offset:  sfxfile.EffectSize + 2,
		},
		{
			name:    "truncated header",
			data:    full[:sfxfile.EffectSize-2],
			message: "sfx[0].header: unexpected EOF while reading loop start",
			offset:  sfxfile.EffectSize - 2,
		},
		{
			name:    "custom instrument",
			data:    custom,
			message: "sfx[0].note[3]: custom instruments are not supported",
			offset:  8,
		},
		{
			name:    "loop end",
			data:    badLoop,
			message: "sfx[0].header: loop end is out of range: 33",
			offset:  sfxfile.EffectSize,
		},
		{
			name:    "too many effects",
			data:    make([]byte, sfxfile.EffectSize*(sfxfile.MaxEffects+1)),
			message: "bank: too many effects: 65 (max is 64)",
			offset:  0,
		},
	}

	for _, test := range tests {
		_, err := sfxfile.ParseFromBytes(test.data)
		var parseErr *sfxfile.ParseError
		if !errors.As(err, &parseErr) {
			t.Errorf("%s: expected a *ParseError, got %v", test.name, err)
			continue
		}
		if parseErr.Message != test.message || parseErr.Offset != test.offset {
			t.Errorf("%s:\nhave: %q (offset=%d)\nwant: %q (offset=%d)",
				test.name, parseErr.Message, parseErr.Offset, test.message, test.offset)
		}
	}
}

func TestParseErrorString(t *testing.T) {
	err := &sfxfile.ParseError{Message: "bank: no effects found", Offset: 12}
	if have := err.Error(); have != "bank: no effects found (offset=12)" {
		t.Fatalf("unexpected error text: %q", have)
	}
}

func TestEffectIsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		notes []sfxfile.Note
		want  bool
	}{
		{"zero", nil, true},
		{"rests", []sfxfile.Note{{Pitch: 30, Waveform: 1}, {Pitch: 12}}, true},
		{"dead notes", []sfxfile.Note{{Pitch: 64, Volume: 4}, {Pitch: 118, Volume: 7}}, true},
		{"tone", []sfxfile.Note{{Pitch: 68, Volume: 4}, {Pitch: 63, Volume: 1}}, false},
	}
	for _, test := range tests {
		var e sfxfile.Effect
		copy(e.Notes[:], test.notes)
		if have := e.IsEmpty(); have != test.want {
			t.Errorf("%s: got %v, want %v", test.name, have, test.want)
		}
	}
}
