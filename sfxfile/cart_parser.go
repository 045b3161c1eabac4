package sfxfile

import (
	"bytes"
)

const (
	cartSfxSection = "__sfx__"

	// 4 header bytes and 32 notes of 5 digits.
	cartLineLength = 4*2 + NotesPerEffect*5
)

type cartParser struct {
	stageTracker

	data []byte

	// line holds the contents of the current sfx line.
	// lineOffset is its position inside data.
	line       []byte
	lineOffset int
	column     int

	bank Bank
}

func (p *cartParser) Parse() (err error) {
	defer recoverParseError(&err)

	p.parseCart()

	return err // See the deferred call above
}

func (p *cartParser) nextLine() ([]byte, bool) {
	if p.offset >= len(p.data) {
		return nil, false
	}
	rest := p.data[p.offset:]
	p.lineOffset = p.offset
	end := bytes.IndexByte(rest, '\n')
	if end == -1 {
		p.offset = len(p.data)
		return bytes.TrimRight(rest, "\r"), true
	}
	p.offset += end + 1
	return bytes.TrimRight(rest[:end], "\r"), true
}

func isSectionMarker(line []byte) bool {
	return len(line) > 4 && bytes.HasPrefix(line, []byte("__")) && bytes.HasSuffix(line, []byte("__"))
}

func (p *cartParser) parseCart() {
	p.startStage("cart")
	found := false
	for {
		line, ok := p.nextLine()
		if !ok {
			break
		}
		if string(bytes.TrimSpace(line)) == cartSfxSection {
			found = true
			break
		}
	}
	if !found {
		panic(p.errorf("%s section not found", cartSfxSection))
	}

	p.startStage("sfx")
	for {
		line, ok := p.nextLine()
		if !ok {
			break
		}
		trimmed := bytes.TrimLeft(line, " \t")
		p.lineOffset += len(line) - len(trimmed)
		line = bytes.TrimRight(trimmed, " \t")
		if isSectionMarker(line) {
			break
		}
		if len(line) == 0 {
			continue
		}
		p.stageIndex = len(p.bank.Effects)
		if len(p.bank.Effects) == MaxEffects {
			p.offset = p.lineOffset
			panic(p.errorf("too many effects (max is %d)", MaxEffects))
		}
		p.bank.Effects = append(p.bank.Effects, p.parseEffectLine(line))
	}
}

func (p *cartParser) parseEffectLine(line []byte) Effect {
	p.line = line
	p.column = 0
	next := p.offset
	p.offset = p.lineOffset
	defer func() {
		p.offset = next
	}()

	if len(line) != cartLineLength {
		panic(p.errorf("expected %d hex digits, found %d", cartLineLength, len(line)))
	}

	var e Effect
	p.startSubStage("header")
	e.EditorMode = p.readHex(2, "editor mode")
	e.Speed = p.readHex(2, "speed")
	e.LoopStart = p.readHex(2, "loop start")
	e.LoopEnd = p.readHex(2, "loop end")

	p.startSubStage("note")
	for i := range e.Notes {
		p.subStageIndex = i
		n := &e.Notes[i]
		n.Pitch = p.readHex(2, "pitch")
		n.Waveform = p.readHex(1, "waveform")
		if n.Waveform > 7 {
			panic(p.errorf("custom instruments are not supported"))
		}
		n.Volume = p.readHex(1, "volume")
		if n.Volume > 7 {
			panic(p.errorf("volume is out of range: %d", n.Volume))
		}
		n.Effect = p.readHex(1, "effect")
		if n.Effect > 7 {
			panic(p.errorf("effect is out of range: %d", n.Effect))
		}
	}

	p.subStage = ""
	p.validateEffect(&e)
	return e
}

func (p *cartParser) readHex(numDigits int, what string) uint8 {
	v := uint8(0)
	for i := 0; i < numDigits; i++ {
		d, ok := hexDigit(p.line[p.column])
		if !ok {
			panic(p.errorf("%s: invalid hex digit %q", what, p.line[p.column]))
		}
		v = v<<4 | d
		p.column++
		p.offset++
	}
	return v
}

func hexDigit(ch byte) (uint8, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return ch - '0', true
	case ch >= 'a' && ch <= 'f':
		return ch - 'a' + 10, true
	case ch >= 'A' && ch <= 'F':
		return ch - 'A' + 10, true
	default:
		return 0, false
	}
}
