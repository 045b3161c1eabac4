package sfxfile

import (
	"encoding/binary"
)

type parser struct {
	stageTracker

	// data holds the bank input data bytes.
	data []byte

	// bank holds the results of parsing.
	bank Bank
}

func (p *parser) Parse() (err error) {
	defer recoverParseError(&err)

	p.parseBank()

	return err // See the deferred call above
}

func (p *parser) dataBytesRemaining() int {
	return len(p.data) - p.offset
}

func (p *parser) readWord(what string) uint16 {
	if p.dataBytesRemaining() < 2 {
		panic(p.errorf("unexpected EOF while reading %s", what))
	}
	v := binary.LittleEndian.Uint16(p.data[p.offset:])
	p.offset += 2
	return v
}

func (p *parser) readByte(what string) uint8 {
	if p.dataBytesRemaining() < 1 {
		panic(p.errorf("unexpected EOF while reading %s", what))
	}
	b := p.data[p.offset]
	p.offset++
	return b
}

func (p *parser) parseBank() {
	p.startStage("bank")
	if len(p.data) == 0 {
		panic(p.errorf("no effects found"))
	}
	numEffects := (len(p.data) + EffectSize - 1) / EffectSize
	if numEffects > MaxEffects {
		panic(p.errorf("too many effects: %d (max is %d)", numEffects, MaxEffects))
	}

	p.bank.Effects = make([]Effect, numEffects)
	p.startStage("sfx")
	for i := range p.bank.Effects {
		p.stageIndex = i
		p.parseEffect(&p.bank.Effects[i])
	}
}

func (p *parser) parseEffect(e *Effect) {
	p.startSubStage("note")
	for i := range e.Notes {
		p.subStageIndex = i
		e.Notes[i] = p.parseNote()
	}

	p.startSubStage("header")
	e.EditorMode = p.readByte("editor mode")
	e.Speed = p.readByte("speed")
	e.LoopStart = p.readByte("loop start")
	e.LoopEnd = p.readByte("loop end")

	p.validateEffect(e)
}

func (p *parser) parseNote() Note {
	v := p.readWord("note word")
	if v&(1<<15) != 0 {
		panic(p.errorf("custom instruments are not supported"))
	}
	return Note{
		Pitch:    uint8(v & 0b111111),
		Waveform: uint8((v >> 6) & 0b111),
		Volume:   uint8((v >> 9) & 0b111),
		Effect:   uint8((v >> 12) & 0b111),
	}
}
