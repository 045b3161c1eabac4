package sfxfile

import (
	"fmt"
	"strings"
)

// stageTracker remembers what the parser is doing right now.
// It's needed for better error reporting.
type stageTracker struct {
	// offset is our current position inside the data.
	offset int

	stage         string
	stageIndex    int
	subStage      string
	subStageIndex int
}

func (t *stageTracker) startStage(name string) {
	t.stage = name
	t.stageIndex = -1
	t.subStage = ""
	t.subStageIndex = -1
}

func (t *stageTracker) startSubStage(name string) {
	t.subStage = name
	t.subStageIndex = -1
}

func (t *stageTracker) formatStage() string {
	var b strings.Builder
	b.Grow(len(t.stage) + len(t.subStage) + 16)
	b.WriteString(t.stage)
	if t.stageIndex >= 0 {
		fmt.Fprintf(&b, "[%d]", t.stageIndex)
	}
	if t.subStage != "" {
		b.WriteByte('.')
		b.WriteString(t.subStage)
		if t.subStageIndex >= 0 {
			fmt.Fprintf(&b, "[%d]", t.subStageIndex)
		}
	}
	return b.String()
}

func (t *stageTracker) errorf(format string, args ...any) *ParseError {
	text := fmt.Sprintf(format, args...)
	tag := t.formatStage()
	if tag != "" {
		text = tag + ": " + text
	}
	return &ParseError{
		Message: text,
		Offset:  t.offset,
	}
}

// recoverParseError converts a *ParseError panic into a regular error.
// Any other panic is re-raised.
func recoverParseError(err *error) {
	rv := recover()
	if rv == nil {
		return
	}
	if parseErr, ok := rv.(*ParseError); ok {
		*err = parseErr
		return
	}
	panic(rv)
}

func (t *stageTracker) validateEffect(e *Effect) {
	if e.LoopStart > NotesPerEffect {
		panic(t.errorf("loop start is out of range: %d", e.LoopStart))
	}
	if e.LoopEnd > NotesPerEffect {
		panic(t.errorf("loop end is out of range: %d", e.LoopEnd))
	}
}
