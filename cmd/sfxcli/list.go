package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/quasilyte/chipsfx"
	"github.com/quasilyte/chipsfx/sfxfile"
)

type listStyles struct {
	index lipgloss.Style
	info  lipgloss.Style
	tone  lipgloss.Style
	rest  lipgloss.Style
	empty lipgloss.Style
}

func newListStyles() listStyles {
	return listStyles{
		index: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)),
		info:  lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(6)),
		tone:  lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(2)),
		rest:  lipgloss.NewStyle().Faint(true),
		empty: lipgloss.NewStyle().Faint(true).Italic(true),
	}
}

// notesPerRow is the number of notes printed on a single listing line.
const notesPerRow = 8

func printBank(w io.Writer, bank *sfxfile.Bank) {
	styles := newListStyles()
	for i := range bank.Effects {
		e := &bank.Effects[i]
		header := styles.index.Render(fmt.Sprintf("sfx %2d", i))
		if e.IsEmpty() {
			fmt.Fprintf(w, "%s %s\n", header, styles.empty.Render("empty"))
			continue
		}
		loop := "no loop"
		if e.LoopEnd > e.LoopStart {
			loop = fmt.Sprintf("loop %d-%d", e.LoopStart, e.LoopEnd)
		}
		fmt.Fprintf(w, "%s %s\n", header,
			styles.info.Render(fmt.Sprintf("speed %d, %s", e.Speed, loop)))

		var b strings.Builder
		for j, n := range e.Notes {
			if j%notesPerRow == 0 {
				b.WriteString("    ")
			}
			b.WriteString(formatNote(styles, n))
			if j%notesPerRow == notesPerRow-1 {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		io.WriteString(w, b.String())
	}
}

func formatNote(styles listStyles, n sfxfile.Note) string {
	if n.Volume == 0 || n.Pitch >= chipsfx.NumPitches {
		return styles.rest.Render("....... ")
	}
	hz, _ := chipsfx.PitchFrequency(n.Pitch)
	label := fmt.Sprintf("%4dHz%d%d", hz, n.Waveform, n.Volume)
	return styles.tone.Render(label)
}
