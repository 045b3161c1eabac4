package chipsfx

import (
	"github.com/quasilyte/chipsfx/sfxfile"
)

// EffectsFromBank converts a decoded bank into the engine sound effect table.
//
// The conversion is lossless: pitch, volume and effect values are
// copied verbatim, the engine decides how to play them.
func EffectsFromBank(b *sfxfile.Bank) []SoundEffect {
	effects := make([]SoundEffect, len(b.Effects))
	for i := range b.Effects {
		src := &b.Effects[i]
		dst := &effects[i]
		dst.Speed = src.Speed
		dst.LoopStart = src.LoopStart
		dst.LoopEnd = src.LoopEnd
		for j, n := range src.Notes {
			dst.Notes[j] = Note{
				Pitch:    n.Pitch,
				Waveform: Waveform(n.Waveform),
				Volume:   n.Volume,
				Effect:   n.Effect,
			}
		}
	}
	return effects
}
