package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/chipsfx"
	"github.com/quasilyte/chipsfx/internal/sfxdb"
)

// This simple tool plays sound effects using Ebitengine audio player.
//
// Digit keys trigger the effects, the game loop ticks the engine
// at 60 TPS and the audio player pulls the samples on its own goroutine.

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7,
	ebiten.KeyDigit8, ebiten.KeyDigit9,
}

func main() {
	filename := flag.String("bank", "", "path to a .p8 cart or a binary sfx bank (built-in bank if empty)")
	volume := flag.Uint("volume", chipsfx.DefaultMasterVolume, "master volume level, 0-255")
	flag.Parse()

	bank, err := sfxdb.Load(*filename)
	if err != nil {
		log.Fatalf("load bank: %v", err)
	}

	engine := chipsfx.NewEngine(chipsfx.EngineConfig{
		Effects: chipsfx.EffectsFromBank(bank),
	})
	engine.SetMasterVolume(uint8(min(*volume, 255)))

	// Create a sound player using the Ebitengine audio context.
	// There can be only one audio context, see Ebitengine docs to learn more.
	audioContext := audio.NewContext(chipsfx.SampleRate)
	player, err := audioContext.NewPlayer(chipsfx.NewStream(engine, chipsfx.FormatS16Stereo))
	if err != nil {
		log.Fatalf("create audio player: %v", err)
	}
	player.SetBufferSize(50 * time.Millisecond)
	player.Play()

	g := &game{
		engine:   engine,
		player:   player,
		filename: *filename,
	}
	if g.filename == "" {
		g.filename = "built-in bank"
	}

	ebiten.SetTPS(chipsfx.FrameRate)
	ebiten.SetWindowTitle("sfxplay")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

type game struct {
	engine *chipsfx.Engine
	player *audio.Player

	// channel is the next channel to trigger the effect on.
	channel int

	filename string
}

func (g *game) Update() error {
	for i, k := range digitKeys {
		if i >= g.engine.NumEffects() {
			break
		}
		if inpututil.IsKeyJustPressed(k) {
			g.engine.Trigger(i, g.channel)
			g.channel = (g.channel + 1) % chipsfx.NumChannels
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.engine.StopAll()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.engine.SetMasterVolume(uint8(min(int(g.engine.MasterVolume())+15, 255)))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.engine.SetMasterVolume(uint8(max(int(g.engine.MasterVolume())-15, 0)))
	}

	g.engine.Tick()

	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	var b strings.Builder
	fmt.Fprintf(&b, "Playing %s (%d effects)\n", g.filename, g.engine.NumEffects())
	fmt.Fprintf(&b, "0-9: trigger, SPACE: stop all, UP/DOWN: volume %d\n\n", g.engine.MasterVolume())
	for ch := 0; ch < chipsfx.NumChannels; ch++ {
		sfx, note := g.engine.Playing(ch)
		if sfx == -1 {
			fmt.Fprintf(&b, "ch%d: idle\n", ch)
			continue
		}
		fmt.Fprintf(&b, "ch%d: sfx %d note %2d\n", ch, sfx, note)
	}
	ebitenutil.DebugPrint(screen, b.String())
}

func (g *game) Layout(_, _ int) (int, int) {
	return 320, 240
}
