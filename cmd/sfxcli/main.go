package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/quasilyte/chipsfx"
	"github.com/quasilyte/chipsfx/internal/sfxdb"
)

// This tool plays a single sound effect without any window.
//
// The oto player goroutine is the sample context, it pulls unsigned
// 8-bit mono samples (the same thing a PWM speaker line gets);
// the main goroutine is the frame context ticking at 60Hz.

func main() {
	filename := flag.String("bank", "", "path to a .p8 cart or a binary sfx bank (built-in bank if empty)")
	sfx := flag.Int("sfx", sfxdb.SfxLaser, "sound effect index to play")
	channel := flag.Int("channel", 0, "channel to play the effect on")
	volume := flag.Uint("volume", chipsfx.DefaultMasterVolume, "master volume level, 0-255")
	maxDuration := flag.Duration("duration", 5*time.Second, "stop the playback after this time (for looping effects)")
	list := flag.Bool("list", false, "print the bank contents and exit")
	flag.Parse()

	bank, err := sfxdb.Load(*filename)
	if err != nil {
		log.Fatalf("load bank: %v", err)
	}

	if *list {
		printBank(os.Stdout, bank)
		return
	}

	effects := chipsfx.EffectsFromBank(bank)
	if *sfx < 0 || *sfx >= len(effects) {
		log.Fatalf("sfx index %d is out of range [0, %d)", *sfx, len(effects))
	}
	if *channel < 0 || *channel >= chipsfx.NumChannels {
		log.Fatalf("channel %d is out of range [0, %d)", *channel, chipsfx.NumChannels)
	}

	engine := chipsfx.NewEngine(chipsfx.EngineConfig{
		Effects: effects,
	})
	engine.SetMasterVolume(uint8(min(*volume, 255)))

	otoContext, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   chipsfx.SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatUnsignedInt8,
		BufferSize:   20 * time.Millisecond,
	})
	if err != nil {
		log.Fatalf("create oto context: %v", err)
	}
	<-ready

	player := otoContext.NewPlayer(chipsfx.NewStream(engine, chipsfx.FormatU8Mono))
	defer player.Close()
	player.Play()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	ctx, cancelTimeout := context.WithTimeout(ctx, *maxDuration)
	defer cancelTimeout()

	log.Printf("playing sfx %d on channel %d (loops: %v)", *sfx, *channel, effects[*sfx].Loops())
	play(ctx, engine, *sfx, *channel)

	// Let the player drain its buffer.
	time.Sleep(100 * time.Millisecond)
}

func play(ctx context.Context, engine *chipsfx.Engine, sfx, channel int) {
	ticker := time.NewTicker(time.Second / chipsfx.FrameRate)
	defer ticker.Stop()

	engine.Trigger(sfx, channel)
	frames := 0
	for !engine.IsIdle() {
		select {
		case <-ctx.Done():
			engine.StopAll()
			log.Printf("stopped after %d frames: %v", frames, ctx.Err())
			return
		case <-ticker.C:
			engine.Tick()
			frames++
		}
	}
	log.Printf("finished after %d frames", frames)
}
