package chipsfx

// Waveform selects a tone generator for a note.
type Waveform uint8

const (
	WaveTriangle Waveform = iota
	WaveTiltedSaw
	WaveSaw
	WaveSquare
	WavePulse
	WaveOrgan
	WaveNoise
	WavePhaser

	// NumWaveforms is the number of valid waveform IDs.
	NumWaveforms = 8
)

var waveformNames = [NumWaveforms]string{
	"triangle",
	"tilted saw",
	"saw",
	"square",
	"pulse",
	"organ",
	"noise",
	"phaser",
}

func (w Waveform) String() string {
	if w < NumWaveforms {
		return waveformNames[w]
	}
	return "unknown"
}

// Sample computes a single unsigned 8-bit amplitude (128 is the center)
// of waveform w at the given phase.
//
// WaveNoise ignores the phase and advances the noise register instead.
// Unknown waveform IDs produce silence.
func (w Waveform) Sample(p Phase, noise *Noise) uint8 {
	switch w {
	case WaveTriangle:
		return triangle(p)
	case WaveTiltedSaw, WaveSaw:
		return saw(p)
	case WaveSquare:
		return square(p, 128)
	case WavePulse:
		return square(p, 64)
	case WaveOrgan:
		return uint8((uint16(square(p, 128)) + uint16(square(p.Mul(2), 128))) / 2)
	case WaveNoise:
		return noise.Next()
	case WavePhaser:
		return uint8((uint16(saw(p)) + uint16(saw(p.Add(8192)))) / 2)
	default:
		return 128
	}
}

func triangle(p Phase) uint8 {
	h := p.HighByte()
	if h < 128 {
		return h * 2
	}
	return 255 - (h-128)*2
}

func saw(p Phase) uint8 {
	return p.HighByte()
}

func square(p Phase, duty uint8) uint8 {
	if p.HighByte() < duty {
		return 255
	}
	return 0
}

// DefaultNoiseSeed is the initial noise register value.
const DefaultNoiseSeed = 0xACE1

// Noise is a 16-bit linear-feedback shift register.
//
// A single Noise value is shared by every channel that plays WaveNoise,
// so the noise sequence depends on the order of the calls, not on the channel.
type Noise struct {
	reg uint16
}

// NewNoise returns a noise register initialized with seed.
// A zero seed would lock the register at zero, DefaultNoiseSeed is used instead.
func NewNoise(seed uint16) Noise {
	if seed == 0 {
		seed = DefaultNoiseSeed
	}
	return Noise{reg: seed}
}

// Next shifts the register once and returns its low byte.
// The feedback taps are bits 0, 2, 3 and 5.
func (n *Noise) Next() uint8 {
	r := n.reg
	bit := (r ^ (r >> 2) ^ (r >> 3) ^ (r >> 5)) & 1
	r = (r >> 1) | (bit << 15)
	n.reg = r
	return uint8(r)
}

// Register returns the current register value.
func (n *Noise) Register() uint16 { return n.reg }
