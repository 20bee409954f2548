package sound

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// decayFloor is the gain a splash decays to by the end of its duration.
const decayFloor = 0.001

// triangle is an endless triangle-wave oscillator.
type triangle struct {
	freq  float64
	phase float64
	rate  beep.SampleRate
}

func (t *triangle) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		val := 4*math.Abs(t.phase-0.5) - 1
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
	}
	return len(samples), true
}

func (t *triangle) Err() error { return nil }

// decay ramps gain exponentially from 1 to end over total samples.
type decay struct {
	streamer beep.Streamer
	position int
	total    int
	end      float64
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := d.end
		if d.position < d.total {
			gain = math.Pow(d.end, float64(d.position)/float64(d.total))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume scales a stream linearly. math.Log2(0) is -Inf, so zero volume is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Splash synthesizes a plucky water splash: a triangle tone whose gain falls from vol to
// decayFloor over the duration.
func Splash(rate beep.SampleRate, freq, vol, seconds float64) beep.Streamer {
	n := rate.N(time.Duration(seconds * float64(time.Second)))
	end := decayFloor
	if vol > decayFloor {
		end = decayFloor / vol
	}
	osc := &triangle{freq: freq, rate: rate}
	shaped := &decay{streamer: osc, total: n, end: end}
	return beep.Take(n, newVolume(shaped, vol))
}

// Encode renders a finite stream to signed 16-bit little-endian stereo PCM.
func Encode(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for c := 0; c < 2; c++ {
				v := math.Max(-1, math.Min(1, buf[i][c]))
				out = binary.LittleEndian.AppendUint16(out, uint16(int16(v*math.MaxInt16)))
			}
		}
		if !ok || n == 0 {
			return out
		}
	}
}
