package sound

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(44100)

func TestSplashLength(t *testing.T) {
	pcm := Encode(Splash(testRate, 700, 0.16, 0.26))
	want := testRate.N(260_000_000) * 4 // stereo int16
	if len(pcm) != want {
		t.Fatalf("pcm bytes = %d, want %d", len(pcm), want)
	}
}

func TestSplashDecays(t *testing.T) {
	pcm := Encode(Splash(testRate, 380, 0.44, 0.6))
	frames := len(pcm) / 4

	peak := func(from, to int) float64 {
		m := 0.0
		for i := from; i < to; i++ {
			v := int16(binary.LittleEndian.Uint16(pcm[i*4:]))
			m = math.Max(m, math.Abs(float64(v)/math.MaxInt16))
		}
		return m
	}

	head := peak(0, frames/10)
	tail := peak(frames-frames/10, frames)
	if head > 0.45 {
		t.Fatalf("peak %v exceeds the requested volume", head)
	}
	if head < 0.2 {
		t.Fatalf("start of the splash too quiet: %v", head)
	}
	if tail >= head/10 {
		t.Fatalf("splash did not decay: head %v tail %v", head, tail)
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	pcm := Encode(Splash(testRate, 700, 0, 0.05))
	for i := 0; i+1 < len(pcm); i += 2 {
		if pcm[i] != 0 || pcm[i+1] != 0 {
			t.Fatal("expected silence at zero volume")
		}
	}
}

func TestTriangleRange(t *testing.T) {
	osc := &triangle{freq: 440, rate: testRate}
	buf := make([][2]float64, 1000)
	n, ok := osc.Stream(buf)
	if !ok || n != len(buf) {
		t.Fatalf("stream = %d, %v", n, ok)
	}
	for i := 0; i < n; i++ {
		if buf[i][0] < -1 || buf[i][0] > 1 || buf[i][0] != buf[i][1] {
			t.Fatalf("sample %d = %v", i, buf[i])
		}
	}
}

func TestNilPlayerIgnoresRequests(t *testing.T) {
	var p *Player
	p.Play(nil)
	p.Preload()
}
