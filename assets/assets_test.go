package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/automoto/sunsprout/config"
	"github.com/hajimehoshi/ebiten/v2"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// withoutGPU keeps the loader from creating real textures.
func withoutGPU(t *testing.T) {
	t.Helper()
	orig := newTexture
	newTexture = func(image.Image) *ebiten.Image { return nil }
	t.Cleanup(func() { newTexture = orig })
}

func TestLoadImagesMarksMissingFilesUnavailable(t *testing.T) {
	withoutGPU(t)
	fsys := fstest.MapFS{
		config.Assets.Images[config.ImagePlayerBack]: {Data: pngBytes(t, 120, 140)},
		config.Assets.Images[config.ImageSun]:        {Data: pngBytes(t, 64, 64)},
		config.Assets.Images[config.ImagePlantDead]:  {Data: []byte("not an image")},
	}

	var calls []int
	set := LoadImages(fsys, func(loaded, total int) {
		if total != len(config.Assets.Images) {
			t.Fatalf("total = %d, want %d", total, len(config.Assets.Images))
		}
		calls = append(calls, loaded)
	})

	if len(calls) != len(config.Assets.Images) || calls[len(calls)-1] != len(config.Assets.Images) {
		t.Fatalf("progress calls = %v", calls)
	}
	for i := 1; i < len(calls); i++ {
		if calls[i] != calls[i-1]+1 {
			t.Fatalf("progress not monotonic: %v", calls)
		}
	}

	if w, h, ok := set.Size(config.ImagePlayerBack); !ok || w != 120 || h != 140 {
		t.Fatalf("player back = %v x %v ok=%v", w, h, ok)
	}
	if _, _, ok := set.Size(config.ImageSun); !ok {
		t.Fatal("sun should be available")
	}
	for _, id := range []config.ImageID{config.ImagePlantDead, config.ImagePlayerFront, config.ImageBackground} {
		if _, _, ok := set.Size(id); ok {
			t.Fatalf("image %d should be unavailable", id)
		}
	}
	if set.Available() != 2 {
		t.Fatalf("available = %d, want 2", set.Available())
	}
}

func TestImageLoaderSteps(t *testing.T) {
	withoutGPU(t)
	l := NewImageLoader(fstest.MapFS{})
	if l.Percent() != 0 || l.Done() {
		t.Fatal("fresh loader should be at 0%")
	}
	steps := 0
	for l.LoadNext() {
		steps++
	}
	if !l.Done() || l.Percent() != 100 {
		t.Fatalf("loader not finished: %d%%", l.Percent())
	}
	if steps != len(config.Assets.Images)-1 {
		t.Fatalf("steps = %d", steps)
	}
	if l.LoadNext() {
		t.Fatal("LoadNext after done should report false")
	}
	if l.Images().Available() != 0 {
		t.Fatal("empty fs should load nothing")
	}
}

func TestNilImageSetIsEmpty(t *testing.T) {
	var set *ImageSet
	if _, _, ok := set.Size(config.ImageSun); ok {
		t.Fatal("nil set reported an image")
	}
	if set.Image(config.ImageSun) != nil {
		t.Fatal("nil set returned a texture")
	}
}
