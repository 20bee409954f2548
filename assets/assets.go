package assets

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log"
	"sort"

	"github.com/automoto/sunsprout/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// newTexture uploads a decoded image. Replaced in tests that run without a GPU.
var newTexture = ebiten.NewImageFromImage

// ImageSet holds the images that loaded. Missing ids are unavailable and draw as fallbacks.
type ImageSet struct {
	images map[config.ImageID]*ebiten.Image
	sizes  map[config.ImageID]image.Point
}

func newImageSet() *ImageSet {
	return &ImageSet{
		images: make(map[config.ImageID]*ebiten.Image),
		sizes:  make(map[config.ImageID]image.Point),
	}
}

// Image returns the texture for id, or nil if it is unavailable.
func (s *ImageSet) Image(id config.ImageID) *ebiten.Image {
	if s == nil {
		return nil
	}
	return s.images[id]
}

// Size reports the natural size of id and whether it is available.
func (s *ImageSet) Size(id config.ImageID) (float64, float64, bool) {
	if s == nil {
		return 0, 0, false
	}
	p, ok := s.sizes[id]
	if !ok {
		return 0, 0, false
	}
	return float64(p.X), float64(p.Y), true
}

// Available counts the images that loaded.
func (s *ImageSet) Available() int {
	if s == nil {
		return 0
	}
	return len(s.sizes)
}

// ImageLoader loads the configured images one at a time so a caller can report progress
// between files.
type ImageLoader struct {
	fsys fs.FS
	ids  []config.ImageID
	next int
	set  *ImageSet
}

func NewImageLoader(fsys fs.FS) *ImageLoader {
	ids := make([]config.ImageID, 0, len(config.Assets.Images))
	for id := range config.Assets.Images {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return &ImageLoader{
		fsys: fsys,
		ids:  ids,
		set:  newImageSet(),
	}
}

// LoadNext loads the next image and reports whether any remain. A file that fails to load
// is logged and left unavailable.
func (l *ImageLoader) LoadNext() bool {
	if l.Done() {
		return false
	}
	id := l.ids[l.next]
	l.next++

	name := config.Assets.Images[id]
	img, err := decodeImage(l.fsys, name)
	if err != nil {
		log.Printf("Warning: image %s unavailable: %v", name, err)
		return !l.Done()
	}

	l.set.sizes[id] = img.Bounds().Size()
	if tex := newTexture(img); tex != nil {
		l.set.images[id] = tex
	}
	return !l.Done()
}

// Progress returns how many images have been attempted out of the total.
func (l *ImageLoader) Progress() (loaded, total int) {
	return l.next, len(l.ids)
}

// Percent is the loading progress rounded down to a whole percentage.
func (l *ImageLoader) Percent() int {
	if len(l.ids) == 0 {
		return 100
	}
	return l.next * 100 / len(l.ids)
}

func (l *ImageLoader) Done() bool {
	return l.next >= len(l.ids)
}

func (l *ImageLoader) Images() *ImageSet {
	return l.set
}

// LoadImages loads every configured image, calling progress after each file.
func LoadImages(fsys fs.FS, progress func(loaded, total int)) *ImageSet {
	l := NewImageLoader(fsys)
	for !l.Done() {
		l.LoadNext()
		if progress != nil {
			progress(l.Progress())
		}
	}
	return l.Images()
}

func decodeImage(fsys fs.FS, name string) (image.Image, error) {
	if fsys == nil {
		return nil, fmt.Errorf("no image source for %s", name)
	}
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", name, err)
	}
	return img, nil
}
