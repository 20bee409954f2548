package ui

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Faces are the text faces shared by the start dialog and the end screen.
type Faces struct {
	Title  text.Face
	Normal text.Face
	Small  text.Face
}

func loadFaces() (Faces, error) {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return Faces{}, fmt.Errorf("failed to load UI font: %w", err)
	}

	return Faces{
		Title:  &text.GoTextFace{Source: fontSource, Size: 32},
		Normal: &text.GoTextFace{Source: fontSource, Size: 16},
		Small:  &text.GoTextFace{Source: fontSource, Size: 12},
	}, nil
}

// LoadingText is the start dialog status while images load.
func LoadingText(percent int) string {
	if percent >= 100 {
		return "Assets ready"
	}
	if percent < 0 {
		percent = 0
	}
	return fmt.Sprintf("Loading assets... %d%%", percent)
}

// ScoreText and PlantsText are the end screen summary lines.
func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

func PlantsText(survived, total int) string {
	if total == 1 {
		return fmt.Sprintf("%d of %d plant survived", survived, total)
	}
	return fmt.Sprintf("%d of %d plants survived", survived, total)
}
