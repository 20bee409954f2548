package render

import (
	"image/color"

	cfg "github.com/automoto/sunsprout/config"
	"github.com/automoto/sunsprout/fonts"
)

// OpKind selects the primitive an Op draws.
type OpKind int

const (
	OpFillRect OpKind = iota
	OpStrokeRect
	OpFillRoundRect
	OpFillEllipse
	OpFillCircle
	OpRadialGradient
	OpLinearGradient
	OpStrokeArc
	OpImage
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpFillRect:
		return "FillRect"
	case OpStrokeRect:
		return "StrokeRect"
	case OpFillRoundRect:
		return "FillRoundRect"
	case OpFillEllipse:
		return "FillEllipse"
	case OpFillCircle:
		return "FillCircle"
	case OpRadialGradient:
		return "RadialGradient"
	case OpLinearGradient:
		return "LinearGradient"
	case OpStrokeArc:
		return "StrokeArc"
	case OpImage:
		return "Image"
	case OpText:
		return "Text"
	}
	return "Unknown"
}

// Align is the horizontal anchor of a text op.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// GradientStop is one colour stop, Offset in [0, 1].
type GradientStop struct {
	Offset float64
	Color  color.NRGBA
}

// Op is a single draw call. Rect, gradient and image ops anchor X,Y at the top-left
// corner. Circle, ellipse, arc and radial ops anchor it at the centre, and ellipses
// carry their radii in W,H. Text ops anchor it at the baseline.
type Op struct {
	Kind OpKind
	X, Y float64
	W, H float64
	R    float64 // corner radius, or circle/arc radius

	// Radial gradients: colour runs from Stops[0] at GradInner to the last stop at GradOuter
	GradInner float64
	GradOuter float64

	Start, Sweep float64 // arc angles in radians
	Width        float64 // stroke width

	Color color.NRGBA
	Stops []GradientStop

	Image cfg.ImageID
	Text  string
	Font  fonts.FontName
	Align Align
}

// ImageSet answers whether an image is available and its natural size.
type ImageSet interface {
	Size(id cfg.ImageID) (w, h float64, ok bool)
}

// NoImages is an ImageSet where everything is unavailable.
type NoImages struct{}

func (NoImages) Size(cfg.ImageID) (float64, float64, bool) { return 0, 0, false }

// straight reinterprets a config colour as non-premultiplied; the palette is written
// with straight alpha.
func straight(c color.RGBA) color.NRGBA {
	return color.NRGBA(c)
}

func withAlpha(c color.RGBA, a float64) color.NRGBA {
	n := straight(c)
	n.A = uint8(a*255 + 0.5)
	return n
}

func fillRect(x, y, w, h float64, c color.NRGBA) Op {
	return Op{Kind: OpFillRect, X: x, Y: y, W: w, H: h, Color: c}
}

func strokeRect(x, y, w, h, width float64, c color.NRGBA) Op {
	return Op{Kind: OpStrokeRect, X: x, Y: y, W: w, H: h, Width: width, Color: c}
}

func fillRoundRect(x, y, w, h, r float64, c color.NRGBA) Op {
	return Op{Kind: OpFillRoundRect, X: x, Y: y, W: w, H: h, R: r, Color: c}
}

func fillEllipse(cx, cy, rx, ry float64, c color.NRGBA) Op {
	return Op{Kind: OpFillEllipse, X: cx, Y: cy, W: rx, H: ry, Color: c}
}

func fillCircle(cx, cy, r float64, c color.NRGBA) Op {
	return Op{Kind: OpFillCircle, X: cx, Y: cy, R: r, Color: c}
}

func radialGradient(cx, cy, r, inner, outer float64, stops ...GradientStop) Op {
	return Op{Kind: OpRadialGradient, X: cx, Y: cy, R: r, GradInner: inner, GradOuter: outer, Stops: stops}
}

// linearGradient runs top to bottom over the rect.
func linearGradient(x, y, w, h float64, stops ...GradientStop) Op {
	return Op{Kind: OpLinearGradient, X: x, Y: y, W: w, H: h, Stops: stops}
}

func strokeArc(cx, cy, r, start, sweep, width float64, c color.NRGBA) Op {
	return Op{Kind: OpStrokeArc, X: cx, Y: cy, R: r, Start: start, Sweep: sweep, Width: width, Color: c}
}

func drawImage(id cfg.ImageID, x, y, w, h float64) Op {
	return Op{Kind: OpImage, Image: id, X: x, Y: y, W: w, H: h}
}

func drawText(s string, x, y float64, face fonts.FontName, align Align, c color.NRGBA) Op {
	return Op{Kind: OpText, Text: s, X: x, Y: y, Font: face, Align: align, Color: c}
}
