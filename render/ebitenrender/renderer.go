package ebitenrender

import (
	"image"
	"image/color"
	"math"

	cfg "github.com/automoto/sunsprout/config"
	"github.com/automoto/sunsprout/fonts"
	"github.com/automoto/sunsprout/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	ellipseSegments = 40
	radialSegments  = 48
	radialRings     = 12
)

// Images resolves image ids to loaded textures.
type Images interface {
	render.ImageSet
	Image(id cfg.ImageID) *ebiten.Image
}

// Renderer executes render ops on an ebiten image.
type Renderer struct {
	white *ebiten.Image

	// Scratch buffers reused between paths
	vs []ebiten.Vertex
	is []uint16
}

func NewRenderer() *Renderer {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &Renderer{
		white: img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Draw executes ops in order. Image ops whose texture is missing are skipped; the op
// builder has already substituted fallbacks for unavailable images.
func (r *Renderer) Draw(dst *ebiten.Image, ops []render.Op, images Images) {
	for i := range ops {
		r.drawOp(dst, &ops[i], images)
	}
}

func (r *Renderer) drawOp(dst *ebiten.Image, op *render.Op, images Images) {
	x, y := float32(op.X), float32(op.Y)

	switch op.Kind {
	case render.OpFillRect:
		vector.FillRect(dst, x, y, float32(op.W), float32(op.H), op.Color, false)

	case render.OpStrokeRect:
		vector.StrokeRect(dst, x, y, float32(op.W), float32(op.H), float32(op.Width), op.Color, false)

	case render.OpFillRoundRect:
		r.fillPath(dst, roundRectPath(op.X, op.Y, op.W, op.H, op.R), op.Color)

	case render.OpFillEllipse:
		r.fillPath(dst, ellipsePath(op.X, op.Y, op.W, op.H), op.Color)

	case render.OpFillCircle:
		vector.DrawFilledCircle(dst, x, y, float32(op.R), op.Color, true)

	case render.OpRadialGradient:
		r.fillRadial(dst, op)

	case render.OpLinearGradient:
		r.fillLinear(dst, op)

	case render.OpStrokeArc:
		if op.Sweep <= 0 {
			return
		}
		var path vector.Path
		start := float32(op.Start)
		path.Arc(x, y, float32(op.R), start, start+float32(op.Sweep), vector.Clockwise)
		r.strokePath(dst, &path, float32(op.Width), op.Color)

	case render.OpImage:
		r.drawImage(dst, op, images)

	case render.OpText:
		drawText(dst, op)
	}
}

func (r *Renderer) drawImage(dst *ebiten.Image, op *render.Op, images Images) {
	if images == nil {
		return
	}
	img := images.Image(op.Image)
	if img == nil {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(op.W/float64(b.Dx()), op.H/float64(b.Dy()))
	opts.GeoM.Translate(op.X, op.Y)
	opts.Filter = ebiten.FilterLinear
	dst.DrawImage(img, opts)
}

func drawText(dst *ebiten.Image, op *render.Op) {
	name := op.Font
	if !fonts.Loaded(name) {
		name = fonts.Fallback
		if !fonts.Loaded(name) {
			return
		}
	}
	face := name.Get()
	x := int(op.X)
	if op.Align == render.AlignCenter {
		x -= text.BoundString(face, op.Text).Dx() / 2
	}
	text.Draw(dst, op.Text, face, x, int(op.Y), op.Color)
}

func (r *Renderer) fillPath(dst *ebiten.Image, path *vector.Path, c color.NRGBA) {
	r.vs, r.is = path.AppendVerticesAndIndicesForFilling(r.vs[:0], r.is[:0])
	r.paint(c)
	dst.DrawTriangles(r.vs, r.is, r.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (r *Renderer) strokePath(dst *ebiten.Image, path *vector.Path, width float32, c color.NRGBA) {
	r.vs, r.is = path.AppendVerticesAndIndicesForStroke(r.vs[:0], r.is[:0], &vector.StrokeOptions{
		Width:   width,
		LineCap: vector.LineCapRound,
	})
	r.paint(c)
	dst.DrawTriangles(r.vs, r.is, r.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// paint applies a flat colour to every scratch vertex.
func (r *Renderer) paint(c color.NRGBA) {
	for i := range r.vs {
		setVertex(&r.vs[i], r.vs[i].DstX, r.vs[i].DstY, c)
	}
}

func setVertex(v *ebiten.Vertex, x, y float32, c color.NRGBA) {
	v.DstX = x
	v.DstY = y
	v.SrcX = 1
	v.SrcY = 1
	v.ColorR = float32(c.R) / 255
	v.ColorG = float32(c.G) / 255
	v.ColorB = float32(c.B) / 255
	v.ColorA = float32(c.A) / 255
}

// fillRadial draws a disc of radius op.R as concentric rings coloured by the gradient.
func (r *Renderer) fillRadial(dst *ebiten.Image, op *render.Op) {
	if op.R <= 0 || len(op.Stops) == 0 {
		return
	}
	span := op.GradOuter - op.GradInner
	colorAt := func(rad float64) color.NRGBA {
		if span <= 0 {
			return op.Stops[len(op.Stops)-1].Color
		}
		return gradientAt(op.Stops, (rad-op.GradInner)/span)
	}

	vs := r.vs[:0]
	is := r.is[:0]
	vs = append(vs, ebiten.Vertex{})
	setVertex(&vs[0], float32(op.X), float32(op.Y), colorAt(0))

	for ring := 1; ring <= radialRings; ring++ {
		rad := op.R * float64(ring) / radialRings
		c := colorAt(rad)
		for s := 0; s < radialSegments; s++ {
			a := 2 * math.Pi * float64(s) / radialSegments
			var v ebiten.Vertex
			setVertex(&v, float32(op.X+rad*math.Cos(a)), float32(op.Y+rad*math.Sin(a)), c)
			vs = append(vs, v)
		}

		base := uint16(1 + (ring-1)*radialSegments)
		for s := 0; s < radialSegments; s++ {
			next := uint16((s + 1) % radialSegments)
			cur := uint16(s)
			if ring == 1 {
				is = append(is, 0, base+cur, base+next)
				continue
			}
			inner := base - radialSegments
			is = append(is,
				inner+cur, base+cur, base+next,
				inner+cur, base+next, inner+next,
			)
		}
	}

	r.vs, r.is = vs, is
	dst.DrawTriangles(r.vs, r.is, r.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// fillLinear draws a top-to-bottom gradient rect with one band per pair of stops.
func (r *Renderer) fillLinear(dst *ebiten.Image, op *render.Op) {
	if op.W <= 0 || op.H <= 0 || len(op.Stops) < 2 {
		return
	}
	vs := r.vs[:0]
	is := r.is[:0]
	x0, x1 := float32(op.X), float32(op.X+op.W)
	for i, stop := range op.Stops {
		y := float32(op.Y + op.H*stop.Offset)
		var left, right ebiten.Vertex
		setVertex(&left, x0, y, stop.Color)
		setVertex(&right, x1, y, stop.Color)
		vs = append(vs, left, right)
		if i == 0 {
			continue
		}
		b := uint16(2 * (i - 1))
		is = append(is, b, b+1, b+2, b+1, b+3, b+2)
	}
	r.vs, r.is = vs, is
	dst.DrawTriangles(r.vs, r.is, r.white, nil)
}

// gradientAt interpolates the stops at t in [0, 1].
func gradientAt(stops []render.GradientStop, t float64) color.NRGBA {
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t > b.Offset {
			continue
		}
		f := 0.0
		if b.Offset > a.Offset {
			f = (t - a.Offset) / (b.Offset - a.Offset)
		}
		return lerpColor(a.Color, b.Color, f)
	}
	return stops[len(stops)-1].Color
}

func lerpColor(a, b color.NRGBA, f float64) color.NRGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*f + 0.5)
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

func roundRectPath(x, y, w, h, radius float64) *vector.Path {
	radius = math.Min(radius, math.Min(w, h)/2)
	x0, y0 := float32(x), float32(y)
	x1, y1 := float32(x+w), float32(y+h)
	rr := float32(radius)

	path := &vector.Path{}
	path.MoveTo(x0+rr, y0)
	path.ArcTo(x1, y0, x1, y1, rr)
	path.ArcTo(x1, y1, x0, y1, rr)
	path.ArcTo(x0, y1, x0, y0, rr)
	path.ArcTo(x0, y0, x1, y0, rr)
	path.Close()
	return path
}

func ellipsePath(cx, cy, rx, ry float64) *vector.Path {
	path := &vector.Path{}
	for i := 0; i < ellipseSegments; i++ {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		px := float32(cx + rx*math.Cos(a))
		py := float32(cy + ry*math.Sin(a))
		if i == 0 {
			path.MoveTo(px, py)
			continue
		}
		path.LineTo(px, py)
	}
	path.Close()
	return path
}
