package gdiraster

import (
	"image"
	"image/color"

	"github.com/benoitkugler/wmfsvg/gdi"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

var _ rasterx.Adder = (*renderer)(nil) // assert interface conformance

// renderer accumulates a path in both a filler and a dasher,
// so that a shape is built once, then filled and stroked.
type renderer struct {
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated scanners

	hidden bool // the clip rectangle is empty
}

func newRenderer(img *image.RGBA) *renderer {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	return &renderer{
		dasher: rasterx.NewDasher(w, h, rasterx.NewScannerGV(w, h, img, img.Bounds())),
		filler: rasterx.NewFiller(w, h, rasterx.NewScannerGV(w, h, img, img.Bounds())),
	}
}

// Clear starts a new path.
func (rd *renderer) Clear() {
	rd.dasher.Clear()
	rd.filler.Clear()
}

// SetWinding has no effect with the ScannerGV scanner, which always
// uses the non zero rule, but is kept to track the poly fill mode.
func (rd *renderer) SetWinding(useNonZeroWinding bool) {
	rd.dasher.SetWinding(useNonZeroWinding)
	rd.filler.SetWinding(useNonZeroWinding)
}

// SetClip restricts the painting to `clip`; an empty rectangle disables it.
func (rd *renderer) SetClip(clip image.Rectangle) {
	rd.dasher.SetClip(clip)
	rd.filler.SetClip(clip)
}

// dash patterns of the cosmetic pens, in pixels
var penDashes = map[uint16][]float64{
	gdi.PsDash:       {18, 6},
	gdi.PsDot:        {3, 3},
	gdi.PsDashDot:    {9, 3, 3, 3},
	gdi.PsDashDotDot: {9, 3, 3, 3, 3, 3},
}

// SetStroke configures the dasher. It must be called before
// the path is built.
func (rd *renderer) SetStroke(width float64, style uint16, cosmetic bool) {
	if width < 1 {
		width = 1
	}
	var dashes []float64
	if cosmetic {
		dashes = penDashes[style]
	}
	rd.dasher.SetStroke(fixed.Int26_6(width*64), 4<<6, rasterx.RoundCap, nil, rasterx.RoundGap, rasterx.Round, dashes, 0)
}

func (rd *renderer) Start(a fixed.Point26_6) {
	rd.filler.Start(a)
	rd.dasher.Start(a)
}

func (rd *renderer) Line(b fixed.Point26_6) {
	rd.filler.Line(b)
	rd.dasher.Line(b)
}

func (rd *renderer) QuadBezier(b fixed.Point26_6, c fixed.Point26_6) {
	rd.filler.QuadBezier(b, c)
	rd.dasher.QuadBezier(b, c)
}

func (rd *renderer) CubeBezier(b fixed.Point26_6, c fixed.Point26_6, d fixed.Point26_6) {
	rd.filler.CubeBezier(b, c, d)
	rd.dasher.CubeBezier(b, c, d)
}

func (rd *renderer) Stop(closeLoop bool) {
	rd.filler.Stop(closeLoop)
	rd.dasher.Stop(closeLoop)
}

// Fill paints the inside of the path with `src`,
// a color.Color or a rasterx.ColorFunc. A nil `src` paints nothing.
func (rd *renderer) Fill(src interface{}) {
	if src == nil || rd.hidden {
		return
	}
	rd.filler.SetColor(src)
	rd.filler.Draw()
}

// Stroke paints the outline of the path, see Fill.
func (rd *renderer) Stroke(src interface{}) {
	if src == nil || rd.hidden {
		return
	}
	rd.dasher.SetColor(src)
	rd.dasher.Draw()
}

// hatchFunc returns the paint of a hatched brush, with 8 pixels cells.
// A nil `bg` leaves the background untouched.
func hatchFunc(hatch uint16, fg, bg color.Color) rasterx.ColorFunc {
	if bg == nil {
		bg = color.Transparent
	}
	return func(x, y int) color.Color {
		x, y = x&7, y&7
		var on bool
		switch hatch {
		case gdi.HsHorizontal:
			on = y == 4
		case gdi.HsVertical:
			on = x == 4
		case gdi.HsFDiagonal:
			on = x == y
		case gdi.HsBDiagonal:
			on = x+y == 7
		case gdi.HsCross:
			on = x == 4 || y == 4
		case gdi.HsDiagCross:
			on = x == y || x+y == 7
		}
		if on {
			return fg
		}
		return bg
	}
}

// tileFunc returns the paint repeating `img`.
func tileFunc(img image.Image) rasterx.ColorFunc {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	return func(x, y int) color.Color {
		x, y = x%w, y%h
		if x < 0 {
			x += w
		}
		if y < 0 {
			y += h
		}
		return img.At(b.Min.X+x, b.Min.Y+y)
	}
}
