package gdiraster

import (
	"image"
	"image/color"
	"math"

	"github.com/benoitkugler/wmfsvg/gdi"
	"github.com/sirupsen/logrus"
	"github.com/srwiley/rasterx"
)

func kindOf(obj gdi.Object) string {
	if obj == nil {
		return "<nil>"
	}
	return obj.Kind().String()
}

// asRegion returns the region created by this device, or nil.
func (d *Device) asRegion(obj gdi.Object, op string) *region {
	rgn, ok := obj.(*region)
	if !ok {
		d.log.WithFields(logrus.Fields{"op": op, "kind": kindOf(obj)}).Warn("region expected")
		return nil
	}
	return rgn
}

func (d *Device) regionRect(rgn *region) image.Rectangle {
	return d.pixelRect(rgn.left, rgn.top, rgn.right, rgn.bottom)
}

// clipOffset returns the translation of the clip, in pixels.
func (d *Device) clipOffset() image.Point {
	return image.Pt(
		int(math.Round(d.dc.ToRelativeX(float64(d.dc.OffsetClipX))*d.scale)),
		int(math.Round(d.dc.ToRelativeY(float64(d.dc.OffsetClipY))*d.scale)),
	)
}

// clipRect returns the paintable part of the image.
func (d *Device) clipRect() image.Rectangle {
	bounds := d.img.Bounds()
	if !d.dc.clipped {
		return bounds
	}
	return d.dc.clip.Add(d.clipOffset()).Intersect(bounds)
}

// applyClip forwards the current clip to the renderer.
func (d *Device) applyClip() {
	if d.rd == nil {
		return
	}
	d.rd.hidden = false
	if !d.dc.clipped {
		d.rd.SetClip(image.Rectangle{})
		return
	}
	r := d.clipRect()
	if r.Empty() {
		d.rd.hidden = true
		return
	}
	d.rd.SetClip(r)
}

// SelectClipRgn restricts the painting to `rgn`,
// or removes the clip if `rgn` is nil.
func (d *Device) SelectClipRgn(rgn gdi.Object) {
	d.canvas()
	if rgn == nil {
		d.dc.clipped = false
		d.applyClip()
		return
	}
	r := d.asRegion(rgn, "SelectClipRgn")
	if r == nil {
		return
	}
	d.dc.clip = d.regionRect(r).Sub(d.clipOffset())
	d.dc.clipped = true
	d.applyClip()
}

func (d *Device) OffsetClipRgn(x, y int16) {
	d.dc.OffsetClipRgn(x, y)
	d.applyClip()
}

func (d *Device) IntersectClipRect(left, top, right, bottom int16) {
	d.canvas()
	r := d.pixelRect(left, top, right, bottom).Sub(d.clipOffset())
	if d.dc.clipped {
		r = r.Intersect(d.dc.clip)
	}
	d.dc.clip, d.dc.clipped = r, true
	d.applyClip()
}

// ExcludeClipRect removes a rectangle from the current clip.
// Since the clip is a rectangle, the exclusion is only applied
// when it covers a whole side of the clip.
func (d *Device) ExcludeClipRect(left, top, right, bottom int16) {
	d.canvas()
	offset := d.clipOffset()
	base := d.img.Bounds().Sub(offset)
	if d.dc.clipped {
		base = d.dc.clip
	}
	ex := d.pixelRect(left, top, right, bottom).Sub(offset)
	if !ex.Overlaps(base) {
		return
	}
	switch {
	case ex.Min.Y <= base.Min.Y && ex.Max.Y >= base.Max.Y && ex.Min.X <= base.Min.X:
		base.Min.X = ex.Max.X
	case ex.Min.Y <= base.Min.Y && ex.Max.Y >= base.Max.Y && ex.Max.X >= base.Max.X:
		base.Max.X = ex.Min.X
	case ex.Min.X <= base.Min.X && ex.Max.X >= base.Max.X && ex.Min.Y <= base.Min.Y:
		base.Min.Y = ex.Max.Y
	case ex.Min.X <= base.Min.X && ex.Max.X >= base.Max.X && ex.Max.Y >= base.Max.Y:
		base.Max.Y = ex.Min.Y
	default:
		d.log.WithField("rect", ex).Debug("clip exclusion ignored")
		return
	}
	if base.Empty() {
		base = image.Rectangle{}
	}
	d.dc.clip, d.dc.clipped = base, true
	d.applyClip()
}

func (d *Device) FillRgn(rgn, br gdi.Object) {
	r := d.asRegion(rgn, "FillRgn")
	if r == nil {
		return
	}
	d.canvas()
	var src interface{}
	switch br := br.(type) {
	case *brush:
		src = d.brushPaint(br)
	case *patternBrush:
		img, err := br.decoded()
		if err != nil {
			d.log.WithError(err).Warn("invalid pattern brush skipped")
			return
		}
		src = tileFunc(img)
	default:
		d.log.WithField("kind", kindOf(br)).Warn("brush expected")
		return
	}
	d.fillRect(d.regionRect(r), src)
}

func (d *Device) PaintRgn(rgn gdi.Object) {
	r := d.asRegion(rgn, "PaintRgn")
	if r == nil {
		return
	}
	d.canvas()
	d.fillRect(d.regionRect(r), d.fillPaint())
}

// FrameRgn strokes the border of the region, with the color
// of the given brush.
func (d *Device) FrameRgn(rgn, br gdi.Object, width, height int16) {
	r := d.asRegion(rgn, "FrameRgn")
	if r == nil {
		return
	}
	b, ok := br.(*brush)
	if !ok {
		d.log.WithField("kind", kindOf(br)).Warn("brush expected")
		return
	}
	if b.style == gdi.BsNull {
		return
	}
	rd := d.canvas()
	rect := d.regionRect(r).Canon()
	rd.Clear()
	rd.SetStroke(math.Max(d.lengthX(float64(width)), d.lengthY(float64(height))), gdi.PsSolid, false)
	rasterx.AddRect(float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Max.X), float64(rect.Max.Y), 0, rd)
	rd.Stroke(gdi.ToRGBA(b.color))
}

func (d *Device) InvertRgn(rgn gdi.Object) {
	r := d.asRegion(rgn, "InvertRgn")
	if r == nil {
		return
	}
	d.canvas()
	if !d.rd.hidden {
		d.invert(d.regionRect(r))
	}
}

func (d *Device) FloodFill(x, y int16, color int32) {
	d.ExtFloodFill(x, y, color, gdi.FloodFillBorder)
}

// ExtFloodFill paints with the selected brush the area connected to (x, y),
// bounded by `color` or made of `color`, depending on `fillType`.
func (d *Device) ExtFloodFill(x, y int16, c int32, fillType uint16) {
	d.canvas()
	if d.rd.hidden {
		return
	}
	src := d.fillPaint()
	if src == nil {
		return
	}
	clip := d.clipRect()
	start := image.Pt(int(math.Floor(d.px(x))), int(math.Floor(d.py(y))))
	if !start.In(clip) {
		return
	}
	ref := gdi.ToRGBA(c)
	inside := func(p image.Point) bool {
		same := d.img.RGBAAt(p.X, p.Y) == ref
		if fillType == gdi.FloodFillSurface {
			return same
		}
		return !same
	}
	if !inside(start) {
		return
	}

	// collect the area before painting, since painting changes the colors
	w := clip.Dx()
	seen := make([]bool, w*clip.Dy())
	index := func(p image.Point) int { return (p.Y-clip.Min.Y)*w + p.X - clip.Min.X }
	var area []image.Point
	stack := []image.Point{start}
	seen[index(start)] = true
	for len(stack) != 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		area = append(area, p)
		for _, n := range [4]image.Point{image.Pt(p.X-1, p.Y), image.Pt(p.X+1, p.Y), image.Pt(p.X, p.Y-1), image.Pt(p.X, p.Y+1)} {
			if n.In(clip) && !seen[index(n)] && inside(n) {
				seen[index(n)] = true
				stack = append(stack, n)
			}
		}
	}

	at := colorAt(src)
	for _, p := range area {
		if c := at(p.X, p.Y); !isTransparent(c) {
			d.img.Set(p.X, p.Y, c)
		}
	}
}

// colorAt unifies the paints returned by fillPaint.
func colorAt(src interface{}) rasterx.ColorFunc {
	switch src := src.(type) {
	case rasterx.ColorFunc:
		return src
	case color.Color:
		return func(x, y int) color.Color { return src }
	default:
		return func(x, y int) color.Color { return color.Transparent }
	}
}

func isTransparent(c color.Color) bool {
	_, _, _, a := c.RGBA()
	return a == 0
}
