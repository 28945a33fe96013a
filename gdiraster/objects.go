package gdiraster

import (
	"image"

	"github.com/benoitkugler/wmfsvg/gdi"
)

type pen struct {
	style uint16
	width int16
	color int32
}

func (*pen) Kind() gdi.Kind { return gdi.PenKind }

type brush struct {
	style uint16
	color int32
	hatch uint16
}

func (*brush) Kind() gdi.Kind { return gdi.BrushKind }

type patternBrush struct {
	dib []byte
	img image.Image // decoded on first use
	err error
}

func (*patternBrush) Kind() gdi.Kind { return gdi.PatternBrushKind }

func (p *patternBrush) decoded() (image.Image, error) {
	if p.img == nil && p.err == nil {
		p.img, p.err = gdi.DecodeDIB(p.dib)
		if p.err == nil && p.img.Bounds().Empty() {
			p.img, p.err = nil, errEmptyImage
		}
	}
	return p.img, p.err
}

// fonts are kept to preserve the object table, but texts are not rendered
type font struct{ gdi.LogFont }

func (*font) Kind() gdi.Kind { return gdi.FontKind }

type palette struct{ entries []int32 }

func (*palette) Kind() gdi.Kind { return gdi.PaletteKind }

type region struct{ left, top, right, bottom int16 }

func (*region) Kind() gdi.Kind { return gdi.RegionKind }

func (d *Device) CreatePenIndirect(style uint16, width int16, color int32) gdi.Object {
	if width < 1 {
		width = 1
	}
	return &pen{style: style, width: width, color: color}
}

func (d *Device) CreateBrushIndirect(style uint16, color int32, hatch uint16) gdi.Object {
	return &brush{style: style, color: color, hatch: hatch}
}

func (d *Device) CreatePatternBrush(image []byte) gdi.Object {
	return &patternBrush{dib: image}
}

// DibCreatePatternBrush ignores `usage`: palette indices
// are resolved by the bitmap decoder.
func (d *Device) DibCreatePatternBrush(image []byte, usage int32) gdi.Object {
	return &patternBrush{dib: image}
}

func (d *Device) CreateFontIndirect(lf gdi.LogFont) gdi.Object { return &font{lf} }

func (d *Device) CreatePalette(version uint16, entries []int32) gdi.Object {
	return &palette{entries: entries}
}

func (d *Device) CreateRectRgn(left, top, right, bottom int16) gdi.Object {
	return &region{left: left, top: top, right: right, bottom: bottom}
}

func (d *Device) SelectObject(obj gdi.Object) {
	switch obj := obj.(type) {
	case *pen:
		d.dc.pen = obj
	case *brush:
		d.dc.brush = obj
		d.dc.pattern = nil
	case *patternBrush:
		d.dc.pattern = obj
	case *font, *palette:
	case *region:
		d.SelectClipRgn(obj)
	default:
		d.log.WithField("object", obj).Warn("invalid object selected")
	}
}

// DeleteObject restores the default pen or brush
// when the selected one is deleted.
func (d *Device) DeleteObject(obj gdi.Object) {
	switch obj := obj.(type) {
	case *pen:
		if d.dc.pen == obj {
			d.dc.pen = d.defaultPen
		}
	case *brush:
		if d.dc.brush == obj {
			d.dc.brush = d.defaultBrush
		}
	case *patternBrush:
		if d.dc.pattern == obj {
			d.dc.pattern = nil
		}
	}
}

// fillPaint returns the paint of the selected brush, or nil.
func (d *Device) fillPaint() interface{} {
	if d.dc.pattern != nil {
		img, err := d.dc.pattern.decoded()
		if err != nil {
			d.log.WithError(err).Warn("invalid pattern brush skipped")
			return nil
		}
		return tileFunc(img)
	}
	return d.brushPaint(d.dc.brush)
}

func (d *Device) brushPaint(b *brush) interface{} {
	switch b.style {
	case gdi.BsSolid:
		return gdi.ToRGBA(b.color)
	case gdi.BsHatched:
		fg := gdi.ToRGBA(b.color)
		if d.dc.BkMode == gdi.Opaque {
			return hatchFunc(b.hatch, fg, gdi.ToRGBA(d.dc.BkColor))
		}
		return hatchFunc(b.hatch, fg, nil)
	default:
		return nil
	}
}

// strokePaint configures the stroke with the selected pen and
// returns its paint, or nil for the null pen.
func (d *Device) strokePaint() interface{} {
	p := d.dc.pen
	if p.style == gdi.PsNull {
		return nil
	}
	d.rd.SetStroke(d.lengthX(float64(p.width)), p.style, p.width == 1)
	return gdi.ToRGBA(p.color)
}
