package gdiraster

import (
	"errors"
	"image"
	"image/color"
	"math"

	"github.com/benoitkugler/wmfsvg/gdi"
	"github.com/sirupsen/logrus"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

var errEmptyImage = errors.New("gdiraster: empty bitmap")

// blitRect maps a logical destination rectangle to pixels, returning
// the normalized rectangle and whether it is mirrored horizontally.
func (d *Device) blitRect(x, y, width, height int16) (image.Rectangle, bool) {
	x0, y0 := d.px(x), d.py(y)
	x1 := d.dc.ToAbsoluteX(float64(x)+float64(width)) * d.scale
	y1 := d.dc.ToAbsoluteY(float64(y)+float64(height)) * d.scale
	r := image.Rect(int(math.Round(x0)), int(math.Round(y0)), int(math.Round(x1)), int(math.Round(y1)))
	return r, x1 < x0
}

// dest returns the part of the image which may be painted.
func (d *Device) dest() *image.RGBA {
	return d.img.SubImage(d.clipRect()).(*image.RGBA)
}

// bitmap draws the source rectangle (sx, sy, sw, sh) of a device
// independent bitmap into the destination rectangle.
// Bitmaps are stored bottom-up, so that a negative destination height
// still draws an upright image.
func (d *Device) bitmap(dib []byte, dx, dy, dw, dh, sx, sy, sw, sh int16, rop uint32) {
	if len(dib) == 0 {
		return
	}
	img, err := gdi.DecodeDIB(dib)
	if err != nil {
		d.log.WithError(err).WithField("size", len(dib)).Warn("invalid bitmap skipped")
		return
	}
	d.canvas()
	if d.rd.hidden {
		return
	}

	src := image.Rect(int(sx), int(sy), int(sx)+int(sw), int(sy)+int(sh)).Add(img.Bounds().Min)
	src = src.Intersect(img.Bounds())
	dst, flipX := d.blitRect(dx, dy, dw, dh)
	if src.Empty() || dst.Empty() {
		return
	}

	op := draw.Over
	switch rop {
	case gdi.SrcCopy:
		op = draw.Src
	case gdi.NotSrcCopy:
		img = inverted(img, src)
		op = draw.Src
	default:
		d.log.WithField("rop", rop).Debug("raster operation approximated by a copy")
	}

	scaleX := float64(dst.Dx()) / float64(src.Dx())
	scaleY := float64(dst.Dy()) / float64(src.Dy())
	m := f64.Aff3{
		scaleX, 0, float64(dst.Min.X) - float64(src.Min.X)*scaleX,
		0, scaleY, float64(dst.Min.Y) - float64(src.Min.Y)*scaleY,
	}
	if flipX {
		m[0], m[2] = -scaleX, float64(dst.Max.X)+float64(src.Min.X)*scaleX
	}
	draw.ApproxBiLinear.Transform(d.dest(), m, img, src, op, nil)
}

// inverted returns the negative of the `r` part of `img`.
func inverted(img image.Image, r image.Rectangle) *image.RGBA {
	out := image.NewRGBA(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			out.SetRGBA(x, y, color.RGBA{R: c.A - c.R, G: c.A - c.G, B: c.A - c.B, A: c.A})
		}
	}
	return out
}

// invert inverts the colors of the pixels of `r`, inside the clip.
func (d *Device) invert(r image.Rectangle) {
	r = r.Canon().Intersect(d.clipRect())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := d.img.RGBAAt(x, y)
			d.img.SetRGBA(x, y, color.RGBA{R: c.A - c.R, G: c.A - c.G, B: c.A - c.B, A: c.A})
		}
	}
}

// fillRect paints a rectangle without outline.
func (d *Device) fillRect(r image.Rectangle, src interface{}) {
	rd := d.canvas()
	r = r.Canon()
	rd.Clear()
	rasterx.AddRect(float64(r.Min.X), float64(r.Min.Y), float64(r.Max.X), float64(r.Max.Y), 0, rd)
	rd.Fill(src)
}

// PatBlt paints a rectangle with the selected brush, or with a
// raster operation ignoring the brush.
func (d *Device) PatBlt(x, y, width, height int16, rop uint32) {
	d.canvas()
	r, _ := d.blitRect(x, y, width, height)
	switch rop {
	case gdi.Blackness:
		d.fillRect(r, color.RGBA{A: 0xff})
	case gdi.Whiteness:
		d.fillRect(r, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	case gdi.DstInvert:
		if !d.rd.hidden {
			d.invert(r)
		}
	case gdi.PatCopy:
		d.fillRect(r, d.fillPaint())
	default:
		d.log.WithField("rop", rop).Debug("raster operation approximated by a copy")
		d.fillRect(r, d.fillPaint())
	}
}

func (d *Device) BitBlt(image []byte, dx, dy, dw, dh, sx, sy int16, rop uint32) {
	d.bitmap(image, dx, dy, dw, dh, sx, sy, dw, dh, rop)
}

// DibBitBlt without image paints the destination, as PatBlt.
func (d *Device) DibBitBlt(image []byte, dx, dy, dw, dh, sx, sy int16, rop uint32) {
	if image == nil {
		d.PatBlt(dx, dy, dw, dh, rop)
		return
	}
	d.BitBlt(image, dx, dy, dw, dh, sx, sy, rop)
}

func (d *Device) StretchBlt(image []byte, dx, dy, dw, dh, sx, sy, sw, sh int16, rop uint32) {
	d.bitmap(image, dx, dy, dw, dh, sx, sy, sw, sh, rop)
}

func (d *Device) DibStretchBlt(image []byte, dx, dy, dw, dh, sx, sy, sw, sh int16, rop uint32) {
	d.bitmap(image, dx, dy, dw, dh, sx, sy, sw, sh, rop)
}

// SetDIBitsToDevice copies the bitmap without scaling;
// the scan lines range is ignored.
func (d *Device) SetDIBitsToDevice(dx, dy, dw, dh, sx, sy int16, startScan, scanLines uint16, image []byte, colorUse uint16) {
	d.bitmap(image, dx, dy, dw, dh, sx, sy, dw, dh, gdi.SrcCopy)
}

func (d *Device) StretchDIBits(dx, dy, dw, dh, sx, sy, sw, sh int16, image []byte, usage uint16, rop uint32) {
	if usage == gdi.DibPalColors {
		d.log.WithFields(logrus.Fields{"op": "StretchDIBits", "usage": usage}).Debug("palette indexed bitmap drawn with its color table")
	}
	d.bitmap(image, dx, dy, dw, dh, sx, sy, sw, sh, rop)
}
