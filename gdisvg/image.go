package gdisvg

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"

	"github.com/benoitkugler/wmfsvg/gdi"
	"github.com/sirupsen/logrus"
)

// pngDataURI encodes `img` as an inline PNG.
func pngDataURI(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// decodeBitmap converts a device independent bitmap, returning
// nil (and logging) for invalid data.
func (d *Device) decodeBitmap(dib []byte, flip bool) (image.Image, string) {
	img, err := gdi.DecodeDIB(dib)
	if err != nil {
		d.log.WithError(err).WithField("size", len(dib)).Warn("invalid bitmap skipped")
		return nil, ""
	}
	if flip {
		img = gdi.FlipVertical(img)
	}
	data, err := pngDataURI(img)
	if err != nil {
		d.log.WithError(err).Warn("bitmap encoding failed")
		return nil, ""
	}
	return img, data
}

// bitmap places a device independent bitmap, scaling the
// source rectangle (sx, sy, sw, sh) to the destination.
func (d *Device) bitmap(dib []byte, dx, dy, dw, dh, sx, sy, sw, sh int16, usage uint16, rop uint32) {
	if len(dib) == 0 {
		return
	}
	if usage == gdi.DibPalColors {
		d.log.WithField("usage", usage).Debug("palette indexed bitmap drawn with its color table")
	}
	_, data := d.decodeBitmap(dib, dh < 0)
	if data == "" {
		return
	}

	n := newNode("image")
	x, y := d.absX(float64(dx)), d.absY(float64(dy))
	width, height := d.relX(float64(dw)), d.relY(float64(dh))
	switch {
	case width < 0 && height < 0:
		n.set("transform", "scale(-1, -1) translate("+itoa(-x)+", "+itoa(-y)+")")
	case width < 0:
		n.set("transform", "scale(-1, 1) translate("+itoa(-x)+", "+itoa(y)+")")
	case height < 0:
		n.set("transform", "scale(1, -1) translate("+itoa(x)+", "+itoa(-y)+")")
	default:
		n.set("x", itoa(x))
		n.set("y", itoa(y))
	}
	n.set("width", itoa(absInt(width)))
	n.set("height", itoa(absInt(height)))
	if sx != 0 || sy != 0 || sw != dw || sh != dh {
		n.set("viewBox", itoa(int(sx))+" "+itoa(int(sy))+" "+itoa(int(sw))+" "+itoa(int(sh)))
		n.set("preserveAspectRatio", "none")
	}
	if filter := d.ropFilter(rop); filter != "" {
		n.set("filter", filter)
	}
	n.set("xlink:href", data)
	d.parent.add(n)
}

// imagePattern returns the id of the tiling pattern
// of a pattern brush, or "" for invalid bitmaps.
func (d *Device) imagePattern(pb *patternBrush) string {
	if pb.id != "" {
		return pb.id
	}
	img, data := d.decodeBitmap(pb.image, false)
	if img == nil {
		return ""
	}
	b := img.Bounds()
	w, h := itoa(b.Dx()), itoa(b.Dy())
	pb.id = d.nextID("pattern")
	d.defs.add(newNode("pattern", "id", pb.id, "patternUnits", "userSpaceOnUse",
		"x", "0", "y", "0", "width", w, "height", h).add(
		newNode("image", "width", w, "height", h, "xlink:href", data)))
	return pb.id
}

func (d *Device) BitBlt(image []byte, dx, dy, dw, dh, sx, sy int16, rop uint32) {
	d.bitmap(image, dx, dy, dw, dh, sx, sy, dw, dh, gdi.DibRGBColors, rop)
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
	d.DibStretchBlt(image, dx, dy, dw, dh, sx, sy, sw, sh, rop)
}

func (d *Device) DibStretchBlt(image []byte, dx, dy, dw, dh, sx, sy, sw, sh int16, rop uint32) {
	d.StretchDIBits(dx, dy, dw, dh, sx, sy, sw, sh, image, gdi.DibRGBColors, rop)
}

func (d *Device) SetDIBitsToDevice(dx, dy, dw, dh, sx, sy int16, startScan, scanLines uint16, image []byte, colorUse uint16) {
	if startScan != 0 {
		d.log.WithFields(logrus.Fields{"start": startScan, "lines": scanLines}).Debug("partial bitmap drawn as a whole")
	}
	d.StretchDIBits(dx, dy, dw, dh, sx, sy, dw, dh, image, colorUse, gdi.SrcCopy)
}

func (d *Device) StretchDIBits(dx, dy, dw, dh, sx, sy, sw, sh int16, image []byte, usage uint16, rop uint32) {
	d.bitmap(image, dx, dy, dw, dh, sx, sy, sw, sh, usage, rop)
}

// PatBlt paints a rectangle with the selected brush, combined
// with the destination according to `rop`.
func (d *Device) PatBlt(x, y, width, height int16, rop uint32) {
	n := d.rect(x, y, x+width, y+height)
	d.paint(n, false, d.dc.brush, d.dc.pattern)
	n.set("stroke", "none")
	if filter := d.ropFilter(rop); filter != "" {
		n.set("filter", filter)
	}
	d.parent.add(n)
}
