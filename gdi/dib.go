package gdi

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

const (
	bmpFileHeaderSize = 14
	bmpInfoHeaderSize = 40
)

var errShortDIB = errors.New("gdi: device independent bitmap too short")

// DIBToBMP prepends a bitmap file header to a device independent
// bitmap (info header, color table and pixels), so that it may be
// read by a standard BMP decoder.
func DIBToBMP(dib []byte) ([]byte, error) {
	if len(dib) < bmpInfoHeaderSize {
		return nil, errShortDIB
	}
	infoSize := binary.LittleEndian.Uint32(dib)
	bitCount := binary.LittleEndian.Uint16(dib[14:])
	clrUsed := binary.LittleEndian.Uint32(dib[32:])

	offBits := bmpFileHeaderSize + int64(infoSize)
	switch bitCount {
	case 1, 4, 8:
		if clrUsed == 0 {
			clrUsed = 1 << bitCount
		}
		offBits += int64(clrUsed) * 4
	}

	out := make([]byte, bmpFileHeaderSize+len(dib))
	out[0], out[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(out[2:], uint32(len(out)))
	binary.LittleEndian.PutUint32(out[10:], uint32(offBits))
	copy(out[bmpFileHeaderSize:], dib)
	return out, nil
}

// DecodeDIB decodes a device independent bitmap.
func DecodeDIB(dib []byte) (image.Image, error) {
	file, err := DIBToBMP(dib)
	if err != nil {
		return nil, err
	}
	img, err := bmp.Decode(bytes.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("gdi: invalid bitmap: %w", err)
	}
	return img, nil
}

// FlipVertical returns a copy of `img` mirrored along the horizontal axis.
func FlipVertical(img image.Image) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	s2d := f64.Aff3{
		1, 0, -float64(b.Min.X),
		0, -1, float64(b.Min.Y + b.Dy()),
	}
	draw.NearestNeighbor.Transform(out, s2d, img, b, draw.Src, nil)
	return out
}

// RGB splits a COLORREF value.
func RGB(c int32) (r, g, b uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16)
}

// ToRGBA converts a COLORREF value to an opaque color.
func ToRGBA(c int32) color.RGBA {
	r, g, b := RGB(c)
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
