package gdiraster

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/benoitkugler/wmfsvg/gdi"
	"github.com/benoitkugler/wmfsvg/wmf"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	transparent = color.RGBA{}
	black       = color.RGBA{A: 0xff}
	white       = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	red         = color.RGBA{R: 0xff, A: 0xff}
	blue        = color.RGBA{B: 0xff, A: 0xff}
)

// newTestDevice returns a device mapping logical units to pixels,
// on a 100x100 image.
func newTestDevice() (*Device, *logtest.Hook) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	d := NewDevice(Options{Width: 100, Height: 100, Logger: logger})
	d.SetWindowExtEx(100, 100)
	return d, hook
}

func messages(hook *logtest.Hook, level logrus.Level) []string {
	var out []string
	for _, e := range hook.AllEntries() {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}

// selectSolid selects a solid brush and the null pen.
func selectSolid(d *Device, c int32) {
	d.SelectObject(d.CreateBrushIndirect(gdi.BsSolid, c, 0))
	d.SelectObject(d.CreatePenIndirect(gdi.PsNull, 0, 0))
}

// newDIB24 returns a 24 bits bitmap filled with `rgb` (0xRRGGBB).
func newDIB24(width, height int, rgb uint32) []byte {
	stride := (width*3 + 3) &^ 3
	out := make([]byte, 40+stride*height)
	binary.LittleEndian.PutUint32(out[0:], 40)
	binary.LittleEndian.PutUint32(out[4:], uint32(width))
	binary.LittleEndian.PutUint32(out[8:], uint32(height))
	binary.LittleEndian.PutUint16(out[12:], 1)
	binary.LittleEndian.PutUint16(out[14:], 24)
	for y := 0; y < height; y++ {
		row := out[40+y*stride:]
		for x := 0; x < width; x++ {
			row[3*x], row[3*x+1], row[3*x+2] = byte(rgb), byte(rgb>>8), byte(rgb>>16)
		}
	}
	return out
}

func TestImageSize(t *testing.T) {
	d := NewDevice(Options{Width: 100, Height: 100})
	d.PlaceableHeader(0, 0, 2000, 1000, 1440)
	d.Footer()
	assert.Equal(t, image.Rect(0, 0, 100, 50), d.Image().Bounds())
	assert.Equal(t, 0.05, d.scale)

	d = NewDevice(Options{Width: 64, Height: 32, Background: color.White})
	assert.Equal(t, image.Rect(0, 0, 64, 32), d.Image().Bounds())
	assert.Equal(t, white, d.Image().RGBAAt(10, 10))

	var buf bytes.Buffer
	n, err := d.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
}

func TestShapes(t *testing.T) {
	d, _ := newTestDevice()
	selectSolid(d, 0x000000FF)
	d.Rectangle(10, 10, 50, 50)
	img := d.Image()
	assert.Equal(t, red, img.RGBAAt(30, 30))
	assert.Equal(t, transparent, img.RGBAAt(5, 5))
	assert.Equal(t, transparent, img.RGBAAt(60, 30))

	d, _ = newTestDevice()
	selectSolid(d, 0x00FF0000)
	d.Ellipse(0, 0, 100, 100)
	assert.Equal(t, blue, d.Image().RGBAAt(50, 50))
	assert.Equal(t, transparent, d.Image().RGBAAt(2, 2))

	d, _ = newTestDevice()
	selectSolid(d, 0x000000FF)
	d.Polygon([]gdi.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 0, Y: 100}})
	assert.Equal(t, red, d.Image().RGBAAt(20, 20))
	assert.Equal(t, transparent, d.Image().RGBAAt(80, 80))
}

func TestArcs(t *testing.T) {
	// quarter from the right to the top, going counterclockwise
	d, _ := newTestDevice()
	selectSolid(d, 0x000000FF)
	d.Pie(0, 0, 100, 100, 100, 50, 50, 0)
	img := d.Image()
	assert.Equal(t, red, img.RGBAAt(70, 30))
	assert.Equal(t, transparent, img.RGBAAt(30, 30))
	assert.Equal(t, transparent, img.RGBAAt(70, 70))

	// three quarters
	d, _ = newTestDevice()
	selectSolid(d, 0x000000FF)
	d.Chord(0, 0, 100, 100, 50, 0, 100, 50)
	img = d.Image()
	assert.Equal(t, red, img.RGBAAt(30, 70))
	assert.Equal(t, transparent, img.RGBAAt(80, 20))

	// flat rectangle
	d, _ = newTestDevice()
	d.Arc(0, 0, 0, 100, 1, 2, 3, 4)
	assert.Equal(t, transparent, d.Image().RGBAAt(0, 50))
}

func TestStroke(t *testing.T) {
	d, _ := newTestDevice()
	d.SelectObject(d.CreatePenIndirect(gdi.PsSolid, 10, 0x000000FF))
	d.MoveToEx(10, 50)
	d.LineTo(90, 50)
	assert.Equal(t, red, d.Image().RGBAAt(50, 50))
	assert.Equal(t, transparent, d.Image().RGBAAt(50, 70))
	assert.Equal(t, int16(90), d.dc.CurrentX)

	// null brush: the inside is not painted
	d.SelectObject(d.CreateBrushIndirect(gdi.BsNull, 0, 0))
	d.Rectangle(20, 60, 80, 95)
	assert.Equal(t, red, d.Image().RGBAAt(20, 80))
	assert.Equal(t, transparent, d.Image().RGBAAt(50, 80))
}

func TestClip(t *testing.T) {
	d, _ := newTestDevice()
	d.SaveDC()
	d.IntersectClipRect(0, 0, 20, 20)
	d.PatBlt(0, 0, 100, 100, gdi.Blackness)
	img := d.Image()
	assert.Equal(t, black, img.RGBAAt(10, 10))
	assert.Equal(t, transparent, img.RGBAAt(50, 50))

	// empty intersection
	d.IntersectClipRect(50, 50, 60, 60)
	d.PatBlt(0, 0, 100, 100, gdi.Whiteness)
	assert.Equal(t, black, img.RGBAAt(10, 10))

	d.RestoreDC(-1)
	d.PatBlt(0, 0, 100, 100, gdi.Whiteness)
	assert.Equal(t, white, img.RGBAAt(50, 50))

	d.SelectClipRgn(d.CreateRectRgn(0, 0, 10, 10))
	d.OffsetClipRgn(50, 50)
	d.PatBlt(0, 0, 100, 100, gdi.Blackness)
	assert.Equal(t, white, img.RGBAAt(5, 5))
	assert.Equal(t, black, img.RGBAAt(55, 55))

	// exclusion of the left half
	d.SelectClipRgn(nil)
	d.PatBlt(0, 0, 100, 100, gdi.Blackness)
	d.ExcludeClipRect(0, 0, 50, 100)
	d.PatBlt(0, 0, 100, 100, gdi.Whiteness)
	assert.Equal(t, black, img.RGBAAt(5, 5))
	assert.Equal(t, white, img.RGBAAt(55, 55))

	// not representable
	d.ExcludeClipRect(60, 60, 70, 70)
	assert.Equal(t, image.Rect(50, 0, 100, 100), d.clipRect())
}

func TestRegions(t *testing.T) {
	d, hook := newTestDevice()
	rgn := d.CreateRectRgn(10, 10, 30, 30)
	d.FillRgn(rgn, d.CreateBrushIndirect(gdi.BsSolid, 0x000000FF, 0))
	img := d.Image()
	assert.Equal(t, red, img.RGBAAt(20, 20))

	d.InvertRgn(rgn)
	assert.Equal(t, color.RGBA{G: 0xff, B: 0xff, A: 0xff}, img.RGBAAt(20, 20))

	selectSolid(d, 0x00FF0000)
	d.PaintRgn(d.CreateRectRgn(50, 50, 60, 60))
	assert.Equal(t, blue, img.RGBAAt(55, 55))

	d.FrameRgn(d.CreateRectRgn(70, 70, 90, 90), d.CreateBrushIndirect(gdi.BsSolid, 0, 0), 4, 4)
	assert.Equal(t, black, img.RGBAAt(70, 80))
	assert.Equal(t, transparent, img.RGBAAt(80, 80))

	d.FillRgn(nil, nil)
	d.PaintRgn(d.CreatePenIndirect(gdi.PsSolid, 1, 0))
	assert.Equal(t, []string{"region expected", "region expected"}, messages(hook, logrus.WarnLevel))
}

func TestBrushes(t *testing.T) {
	cross := hatchFunc(gdi.HsCross, red, nil)
	assert.Equal(t, red, cross(4, 0))
	assert.Equal(t, red, cross(-4, 12))
	assert.Equal(t, color.Transparent, cross(1, 1))
	diag := hatchFunc(gdi.HsBDiagonal, red, white)
	assert.Equal(t, red, diag(0, 7))
	assert.Equal(t, white, diag(0, 0))

	tile := image.NewRGBA(image.Rect(0, 0, 2, 1))
	tile.SetRGBA(1, 0, blue)
	at := tileFunc(tile)
	assert.Equal(t, blue, at(-1, 0))
	assert.Equal(t, transparent, at(2, 5))

	d, _ := newTestDevice()
	d.SelectObject(d.CreatePatternBrush(newDIB24(2, 2, 0x0000FF)))
	d.PatBlt(0, 0, 10, 10, gdi.PatCopy)
	assert.Equal(t, blue, d.Image().RGBAAt(5, 5))

	d, hook := newTestDevice()
	d.SelectObject(d.DibCreatePatternBrush([]byte{1, 2}, gdi.DibRGBColors))
	d.PatBlt(0, 0, 10, 10, gdi.PatCopy)
	assert.Equal(t, transparent, d.Image().RGBAAt(5, 5))
	assert.Equal(t, []string{"invalid pattern brush skipped"}, messages(hook, logrus.WarnLevel))
}

func TestBitmaps(t *testing.T) {
	d, hook := newTestDevice()
	d.StretchDIBits(10, 10, 20, 10, 0, 0, 2, 1, newDIB24(2, 1, 0x0000FF), gdi.DibRGBColors, gdi.SrcCopy)
	img := d.Image()
	assert.Equal(t, blue, img.RGBAAt(20, 15))
	assert.Equal(t, transparent, img.RGBAAt(5, 5))
	assert.Equal(t, transparent, img.RGBAAt(35, 15))

	d.BitBlt(newDIB24(4, 4, 0x0000FF), 50, 50, 4, 4, 0, 0, gdi.NotSrcCopy)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, A: 0xff}, img.RGBAAt(52, 52))

	d.StretchBlt([]byte{0, 1, 2}, 0, 0, 10, 10, 0, 0, 10, 10, gdi.SrcCopy)
	assert.Equal(t, []string{"invalid bitmap skipped"}, messages(hook, logrus.WarnLevel))

	d.PatBlt(0, 0, 100, 100, gdi.Whiteness)
	d.DibBitBlt(nil, 0, 0, 10, 10, 0, 0, gdi.DstInvert)
	assert.Equal(t, black, img.RGBAAt(5, 5))
	assert.Equal(t, white, img.RGBAAt(15, 15))
}

func TestFloodFill(t *testing.T) {
	d, _ := newTestDevice()
	d.PatBlt(0, 0, 100, 100, gdi.Blackness)
	d.PatBlt(10, 10, 80, 80, gdi.Whiteness)
	selectSolid(d, 0x000000FF)
	d.FloodFill(50, 50, 0)
	img := d.Image()
	assert.Equal(t, red, img.RGBAAt(50, 50))
	assert.Equal(t, red, img.RGBAAt(10, 89))
	assert.Equal(t, black, img.RGBAAt(5, 5))

	selectSolid(d, 0x00FF0000)
	d.ExtFloodFill(0, 0, 0, gdi.FloodFillSurface)
	assert.Equal(t, blue, img.RGBAAt(5, 5))
	assert.Equal(t, red, img.RGBAAt(50, 50))

	// the start point does not match
	d.ExtFloodFill(50, 50, 0, gdi.FloodFillSurface)
	assert.Equal(t, red, img.RGBAAt(50, 50))
}

func TestUnsupported(t *testing.T) {
	d, hook := newTestDevice()
	d.TextOut(0, 0, []byte("text"))
	d.RealizePalette()
	d.SelectObject(d.CreateFontIndirect(gdi.LogFont{Height: 10}))
	d.Escape([]byte{1, 2, 3})
	assert.Equal(t, []string{"unsupported operation", "unsupported operation", "escape record ignored"},
		messages(hook, logrus.DebugLevel))
	assert.Empty(t, messages(hook, logrus.WarnLevel))

	d.RestoreDC(-1)
	assert.Equal(t, []string{"no device context to restore"}, messages(hook, logrus.WarnLevel))
}

func TestRenderMetafile(t *testing.T) {
	enc := wmf.NewEncoder(wmf.Options{})
	enc.PlaceableHeader(0, 0, 200, 100, 1440)
	enc.Header()
	enc.SetWindowExtEx(200, 100)
	enc.SelectObject(enc.CreateBrushIndirect(gdi.BsSolid, 0x000000FF, 0))
	enc.SelectObject(enc.CreatePenIndirect(gdi.PsNull, 0, 0))
	enc.Rectangle(0, 0, 100, 100)
	enc.TextOut(10, 10, []byte("ignored"))
	enc.Footer()

	logger, hook := logtest.NewNullLogger()
	d := NewDevice(Options{Width: 100, Height: 100, Logger: logger})
	err := wmf.NewParser(wmf.Options{Logger: logger}).Parse(bytes.NewReader(enc.Bytes()), d)
	require.NoError(t, err)
	assert.Empty(t, messages(hook, logrus.WarnLevel))

	img := d.Image()
	assert.Equal(t, image.Rect(0, 0, 100, 50), img.Bounds())
	assert.Equal(t, red, img.RGBAAt(25, 25))
	assert.Equal(t, transparent, img.RGBAAt(75, 25))
}
