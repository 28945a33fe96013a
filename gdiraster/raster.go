// Package gdiraster implements a gdi.Device painting into an image,
// by wrapping rasterx.
//
// It is meant for previews and thumbnails: texts, palettes and the
// raster operations mixing source and destination are not rendered,
// and the clip region is reduced to its bounding rectangle.
package gdiraster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/benoitkugler/wmfsvg/gdi"
	"github.com/sirupsen/logrus"
)

// DefaultSize bounds the output image when Options
// does not specify a size.
const DefaultSize = 1024

var _ gdi.Device = (*Device)(nil) // assert interface conformance

// Options controls the output image.
type Options struct {
	// Width and Height bound the size of the image, in pixels.
	// The picture is scaled to fit, preserving its aspect ratio.
	// Zero means DefaultSize.
	Width, Height int
	// Background is painted before any drawing. Nil means transparent.
	Background color.Color
	// Logger receives the diagnostics. Nil means logrus.StandardLogger().
	Logger logrus.FieldLogger
}

// context is the drawing state saved by SaveDC.
type context struct {
	gdi.DC

	pen     *pen
	brush   *brush
	pattern *patternBrush // takes precedence over brush when not nil

	// clip rectangle, in pixels, before the clip offset
	clip    image.Rectangle
	clipped bool
}

// Device paints GDI operations into an RGBA image.
type Device struct {
	// texts and palettes are not supported
	gdi.Unsupported

	opts Options
	log  logrus.FieldLogger

	img   *image.RGBA // allocated on the first drawing
	rd    *renderer
	scale float64 // from output units to pixels

	dc    context
	saved gdi.SaveStack[context]

	defaultPen   *pen
	defaultBrush *brush
}

// NewDevice returns a device with the default drawing state.
func NewDevice(opts Options) *Device {
	if opts.Width <= 0 {
		opts.Width = DefaultSize
	}
	if opts.Height <= 0 {
		opts.Height = DefaultSize
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	d := &Device{
		Unsupported: gdi.Unsupported{Log: log},
		opts:        opts,
		log:         log,
		scale:       1,
	}
	d.defaultPen = &pen{style: gdi.PsSolid, width: 1}
	d.defaultBrush = &brush{style: gdi.BsSolid, color: 0x00FFFFFF}
	d.dc = context{DC: gdi.NewDC(), pen: d.defaultPen, brush: d.defaultBrush}
	return d
}

// canvas returns the renderer, allocating the image the first time,
// once the window extent is known.
func (d *Device) canvas() *renderer {
	if d.rd != nil {
		return d.rd
	}
	width, height := float64(d.opts.Width), float64(d.opts.Height)
	ww, wh := math.Abs(float64(d.dc.WindowWidth)), math.Abs(float64(d.dc.WindowHeight))
	if ww != 0 && wh != 0 {
		d.scale = math.Min(width/ww, height/wh)
		width, height = math.Ceil(ww*d.scale), math.Ceil(wh*d.scale)
	}
	d.img = image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	if d.opts.Background != nil {
		draw.Draw(d.img, d.img.Bounds(), image.NewUniform(d.opts.Background), image.Point{}, draw.Src)
	}
	d.rd = newRenderer(d.img)
	d.applyClip()
	return d.rd
}

// Image returns the painted image.
func (d *Device) Image() *image.RGBA {
	d.canvas()
	return d.img
}

// WriteTo encodes the image as PNG, implementing io.WriterTo.
func (d *Device) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	err := png.Encode(cw, d.Image())
	return cw.n, err
}

type countWriter struct {
	w io.Writer
	n int64
}

func (cw *countWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// PlaceableHeader sets the window extent used to size the image.
func (d *Device) PlaceableHeader(vsx, vsy, vex, vey int16, dpi uint16) {
	width := math.Abs(float64(vex) - float64(vsx))
	height := math.Abs(float64(vey) - float64(vsy))
	d.dc.SetWindowExtEx(int16(width), int16(height))
	d.dc.SetDPI(dpi)
}

func (d *Device) Header() {}

// Footer makes sure the image is allocated, even for an empty metafile.
func (d *Device) Footer() { d.canvas() }

// state

func (d *Device) SetBkColor(color int32)            { d.dc.BkColor = color }
func (d *Device) SetBkMode(mode int16)              { d.dc.BkMode = mode }
func (d *Device) SetLayout(layout uint32)           { d.dc.Layout = layout }
func (d *Device) SetMapMode(mode int16)             { d.dc.SetMapMode(mode) }
func (d *Device) SetMapperFlags(flags uint32)       { d.dc.MapperFlags = flags }
func (d *Device) SetPolyFillMode(mode int16)        { d.dc.PolyFillMode = mode }
func (d *Device) SetRelAbs(mode int16)              { d.dc.RelAbs = mode }
func (d *Device) SetROP2(mode int16)                { d.dc.ROP2 = mode }
func (d *Device) SetStretchBltMode(mode int16)      { d.dc.StretchBltMode = mode }
func (d *Device) SetTextAlign(align int16)          { d.dc.TextAlign = align }
func (d *Device) SetTextCharacterExtra(extra int16) { d.dc.TextCharacterExtra = extra }
func (d *Device) SetTextColor(color int32)          { d.dc.TextColor = color }

func (d *Device) SetTextJustification(breakExtra, breakCount int16) {
	d.dc.SetTextJustification(breakExtra, breakCount)
}

func (d *Device) SaveDC() { d.saved.Push(d.dc) }

func (d *Device) RestoreDC(savedDC int16) {
	state, ok := d.saved.Restore(savedDC)
	if !ok {
		d.log.WithField("saved", savedDC).Warn("no device context to restore")
		return
	}
	d.dc = state
	d.applyClip()
}

// coordinate mapping

func (d *Device) SetWindowOrgEx(x, y int16)             { d.dc.SetWindowOrgEx(x, y) }
func (d *Device) SetWindowExtEx(width, height int16)    { d.dc.SetWindowExtEx(width, height) }
func (d *Device) OffsetWindowOrgEx(x, y int16)          { d.dc.OffsetWindowOrgEx(x, y) }
func (d *Device) ScaleWindowExtEx(x, xd, y, yd int16)   { d.dc.ScaleWindowExtEx(x, xd, y, yd) }
func (d *Device) SetViewportOrgEx(x, y int16)           { d.dc.SetViewportOrgEx(x, y) }
func (d *Device) SetViewportExtEx(x, y int16)           { d.dc.SetViewportExtEx(x, y) }
func (d *Device) OffsetViewportOrgEx(x, y int16)        { d.dc.OffsetViewportOrgEx(x, y) }
func (d *Device) ScaleViewportExtEx(x, xd, y, yd int16) { d.dc.ScaleViewportExtEx(x, xd, y, yd) }
func (d *Device) MoveToEx(x, y int16)                   { d.dc.MoveToEx(x, y) }

// Escape records are ignored.
func (d *Device) Escape(data []byte) {
	d.log.WithField("size", len(data)).Debug("escape record ignored")
}

// pixel coordinates, valid once the canvas is allocated

func (d *Device) px(x int16) float64 { return d.dc.ToAbsoluteX(float64(x)) * d.scale }
func (d *Device) py(y int16) float64 { return d.dc.ToAbsoluteY(float64(y)) * d.scale }

func (d *Device) lengthX(x float64) float64 { return math.Abs(d.dc.ToRelativeX(x)) * d.scale }
func (d *Device) lengthY(y float64) float64 { return math.Abs(d.dc.ToRelativeY(y)) * d.scale }

// pixelRect maps a logical rectangle to the pixel grid.
func (d *Device) pixelRect(left, top, right, bottom int16) image.Rectangle {
	return image.Rect(
		int(math.Round(d.px(left))), int(math.Round(d.py(top))),
		int(math.Round(d.px(right))), int(math.Round(d.py(bottom))),
	)
}
