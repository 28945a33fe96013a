// Package gdisvg implements a gdi.Device building an SVG document.
//
// Pens, brushes and fonts are translated to CSS classes (or inline styles),
// deduplicated by value. Regions are stored as reusable rectangles in the defs
// section, and the clip region is rendered with masks. Raster operations
// are emulated with filters, when possible.
package gdisvg

import (
	"bytes"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/benoitkugler/wmfsvg/gdi"
	"github.com/sirupsen/logrus"
)

const (
	svgNamespace   = "http://www.w3.org/2000/svg"
	xlinkNamespace = "http://www.w3.org/1999/xlink"
)

var _ gdi.Device = (*Device)(nil) // assert interface conformance

// Options controls the output document.
type Options struct {
	// Compatible favors renderers with a limited SVG support:
	// texts are always positioned on their alphabetic baseline.
	Compatible bool
	// ReplaceSymbolFont maps the characters of the Symbol font
	// to their Unicode equivalent.
	ReplaceSymbolFont bool
	// UseStyle emits a CSS style sheet and class attributes,
	// instead of inline styles.
	UseStyle bool
	// Properties defaults to DefaultProperties().
	Properties Properties
	// Logger receives the diagnostics. Nil means logrus.StandardLogger().
	Logger logrus.FieldLogger
}

// context is the drawing state saved by SaveDC.
type context struct {
	gdi.DC

	pen     *pen
	brush   *brush
	pattern *patternBrush // takes precedence over brush when not nil
	font    *font
	mask    *node // current clip, or nil
}

// Device builds an SVG document from GDI operations.
// The document is complete after Footer has been called.
type Device struct {
	// palettes and flood fills are not supported
	gdi.Unsupported

	opts  Options
	props Properties
	log   logrus.FieldLogger

	root   *node
	defs   *node
	style  *node // nil without UseStyle
	parent *node // current group

	dc    context
	saved gdi.SaveStack[context]

	classes  map[interface{}]string // style objects to class name
	counters map[string]int         // per id prefix
	patterns map[patternKey]string
	filters  map[uint32]string

	defaultPen   *pen
	defaultBrush *brush
	sized        bool // width and height set by the placeable header
}

// NewDevice returns a device with an empty document.
func NewDevice(opts Options) *Device {
	if opts.Properties == nil {
		opts.Properties = DefaultProperties()
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	d := &Device{
		Unsupported: gdi.Unsupported{Log: log},
		opts:        opts,
		props:       opts.Properties,
		log:         log,
		classes:     map[interface{}]string{},
		counters:    map[string]int{},
		patterns:    map[patternKey]string{},
		filters:     map[uint32]string{},
	}
	d.init()
	return d
}

func (d *Device) init() {
	d.root = newNode("svg", "xmlns", svgNamespace, "xmlns:xlink", xlinkNamespace)
	if d.opts.Compatible {
		d.root.set("version", "1.1")
	}
	d.defs = newNode("defs")
	d.root.add(d.defs)
	if d.opts.UseStyle {
		d.style = newNode("style", "type", "text/css")
		d.root.add(d.style)
	}
	d.parent = newNode("g")
	d.root.add(d.parent)

	d.dc = context{DC: gdi.NewDC()}
	d.defaultBrush = d.CreateBrushIndirect(gdi.BsSolid, 0x00FFFFFF, 0).(*brush)
	d.defaultPen = d.CreatePenIndirect(gdi.PsSolid, 1, 0).(*pen)
	d.dc.brush = d.defaultBrush
	d.dc.pen = d.defaultPen
}

// nextID returns a new document unique identifier.
func (d *Device) nextID(prefix string) string {
	n := d.counters[prefix]
	d.counters[prefix] = n + 1
	return prefix + strconv.Itoa(n)
}

// WriteTo serializes the document, implementing io.WriterTo.
func (d *Device) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	if err := writeDocument(&buf, d.root); err != nil {
		return 0, err
	}
	return buf.WriteTo(w)
}

// Bytes returns the serialized document.
func (d *Device) Bytes() []byte {
	var buf bytes.Buffer
	_ = writeDocument(&buf, d.root) // writing to a buffer does not fail
	return buf.Bytes()
}

func (d *Device) PlaceableHeader(vsx, vsy, vex, vey int16, dpi uint16) {
	width := math.Abs(float64(vex) - float64(vsx))
	height := math.Abs(float64(vey) - float64(vsy))
	d.dc.SetWindowExtEx(int16(width), int16(height))
	d.dc.SetDPI(dpi)
	dpiF := float64(d.dc.DPI())
	d.root.set("width", formatFloat(width/dpiF)+"in")
	d.root.set("height", formatFloat(height/dpiF)+"in")
	d.sized = true
}

// Header does nothing: the document is initialized by NewDevice.
func (d *Device) Header() {}

// Footer sets the size of the document, and removes the empty sections.
func (d *Device) Footer() {
	width, height := abs16(d.dc.WindowWidth), abs16(d.dc.WindowHeight)
	if !d.sized {
		if width != 0 {
			d.root.set("width", strconv.Itoa(width))
		}
		if height != 0 {
			d.root.set("height", strconv.Itoa(height))
		}
	}
	if width != 0 && height != 0 {
		d.root.set("viewBox", "0 0 "+strconv.Itoa(width)+" "+strconv.Itoa(height))
		d.root.set("preserveAspectRatio", "xMidYMid meet")
	}
	d.root.set("stroke-linecap", "round")
	d.root.set("fill-rule", "evenodd")

	if d.style != nil {
		if d.style.isEmpty() {
			d.root.remove(d.style)
		} else {
			d.style.prepend(textNode("\n"))
		}
	}
	if d.defs.isEmpty() {
		d.root.remove(d.defs)
	}
}

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

// RestoreDC restores a saved state and opens a new group
// with its clip.
func (d *Device) RestoreDC(savedDC int16) {
	if state, ok := d.saved.Restore(savedDC); ok {
		d.dc = state
	} else {
		d.log.WithField("saved", savedDC).Warn("no device context to restore")
	}
	d.openGroup(d.dc.mask)
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

// coordinates helpers, truncating toward zero

func (d *Device) absX(x float64) int { return int(d.dc.ToAbsoluteX(x)) }
func (d *Device) absY(y float64) int { return int(d.dc.ToAbsoluteY(y)) }
func (d *Device) relX(x float64) int { return int(d.dc.ToRelativeX(x)) }
func (d *Device) relY(y float64) int { return int(d.dc.ToRelativeY(y)) }

func itoa(v int) string { return strconv.Itoa(v) }

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func abs16(v int16) int {
	if v < 0 {
		return -int(v)
	}
	return int(v)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// points formats a point list as "x,y x,y".
func (d *Device) points(pts []gdi.Point) string {
	var sb strings.Builder
	for i, p := range pts {
		if i != 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(itoa(d.absX(float64(p.X))))
		sb.WriteByte(',')
		sb.WriteString(itoa(d.absY(float64(p.Y))))
	}
	return sb.String()
}
