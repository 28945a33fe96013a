package gdisvg

import (
	"strconv"
	"strings"

	"github.com/benoitkugler/wmfsvg/gdi"
)

// styled objects expose a CSS declaration block and a class name
type styled interface {
	className() string
	css() string
}

type penKey struct {
	style uint16
	width int16
	color int32
}

type pen struct {
	penKey
	class string
}

func (*pen) Kind() gdi.Kind      { return gdi.PenKind }
func (p *pen) className() string { return p.class }

func (p *pen) css() string {
	if p.style == gdi.PsNull {
		return "stroke: none; "
	}
	var sb strings.Builder
	sb.WriteString("stroke: " + colorString(p.color) + "; ")
	sb.WriteString("stroke-width: " + strconv.Itoa(int(p.width)) + "; ")
	sb.WriteString("stroke-linejoin: round; ")
	if p.width == 1 {
		switch p.style {
		case gdi.PsDash:
			sb.WriteString("stroke-dasharray: 18,6; ")
		case gdi.PsDot:
			sb.WriteString("stroke-dasharray: 3,3; ")
		case gdi.PsDashDot:
			sb.WriteString("stroke-dasharray: 9,3,3,3; ")
		case gdi.PsDashDotDot:
			sb.WriteString("stroke-dasharray: 9,3,3,3,3,3; ")
		}
	}
	return sb.String()
}

type brushKey struct {
	style uint16
	color int32
	hatch uint16
}

type brush struct {
	brushKey
	class string
}

func (*brush) Kind() gdi.Kind      { return gdi.BrushKind }
func (b *brush) className() string { return b.class }

func (b *brush) css() string {
	switch b.style {
	case gdi.BsSolid:
		return "fill: " + colorString(b.color) + "; "
	case gdi.BsHatched: // see hatchPattern
		return ""
	default:
		return "fill: none; "
	}
}

type patternBrush struct {
	image []byte // device independent bitmap
	usage int32
	id    string // of the pattern element, set on first use
}

func (*patternBrush) Kind() gdi.Kind { return gdi.PatternBrushKind }

type palette struct {
	version uint16
	entries []int32
}

func (*palette) Kind() gdi.Kind { return gdi.PaletteKind }

type fontKey struct {
	height, width, escapement, orientation, weight int16
	italic, underline, strikeOut                   bool
	charset, outPrecision, clipPrecision, quality  uint8
	pitchAndFamily                                 uint8
	faceName                                       string
}

type font struct {
	fontKey
	face     string // decoded
	cs       uint8  // possibly forced by the properties
	lang     string
	size     int // in output units
	vertical bool
	class    string
	style    string
}

func (*font) Kind() gdi.Kind      { return gdi.FontKind }
func (f *font) className() string { return f.class }
func (f *font) css() string       { return f.style }

// rotation returns the escapement of the text, in tenths of degrees.
func (f *font) rotation() int {
	if f.vertical {
		return int(f.fontKey.escapement) - 2700
	}
	return int(f.fontKey.escapement)
}

type region struct {
	left, top, right, bottom int16
	id                       string
}

func (*region) Kind() gdi.Kind { return gdi.RegionKind }

// colorString formats a COLORREF, using the basic keywords when possible.
func colorString(c int32) string {
	switch uint32(c) {
	case 0x00000000, 0xff000000:
		return "black"
	case 0x00ffffff, 0xffffffff:
		return "white"
	case 0x000000ff, 0xff0000ff:
		return "red"
	case 0x0000ff00, 0xff00ff00:
		return "green"
	case 0x00ff0000, 0xffff0000:
		return "blue"
	}
	r, g, b := gdi.RGB(c)
	return "rgb(" + strconv.Itoa(int(r)) + "," + strconv.Itoa(int(g)) + "," + strconv.Itoa(int(b)) + ")"
}

// register returns the class name of a style object, defined once
// for each distinct `key`.
func (d *Device) register(prefix string, key interface{}, css string) string {
	if name, ok := d.classes[key]; ok {
		return name
	}
	name := d.nextID(prefix)
	d.classes[key] = name
	if d.style != nil {
		d.style.add(textNode("." + name + " { " + strings.TrimSpace(css) + " }\n"))
	}
	return name
}

func (d *Device) CreatePenIndirect(style uint16, width int16, color int32) gdi.Object {
	if width < 1 {
		width = 1
	}
	p := &pen{penKey: penKey{style: style, width: width, color: color}}
	p.class = d.register("pen", p.penKey, p.css())
	return p
}

func (d *Device) CreateBrushIndirect(style uint16, color int32, hatch uint16) gdi.Object {
	b := &brush{brushKey: brushKey{style: style, color: color, hatch: hatch}}
	b.class = d.register("brush", b.brushKey, b.css())
	return b
}

func (d *Device) CreatePatternBrush(image []byte) gdi.Object {
	return &patternBrush{image: image, usage: gdi.DibRGBColors}
}

func (d *Device) DibCreatePatternBrush(image []byte, usage int32) gdi.Object {
	return &patternBrush{image: image, usage: usage}
}

func (d *Device) CreatePalette(version uint16, entries []int32) gdi.Object {
	return &palette{version: version, entries: entries}
}

func (d *Device) CreateFontIndirect(lf gdi.LogFont) gdi.Object {
	key := fontKey{
		height: lf.Height, width: lf.Width, escapement: lf.Escapement, orientation: lf.Orientation,
		weight: lf.Weight, italic: lf.Italic, underline: lf.Underline, strikeOut: lf.StrikeOut,
		charset: lf.Charset, outPrecision: lf.OutPrecision, clipPrecision: lf.ClipPrecision,
		quality: lf.Quality, pitchAndFamily: lf.PitchAndFamily, faceName: string(lf.FaceName),
	}
	f := &font{fontKey: key, cs: lf.Charset, lang: gdi.Language(lf.Charset)}
	f.face = gdi.DecodeText(lf.FaceName, lf.Charset)
	f.vertical = strings.HasPrefix(f.face, "@")
	if cs, ok := d.props.FontCharset(f.face); ok {
		f.cs = cs
	}
	mult := 1.
	if m, ok := d.props.FontEmHeight(f.face); ok {
		mult = m
	}
	f.size = absInt(int(int16(d.dc.ToRelativeY(float64(lf.Height) * mult))))
	f.style = d.fontStyle(f)
	f.class = d.register("font", key, f.style)
	return f
}

// fontStyle returns the CSS declarations for `f`.
func (d *Device) fontStyle(f *font) string {
	var sb strings.Builder
	if f.italic {
		sb.WriteString("font-style: italic; ")
	}
	if w := f.weight; w != gdi.FwDontCare && w != gdi.FwNormal {
		switch {
		case w < 100:
			w = 100
		case w > 900:
			w = 900
		default:
			w = w / 100 * 100
		}
		if w == gdi.FwBold {
			sb.WriteString("font-weight: bold; ")
		} else {
			sb.WriteString("font-weight: " + strconv.Itoa(int(w)) + "; ")
		}
	}
	if f.size != 0 {
		sb.WriteString("font-size: " + strconv.Itoa(f.size) + "px; ")
	}

	var families []string
	if face := strings.TrimPrefix(f.face, "@"); face != "" {
		families = append(families, face)
		if alt := d.props.AlternativeFont(face); alt != "" {
			families = append(families, alt)
		}
	}
	switch f.pitchAndFamily & 0xF0 {
	case gdi.FfDecorative:
		families = append(families, "fantasy")
	case gdi.FfModern:
		families = append(families, "monospace")
	case gdi.FfRoman:
		families = append(families, "serif")
	case gdi.FfScript:
		families = append(families, "cursive")
	case gdi.FfSwiss:
		families = append(families, "sans-serif")
	}
	if len(families) != 0 {
		for i, fam := range families {
			if strings.Contains(fam, " ") {
				families[i] = `"` + fam + `"`
			}
		}
		sb.WriteString("font-family: " + strings.Join(families, ", ") + "; ")
	}

	if f.underline || f.strikeOut {
		sb.WriteString("text-decoration:")
		if f.underline {
			sb.WriteString(" underline")
		}
		if f.strikeOut {
			sb.WriteString(" line-through")
		}
		sb.WriteString("; ")
	}
	return sb.String()
}

func (d *Device) CreateRectRgn(left, top, right, bottom int16) gdi.Object {
	rgn := &region{left: left, top: top, right: right, bottom: bottom}
	key := [4]int16{left, top, right, bottom}
	if id, ok := d.classes[key]; ok {
		rgn.id = id
		return rgn
	}
	rgn.id = d.nextID("rgn")
	d.classes[key] = rgn.id
	d.defs.add(d.rect(left, top, right, bottom).set("id", rgn.id))
	return rgn
}

// rect returns a rect element, normalizing negative sizes.
func (d *Device) rect(left, top, right, bottom int16) *node {
	x, y := d.absX(float64(left)), d.absY(float64(top))
	w := d.relX(float64(right) - float64(left))
	h := d.relY(float64(bottom) - float64(top))
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	return newNode("rect", "x", itoa(x), "y", itoa(y), "width", itoa(w), "height", itoa(h))
}

func (d *Device) SelectObject(obj gdi.Object) {
	switch obj := obj.(type) {
	case *pen:
		d.dc.pen = obj
	case *brush:
		d.dc.brush, d.dc.pattern = obj, nil
	case *patternBrush:
		d.dc.pattern = obj
	case *font:
		d.dc.font = obj
	default:
		d.log.WithField("kind", kindOf(obj)).Warn("object can't be selected")
	}
}

// DeleteObject restores the default object if `obj` is selected.
func (d *Device) DeleteObject(obj gdi.Object) {
	switch obj {
	case d.dc.pen:
		d.dc.pen = d.defaultPen
	case d.dc.brush:
		d.dc.brush = d.defaultBrush
	case d.dc.pattern:
		d.dc.pattern = nil
	case d.dc.font:
		d.dc.font = nil
	}
}

func kindOf(obj gdi.Object) string {
	if obj == nil {
		return "<nil>"
	}
	return obj.Kind().String()
}
