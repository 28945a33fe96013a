package wmf

import (
	"github.com/benoitkugler/wmfsvg/gdi"
)

// call is one recorded device operation.
// Objects are recorded by creation order.
type call struct {
	Name string
	Args []interface{}
}

type recObject struct {
	kind gdi.Kind
	id   int
}

func (o *recObject) Kind() gdi.Kind { return o.kind }

// recorder is a gdi.Device storing the calls it receives.
type recorder struct {
	calls   []call
	created int
}

var _ gdi.Device = (*recorder)(nil)

func (r *recorder) add(name string, args ...interface{}) {
	r.calls = append(r.calls, call{Name: name, Args: args})
}

func (r *recorder) names() []string {
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.Name
	}
	return out
}

func (r *recorder) create(kind gdi.Kind, name string, args ...interface{}) gdi.Object {
	r.created++
	r.add(name, args...)
	return &recObject{kind: kind, id: r.created}
}

func objID(obj gdi.Object) int {
	if o, ok := obj.(*recObject); ok && o != nil {
		return o.id
	}
	return -1
}

func (r *recorder) PlaceableHeader(vsx, vsy, vex, vey int16, dpi uint16) {
	r.add("PlaceableHeader", vsx, vsy, vex, vey, dpi)
}
func (r *recorder) Header() { r.add("Header") }
func (r *recorder) Footer() { r.add("Footer") }

func (r *recorder) CreateBrushIndirect(style uint16, color int32, hatch uint16) gdi.Object {
	return r.create(gdi.BrushKind, "CreateBrushIndirect", style, color, hatch)
}

func (r *recorder) CreateFontIndirect(font gdi.LogFont) gdi.Object {
	return r.create(gdi.FontKind, "CreateFontIndirect", font)
}

func (r *recorder) CreatePalette(version uint16, entries []int32) gdi.Object {
	return r.create(gdi.PaletteKind, "CreatePalette", version, entries)
}

func (r *recorder) CreatePatternBrush(image []byte) gdi.Object {
	return r.create(gdi.PatternBrushKind, "CreatePatternBrush", image)
}

func (r *recorder) CreatePenIndirect(style uint16, width int16, color int32) gdi.Object {
	return r.create(gdi.PenKind, "CreatePenIndirect", style, width, color)
}

func (r *recorder) CreateRectRgn(left, top, right, bottom int16) gdi.Object {
	return r.create(gdi.RegionKind, "CreateRectRgn", left, top, right, bottom)
}

func (r *recorder) DibCreatePatternBrush(image []byte, usage int32) gdi.Object {
	return r.create(gdi.PatternBrushKind, "DibCreatePatternBrush", image, usage)
}

func (r *recorder) SelectObject(obj gdi.Object) { r.add("SelectObject", objID(obj)) }
func (r *recorder) DeleteObject(obj gdi.Object) { r.add("DeleteObject", objID(obj)) }

func (r *recorder) AnimatePalette(palette gdi.Object, startIndex uint16, entries []int32) {
	r.add("AnimatePalette", objID(palette), startIndex, entries)
}
func (r *recorder) RealizePalette()                  { r.add("RealizePalette") }
func (r *recorder) ResizePalette(palette gdi.Object) { r.add("ResizePalette", objID(palette)) }
func (r *recorder) SelectPalette(palette gdi.Object, background bool) {
	r.add("SelectPalette", objID(palette), background)
}
func (r *recorder) SetPaletteEntries(palette gdi.Object, startIndex uint16, entries []int32) {
	r.add("SetPaletteEntries", objID(palette), startIndex, entries)
}

func (r *recorder) SetBkColor(color int32)            { r.add("SetBkColor", color) }
func (r *recorder) SetBkMode(mode int16)              { r.add("SetBkMode", mode) }
func (r *recorder) SetLayout(layout uint32)           { r.add("SetLayout", layout) }
func (r *recorder) SetMapMode(mode int16)             { r.add("SetMapMode", mode) }
func (r *recorder) SetMapperFlags(flags uint32)       { r.add("SetMapperFlags", flags) }
func (r *recorder) SetPolyFillMode(mode int16)        { r.add("SetPolyFillMode", mode) }
func (r *recorder) SetRelAbs(mode int16)              { r.add("SetRelAbs", mode) }
func (r *recorder) SetROP2(mode int16)                { r.add("SetROP2", mode) }
func (r *recorder) SetStretchBltMode(mode int16)      { r.add("SetStretchBltMode", mode) }
func (r *recorder) SetTextAlign(align int16)          { r.add("SetTextAlign", align) }
func (r *recorder) SetTextCharacterExtra(extra int16) { r.add("SetTextCharacterExtra", extra) }
func (r *recorder) SetTextColor(color int32)          { r.add("SetTextColor", color) }
func (r *recorder) SetTextJustification(breakExtra, breakCount int16) {
	r.add("SetTextJustification", breakExtra, breakCount)
}
func (r *recorder) SaveDC()                 { r.add("SaveDC") }
func (r *recorder) RestoreDC(savedDC int16) { r.add("RestoreDC", savedDC) }

func (r *recorder) SetWindowOrgEx(x, y int16)          { r.add("SetWindowOrgEx", x, y) }
func (r *recorder) SetWindowExtEx(width, height int16) { r.add("SetWindowExtEx", width, height) }
func (r *recorder) OffsetWindowOrgEx(x, y int16)       { r.add("OffsetWindowOrgEx", x, y) }
func (r *recorder) ScaleWindowExtEx(x, xd, y, yd int16) {
	r.add("ScaleWindowExtEx", x, xd, y, yd)
}
func (r *recorder) SetViewportOrgEx(x, y int16)    { r.add("SetViewportOrgEx", x, y) }
func (r *recorder) SetViewportExtEx(x, y int16)    { r.add("SetViewportExtEx", x, y) }
func (r *recorder) OffsetViewportOrgEx(x, y int16) { r.add("OffsetViewportOrgEx", x, y) }
func (r *recorder) ScaleViewportExtEx(x, xd, y, yd int16) {
	r.add("ScaleViewportExtEx", x, xd, y, yd)
}
func (r *recorder) MoveToEx(x, y int16) { r.add("MoveToEx", x, y) }

func (r *recorder) LineTo(ex, ey int16)            { r.add("LineTo", ex, ey) }
func (r *recorder) Rectangle(sx, sy, ex, ey int16) { r.add("Rectangle", sx, sy, ex, ey) }
func (r *recorder) RoundRect(sx, sy, ex, ey, rw, rh int16) {
	r.add("RoundRect", sx, sy, ex, ey, rw, rh)
}
func (r *recorder) Ellipse(sx, sy, ex, ey int16) { r.add("Ellipse", sx, sy, ex, ey) }
func (r *recorder) Arc(sxr, syr, exr, eyr, sxa, sya, exa, eya int16) {
	r.add("Arc", sxr, syr, exr, eyr, sxa, sya, exa, eya)
}
func (r *recorder) Chord(sxr, syr, exr, eyr, sxa, sya, exa, eya int16) {
	r.add("Chord", sxr, syr, exr, eyr, sxa, sya, exa, eya)
}
func (r *recorder) Pie(sxr, syr, exr, eyr, sxa, sya, exa, eya int16) {
	r.add("Pie", sxr, syr, exr, eyr, sxa, sya, exa, eya)
}
func (r *recorder) Polygon(points []gdi.Point)         { r.add("Polygon", points) }
func (r *recorder) Polyline(points []gdi.Point)        { r.add("Polyline", points) }
func (r *recorder) PolyPolygon(polygons [][]gdi.Point) { r.add("PolyPolygon", polygons) }
func (r *recorder) SetPixel(x, y int16, color int32)   { r.add("SetPixel", x, y, color) }
func (r *recorder) FloodFill(x, y int16, color int32)  { r.add("FloodFill", x, y, color) }
func (r *recorder) ExtFloodFill(x, y int16, color int32, fillType uint16) {
	r.add("ExtFloodFill", x, y, color, fillType)
}

func (r *recorder) SelectClipRgn(rgn gdi.Object) { r.add("SelectClipRgn", objID(rgn)) }
func (r *recorder) OffsetClipRgn(x, y int16)     { r.add("OffsetClipRgn", x, y) }
func (r *recorder) ExcludeClipRect(left, top, right, bottom int16) {
	r.add("ExcludeClipRect", left, top, right, bottom)
}
func (r *recorder) IntersectClipRect(left, top, right, bottom int16) {
	r.add("IntersectClipRect", left, top, right, bottom)
}
func (r *recorder) FillRgn(rgn, brush gdi.Object) { r.add("FillRgn", objID(rgn), objID(brush)) }
func (r *recorder) FrameRgn(rgn, brush gdi.Object, width, height int16) {
	r.add("FrameRgn", objID(rgn), objID(brush), width, height)
}
func (r *recorder) InvertRgn(rgn gdi.Object) { r.add("InvertRgn", objID(rgn)) }
func (r *recorder) PaintRgn(rgn gdi.Object)  { r.add("PaintRgn", objID(rgn)) }

func (r *recorder) TextOut(x, y int16, text []byte) { r.add("TextOut", x, y, text) }
func (r *recorder) ExtTextOut(x, y int16, options uint16, rect []int16, text []byte, dx []int16) {
	r.add("ExtTextOut", x, y, options, rect, text, dx)
}

func (r *recorder) PatBlt(x, y, width, height int16, rop uint32) {
	r.add("PatBlt", x, y, width, height, rop)
}
func (r *recorder) BitBlt(image []byte, dx, dy, dw, dh, sx, sy int16, rop uint32) {
	r.add("BitBlt", image, dx, dy, dw, dh, sx, sy, rop)
}
func (r *recorder) DibBitBlt(image []byte, dx, dy, dw, dh, sx, sy int16, rop uint32) {
	r.add("DibBitBlt", image, dx, dy, dw, dh, sx, sy, rop)
}
func (r *recorder) StretchBlt(image []byte, dx, dy, dw, dh, sx, sy, sw, sh int16, rop uint32) {
	r.add("StretchBlt", image, dx, dy, dw, dh, sx, sy, sw, sh, rop)
}
func (r *recorder) DibStretchBlt(image []byte, dx, dy, dw, dh, sx, sy, sw, sh int16, rop uint32) {
	r.add("DibStretchBlt", image, dx, dy, dw, dh, sx, sy, sw, sh, rop)
}
func (r *recorder) SetDIBitsToDevice(dx, dy, dw, dh, sx, sy int16, startScan, scanLines uint16, image []byte, colorUse uint16) {
	r.add("SetDIBitsToDevice", dx, dy, dw, dh, sx, sy, startScan, scanLines, image, colorUse)
}
func (r *recorder) StretchDIBits(dx, dy, dw, dh, sx, sy, sw, sh int16, image []byte, usage uint16, rop uint32) {
	r.add("StretchDIBits", dx, dy, dw, dh, sx, sy, sw, sh, image, usage, rop)
}

func (r *recorder) Escape(data []byte) { r.add("Escape", data) }
