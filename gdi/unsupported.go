package gdi

import "github.com/sirupsen/logrus"

var _ Device = Unsupported{} // assert interface conformance

// Unsupported implements Device by logging each call and doing nothing.
// Backends supporting only a subset of the operations may embed it
// and override the methods they handle.
type Unsupported struct {
	Log logrus.FieldLogger // nil for the standard logger
}

func (u Unsupported) skip(op string) {
	log := u.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	log.WithField("op", op).Debug("unsupported operation")
}

func (u Unsupported) PlaceableHeader(vsx, vsy, vex, vey int16, dpi uint16) {
	u.skip("PlaceableHeader")
}
func (u Unsupported) Header() { u.skip("Header") }
func (u Unsupported) Footer() { u.skip("Footer") }

func (u Unsupported) CreateBrushIndirect(style uint16, color int32, hatch uint16) Object {
	u.skip("CreateBrushIndirect")
	return nil
}

func (u Unsupported) CreateFontIndirect(font LogFont) Object {
	u.skip("CreateFontIndirect")
	return nil
}

func (u Unsupported) CreatePalette(version uint16, entries []int32) Object {
	u.skip("CreatePalette")
	return nil
}

func (u Unsupported) CreatePatternBrush(image []byte) Object {
	u.skip("CreatePatternBrush")
	return nil
}

func (u Unsupported) CreatePenIndirect(style uint16, width int16, color int32) Object {
	u.skip("CreatePenIndirect")
	return nil
}

func (u Unsupported) CreateRectRgn(left, top, right, bottom int16) Object {
	u.skip("CreateRectRgn")
	return nil
}

func (u Unsupported) DibCreatePatternBrush(image []byte, usage int32) Object {
	u.skip("DibCreatePatternBrush")
	return nil
}

func (u Unsupported) SelectObject(obj Object) { u.skip("SelectObject") }
func (u Unsupported) DeleteObject(obj Object) { u.skip("DeleteObject") }

func (u Unsupported) AnimatePalette(palette Object, startIndex uint16, entries []int32) {
	u.skip("AnimatePalette")
}
func (u Unsupported) RealizePalette()              { u.skip("RealizePalette") }
func (u Unsupported) ResizePalette(palette Object) { u.skip("ResizePalette") }
func (u Unsupported) SelectPalette(palette Object, background bool) {
	u.skip("SelectPalette")
}
func (u Unsupported) SetPaletteEntries(palette Object, startIndex uint16, entries []int32) {
	u.skip("SetPaletteEntries")
}

func (u Unsupported) SetBkColor(color int32)            { u.skip("SetBkColor") }
func (u Unsupported) SetBkMode(mode int16)              { u.skip("SetBkMode") }
func (u Unsupported) SetLayout(layout uint32)           { u.skip("SetLayout") }
func (u Unsupported) SetMapMode(mode int16)             { u.skip("SetMapMode") }
func (u Unsupported) SetMapperFlags(flags uint32)       { u.skip("SetMapperFlags") }
func (u Unsupported) SetPolyFillMode(mode int16)        { u.skip("SetPolyFillMode") }
func (u Unsupported) SetRelAbs(mode int16)              { u.skip("SetRelAbs") }
func (u Unsupported) SetROP2(mode int16)                { u.skip("SetROP2") }
func (u Unsupported) SetStretchBltMode(mode int16)      { u.skip("SetStretchBltMode") }
func (u Unsupported) SetTextAlign(align int16)          { u.skip("SetTextAlign") }
func (u Unsupported) SetTextCharacterExtra(extra int16) { u.skip("SetTextCharacterExtra") }
func (u Unsupported) SetTextColor(color int32)          { u.skip("SetTextColor") }
func (u Unsupported) SetTextJustification(breakExtra, breakCount int16) {
	u.skip("SetTextJustification")
}
func (u Unsupported) SaveDC()                 { u.skip("SaveDC") }
func (u Unsupported) RestoreDC(savedDC int16) { u.skip("RestoreDC") }

func (u Unsupported) SetWindowOrgEx(x, y int16)              { u.skip("SetWindowOrgEx") }
func (u Unsupported) SetWindowExtEx(width, height int16)     { u.skip("SetWindowExtEx") }
func (u Unsupported) OffsetWindowOrgEx(x, y int16)           { u.skip("OffsetWindowOrgEx") }
func (u Unsupported) ScaleWindowExtEx(x, xd, y, yd int16)    { u.skip("ScaleWindowExtEx") }
func (u Unsupported) SetViewportOrgEx(x, y int16)            { u.skip("SetViewportOrgEx") }
func (u Unsupported) SetViewportExtEx(x, y int16)            { u.skip("SetViewportExtEx") }
func (u Unsupported) OffsetViewportOrgEx(x, y int16)         { u.skip("OffsetViewportOrgEx") }
func (u Unsupported) ScaleViewportExtEx(x, xd, y, yd int16)  { u.skip("ScaleViewportExtEx") }
func (u Unsupported) MoveToEx(x, y int16)                    { u.skip("MoveToEx") }
func (u Unsupported) LineTo(ex, ey int16)                    { u.skip("LineTo") }
func (u Unsupported) Rectangle(sx, sy, ex, ey int16)         { u.skip("Rectangle") }
func (u Unsupported) RoundRect(sx, sy, ex, ey, rw, rh int16) { u.skip("RoundRect") }
func (u Unsupported) Ellipse(sx, sy, ex, ey int16)           { u.skip("Ellipse") }

func (u Unsupported) Arc(sxr, syr, exr, eyr, sxa, sya, exa, eya int16) { u.skip("Arc") }

func (u Unsupported) Chord(sxr, syr, exr, eyr, sxa, sya, exa, eya int16) {
	u.skip("Chord")
}
func (u Unsupported) Pie(sxr, syr, exr, eyr, sxa, sya, exa, eya int16) { u.skip("Pie") }

func (u Unsupported) Polygon(points []Point)           { u.skip("Polygon") }
func (u Unsupported) Polyline(points []Point)          { u.skip("Polyline") }
func (u Unsupported) PolyPolygon(polygons [][]Point)   { u.skip("PolyPolygon") }
func (u Unsupported) SetPixel(x, y int16, color int32) { u.skip("SetPixel") }
func (u Unsupported) FloodFill(x, y int16, color int32) {
	u.skip("FloodFill")
}
func (u Unsupported) ExtFloodFill(x, y int16, color int32, fillType uint16) {
	u.skip("ExtFloodFill")
}

func (u Unsupported) SelectClipRgn(rgn Object)        { u.skip("SelectClipRgn") }
func (u Unsupported) OffsetClipRgn(x, y int16)        { u.skip("OffsetClipRgn") }
func (u Unsupported) FillRgn(rgn, brush Object)       { u.skip("FillRgn") }
func (u Unsupported) InvertRgn(rgn Object)            { u.skip("InvertRgn") }
func (u Unsupported) PaintRgn(rgn Object)             { u.skip("PaintRgn") }
func (u Unsupported) TextOut(x, y int16, text []byte) { u.skip("TextOut") }
func (u Unsupported) ExcludeClipRect(left, top, right, bottom int16) {
	u.skip("ExcludeClipRect")
}
func (u Unsupported) IntersectClipRect(left, top, right, bottom int16) {
	u.skip("IntersectClipRect")
}
func (u Unsupported) FrameRgn(rgn, brush Object, width, height int16) {
	u.skip("FrameRgn")
}

func (u Unsupported) ExtTextOut(x, y int16, options uint16, rect []int16, text []byte, dx []int16) {
	u.skip("ExtTextOut")
}

func (u Unsupported) PatBlt(x, y, width, height int16, rop uint32) { u.skip("PatBlt") }

func (u Unsupported) BitBlt(image []byte, dx, dy, dw, dh, sx, sy int16, rop uint32) {
	u.skip("BitBlt")
}

func (u Unsupported) DibBitBlt(image []byte, dx, dy, dw, dh, sx, sy int16, rop uint32) {
	u.skip("DibBitBlt")
}

func (u Unsupported) StretchBlt(image []byte, dx, dy, dw, dh, sx, sy, sw, sh int16, rop uint32) {
	u.skip("StretchBlt")
}

func (u Unsupported) DibStretchBlt(image []byte, dx, dy, dw, dh, sx, sy, sw, sh int16, rop uint32) {
	u.skip("DibStretchBlt")
}

func (u Unsupported) SetDIBitsToDevice(dx, dy, dw, dh, sx, sy int16, startScan, scanLines uint16, image []byte, colorUse uint16) {
	u.skip("SetDIBitsToDevice")
}

func (u Unsupported) StretchDIBits(dx, dy, dw, dh, sx, sy, sw, sh int16, image []byte, usage uint16, rop uint32) {
	u.skip("StretchDIBits")
}

func (u Unsupported) Escape(data []byte) { u.skip("Escape") }
