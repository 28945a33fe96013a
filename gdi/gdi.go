// Package gdi defines the contract between the metafile dispatcher
// and the rendering backends, together with the state shared by the backends:
// the device context (coordinate mapping, text and fill modes, save stack),
// text decoding and device independent bitmap helpers.
//
// The dispatcher (see package wmf) only depends on the Device interface;
// see the packages gdisvg, gdiraster and wmf (Encoder) for implementations.
package gdi

// Kind identifies the variant of a resource object.
type Kind uint8

const (
	PenKind Kind = iota + 1
	BrushKind
	PatternBrushKind
	FontKind
	PaletteKind
	RegionKind
)

func (k Kind) String() string {
	switch k {
	case PenKind:
		return "pen"
	case BrushKind:
		return "brush"
	case PatternBrushKind:
		return "pattern brush"
	case FontKind:
		return "font"
	case PaletteKind:
		return "palette"
	case RegionKind:
		return "region"
	default:
		return "<invalid kind>"
	}
}

// Object is a resource created by a Device. Objects are immutable
// once created; the dispatcher stores them in its handle table and gives them
// back to the Device which created them.
type Object interface {
	Kind() Kind
}

// Point is a point in logical coordinates.
type Point struct{ X, Y int16 }

// LogFont groups the parameters of a font creation.
type LogFont struct {
	Height, Width  int16
	Escapement     int16
	Orientation    int16
	Weight         int16
	Italic         bool
	Underline      bool
	StrikeOut      bool
	Charset        uint8
	OutPrecision   uint8
	ClipPrecision  uint8
	Quality        uint8
	PitchAndFamily uint8
	FaceName       []byte // encoded, usually NUL terminated
}

// Device is the closed set of drawing, state and resource
// operations a backend must implement. Arguments are given in logical
// coordinates and in the order of the Windows API.
//
// Implementations must not panic on operations they do not support:
// logging the call and returning is the expected behavior.
// Object arguments may be nil, or of an unexpected kind, for corrupted inputs.
type Device interface {
	// lifecycle

	PlaceableHeader(vsx, vsy, vex, vey int16, dpi uint16)
	Header()
	Footer()

	// resources

	CreateBrushIndirect(style uint16, color int32, hatch uint16) Object
	CreateFontIndirect(font LogFont) Object
	CreatePalette(version uint16, entries []int32) Object
	CreatePatternBrush(image []byte) Object
	CreatePenIndirect(style uint16, width int16, color int32) Object
	CreateRectRgn(left, top, right, bottom int16) Object
	DibCreatePatternBrush(image []byte, usage int32) Object
	SelectObject(obj Object)
	DeleteObject(obj Object)

	// palettes

	AnimatePalette(palette Object, startIndex uint16, entries []int32)
	RealizePalette()
	ResizePalette(palette Object)
	SelectPalette(palette Object, background bool)
	SetPaletteEntries(palette Object, startIndex uint16, entries []int32)

	// state

	SetBkColor(color int32)
	SetBkMode(mode int16)
	SetLayout(layout uint32)
	SetMapMode(mode int16)
	SetMapperFlags(flags uint32)
	SetPolyFillMode(mode int16)
	SetRelAbs(mode int16)
	SetROP2(mode int16)
	SetStretchBltMode(mode int16)
	SetTextAlign(align int16)
	SetTextCharacterExtra(extra int16)
	SetTextColor(color int32)
	SetTextJustification(breakExtra, breakCount int16)
	SaveDC()
	RestoreDC(savedDC int16)

	// coordinate mapping

	SetWindowOrgEx(x, y int16)
	SetWindowExtEx(width, height int16)
	OffsetWindowOrgEx(x, y int16)
	ScaleWindowExtEx(x, xd, y, yd int16)
	SetViewportOrgEx(x, y int16)
	SetViewportExtEx(x, y int16)
	OffsetViewportOrgEx(x, y int16)
	ScaleViewportExtEx(x, xd, y, yd int16)
	MoveToEx(x, y int16)

	// geometry

	LineTo(ex, ey int16)
	Rectangle(sx, sy, ex, ey int16)
	RoundRect(sx, sy, ex, ey, rw, rh int16)
	Ellipse(sx, sy, ex, ey int16)
	Arc(sxr, syr, exr, eyr, sxa, sya, exa, eya int16)
	Chord(sxr, syr, exr, eyr, sxa, sya, exa, eya int16)
	Pie(sxr, syr, exr, eyr, sxa, sya, exa, eya int16)
	Polygon(points []Point)
	Polyline(points []Point)
	PolyPolygon(polygons [][]Point)
	SetPixel(x, y int16, color int32)
	FloodFill(x, y int16, color int32)
	ExtFloodFill(x, y int16, color int32, fillType uint16)

	// regions and clipping

	SelectClipRgn(rgn Object)
	OffsetClipRgn(x, y int16)
	ExcludeClipRect(left, top, right, bottom int16)
	IntersectClipRect(left, top, right, bottom int16)
	FillRgn(rgn, brush Object)
	FrameRgn(rgn, brush Object, width, height int16)
	InvertRgn(rgn Object)
	PaintRgn(rgn Object)

	// text

	TextOut(x, y int16, text []byte)
	// rect is nil or holds left, top, right, bottom
	ExtTextOut(x, y int16, options uint16, rect []int16, text []byte, dx []int16)

	// raster

	PatBlt(x, y, width, height int16, rop uint32)
	BitBlt(image []byte, dx, dy, dw, dh, sx, sy int16, rop uint32)
	// image is nil for the raster operation only variant
	DibBitBlt(image []byte, dx, dy, dw, dh, sx, sy int16, rop uint32)
	StretchBlt(image []byte, dx, dy, dw, dh, sx, sy, sw, sh int16, rop uint32)
	DibStretchBlt(image []byte, dx, dy, dw, dh, sx, sy, sw, sh int16, rop uint32)
	SetDIBitsToDevice(dx, dy, dw, dh, sx, sy int16, startScan, scanLines uint16, image []byte, colorUse uint16)
	StretchDIBits(dx, dy, dw, dh, sx, sy, sw, sh int16, image []byte, usage uint16, rop uint32)

	// passthrough

	Escape(data []byte)
}
