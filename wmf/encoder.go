package wmf

import (
	"encoding/binary"
	"io"

	"github.com/benoitkugler/wmfsvg/gdi"
	"github.com/benoitkugler/wmfsvg/wmfio"
	"github.com/sirupsen/logrus"
)

const metafileVersion = 0x0300

// encodedObject is the object returned by the Encoder.
// It remembers the slot it occupies in the handle table
// the decoder will build.
type encodedObject struct {
	kind   gdi.Kind
	handle uint16
}

func (o *encodedObject) Kind() gdi.Kind { return o.kind }

// Encoder is a gdi.Device serializing the operations
// to a metafile. The records are accumulated in memory and
// written when Footer is called, after which Bytes returns the file.
//
// Object handles are allocated as the decoder does (first free slot),
// so that decoding the output replays the same operations.
type Encoder struct {
	log logrus.FieldLogger

	placeable *Placeable
	records   []Record
	objs      handleTable
	numSlots  int // largest table size used

	out []byte
}

var _ gdi.Device = (*Encoder)(nil)

// NewEncoder returns an empty encoder. Only the logger of `opts` is used.
func NewEncoder(opts Options) *Encoder {
	return &Encoder{log: opts.logger()}
}

// Records returns the records accumulated so far.
func (e *Encoder) Records() []Record { return e.records }

// Bytes returns the encoded file, or nil if Footer has not been called.
func (e *Encoder) Bytes() []byte { return e.out }

// WriteTo writes the encoded file to `w`.
func (e *Encoder) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(e.out)
	return int64(n), err
}

func (e *Encoder) add(rec Record) { e.records = append(e.records, rec) }

// create allocates a slot for a new object.
func (e *Encoder) create(kind gdi.Kind) gdi.Object {
	obj := &encodedObject{kind: kind}
	obj.handle = e.objs.push(obj)
	if n := len(e.objs.slots); n > e.numSlots {
		e.numSlots = n
	}
	return obj
}

// handle returns the slot of `obj`, which must
// have been created by `e`.
func (e *Encoder) handle(op Opcode, obj gdi.Object) (uint16, bool) {
	o, ok := obj.(*encodedObject)
	if !ok || o == nil {
		e.log.WithField("opcode", op).Warn("object not created by the encoder")
		return 0, false
	}
	return o.handle, true
}

func (e *Encoder) PlaceableHeader(vsx, vsy, vex, vey int16, dpi uint16) {
	p := Placeable{Left: vsx, Top: vsy, Right: vex, Bottom: vey, DPI: dpi}
	p.Checksum = p.ComputeChecksum()
	e.placeable = &p
}

func (e *Encoder) Header() {
	e.records = e.records[:0]
	e.objs = handleTable{}
	e.numSlots = 0
	e.out = nil
}

// Footer serializes the records, computing the header fields.
func (e *Encoder) Footer() {
	var (
		body      = wmfio.NewWriter(binary.LittleEndian)
		records   = wmfio.NewWriter(binary.LittleEndian)
		maxRecord uint32
	)
	for _, rec := range e.records {
		body.Reset()
		rec.encode(body)
		body.Pad()
		size := recordHeaderWords + uint32(body.Len()/2)
		if size > maxRecord {
			maxRecord = size
		}
		records.WriteUint32(size)
		records.WriteUint16(uint16(rec.Opcode()))
		records.WriteBytes(body.Bytes())
	}
	// terminal record
	records.WriteUint32(recordHeaderWords)
	records.WriteUint16(uint16(EOF))
	if maxRecord < recordHeaderWords {
		maxRecord = recordHeaderWords
	}

	out := wmfio.NewWriter(binary.LittleEndian)
	if p := e.placeable; p != nil {
		out.WriteUint32(placeableKey)
		out.WriteUint16(p.Handle)
		out.WriteInt16(p.Left)
		out.WriteInt16(p.Top)
		out.WriteInt16(p.Right)
		out.WriteInt16(p.Bottom)
		out.WriteUint16(p.DPI)
		out.WriteUint32(p.Reserved)
		out.WriteUint16(p.Checksum)
	}
	out.WriteUint16(headerType)
	out.WriteUint16(headerWords)
	out.WriteUint16(metafileVersion)
	out.WriteUint32(headerWords + uint32(records.Len()/2))
	out.WriteUint16(uint16(e.numSlots))
	out.WriteUint32(maxRecord)
	out.WriteUint16(0)
	out.WriteBytes(records.Bytes())

	e.out = out.Bytes()
	e.objs.release()
	e.placeable = nil // not inherited by a following metafile
}

func (e *Encoder) CreateBrushIndirect(style uint16, color int32, hatch uint16) gdi.Object {
	e.add(&CreateBrushRecord{Style: style, Color: color, Hatch: hatch})
	return e.create(gdi.BrushKind)
}

func (e *Encoder) CreateFontIndirect(font gdi.LogFont) gdi.Object {
	e.add(&CreateFontRecord{Font: font})
	return e.create(gdi.FontKind)
}

func (e *Encoder) CreatePalette(version uint16, entries []int32) gdi.Object {
	e.add(&CreatePaletteRecord{Version: version, Entries: entries})
	return e.create(gdi.PaletteKind)
}

func (e *Encoder) CreatePatternBrush(image []byte) gdi.Object {
	e.add(&PatternBrushRecord{Op: CreatePatternBrush, Image: image})
	return e.create(gdi.PatternBrushKind)
}

func (e *Encoder) CreatePenIndirect(style uint16, width int16, color int32) gdi.Object {
	e.add(&CreatePenRecord{Style: style, Width: width, Color: color})
	return e.create(gdi.PenKind)
}

func (e *Encoder) CreateRectRgn(left, top, right, bottom int16) gdi.Object {
	e.add(&RectRecord{Op: CreateRectRgn, Left: left, Top: top, Right: right, Bottom: bottom})
	return e.create(gdi.RegionKind)
}

func (e *Encoder) DibCreatePatternBrush(image []byte, usage int32) gdi.Object {
	e.add(&PatternBrushRecord{Op: DibCreatePatternBrush, Usage: usage, Image: image})
	return e.create(gdi.PatternBrushKind)
}

func (e *Encoder) objectRecord(op Opcode, obj gdi.Object) {
	if h, ok := e.handle(op, obj); ok {
		e.add(&ObjectRecord{Op: op, Handle: h})
	}
}

func (e *Encoder) SelectObject(obj gdi.Object) { e.objectRecord(SelectObject, obj) }

func (e *Encoder) DeleteObject(obj gdi.Object) {
	h, ok := e.handle(DeleteObject, obj)
	if !ok {
		return
	}
	e.add(&ObjectRecord{Op: DeleteObject, Handle: h})
	e.objs.remove(h)
}

func (e *Encoder) AnimatePalette(palette gdi.Object, startIndex uint16, entries []int32) {
	if h, ok := e.handle(AnimatePalette, palette); ok {
		e.add(&PaletteEntriesRecord{Op: AnimatePalette, StartIndex: startIndex, Palette: h, Entries: entries})
	}
}

func (e *Encoder) RealizePalette() { e.add(&EmptyRecord{Op: RealizePalette}) }

func (e *Encoder) ResizePalette(palette gdi.Object) { e.objectRecord(ResizePalette, palette) }

func (e *Encoder) SelectPalette(palette gdi.Object, background bool) {
	if h, ok := e.handle(SelectPalette, palette); ok {
		e.add(&SelectPaletteRecord{Background: background, HasPalette: true, Palette: h})
	}
}

func (e *Encoder) SetPaletteEntries(palette gdi.Object, startIndex uint16, entries []int32) {
	if h, ok := e.handle(SetPaletteEntries, palette); ok {
		e.add(&PaletteEntriesRecord{Op: SetPaletteEntries, StartIndex: startIndex, Palette: h, Entries: entries})
	}
}

func (e *Encoder) SetBkColor(color int32)   { e.add(&ColorRecord{Op: SetBkColor, Color: color}) }
func (e *Encoder) SetTextColor(color int32) { e.add(&ColorRecord{Op: SetTextColor, Color: color}) }

func (e *Encoder) SetLayout(layout uint32)     { e.add(&FlagsRecord{Op: SetLayout, Flags: layout}) }
func (e *Encoder) SetMapperFlags(flags uint32) { e.add(&FlagsRecord{Op: SetMapperFlags, Flags: flags}) }

func (e *Encoder) mode(op Opcode, v int16) { e.add(&ModeRecord{Op: op, Mode: v}) }

func (e *Encoder) SetBkMode(mode int16)              { e.mode(SetBkMode, mode) }
func (e *Encoder) SetMapMode(mode int16)             { e.mode(SetMapMode, mode) }
func (e *Encoder) SetPolyFillMode(mode int16)        { e.mode(SetPolyFillMode, mode) }
func (e *Encoder) SetRelAbs(mode int16)              { e.mode(SetRelAbs, mode) }
func (e *Encoder) SetROP2(mode int16)                { e.mode(SetROP2, mode) }
func (e *Encoder) SetStretchBltMode(mode int16)      { e.mode(SetStretchBltMode, mode) }
func (e *Encoder) SetTextAlign(align int16)          { e.mode(SetTextAlign, align) }
func (e *Encoder) SetTextCharacterExtra(extra int16) { e.mode(SetTextCharacterExtra, extra) }
func (e *Encoder) RestoreDC(savedDC int16)           { e.mode(RestoreDC, savedDC) }

func (e *Encoder) SetTextJustification(breakExtra, breakCount int16) {
	e.add(&JustificationRecord{BreakExtra: breakExtra, BreakCount: breakCount})
}

func (e *Encoder) SaveDC() { e.add(&EmptyRecord{Op: SaveDC}) }

func (e *Encoder) point(op Opcode, x, y int16) { e.add(&PointRecord{Op: op, X: x, Y: y}) }

func (e *Encoder) SetWindowOrgEx(x, y int16)          { e.point(SetWindowOrgEx, x, y) }
func (e *Encoder) SetWindowExtEx(width, height int16) { e.point(SetWindowExtEx, width, height) }
func (e *Encoder) OffsetWindowOrgEx(x, y int16)       { e.point(OffsetWindowOrgEx, x, y) }
func (e *Encoder) SetViewportOrgEx(x, y int16)        { e.point(SetViewportOrgEx, x, y) }
func (e *Encoder) SetViewportExtEx(x, y int16)        { e.point(SetViewportExtEx, x, y) }
func (e *Encoder) OffsetViewportOrgEx(x, y int16)     { e.point(OffsetViewportOrgEx, x, y) }
func (e *Encoder) MoveToEx(x, y int16)                { e.point(MoveToEx, x, y) }
func (e *Encoder) LineTo(ex, ey int16)                { e.point(LineTo, ex, ey) }
func (e *Encoder) OffsetClipRgn(x, y int16)           { e.point(OffsetClipRgn, x, y) }

func (e *Encoder) ScaleWindowExtEx(x, xd, y, yd int16) {
	e.add(&ScaleRecord{Op: ScaleWindowExtEx, X: x, XD: xd, Y: y, YD: yd})
}

func (e *Encoder) ScaleViewportExtEx(x, xd, y, yd int16) {
	e.add(&ScaleRecord{Op: ScaleViewportExtEx, X: x, XD: xd, Y: y, YD: yd})
}

func (e *Encoder) rect(op Opcode, left, top, right, bottom int16) {
	e.add(&RectRecord{Op: op, Left: left, Top: top, Right: right, Bottom: bottom})
}

func (e *Encoder) Rectangle(sx, sy, ex, ey int16) { e.rect(Rectangle, sx, sy, ex, ey) }
func (e *Encoder) Ellipse(sx, sy, ex, ey int16)   { e.rect(Ellipse, sx, sy, ex, ey) }

func (e *Encoder) ExcludeClipRect(left, top, right, bottom int16) {
	e.rect(ExcludeClipRect, left, top, right, bottom)
}

func (e *Encoder) IntersectClipRect(left, top, right, bottom int16) {
	e.rect(IntersectClipRect, left, top, right, bottom)
}

func (e *Encoder) RoundRect(sx, sy, ex, ey, rw, rh int16) {
	e.add(&RoundRectRecord{Left: sx, Top: sy, Right: ex, Bottom: ey, Width: rw, Height: rh})
}

func (e *Encoder) arc(op Opcode, sxr, syr, exr, eyr, sxa, sya, exa, eya int16) {
	e.add(&ArcRecord{
		Op:   op,
		Left: sxr, Top: syr, Right: exr, Bottom: eyr,
		XStart: sxa, YStart: sya, XEnd: exa, YEnd: eya,
	})
}

func (e *Encoder) Arc(sxr, syr, exr, eyr, sxa, sya, exa, eya int16) {
	e.arc(Arc, sxr, syr, exr, eyr, sxa, sya, exa, eya)
}

func (e *Encoder) Chord(sxr, syr, exr, eyr, sxa, sya, exa, eya int16) {
	e.arc(Chord, sxr, syr, exr, eyr, sxa, sya, exa, eya)
}

func (e *Encoder) Pie(sxr, syr, exr, eyr, sxa, sya, exa, eya int16) {
	e.arc(Pie, sxr, syr, exr, eyr, sxa, sya, exa, eya)
}

func (e *Encoder) Polygon(points []gdi.Point)  { e.add(&PolyRecord{Op: Polygon, Points: points}) }
func (e *Encoder) Polyline(points []gdi.Point) { e.add(&PolyRecord{Op: Polyline, Points: points}) }

func (e *Encoder) PolyPolygon(polygons [][]gdi.Point) {
	e.add(&PolyPolygonRecord{Polygons: polygons})
}

func (e *Encoder) SetPixel(x, y int16, color int32) {
	e.add(&PixelRecord{Op: SetPixel, X: x, Y: y, Color: color})
}

func (e *Encoder) FloodFill(x, y int16, color int32) {
	e.add(&PixelRecord{Op: FloodFill, X: x, Y: y, Color: color})
}

func (e *Encoder) ExtFloodFill(x, y int16, color int32, fillType uint16) {
	e.add(&ExtFloodFillRecord{X: x, Y: y, Color: color, FillType: fillType})
}

// SelectClipRgn with a nil region is encoded with a handle
// designating no region, see noRegion.
func (e *Encoder) SelectClipRgn(rgn gdi.Object) {
	if rgn == nil {
		e.add(&ObjectRecord{Op: SelectClipRgn, Handle: e.noRegion()})
		return
	}
	e.objectRecord(SelectClipRgn, rgn)
}

// noRegion returns the first slot holding no region, usually 0.
// When every slot holds a region, an extra empty slot is reserved.
func (e *Encoder) noRegion() uint16 {
	for i, s := range e.objs.slots {
		if !s.used || s.obj.Kind() != gdi.RegionKind {
			return uint16(i)
		}
	}
	h := len(e.objs.slots)
	if h == 0 {
		return 0
	}
	if h+1 > e.numSlots {
		e.numSlots = h + 1
	}
	return uint16(h)
}

func (e *Encoder) FillRgn(rgn, brush gdi.Object) { e.regionBrush(FillRgn, rgn, brush, 0, 0) }

func (e *Encoder) FrameRgn(rgn, brush gdi.Object, width, height int16) {
	e.regionBrush(FrameRgn, rgn, brush, width, height)
}

func (e *Encoder) regionBrush(op Opcode, rgn, brush gdi.Object, width, height int16) {
	hr, ok := e.handle(op, rgn)
	if !ok {
		return
	}
	hb, ok := e.handle(op, brush)
	if !ok {
		return
	}
	e.add(&RegionBrushRecord{Op: op, Region: hr, Brush: hb, Width: width, Height: height})
}

func (e *Encoder) InvertRgn(rgn gdi.Object) { e.objectRecord(InvertRgn, rgn) }
func (e *Encoder) PaintRgn(rgn gdi.Object)  { e.objectRecord(PaintRgn, rgn) }

func (e *Encoder) TextOut(x, y int16, text []byte) {
	e.add(&TextOutRecord{X: x, Y: y, Text: text})
}

func (e *Encoder) ExtTextOut(x, y int16, options uint16, rect []int16, text []byte, dx []int16) {
	e.add(&ExtTextOutRecord{X: x, Y: y, Options: options, Rect: rect, Text: text, Dx: dx})
}

func (e *Encoder) PatBlt(x, y, width, height int16, rop uint32) {
	e.add(&PatBltRecord{X: x, Y: y, Width: width, Height: height, ROP: rop})
}

func (e *Encoder) BitBlt(image []byte, dx, dy, dw, dh, sx, sy int16, rop uint32) {
	e.add(&BitBltRecord{Op: BitBlt, ROP: rop, SX: sx, SY: sy, DX: dx, DY: dy, DW: dw, DH: dh, Image: image})
}

func (e *Encoder) DibBitBlt(image []byte, dx, dy, dw, dh, sx, sy int16, rop uint32) {
	e.add(&BitBltRecord{Op: DibBitBlt, ROP: rop, SX: sx, SY: sy, DX: dx, DY: dy, DW: dw, DH: dh, Image: image})
}

func (e *Encoder) StretchBlt(image []byte, dx, dy, dw, dh, sx, sy, sw, sh int16, rop uint32) {
	e.add(&StretchBltRecord{
		Op: StretchBlt, ROP: rop,
		SX: sx, SY: sy, SW: sw, SH: sh,
		DX: dx, DY: dy, DW: dw, DH: dh,
		Image: image,
	})
}

func (e *Encoder) DibStretchBlt(image []byte, dx, dy, dw, dh, sx, sy, sw, sh int16, rop uint32) {
	e.add(&StretchBltRecord{
		Op: DibStretchBlt, ROP: rop,
		SX: sx, SY: sy, SW: sw, SH: sh,
		DX: dx, DY: dy, DW: dw, DH: dh,
		Image: image,
	})
}

func (e *Encoder) SetDIBitsToDevice(dx, dy, dw, dh, sx, sy int16, startScan, scanLines uint16, image []byte, colorUse uint16) {
	e.add(&SetDIBitsRecord{
		ColorUse: colorUse, ScanLines: scanLines, StartScan: startScan,
		SX: sx, SY: sy, DX: dx, DY: dy, DW: dw, DH: dh,
		Image: image,
	})
}

func (e *Encoder) StretchDIBits(dx, dy, dw, dh, sx, sy, sw, sh int16, image []byte, usage uint16, rop uint32) {
	e.add(&StretchDIBitsRecord{
		ROP: rop, Usage: usage,
		SX: sx, SY: sy, SW: sw, SH: sh,
		DX: dx, DY: dy, DW: dw, DH: dh,
		Image: image,
	})
}

func (e *Encoder) Escape(data []byte) { e.add(&EscapeRecord{Data: data}) }
