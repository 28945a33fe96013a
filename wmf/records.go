package wmf

import (
	"github.com/benoitkugler/wmfsvg/gdi"
	"github.com/benoitkugler/wmfsvg/wmfio"
)

// Record is one decoded metafile record.
// Records sharing the same parameter layout are grouped in
// one type, discriminated by their Op field.
type Record interface {
	Opcode() Opcode
	// decode reads the parameters, using the opcode already set
	decode(f *fields)
	// encode writes the parameters, without the record header
	encode(w *wmfio.Writer)
	// replay invokes the device operation
	replay(p *player)
}

// newRecord returns an empty record for `op`.
func newRecord(op Opcode) Record {
	switch op {
	case RealizePalette, SaveDC:
		return &EmptyRecord{Op: op}
	case SetBkMode, SetMapMode, SetROP2, SetRelAbs, SetPolyFillMode,
		SetStretchBltMode, SetTextCharacterExtra, RestoreDC, SetTextAlign:
		return &ModeRecord{Op: op}
	case SetBkColor, SetTextColor:
		return &ColorRecord{Op: op}
	case SetLayout, SetMapperFlags:
		return &FlagsRecord{Op: op}
	case LineTo, MoveToEx, OffsetClipRgn, SetWindowOrgEx, SetWindowExtEx,
		SetViewportOrgEx, SetViewportExtEx, OffsetWindowOrgEx, OffsetViewportOrgEx:
		return &PointRecord{Op: op}
	case ScaleWindowExtEx, ScaleViewportExtEx:
		return &ScaleRecord{Op: op}
	case ExcludeClipRect, IntersectClipRect, Ellipse, Rectangle, CreateRectRgn:
		return &RectRecord{Op: op}
	case Arc, Chord, Pie:
		return &ArcRecord{Op: op}
	case RoundRect:
		return &RoundRectRecord{}
	case SetPixel, FloodFill:
		return &PixelRecord{Op: op}
	case ExtFloodFill:
		return &ExtFloodFillRecord{}
	case Polygon, Polyline:
		return &PolyRecord{Op: op}
	case PolyPolygon:
		return &PolyPolygonRecord{}
	case SelectObject, DeleteObject, ResizePalette, InvertRgn, PaintRgn, SelectClipRgn:
		return &ObjectRecord{Op: op}
	case FillRgn, FrameRgn:
		return &RegionBrushRecord{Op: op}
	case SetPaletteEntries, AnimatePalette:
		return &PaletteEntriesRecord{Op: op}
	case SelectPalette:
		return &SelectPaletteRecord{}
	case SetTextJustification:
		return &JustificationRecord{}
	case TextOut:
		return &TextOutRecord{}
	case ExtTextOut:
		return &ExtTextOutRecord{}
	case PatBlt:
		return &PatBltRecord{}
	case BitBlt, DibBitBlt:
		return &BitBltRecord{Op: op}
	case StretchBlt, DibStretchBlt:
		return &StretchBltRecord{Op: op}
	case StretchDIBits:
		return &StretchDIBitsRecord{}
	case SetDIBitsToDevice:
		return &SetDIBitsRecord{}
	case Escape:
		return &EscapeRecord{}
	case CreatePenIndirect:
		return &CreatePenRecord{}
	case CreateBrushIndirect:
		return &CreateBrushRecord{}
	case CreateFontIndirect:
		return &CreateFontRecord{}
	case CreatePalette:
		return &CreatePaletteRecord{}
	case CreatePatternBrush, DibCreatePatternBrush:
		return &PatternBrushRecord{Op: op}
	default:
		return &UnknownRecord{Op: op}
	}
}

// EmptyRecord has no parameter: REALIZE_PALETTE and SAVE_DC.
type EmptyRecord struct{ Op Opcode }

func (rec *EmptyRecord) Opcode() Opcode       { return rec.Op }
func (rec *EmptyRecord) decode(*fields)       {}
func (rec *EmptyRecord) encode(*wmfio.Writer) {}
func (rec *EmptyRecord) replay(p *player) {
	if rec.Op == SaveDC {
		p.dev.SaveDC()
	} else {
		p.dev.RealizePalette()
	}
}

// ModeRecord has a single 16-bit parameter.
type ModeRecord struct {
	Op   Opcode
	Mode int16
}

func (rec *ModeRecord) Opcode() Opcode         { return rec.Op }
func (rec *ModeRecord) decode(f *fields)       { rec.Mode = f.i16() }
func (rec *ModeRecord) encode(w *wmfio.Writer) { w.WriteInt16(rec.Mode) }

func (rec *ModeRecord) replay(p *player) {
	switch rec.Op {
	case SetBkMode:
		p.dev.SetBkMode(rec.Mode)
	case SetMapMode:
		p.dev.SetMapMode(rec.Mode)
	case SetROP2:
		p.dev.SetROP2(rec.Mode)
	case SetRelAbs:
		p.dev.SetRelAbs(rec.Mode)
	case SetPolyFillMode:
		p.dev.SetPolyFillMode(rec.Mode)
	case SetStretchBltMode:
		p.dev.SetStretchBltMode(rec.Mode)
	case SetTextCharacterExtra:
		p.dev.SetTextCharacterExtra(rec.Mode)
	case RestoreDC:
		p.dev.RestoreDC(rec.Mode)
	case SetTextAlign:
		p.dev.SetTextAlign(rec.Mode)
	}
}

// ColorRecord has a single color parameter.
type ColorRecord struct {
	Op    Opcode
	Color int32
}

func (rec *ColorRecord) Opcode() Opcode         { return rec.Op }
func (rec *ColorRecord) decode(f *fields)       { rec.Color = f.i32() }
func (rec *ColorRecord) encode(w *wmfio.Writer) { w.WriteInt32(rec.Color) }

func (rec *ColorRecord) replay(p *player) {
	if rec.Op == SetBkColor {
		p.dev.SetBkColor(rec.Color)
	} else {
		p.dev.SetTextColor(rec.Color)
	}
}

// FlagsRecord has a single 32-bit parameter.
type FlagsRecord struct {
	Op    Opcode
	Flags uint32
}

func (rec *FlagsRecord) Opcode() Opcode         { return rec.Op }
func (rec *FlagsRecord) decode(f *fields)       { rec.Flags = f.u32() }
func (rec *FlagsRecord) encode(w *wmfio.Writer) { w.WriteUint32(rec.Flags) }

func (rec *FlagsRecord) replay(p *player) {
	if rec.Op == SetLayout {
		p.dev.SetLayout(rec.Flags)
	} else {
		p.dev.SetMapperFlags(rec.Flags)
	}
}

// PointRecord has a point (or a size) parameter, stored y first.
type PointRecord struct {
	Op   Opcode
	X, Y int16
}

func (rec *PointRecord) Opcode() Opcode { return rec.Op }

func (rec *PointRecord) decode(f *fields) {
	rec.Y = f.i16()
	rec.X = f.i16()
}

func (rec *PointRecord) encode(w *wmfio.Writer) {
	w.WriteInt16(rec.Y)
	w.WriteInt16(rec.X)
}

func (rec *PointRecord) replay(p *player) {
	switch rec.Op {
	case LineTo:
		p.dev.LineTo(rec.X, rec.Y)
	case MoveToEx:
		p.dev.MoveToEx(rec.X, rec.Y)
	case OffsetClipRgn:
		p.dev.OffsetClipRgn(rec.X, rec.Y)
	case SetWindowOrgEx:
		p.dev.SetWindowOrgEx(rec.X, rec.Y)
	case SetWindowExtEx:
		p.dev.SetWindowExtEx(rec.X, rec.Y)
	case SetViewportOrgEx:
		p.dev.SetViewportOrgEx(rec.X, rec.Y)
	case SetViewportExtEx:
		p.dev.SetViewportExtEx(rec.X, rec.Y)
	case OffsetWindowOrgEx:
		p.dev.OffsetWindowOrgEx(rec.X, rec.Y)
	case OffsetViewportOrgEx:
		p.dev.OffsetViewportOrgEx(rec.X, rec.Y)
	}
}

// ScaleRecord scales the window or viewport extent by X/XD and Y/YD.
type ScaleRecord struct {
	Op           Opcode
	X, XD, Y, YD int16
}

func (rec *ScaleRecord) Opcode() Opcode { return rec.Op }

func (rec *ScaleRecord) decode(f *fields) {
	rec.YD = f.i16()
	rec.Y = f.i16()
	rec.XD = f.i16()
	rec.X = f.i16()
}

func (rec *ScaleRecord) encode(w *wmfio.Writer) {
	w.WriteInt16(rec.YD)
	w.WriteInt16(rec.Y)
	w.WriteInt16(rec.XD)
	w.WriteInt16(rec.X)
}

func (rec *ScaleRecord) replay(p *player) {
	if rec.Op == ScaleWindowExtEx {
		p.dev.ScaleWindowExtEx(rec.X, rec.XD, rec.Y, rec.YD)
	} else {
		p.dev.ScaleViewportExtEx(rec.X, rec.XD, rec.Y, rec.YD)
	}
}

// RectRecord has a rectangle parameter, stored bottom first.
type RectRecord struct {
	Op                       Opcode
	Left, Top, Right, Bottom int16
}

func (rec *RectRecord) Opcode() Opcode { return rec.Op }

func (rec *RectRecord) decode(f *fields) {
	rec.Bottom = f.i16()
	rec.Right = f.i16()
	rec.Top = f.i16()
	rec.Left = f.i16()
}

func (rec *RectRecord) encode(w *wmfio.Writer) {
	w.WriteInt16(rec.Bottom)
	w.WriteInt16(rec.Right)
	w.WriteInt16(rec.Top)
	w.WriteInt16(rec.Left)
}

func (rec *RectRecord) replay(p *player) {
	switch rec.Op {
	case ExcludeClipRect:
		p.dev.ExcludeClipRect(rec.Left, rec.Top, rec.Right, rec.Bottom)
	case IntersectClipRect:
		p.dev.IntersectClipRect(rec.Left, rec.Top, rec.Right, rec.Bottom)
	case Ellipse:
		p.dev.Ellipse(rec.Left, rec.Top, rec.Right, rec.Bottom)
	case Rectangle:
		p.dev.Rectangle(rec.Left, rec.Top, rec.Right, rec.Bottom)
	case CreateRectRgn:
		p.create(rec.Op, p.dev.CreateRectRgn(rec.Left, rec.Top, rec.Right, rec.Bottom))
	}
}

// ArcRecord describes an elliptic arc (ARC, CHORD, PIE): the bounding
// rectangle of the ellipse and two radial end points.
type ArcRecord struct {
	Op                       Opcode
	Left, Top, Right, Bottom int16
	XStart, YStart           int16
	XEnd, YEnd               int16
}

func (rec *ArcRecord) Opcode() Opcode { return rec.Op }

func (rec *ArcRecord) decode(f *fields) {
	rec.YEnd = f.i16()
	rec.XEnd = f.i16()
	rec.YStart = f.i16()
	rec.XStart = f.i16()
	rec.Bottom = f.i16()
	rec.Right = f.i16()
	rec.Top = f.i16()
	rec.Left = f.i16()
}

func (rec *ArcRecord) encode(w *wmfio.Writer) {
	for _, v := range [...]int16{rec.YEnd, rec.XEnd, rec.YStart, rec.XStart, rec.Bottom, rec.Right, rec.Top, rec.Left} {
		w.WriteInt16(v)
	}
}

func (rec *ArcRecord) replay(p *player) {
	args := [8]int16{rec.Left, rec.Top, rec.Right, rec.Bottom, rec.XStart, rec.YStart, rec.XEnd, rec.YEnd}
	switch rec.Op {
	case Arc:
		p.dev.Arc(args[0], args[1], args[2], args[3], args[4], args[5], args[6], args[7])
	case Chord:
		p.dev.Chord(args[0], args[1], args[2], args[3], args[4], args[5], args[6], args[7])
	case Pie:
		p.dev.Pie(args[0], args[1], args[2], args[3], args[4], args[5], args[6], args[7])
	}
}

type RoundRectRecord struct {
	Left, Top, Right, Bottom int16
	Width, Height            int16 // of the corner ellipse
}

func (rec *RoundRectRecord) Opcode() Opcode { return RoundRect }

func (rec *RoundRectRecord) decode(f *fields) {
	rec.Height = f.i16()
	rec.Width = f.i16()
	rec.Bottom = f.i16()
	rec.Right = f.i16()
	rec.Top = f.i16()
	rec.Left = f.i16()
}

func (rec *RoundRectRecord) encode(w *wmfio.Writer) {
	for _, v := range [...]int16{rec.Height, rec.Width, rec.Bottom, rec.Right, rec.Top, rec.Left} {
		w.WriteInt16(v)
	}
}

func (rec *RoundRectRecord) replay(p *player) {
	p.dev.RoundRect(rec.Left, rec.Top, rec.Right, rec.Bottom, rec.Width, rec.Height)
}

// PixelRecord is a point with a color: SET_PIXEL and FLOOD_FILL.
type PixelRecord struct {
	Op    Opcode
	X, Y  int16
	Color int32
}

func (rec *PixelRecord) Opcode() Opcode { return rec.Op }

func (rec *PixelRecord) decode(f *fields) {
	rec.Color = f.i32()
	rec.Y = f.i16()
	rec.X = f.i16()
}

func (rec *PixelRecord) encode(w *wmfio.Writer) {
	w.WriteInt32(rec.Color)
	w.WriteInt16(rec.Y)
	w.WriteInt16(rec.X)
}

func (rec *PixelRecord) replay(p *player) {
	if rec.Op == SetPixel {
		p.dev.SetPixel(rec.X, rec.Y, rec.Color)
	} else {
		p.dev.FloodFill(rec.X, rec.Y, rec.Color)
	}
}

type ExtFloodFillRecord struct {
	X, Y     int16
	Color    int32
	FillType uint16
}

func (rec *ExtFloodFillRecord) Opcode() Opcode { return ExtFloodFill }

func (rec *ExtFloodFillRecord) decode(f *fields) {
	rec.FillType = f.u16()
	rec.Color = f.i32()
	rec.Y = f.i16()
	rec.X = f.i16()
}

func (rec *ExtFloodFillRecord) encode(w *wmfio.Writer) {
	w.WriteUint16(rec.FillType)
	w.WriteInt32(rec.Color)
	w.WriteInt16(rec.Y)
	w.WriteInt16(rec.X)
}

func (rec *ExtFloodFillRecord) replay(p *player) {
	p.dev.ExtFloodFill(rec.X, rec.Y, rec.Color, rec.FillType)
}

// PolyRecord is a POLYGON or a POLYLINE.
type PolyRecord struct {
	Op     Opcode
	Points []gdi.Point
}

func (rec *PolyRecord) Opcode() Opcode { return rec.Op }

func (rec *PolyRecord) decode(f *fields) { rec.Points = f.points(f.count()) }

func (rec *PolyRecord) encode(w *wmfio.Writer) {
	w.WriteInt16(int16(len(rec.Points)))
	writePoints(w, rec.Points)
}

func (rec *PolyRecord) replay(p *player) {
	if rec.Op == Polygon {
		p.dev.Polygon(rec.Points)
	} else {
		p.dev.Polyline(rec.Points)
	}
}

type PolyPolygonRecord struct {
	Polygons [][]gdi.Point
}

func (rec *PolyPolygonRecord) Opcode() Opcode { return PolyPolygon }

func (rec *PolyPolygonRecord) decode(f *fields) {
	counts := make([]int, f.count())
	for i := range counts {
		counts[i] = f.count()
	}
	rec.Polygons = make([][]gdi.Point, len(counts))
	for i, n := range counts {
		rec.Polygons[i] = f.points(n)
	}
}

func (rec *PolyPolygonRecord) encode(w *wmfio.Writer) {
	w.WriteInt16(int16(len(rec.Polygons)))
	for _, poly := range rec.Polygons {
		w.WriteInt16(int16(len(poly)))
	}
	for _, poly := range rec.Polygons {
		writePoints(w, poly)
	}
}

func (rec *PolyPolygonRecord) replay(p *player) { p.dev.PolyPolygon(rec.Polygons) }

// ObjectRecord references one object of the handle table.
// For SELECT_CLIP_RGN, a handle designating no region (an empty slot,
// another kind of object, or 0 with an empty table) resets the clip.
type ObjectRecord struct {
	Op     Opcode
	Handle uint16
}

func (rec *ObjectRecord) Opcode() Opcode         { return rec.Op }
func (rec *ObjectRecord) decode(f *fields)       { rec.Handle = f.u16() }
func (rec *ObjectRecord) encode(w *wmfio.Writer) { w.WriteUint16(rec.Handle) }

func (rec *ObjectRecord) replay(p *player) {
	if rec.Op == SelectClipRgn {
		p.selectClip(rec.Handle)
		return
	}
	if rec.Op == DeleteObject {
		p.delete(rec.Handle)
		return
	}
	obj, ok := p.object(rec.Op, rec.Handle)
	if !ok {
		return
	}
	switch rec.Op {
	case SelectObject:
		p.dev.SelectObject(obj)
	case ResizePalette:
		p.dev.ResizePalette(obj)
	case InvertRgn:
		p.dev.InvertRgn(obj)
	case PaintRgn:
		p.dev.PaintRgn(obj)
	}
}

// RegionBrushRecord is a FILL_RGN or a FRAME_RGN.
// Width and Height are only used by FRAME_RGN.
type RegionBrushRecord struct {
	Op            Opcode
	Region, Brush uint16
	Width, Height int16
}

func (rec *RegionBrushRecord) Opcode() Opcode { return rec.Op }

func (rec *RegionBrushRecord) decode(f *fields) {
	if rec.Op == FrameRgn {
		rec.Height = f.i16()
		rec.Width = f.i16()
	}
	rec.Brush = f.u16()
	rec.Region = f.u16()
}

func (rec *RegionBrushRecord) encode(w *wmfio.Writer) {
	if rec.Op == FrameRgn {
		w.WriteInt16(rec.Height)
		w.WriteInt16(rec.Width)
	}
	w.WriteUint16(rec.Brush)
	w.WriteUint16(rec.Region)
}

func (rec *RegionBrushRecord) replay(p *player) {
	rgn, ok := p.object(rec.Op, rec.Region)
	if !ok {
		return
	}
	brush, ok := p.object(rec.Op, rec.Brush)
	if !ok {
		return
	}
	if rec.Op == FrameRgn {
		p.dev.FrameRgn(rgn, brush, rec.Width, rec.Height)
	} else {
		p.dev.FillRgn(rgn, brush)
	}
}

// PaletteEntriesRecord is a SET_PALETTE_ENTRIES or an ANIMATE_PALETTE.
type PaletteEntriesRecord struct {
	Op         Opcode
	StartIndex uint16
	Palette    uint16 // handle
	Entries    []int32
}

func (rec *PaletteEntriesRecord) Opcode() Opcode { return rec.Op }

func (rec *PaletteEntriesRecord) decode(f *fields) {
	n := int(f.u16())
	rec.StartIndex = f.u16()
	rec.Palette = f.u16()
	rec.Entries = f.colors(n)
}

func (rec *PaletteEntriesRecord) encode(w *wmfio.Writer) {
	w.WriteUint16(uint16(len(rec.Entries)))
	w.WriteUint16(rec.StartIndex)
	w.WriteUint16(rec.Palette)
	writeColors(w, rec.Entries)
}

func (rec *PaletteEntriesRecord) replay(p *player) {
	pal, ok := p.object(rec.Op, rec.Palette)
	if !ok {
		return
	}
	if rec.Op == SetPaletteEntries {
		p.dev.SetPaletteEntries(pal, rec.StartIndex, rec.Entries)
	} else {
		p.dev.AnimatePalette(pal, rec.StartIndex, rec.Entries)
	}
}

// SelectPaletteRecord selects a palette. Records
// without handle are decoded but not replayed.
type SelectPaletteRecord struct {
	Background bool
	HasPalette bool
	Palette    uint16
}

func (rec *SelectPaletteRecord) Opcode() Opcode { return SelectPalette }

func (rec *SelectPaletteRecord) decode(f *fields) {
	rec.Background = f.i16() != 0
	if f.remaining() > 0 {
		rec.HasPalette = true
		rec.Palette = f.u16()
	}
}

func (rec *SelectPaletteRecord) encode(w *wmfio.Writer) {
	if rec.Background {
		w.WriteInt16(1)
	} else {
		w.WriteInt16(0)
	}
	if rec.HasPalette {
		w.WriteUint16(rec.Palette)
	}
}

func (rec *SelectPaletteRecord) replay(p *player) {
	if !rec.HasPalette {
		return
	}
	pal, ok := p.object(SelectPalette, rec.Palette)
	if !ok {
		return
	}
	p.dev.SelectPalette(pal, rec.Background)
}

type JustificationRecord struct {
	BreakExtra, BreakCount int16
}

func (rec *JustificationRecord) Opcode() Opcode { return SetTextJustification }

func (rec *JustificationRecord) decode(f *fields) {
	rec.BreakCount = f.i16()
	rec.BreakExtra = f.i16()
}

func (rec *JustificationRecord) encode(w *wmfio.Writer) {
	w.WriteInt16(rec.BreakCount)
	w.WriteInt16(rec.BreakExtra)
}

func (rec *JustificationRecord) replay(p *player) {
	p.dev.SetTextJustification(rec.BreakExtra, rec.BreakCount)
}

type TextOutRecord struct {
	X, Y int16
	Text []byte
}

func (rec *TextOutRecord) Opcode() Opcode { return TextOut }

func (rec *TextOutRecord) decode(f *fields) {
	rec.Text = f.text(int16(f.count()))
	rec.Y = f.i16()
	rec.X = f.i16()
}

func (rec *TextOutRecord) encode(w *wmfio.Writer) {
	w.WriteInt16(int16(len(rec.Text)))
	writeText(w, rec.Text)
	w.WriteInt16(rec.Y)
	w.WriteInt16(rec.X)
}

func (rec *TextOutRecord) replay(p *player) { p.dev.TextOut(rec.X, rec.Y, rec.Text) }

// ExtTextOutRecord draws a string with an optional clipping or opaquing
// rectangle and optional advance widths.
type ExtTextOutRecord struct {
	X, Y    int16
	Options uint16
	Rect    []int16 // left, top, right, bottom, present when Options has ETO_OPAQUE or ETO_CLIPPED
	Text    []byte
	Dx      []int16
}

func (rec *ExtTextOutRecord) Opcode() Opcode { return ExtTextOut }

func (rec *ExtTextOutRecord) decode(f *fields) {
	rec.Y = f.i16()
	rec.X = f.i16()
	count := int16(f.count())
	rec.Options = f.u16()
	if gdi.HasRect(rec.Options) {
		rec.Rect = []int16{f.i16(), f.i16(), f.i16(), f.i16()}
	}
	rec.Text = f.text(count)
	if n := f.remaining() / 2; n > 0 {
		rec.Dx = make([]int16, n)
		for i := range rec.Dx {
			rec.Dx[i] = f.i16()
		}
	}
}

func (rec *ExtTextOutRecord) encode(w *wmfio.Writer) {
	w.WriteInt16(rec.Y)
	w.WriteInt16(rec.X)
	w.WriteInt16(int16(len(rec.Text)))
	w.WriteUint16(rec.Options)
	if gdi.HasRect(rec.Options) {
		var rect [4]int16
		copy(rect[:], rec.Rect)
		for _, v := range rect {
			w.WriteInt16(v)
		}
	}
	writeText(w, rec.Text)
	for _, v := range rec.Dx {
		w.WriteInt16(v)
	}
}

func (rec *ExtTextOutRecord) replay(p *player) {
	p.dev.ExtTextOut(rec.X, rec.Y, rec.Options, rec.Rect, rec.Text, rec.Dx)
}

type PatBltRecord struct {
	X, Y, Width, Height int16
	ROP                 uint32
}

func (rec *PatBltRecord) Opcode() Opcode { return PatBlt }

func (rec *PatBltRecord) decode(f *fields) {
	rec.ROP = f.u32()
	rec.Height = f.i16()
	rec.Width = f.i16()
	rec.Y = f.i16()
	rec.X = f.i16()
}

func (rec *PatBltRecord) encode(w *wmfio.Writer) {
	w.WriteUint32(rec.ROP)
	w.WriteInt16(rec.Height)
	w.WriteInt16(rec.Width)
	w.WriteInt16(rec.Y)
	w.WriteInt16(rec.X)
}

func (rec *PatBltRecord) replay(p *player) {
	p.dev.PatBlt(rec.X, rec.Y, rec.Width, rec.Height, rec.ROP)
}

// BitBltRecord is a BIT_BLT or a DIB_BIT_BLT.
// A DIB_BIT_BLT without image is a raster operation only.
type BitBltRecord struct {
	Op             Opcode
	ROP            uint32
	SX, SY         int16
	DX, DY, DW, DH int16
	Image          []byte
}

func (rec *BitBltRecord) Opcode() Opcode { return rec.Op }

func (rec *BitBltRecord) decode(f *fields) {
	rec.ROP = f.u32()
	rec.SY = f.i16()
	rec.SX = f.i16()
	rec.DH = f.i16()
	ropOnly := false
	if rec.Op == DibBitBlt && rec.DH == 0 {
		// reserved field, followed by the actual height
		rec.DH = f.i16()
		ropOnly = true
	}
	rec.DW = f.i16()
	rec.DY = f.i16()
	rec.DX = f.i16()
	if !ropOnly {
		rec.Image = f.rest()
	}
}

func (rec *BitBltRecord) encode(w *wmfio.Writer) {
	w.WriteUint32(rec.ROP)
	w.WriteInt16(rec.SY)
	w.WriteInt16(rec.SX)
	if rec.Op == DibBitBlt && rec.Image == nil {
		w.WriteInt16(0)
	}
	w.WriteInt16(rec.DH)
	w.WriteInt16(rec.DW)
	w.WriteInt16(rec.DY)
	w.WriteInt16(rec.DX)
	w.WriteBytes(rec.Image)
}

func (rec *BitBltRecord) replay(p *player) {
	if rec.Op == BitBlt {
		p.dev.BitBlt(rec.Image, rec.DX, rec.DY, rec.DW, rec.DH, rec.SX, rec.SY, rec.ROP)
	} else {
		p.dev.DibBitBlt(rec.Image, rec.DX, rec.DY, rec.DW, rec.DH, rec.SX, rec.SY, rec.ROP)
	}
}

// StretchBltRecord is a STRETCH_BLT or a DIB_STRETCH_BLT.
type StretchBltRecord struct {
	Op             Opcode
	ROP            uint32
	SX, SY, SW, SH int16
	DX, DY, DW, DH int16
	Image          []byte
}

func (rec *StretchBltRecord) Opcode() Opcode { return rec.Op }

func (rec *StretchBltRecord) decode(f *fields) {
	rec.ROP = f.u32()
	rec.SH = f.i16()
	rec.SW = f.i16()
	if rec.Op == DibStretchBlt {
		rec.SX = f.i16()
		rec.SY = f.i16()
	} else {
		rec.SY = f.i16()
		rec.SX = f.i16()
	}
	rec.DH = f.i16()
	rec.DW = f.i16()
	rec.DY = f.i16()
	rec.DX = f.i16()
	rec.Image = f.rest()
}

func (rec *StretchBltRecord) encode(w *wmfio.Writer) {
	w.WriteUint32(rec.ROP)
	w.WriteInt16(rec.SH)
	w.WriteInt16(rec.SW)
	if rec.Op == DibStretchBlt {
		w.WriteInt16(rec.SX)
		w.WriteInt16(rec.SY)
	} else {
		w.WriteInt16(rec.SY)
		w.WriteInt16(rec.SX)
	}
	w.WriteInt16(rec.DH)
	w.WriteInt16(rec.DW)
	w.WriteInt16(rec.DY)
	w.WriteInt16(rec.DX)
	w.WriteBytes(rec.Image)
}

func (rec *StretchBltRecord) replay(p *player) {
	if rec.Op == StretchBlt {
		p.dev.StretchBlt(rec.Image, rec.DX, rec.DY, rec.DW, rec.DH, rec.SX, rec.SY, rec.SW, rec.SH, rec.ROP)
	} else {
		p.dev.DibStretchBlt(rec.Image, rec.DX, rec.DY, rec.DW, rec.DH, rec.SX, rec.SY, rec.SW, rec.SH, rec.ROP)
	}
}

type StretchDIBitsRecord struct {
	ROP            uint32
	Usage          uint16
	SX, SY, SW, SH int16
	DX, DY, DW, DH int16
	Image          []byte
}

func (rec *StretchDIBitsRecord) Opcode() Opcode { return StretchDIBits }

func (rec *StretchDIBitsRecord) decode(f *fields) {
	rec.ROP = f.u32()
	rec.Usage = f.u16()
	rec.SH = f.i16()
	rec.SW = f.i16()
	rec.SY = f.i16()
	rec.SX = f.i16()
	rec.DH = f.i16()
	rec.DW = f.i16()
	rec.DY = f.i16()
	rec.DX = f.i16()
	rec.Image = f.rest()
}

func (rec *StretchDIBitsRecord) encode(w *wmfio.Writer) {
	w.WriteUint32(rec.ROP)
	w.WriteUint16(rec.Usage)
	for _, v := range [...]int16{rec.SH, rec.SW, rec.SY, rec.SX, rec.DH, rec.DW, rec.DY, rec.DX} {
		w.WriteInt16(v)
	}
	w.WriteBytes(rec.Image)
}

func (rec *StretchDIBitsRecord) replay(p *player) {
	p.dev.StretchDIBits(rec.DX, rec.DY, rec.DW, rec.DH, rec.SX, rec.SY, rec.SW, rec.SH, rec.Image, rec.Usage, rec.ROP)
}

type SetDIBitsRecord struct {
	ColorUse             uint16
	ScanLines, StartScan uint16
	SX, SY               int16
	DX, DY, DW, DH       int16
	Image                []byte
}

func (rec *SetDIBitsRecord) Opcode() Opcode { return SetDIBitsToDevice }

func (rec *SetDIBitsRecord) decode(f *fields) {
	rec.ColorUse = f.u16()
	rec.ScanLines = f.u16()
	rec.StartScan = f.u16()
	rec.SY = f.i16()
	rec.SX = f.i16()
	rec.DH = f.i16()
	rec.DW = f.i16()
	rec.DY = f.i16()
	rec.DX = f.i16()
	rec.Image = f.rest()
}

func (rec *SetDIBitsRecord) encode(w *wmfio.Writer) {
	w.WriteUint16(rec.ColorUse)
	w.WriteUint16(rec.ScanLines)
	w.WriteUint16(rec.StartScan)
	for _, v := range [...]int16{rec.SY, rec.SX, rec.DH, rec.DW, rec.DY, rec.DX} {
		w.WriteInt16(v)
	}
	w.WriteBytes(rec.Image)
}

func (rec *SetDIBitsRecord) replay(p *player) {
	p.dev.SetDIBitsToDevice(rec.DX, rec.DY, rec.DW, rec.DH, rec.SX, rec.SY, rec.StartScan, rec.ScanLines, rec.Image, rec.ColorUse)
}

// EscapeRecord holds the raw parameters of an ESCAPE.
type EscapeRecord struct{ Data []byte }

func (rec *EscapeRecord) Opcode() Opcode         { return Escape }
func (rec *EscapeRecord) decode(f *fields)       { rec.Data = f.rest() }
func (rec *EscapeRecord) encode(w *wmfio.Writer) { w.WriteBytes(rec.Data) }
func (rec *EscapeRecord) replay(p *player)       { p.dev.Escape(rec.Data) }

type CreatePenRecord struct {
	Style uint16
	Width int16
	Color int32
}

func (rec *CreatePenRecord) Opcode() Opcode { return CreatePenIndirect }

func (rec *CreatePenRecord) decode(f *fields) {
	rec.Style = f.u16()
	rec.Width = f.i16()
	f.i16() // the height of the pen is not used
	rec.Color = f.i32()
}

func (rec *CreatePenRecord) encode(w *wmfio.Writer) {
	w.WriteUint16(rec.Style)
	w.WriteInt16(rec.Width)
	w.WriteInt16(0)
	w.WriteInt32(rec.Color)
}

func (rec *CreatePenRecord) replay(p *player) {
	p.create(CreatePenIndirect, p.dev.CreatePenIndirect(rec.Style, rec.Width, rec.Color))
}

type CreateBrushRecord struct {
	Style uint16
	Color int32
	Hatch uint16
}

func (rec *CreateBrushRecord) Opcode() Opcode { return CreateBrushIndirect }

func (rec *CreateBrushRecord) decode(f *fields) {
	rec.Style = f.u16()
	rec.Color = f.i32()
	rec.Hatch = f.u16()
}

func (rec *CreateBrushRecord) encode(w *wmfio.Writer) {
	w.WriteUint16(rec.Style)
	w.WriteInt32(rec.Color)
	w.WriteUint16(rec.Hatch)
}

func (rec *CreateBrushRecord) replay(p *player) {
	p.create(CreateBrushIndirect, p.dev.CreateBrushIndirect(rec.Style, rec.Color, rec.Hatch))
}

type CreateFontRecord struct {
	Font gdi.LogFont
}

func (rec *CreateFontRecord) Opcode() Opcode { return CreateFontIndirect }

func (rec *CreateFontRecord) decode(f *fields) {
	lf := &rec.Font
	lf.Height = f.i16()
	lf.Width = f.i16()
	lf.Escapement = f.i16()
	lf.Orientation = f.i16()
	lf.Weight = f.i16()
	lf.Italic = f.u8() == 1
	lf.Underline = f.u8() == 1
	lf.StrikeOut = f.u8() == 1
	lf.Charset = f.u8()
	lf.OutPrecision = f.u8()
	lf.ClipPrecision = f.u8()
	lf.Quality = f.u8()
	lf.PitchAndFamily = f.u8()
	lf.FaceName = f.rest()
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

func (rec *CreateFontRecord) encode(w *wmfio.Writer) {
	lf := rec.Font
	for _, v := range [...]int16{lf.Height, lf.Width, lf.Escapement, lf.Orientation, lf.Weight} {
		w.WriteInt16(v)
	}
	for _, v := range [...]uint8{boolByte(lf.Italic), boolByte(lf.Underline), boolByte(lf.StrikeOut),
		lf.Charset, lf.OutPrecision, lf.ClipPrecision, lf.Quality, lf.PitchAndFamily} {
		w.WriteUint8(v)
	}
	w.WriteBytes(lf.FaceName)
}

func (rec *CreateFontRecord) replay(p *player) {
	p.create(CreateFontIndirect, p.dev.CreateFontIndirect(rec.Font))
}

type CreatePaletteRecord struct {
	Version uint16
	Entries []int32
}

func (rec *CreatePaletteRecord) Opcode() Opcode { return CreatePalette }

func (rec *CreatePaletteRecord) decode(f *fields) {
	rec.Version = f.u16()
	rec.Entries = f.colors(int(f.u16()))
}

func (rec *CreatePaletteRecord) encode(w *wmfio.Writer) {
	w.WriteUint16(rec.Version)
	w.WriteUint16(uint16(len(rec.Entries)))
	writeColors(w, rec.Entries)
}

func (rec *CreatePaletteRecord) replay(p *player) {
	p.create(CreatePalette, p.dev.CreatePalette(rec.Version, rec.Entries))
}

// PatternBrushRecord is a CREATE_PATTERN_BRUSH or a DIB_CREATE_PATTERN_BRUSH.
// Usage is only used by the latter.
type PatternBrushRecord struct {
	Op    Opcode
	Usage int32
	Image []byte
}

func (rec *PatternBrushRecord) Opcode() Opcode { return rec.Op }

func (rec *PatternBrushRecord) decode(f *fields) {
	if rec.Op == DibCreatePatternBrush {
		rec.Usage = f.i32()
	}
	rec.Image = f.rest()
}

func (rec *PatternBrushRecord) encode(w *wmfio.Writer) {
	if rec.Op == DibCreatePatternBrush {
		w.WriteInt32(rec.Usage)
	}
	w.WriteBytes(rec.Image)
}

func (rec *PatternBrushRecord) replay(p *player) {
	if rec.Op == DibCreatePatternBrush {
		p.create(rec.Op, p.dev.DibCreatePatternBrush(rec.Image, rec.Usage))
	} else {
		p.create(rec.Op, p.dev.CreatePatternBrush(rec.Image))
	}
}

// UnknownRecord stores the parameters of a record
// not handled by this package.
type UnknownRecord struct {
	Op   Opcode
	Data []byte
}

func (rec *UnknownRecord) Opcode() Opcode         { return rec.Op }
func (rec *UnknownRecord) decode(f *fields)       { rec.Data = f.rest() }
func (rec *UnknownRecord) encode(w *wmfio.Writer) { w.WriteBytes(rec.Data) }
func (rec *UnknownRecord) replay(p *player)       { p.unsupported(rec.Op, len(rec.Data)) }
