package wmf

import "fmt"

// Opcode identifies a metafile record.
type Opcode uint16

const (
	EOF                   Opcode = 0x0000
	RealizePalette        Opcode = 0x0035
	SetPaletteEntries     Opcode = 0x0037
	SetBkMode             Opcode = 0x0102
	SetMapMode            Opcode = 0x0103
	SetROP2               Opcode = 0x0104
	SetRelAbs             Opcode = 0x0105
	SetPolyFillMode       Opcode = 0x0106
	SetStretchBltMode     Opcode = 0x0107
	SetTextCharacterExtra Opcode = 0x0108
	RestoreDC             Opcode = 0x0127
	ResizePalette         Opcode = 0x0139
	DibCreatePatternBrush Opcode = 0x0142
	SetLayout             Opcode = 0x0149
	SetBkColor            Opcode = 0x0201
	SetTextColor          Opcode = 0x0209
	OffsetViewportOrgEx   Opcode = 0x0211
	LineTo                Opcode = 0x0213
	MoveToEx              Opcode = 0x0214
	OffsetClipRgn         Opcode = 0x0220
	FillRgn               Opcode = 0x0228
	SetMapperFlags        Opcode = 0x0231
	SelectPalette         Opcode = 0x0234
	Polygon               Opcode = 0x0324
	Polyline              Opcode = 0x0325
	SetTextJustification  Opcode = 0x020A
	SetWindowOrgEx        Opcode = 0x020B
	SetWindowExtEx        Opcode = 0x020C
	SetViewportOrgEx      Opcode = 0x020D
	SetViewportExtEx      Opcode = 0x020E
	OffsetWindowOrgEx     Opcode = 0x020F
	ScaleWindowExtEx      Opcode = 0x0410
	ScaleViewportExtEx    Opcode = 0x0412
	ExcludeClipRect       Opcode = 0x0415
	IntersectClipRect     Opcode = 0x0416
	Ellipse               Opcode = 0x0418
	FloodFill             Opcode = 0x0419
	FrameRgn              Opcode = 0x0429
	AnimatePalette        Opcode = 0x0436
	TextOut               Opcode = 0x0521
	PolyPolygon           Opcode = 0x0538
	ExtFloodFill          Opcode = 0x0548
	Rectangle             Opcode = 0x041B
	SetPixel              Opcode = 0x041F
	RoundRect             Opcode = 0x061C
	PatBlt                Opcode = 0x061D
	SaveDC                Opcode = 0x001E
	Pie                   Opcode = 0x081A
	StretchBlt            Opcode = 0x0B23
	Escape                Opcode = 0x0626
	InvertRgn             Opcode = 0x012A
	PaintRgn              Opcode = 0x012B
	SelectClipRgn         Opcode = 0x012C
	SelectObject          Opcode = 0x012D
	SetTextAlign          Opcode = 0x012E
	Arc                   Opcode = 0x0817
	Chord                 Opcode = 0x0830
	BitBlt                Opcode = 0x0922
	ExtTextOut            Opcode = 0x0A32
	SetDIBitsToDevice     Opcode = 0x0D33
	DibBitBlt             Opcode = 0x0940
	DibStretchBlt         Opcode = 0x0B41
	StretchDIBits         Opcode = 0x0F43
	DeleteObject          Opcode = 0x01F0
	CreatePalette         Opcode = 0x00F7
	CreatePatternBrush    Opcode = 0x01F9
	CreatePenIndirect     Opcode = 0x02FA
	CreateFontIndirect    Opcode = 0x02FB
	CreateBrushIndirect   Opcode = 0x02FC
	CreateRectRgn         Opcode = 0x06FF
)

var opcodeNames = map[Opcode]string{
	EOF:                   "EOF",
	RealizePalette:        "REALIZE_PALETTE",
	SetPaletteEntries:     "SET_PALETTE_ENTRIES",
	SetBkMode:             "SET_BK_MODE",
	SetMapMode:            "SET_MAP_MODE",
	SetROP2:               "SET_ROP2",
	SetRelAbs:             "SET_REL_ABS",
	SetPolyFillMode:       "SET_POLY_FILL_MODE",
	SetStretchBltMode:     "SET_STRETCH_BLT_MODE",
	SetTextCharacterExtra: "SET_TEXT_CHARACTER_EXTRA",
	RestoreDC:             "RESTORE_DC",
	ResizePalette:         "RESIZE_PALETTE",
	DibCreatePatternBrush: "DIB_CREATE_PATTERN_BRUSH",
	SetLayout:             "SET_LAYOUT",
	SetBkColor:            "SET_BK_COLOR",
	SetTextColor:          "SET_TEXT_COLOR",
	OffsetViewportOrgEx:   "OFFSET_VIEWPORT_ORG_EX",
	LineTo:                "LINE_TO",
	MoveToEx:              "MOVE_TO_EX",
	OffsetClipRgn:         "OFFSET_CLIP_RGN",
	FillRgn:               "FILL_RGN",
	SetMapperFlags:        "SET_MAPPER_FLAGS",
	SelectPalette:         "SELECT_PALETTE",
	Polygon:               "POLYGON",
	Polyline:              "POLYLINE",
	SetTextJustification:  "SET_TEXT_JUSTIFICATION",
	SetWindowOrgEx:        "SET_WINDOW_ORG_EX",
	SetWindowExtEx:        "SET_WINDOW_EXT_EX",
	SetViewportOrgEx:      "SET_VIEWPORT_ORG_EX",
	SetViewportExtEx:      "SET_VIEWPORT_EXT_EX",
	OffsetWindowOrgEx:     "OFFSET_WINDOW_ORG_EX",
	ScaleWindowExtEx:      "SCALE_WINDOW_EXT_EX",
	ScaleViewportExtEx:    "SCALE_VIEWPORT_EXT_EX",
	ExcludeClipRect:       "EXCLUDE_CLIP_RECT",
	IntersectClipRect:     "INTERSECT_CLIP_RECT",
	Ellipse:               "ELLIPSE",
	FloodFill:             "FLOOD_FILL",
	FrameRgn:              "FRAME_RGN",
	AnimatePalette:        "ANIMATE_PALETTE",
	TextOut:               "TEXT_OUT",
	PolyPolygon:           "POLY_POLYGON",
	ExtFloodFill:          "EXT_FLOOD_FILL",
	Rectangle:             "RECTANGLE",
	SetPixel:              "SET_PIXEL",
	RoundRect:             "ROUND_RECT",
	PatBlt:                "PAT_BLT",
	SaveDC:                "SAVE_DC",
	Pie:                   "PIE",
	StretchBlt:            "STRETCH_BLT",
	Escape:                "ESCAPE",
	InvertRgn:             "INVERT_RGN",
	PaintRgn:              "PAINT_RGN",
	SelectClipRgn:         "SELECT_CLIP_RGN",
	SelectObject:          "SELECT_OBJECT",
	SetTextAlign:          "SET_TEXT_ALIGN",
	Arc:                   "ARC",
	Chord:                 "CHORD",
	BitBlt:                "BIT_BLT",
	ExtTextOut:            "EXT_TEXT_OUT",
	SetDIBitsToDevice:     "SET_DIBITS_TO_DEVICE",
	DibBitBlt:             "DIB_BIT_BLT",
	DibStretchBlt:         "DIB_STRETCH_BLT",
	StretchDIBits:         "STRETCH_DIBITS",
	DeleteObject:          "DELETE_OBJECT",
	CreatePalette:         "CREATE_PALETTE",
	CreatePatternBrush:    "CREATE_PATTERN_BRUSH",
	CreatePenIndirect:     "CREATE_PEN_INDIRECT",
	CreateFontIndirect:    "CREATE_FONT_INDIRECT",
	CreateBrushIndirect:   "CREATE_BRUSH_INDIRECT",
	CreateRectRgn:         "CREATE_RECT_RGN",
}

func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return fmt.Sprintf("<unknown opcode %#04x>", uint16(op))
}

// Known returns true if the opcode is handled by the decoder.
func (op Opcode) Known() bool {
	_, ok := opcodeNames[op]
	return ok
}
