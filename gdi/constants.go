package gdi

// Background modes.
const (
	Transparent = 1
	Opaque      = 2
)

// Text alignment flags, as set by SetTextAlign.
const (
	TaNoUpdateCP = 0
	TaUpdateCP   = 1
	TaLeft       = 0
	TaRight      = 2
	TaCenter     = 6
	TaTop        = 0
	TaBottom     = 8
	TaBaseline   = 24
	TaRTLReading = 256
)

// ExtTextOut options.
const (
	EtoOpaque         = 0x0002
	EtoClipped        = 0x0004
	EtoGlyphIndex     = 0x0010
	EtoRTLReading     = 0x0080
	EtoNumericsLocal  = 0x0400
	EtoNumericsLatin  = 0x0800
	EtoIgnoreLanguage = 0x1000
	EtoPDY            = 0x2000
)

// HasRect reports whether ExtTextOut options carry a rectangle.
func HasRect(options uint16) bool { return options&(EtoOpaque|EtoClipped) != 0 }

// Mapping modes.
const (
	MmText        = 1
	MmLoMetric    = 2
	MmHiMetric    = 3
	MmLoEnglish   = 4
	MmHiEnglish   = 5
	MmTwips       = 6
	MmIsotropic   = 7
	MmAnisotropic = 8
)

// Stretch modes.
const (
	BlackOnWhite       = 1
	WhiteOnBlack       = 2
	ColorOnColor       = 3
	Halftone           = 4
	StretchAndScans    = BlackOnWhite
	StretchOrScans     = WhiteOnBlack
	StretchDeleteScans = ColorOnColor
	StretchHalftone    = Halftone
)

// ExtFloodFill types.
const (
	FloodFillBorder  = 0 // fill up to the given color
	FloodFillSurface = 1 // fill the area having the given color
)

// Poly fill modes.
const (
	Alternate = 1
	Winding   = 2
)

// Binary raster operations (SetROP2).
const (
	R2Black       = 1
	R2NotMergePen = 2
	R2MaskNotPen  = 3
	R2NotCopyPen  = 4
	R2MaskPenNot  = 5
	R2Not         = 6
	R2XorPen      = 7
	R2NotMaskPen  = 8
	R2MaskPen     = 9
	R2NotXorPen   = 10
	R2Nop         = 11
	R2MergeNotPen = 12
	R2CopyPen     = 13
	R2MergePenNot = 14
	R2MergePen    = 15
	R2White       = 16
)

// Ternary raster operations used by the blit records.
const (
	Blackness   uint32 = 0x00000042
	NotSrcErase uint32 = 0x001100A6
	NotSrcCopy  uint32 = 0x00330008
	SrcErase    uint32 = 0x00440328
	DstInvert   uint32 = 0x00550009
	PatInvert   uint32 = 0x005A0049
	SrcInvert   uint32 = 0x00660046
	SrcAnd      uint32 = 0x008800C6
	MergePaint  uint32 = 0x00BB0226
	MergeCopy   uint32 = 0x00C000CA
	SrcCopy     uint32 = 0x00CC0020
	SrcPaint    uint32 = 0x00EE0086
	PatCopy     uint32 = 0x00F00021
	PatPaint    uint32 = 0x00FB0A09
	Whiteness   uint32 = 0x00FF0062
)

// DIB color usage.
const (
	DibRGBColors = 0
	DibPalColors = 1
)

// Layout flags.
const (
	LayoutRTL                        = 1
	LayoutBitmapOrientationPreserved = 8
)

// SetRelAbs modes.
const (
	Absolute = 1
	Relative = 2
)

// Brush styles.
const (
	BsSolid         = 0
	BsNull          = 1
	BsHollow        = 1
	BsHatched       = 2
	BsPattern       = 3
	BsDIBPattern    = 5
	BsDIBPatternPT  = 6
	BsPattern8x8    = 7
	BsDIBPattern8x8 = 8
)

// Hatch styles.
const (
	HsHorizontal = 0
	HsVertical   = 1
	HsFDiagonal  = 2
	HsBDiagonal  = 3
	HsCross      = 4
	HsDiagCross  = 5
)

// Pen styles.
const (
	PsSolid       = 0
	PsDash        = 1
	PsDot         = 2
	PsDashDot     = 3
	PsDashDotDot  = 4
	PsNull        = 5
	PsInsideFrame = 6
)

// Font weights.
const (
	FwDontCare = 0
	FwThin     = 100
	FwLight    = 300
	FwNormal   = 400
	FwBold     = 700
	FwHeavy    = 900
)

// Font character sets.
const (
	AnsiCharset        = 0
	DefaultCharset     = 1
	SymbolCharset      = 2
	MacCharset         = 77
	ShiftJISCharset    = 128
	HangulCharset      = 129
	JohabCharset       = 130
	GB2312Charset      = 134
	ChineseBig5Charset = 136
	GreekCharset       = 161
	TurkishCharset     = 162
	VietnameseCharset  = 163
	HebrewCharset      = 177
	ArabicCharset      = 178
	BalticCharset      = 186
	RussianCharset     = 204
	ThaiCharset        = 222
	EastEuropeCharset  = 238
	OemCharset         = 255
)

// Font families, in the high nibble of PitchAndFamily.
const (
	FfDontCare   = 0
	FfRoman      = 16
	FfSwiss      = 32
	FfModern     = 48
	FfScript     = 64
	FfDecorative = 80
)
