package gdi

// DefaultDPI is used when a placeable header specifies no resolution.
const DefaultDPI = 1440

// DC is the backend independent part of a device context:
// coordinate mapping, current position, and text/fill/stroke modes.
// It holds no reference, so that a plain copy is a snapshot:
// backends embed it in their own context type, together with their
// selected resources.
//
// Viewport origin, extent, offset and scale are tracked
// but are not taken into account by the transforms.
type DC struct {
	dpi uint16

	// window origin and extent
	WindowX, WindowY          int16
	WindowWidth, WindowHeight int16

	// window offset and scale
	wox, woy int16
	wsx, wsy float64

	// mapping mode multipliers
	mapMode int16
	mx, my  float64

	// viewport
	vx, vy, vw, vh int16
	vox, voy       int16
	vsx, vsy       float64

	CurrentX, CurrentY       int16
	OffsetClipX, OffsetClipY int16

	BkColor            int32
	BkMode             int16
	TextColor          int32
	PolyFillMode       int16
	RelAbs             int16
	ROP2               int16
	StretchBltMode     int16
	TextAlign          int16
	TextCharacterExtra int16
	TextSpace          int16
	Layout             uint32
	MapperFlags        uint32
}

// NewDC returns a device context initialized with the
// Windows defaults.
func NewDC() DC {
	return DC{
		dpi:            DefaultDPI,
		wsx:            1,
		wsy:            1,
		mapMode:        MmText,
		mx:             1,
		my:             1,
		vsx:            1,
		vsy:            1,
		BkColor:        0x00FFFFFF,
		BkMode:         Opaque,
		PolyFillMode:   Alternate,
		ROP2:           R2CopyPen,
		StretchBltMode: StretchAndScans,
		TextAlign:      TaTop | TaLeft,
	}
}

// DPI returns the resolution, in dots per inch.
func (dc *DC) DPI() uint16 { return dc.dpi }

// SetDPI sets the resolution, replacing 0 by DefaultDPI.
func (dc *DC) SetDPI(dpi uint16) {
	if dpi == 0 {
		dpi = DefaultDPI
	}
	dc.dpi = dpi
}

func (dc *DC) SetWindowOrgEx(x, y int16) { dc.WindowX, dc.WindowY = x, y }

func (dc *DC) SetWindowExtEx(width, height int16) { dc.WindowWidth, dc.WindowHeight = width, height }

// OffsetWindowOrgEx accumulates the offset.
func (dc *DC) OffsetWindowOrgEx(x, y int16) {
	dc.wox += x
	dc.woy += y
}

// ScaleWindowExtEx multiplies the window scale by x/xd and y/yd.
// Null divisors are ignored.
func (dc *DC) ScaleWindowExtEx(x, xd, y, yd int16) {
	if xd != 0 {
		dc.wsx = dc.wsx * float64(x) / float64(xd)
	}
	if yd != 0 {
		dc.wsy = dc.wsy * float64(y) / float64(yd)
	}
}

func (dc *DC) SetViewportOrgEx(x, y int16) { dc.vx, dc.vy = x, y }

func (dc *DC) SetViewportExtEx(width, height int16) { dc.vw, dc.vh = width, height }

// OffsetViewportOrgEx replaces (and does not accumulate) the viewport offset.
func (dc *DC) OffsetViewportOrgEx(x, y int16) { dc.vox, dc.voy = x, y }

func (dc *DC) ScaleViewportExtEx(x, xd, y, yd int16) {
	if xd != 0 {
		dc.vsx = dc.vsx * float64(x) / float64(xd)
	}
	if yd != 0 {
		dc.vsy = dc.vsy * float64(y) / float64(yd)
	}
}

// Viewport returns the viewport origin and extent.
func (dc *DC) Viewport() (x, y, width, height int16) { return dc.vx, dc.vy, dc.vw, dc.vh }

func (dc *DC) OffsetClipRgn(x, y int16) { dc.OffsetClipX, dc.OffsetClipY = x, y }

func (dc *DC) MoveToEx(x, y int16) { dc.CurrentX, dc.CurrentY = x, y }

// MapMode returns the current mapping mode.
func (dc *DC) MapMode() int16 { return dc.mapMode }

// SetMapMode updates the mapping mode and the axis multipliers.
// Unknown modes, as well as the isotropic and anisotropic ones,
// use the pixel multipliers.
func (dc *DC) SetMapMode(mode int16) {
	dc.mapMode = mode
	switch mode {
	case MmHiEnglish:
		dc.mx, dc.my = 0.09, -0.09
	case MmLoEnglish:
		dc.mx, dc.my = 0.9, -0.9
	case MmHiMetric:
		dc.mx, dc.my = 0.03543307, -0.03543307
	case MmLoMetric:
		dc.mx, dc.my = 0.3543307, -0.3543307
	case MmTwips:
		dc.mx, dc.my = 0.0625, -0.0625
	default:
		dc.mx, dc.my = 1, 1
	}
}

func sign(v int16) float64 {
	if v >= 0 {
		return 1
	}
	return -1
}

// ToAbsoluteX maps a logical abscissa to the output space.
func (dc *DC) ToAbsoluteX(x float64) float64 {
	return sign(dc.WindowWidth) * (dc.mx*x - float64(int32(dc.WindowX)+int32(dc.wox))) / dc.wsx
}

// ToAbsoluteY maps a logical ordinate to the output space.
func (dc *DC) ToAbsoluteY(y float64) float64 {
	return sign(dc.WindowHeight) * (dc.my*y - float64(int32(dc.WindowY)+int32(dc.woy))) / dc.wsy
}

// ToRelativeX maps a logical horizontal length to the output space.
func (dc *DC) ToRelativeX(x float64) float64 {
	return sign(dc.WindowWidth) * dc.mx * x / dc.wsx
}

// ToRelativeY maps a logical vertical length to the output space.
func (dc *DC) ToRelativeY(y float64) float64 {
	return sign(dc.WindowHeight) * dc.my * y / dc.wsy
}

// SetTextJustification updates the extra space added to break characters.
func (dc *DC) SetTextJustification(breakExtra, breakCount int16) {
	if breakCount > 0 {
		extra := int(dc.ToRelativeX(float64(breakExtra)))
		if extra < 0 {
			extra = -extra
		}
		dc.TextSpace = int16(extra / int(breakCount))
	}
}

// SaveStack stores device context snapshots, for SaveDC and RestoreDC.
// T is usually a backend specific context embedding DC, and is stored
// by value.
type SaveStack[T any] struct {
	saved []T
}

// Len returns the number of stored snapshots.
func (s *SaveStack[T]) Len() int { return len(s.saved) }

// Push stores a copy of `state`.
func (s *SaveStack[T]) Push(state T) { s.saved = append(s.saved, state) }

// Restore pops snapshots following RestoreDC semantics:
// a negative `n` pops -n snapshots, a positive one pops all the snapshots
// above the n-th. It returns the last popped state, or false if nothing
// was popped (including for an unbalanced stack).
func (s *SaveStack[T]) Restore(n int16) (T, bool) {
	var (
		out    T
		popped bool
	)
	limit := len(s.saved) - int(n)
	if n < 0 {
		limit = -int(n)
	}
	for i := 0; i < limit && len(s.saved) > 0; i++ {
		out = s.saved[len(s.saved)-1]
		s.saved = s.saved[:len(s.saved)-1]
		popped = true
	}
	return out, popped
}
