package gdi

import "math"

// Arc is the geometry shared by the Arc, Chord and Pie operations,
// in logical units.
type Arc struct {
	CX, CY float64 // center
	RX, RY float64 // radii

	// start and end points, on the ellipse
	SX, SY float64
	EX, EY float64

	// Large is true when the arc spans more than half of the ellipse.
	Large bool
	// Full is true when both radials are identical:
	// the whole ellipse is drawn.
	Full bool
}

// NewArc computes the elliptic arc inscribed in the rectangle (sxr, syr, exr, eyr),
// going counterclockwise from the radial ending at (sxa, sya) to the
// radial ending at (exa, eya). It returns false for a flat rectangle.
func NewArc(sxr, syr, exr, eyr, sxa, sya, exa, eya int16) (Arc, bool) {
	var a Arc
	a.RX = math.Abs(float64(exr)-float64(sxr)) / 2
	a.RY = math.Abs(float64(eyr)-float64(syr)) / 2
	if a.RX <= 0 || a.RY <= 0 {
		return a, false
	}
	a.CX = math.Min(float64(sxr), float64(exr)) + a.RX
	a.CY = math.Min(float64(syr), float64(eyr)) + a.RY

	if sxa == exa && sya == eya {
		a.Full = true
		return a, true
	}

	// angles on the unit circle
	sa := math.Atan2((float64(sya)-a.CY)*a.RX, (float64(sxa)-a.CX)*a.RY)
	sx, sy := a.RX*math.Cos(sa), a.RY*math.Sin(sa)
	ea := math.Atan2((float64(eya)-a.CY)*a.RX, (float64(exa)-a.CX)*a.RY)
	ex, ey := a.RX*math.Cos(ea), a.RY*math.Sin(ea)

	a.SX, a.SY = sx+a.CX, sy+a.CY
	a.EX, a.EY = ex+a.CX, ey+a.CY
	a.Large = math.Atan2((ex-sx)*(-sy)-(ey-sy)*(-sx), (ex-sx)*(-sx)+(ey-sy)*(-sy)) > 0
	return a, true
}

// Mirrored returns true if the mapping flips exactly one axis,
// reversing the drawing direction of arcs.
func (dc *DC) Mirrored() bool {
	return (dc.ToRelativeX(1) < 0) != (dc.ToRelativeY(1) < 0)
}
