package gdisvg

import (
	"math"
	"strings"

	"github.com/benoitkugler/wmfsvg/gdi"
)

// styleAttrs returns the class list and the inline style
// for the given objects, ignoring nil ones.
func (d *Device) styleAttrs(objs ...styled) (class, style string) {
	var (
		names []string
		css   strings.Builder
	)
	for _, obj := range objs {
		if obj == nil {
			continue
		}
		if name := obj.className(); name != "" {
			names = append(names, name)
		}
		css.WriteString(obj.css())
	}
	return strings.Join(names, " "), css.String()
}

// apply sets the class (or the inline style) of `n`.
func (d *Device) apply(n *node, objs ...styled) {
	class, style := d.styleAttrs(objs...)
	if d.opts.UseStyle {
		n.set("class", class)
	} else {
		n.set("style", style)
	}
}

// stroke styles an open shape with the selected pen.
func (d *Device) stroke(n *node) {
	n.set("fill", "none")
	d.apply(n, d.dc.pen)
}

// fill styles a closed shape with the selected pen and brush.
func (d *Device) fill(n *node) {
	d.paint(n, true, d.dc.brush, d.dc.pattern)
}

// paint styles `n` with the brush `b`, or the pattern brush `pb` if not nil,
// and optionally the selected pen.
func (d *Device) paint(n *node, withPen bool, b *brush, pb *patternBrush) {
	var objs []styled
	if withPen {
		objs = append(objs, d.dc.pen)
	}
	if pb == nil && b != nil {
		objs = append(objs, b)
	}
	d.apply(n, objs...)

	if pb != nil {
		if id := d.imagePattern(pb); id != "" {
			n.set("fill", "url(#"+id+")")
		} else {
			n.set("fill", "none")
		}
	} else if id := d.hatchPattern(b); id != "" {
		n.set("fill", "url(#"+id+")")
	}
}

// fillRule sets the filling mode of polygons.
func (d *Device) fillRule(n *node) {
	if d.dc.PolyFillMode == gdi.Winding {
		n.set("fill-rule", "nonzero")
	}
}

func (d *Device) LineTo(ex, ey int16) {
	n := newNode("line",
		"x1", itoa(d.absX(float64(d.dc.CurrentX))),
		"y1", itoa(d.absY(float64(d.dc.CurrentY))),
		"x2", itoa(d.absX(float64(ex))),
		"y2", itoa(d.absY(float64(ey))),
	)
	d.stroke(n)
	d.parent.add(n)
	d.dc.MoveToEx(ex, ey)
}

func (d *Device) Rectangle(sx, sy, ex, ey int16) {
	n := d.rect(sx, sy, ex, ey)
	d.fill(n)
	d.parent.add(n)
}

func (d *Device) RoundRect(sx, sy, ex, ey, rw, rh int16) {
	n := d.rect(sx, sy, ex, ey)
	n.set("rx", itoa(absInt(d.relX(float64(rw)))))
	n.set("ry", itoa(absInt(d.relY(float64(rh)))))
	d.fill(n)
	d.parent.add(n)
}

func (d *Device) Ellipse(sx, sy, ex, ey int16) {
	n := newNode("ellipse",
		"cx", itoa(d.absX(float64((int(sx)+int(ex))/2))),
		"cy", itoa(d.absY(float64((int(sy)+int(ey))/2))),
		"rx", itoa(absInt(d.relX(float64((int(ex)-int(sx))/2)))),
		"ry", itoa(absInt(d.relY(float64((int(ey)-int(sy))/2)))),
	)
	d.fill(n)
	d.parent.add(n)
}

type arcShape uint8

const (
	openArc arcShape = iota
	chord
	pie
)

// arc returns the element for an elliptic arc inscribed in the rectangle
// (sxr, syr, exr, eyr), between the radials ending at (sxa, sya) and (exa, eya).
// Identical radials yield the full ellipse; a flat rectangle yields nil.
func (d *Device) arc(shape arcShape, sxr, syr, exr, eyr, sxa, sya, exa, eya int16) *node {
	a, ok := gdi.NewArc(sxr, syr, exr, eyr, sxa, sya, exa, eya)
	if !ok {
		return nil
	}
	rx := formatFloat(math.Abs(d.dc.ToRelativeX(a.RX)))
	ry := formatFloat(math.Abs(d.dc.ToRelativeY(a.RY)))
	point := func(x, y float64) string {
		return formatFloat(d.dc.ToAbsoluteX(x)) + "," + formatFloat(d.dc.ToAbsoluteY(y))
	}

	if a.Full {
		acx, acy := formatFloat(d.dc.ToAbsoluteX(a.CX)), formatFloat(d.dc.ToAbsoluteY(a.CY))
		if a.RX == a.RY {
			return newNode("circle", "cx", acx, "cy", acy, "r", rx)
		}
		return newNode("ellipse", "cx", acx, "cy", acy, "rx", rx, "ry", ry)
	}

	largeArc, sweep := "0", "0"
	if a.Large {
		largeArc = "1"
	}
	if d.dc.Mirrored() {
		sweep = "1"
	}
	var path strings.Builder
	if shape == pie {
		path.WriteString("M " + point(a.CX, a.CY) + " L " + point(a.SX, a.SY))
	} else {
		path.WriteString("M " + point(a.SX, a.SY))
	}
	path.WriteString(" A " + rx + "," + ry + " 0 " + largeArc + " " + sweep + " " + point(a.EX, a.EY))
	if shape != openArc {
		path.WriteString(" Z")
	}
	return newNode("path", "d", path.String())
}

func (d *Device) Arc(sxr, syr, exr, eyr, sxa, sya, exa, eya int16) {
	if n := d.arc(openArc, sxr, syr, exr, eyr, sxa, sya, exa, eya); n != nil {
		d.stroke(n)
		d.parent.add(n)
	}
}

func (d *Device) Chord(sxr, syr, exr, eyr, sxa, sya, exa, eya int16) {
	if n := d.arc(chord, sxr, syr, exr, eyr, sxa, sya, exa, eya); n != nil {
		d.fill(n)
		d.parent.add(n)
	}
}

func (d *Device) Pie(sxr, syr, exr, eyr, sxa, sya, exa, eya int16) {
	if n := d.arc(pie, sxr, syr, exr, eyr, sxa, sya, exa, eya); n != nil {
		d.fill(n)
		d.parent.add(n)
	}
}

func (d *Device) Polygon(points []gdi.Point) {
	n := newNode("polygon")
	d.fill(n)
	d.fillRule(n)
	n.set("points", d.points(points))
	d.parent.add(n)
}

func (d *Device) Polyline(points []gdi.Point) {
	n := newNode("polyline", "points", d.points(points))
	d.stroke(n)
	d.parent.add(n)
}

func (d *Device) PolyPolygon(polygons [][]gdi.Point) {
	var path strings.Builder
	for i, polygon := range polygons {
		if len(polygon) == 0 {
			continue
		}
		if i != 0 {
			path.WriteByte(' ')
		}
		for j, p := range polygon {
			switch j {
			case 0:
				path.WriteString("M ")
			case 1:
				path.WriteString("L ")
			}
			path.WriteString(itoa(d.absX(float64(p.X))) + "," + itoa(d.absY(float64(p.Y))) + " ")
		}
		path.WriteString("z")
	}
	n := newNode("path")
	d.fill(n)
	d.fillRule(n)
	n.set("d", path.String())
	d.parent.add(n)
}

func (d *Device) SetPixel(x, y int16, color int32) {
	d.parent.add(newNode("rect",
		"stroke", "none",
		"fill", colorString(color),
		"x", itoa(d.absX(float64(x))),
		"y", itoa(d.absY(float64(y))),
		"width", itoa(absInt(d.relX(1))),
		"height", itoa(absInt(d.relY(1))),
	))
}

type patternKey struct {
	brushKey
	bkMode  int16
	bkColor int32
}

// hatchPattern returns the id of the tiling pattern for a hatched brush,
// or "" for other brushes. Patterns are shared between identical
// brushes drawn with the same background.
func (d *Device) hatchPattern(b *brush) string {
	if b == nil || b.style != gdi.BsHatched {
		return ""
	}
	key := patternKey{brushKey: b.brushKey, bkMode: d.dc.BkMode}
	if key.bkMode == gdi.Opaque {
		key.bkColor = d.dc.BkColor
	}
	if id, ok := d.patterns[key]; ok {
		return id
	}

	id := d.nextID("pattern")
	p := newNode("pattern", "id", id, "patternUnits", "userSpaceOnUse",
		"x", "0", "y", "0", "width", "8", "height", "8")
	if key.bkMode == gdi.Opaque {
		p.add(newNode("rect", "fill", colorString(key.bkColor),
			"x", "0", "y", "0", "width", "8", "height", "8"))
	}
	stroke := colorString(b.color)
	line := func(x1, y1, x2, y2 string) *node {
		return newNode("line", "stroke", stroke, "x1", x1, "y1", y1, "x2", x2, "y2", y2)
	}
	var (
		horizontal = func() *node { return line("0", "4", "8", "4") }
		vertical   = func() *node { return line("4", "0", "4", "8") }
		fdiagonal  = func() *node { return line("0", "0", "8", "8") }
		bdiagonal  = func() *node { return line("0", "8", "8", "0") }
	)
	switch b.hatch {
	case gdi.HsHorizontal:
		p.add(horizontal())
	case gdi.HsVertical:
		p.add(vertical())
	case gdi.HsFDiagonal:
		p.add(fdiagonal())
	case gdi.HsBDiagonal:
		p.add(bdiagonal())
	case gdi.HsCross:
		p.add(horizontal(), vertical())
	case gdi.HsDiagCross:
		p.add(fdiagonal(), bdiagonal())
	}
	d.defs.add(p)
	d.patterns[key] = id
	return id
}
