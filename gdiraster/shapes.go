package gdiraster

import (
	"image"
	"math"

	"github.com/benoitkugler/wmfsvg/gdi"
	"github.com/srwiley/rasterx"
)

// paint fills then strokes the path built by `build`,
// with the selected brush and pen.
func (d *Device) paint(fill bool, build func(rd *renderer)) {
	rd := d.canvas()
	if rd.hidden {
		return
	}
	rd.Clear()
	rd.SetWinding(d.dc.PolyFillMode == gdi.Winding)
	stroke := d.strokePaint()
	build(rd)
	if fill {
		rd.Fill(d.fillPaint())
	}
	rd.Stroke(stroke)
}

func (d *Device) LineTo(ex, ey int16) {
	sx, sy := d.dc.CurrentX, d.dc.CurrentY
	d.paint(false, func(rd *renderer) {
		rd.Start(rasterx.ToFixedP(d.px(sx), d.py(sy)))
		rd.Line(rasterx.ToFixedP(d.px(ex), d.py(ey)))
		rd.Stop(false)
	})
	d.dc.MoveToEx(ex, ey)
}

func (d *Device) Rectangle(sx, sy, ex, ey int16) {
	d.paint(true, func(rd *renderer) {
		x0, x1 := minMax(d.px(sx), d.px(ex))
		y0, y1 := minMax(d.py(sy), d.py(ey))
		rasterx.AddRect(x0, y0, x1, y1, 0, rd)
	})
}

// RoundRect uses `rw` and `rh` as the size of the corner ellipses.
func (d *Device) RoundRect(sx, sy, ex, ey, rw, rh int16) {
	d.paint(true, func(rd *renderer) {
		x0, x1 := minMax(d.px(sx), d.px(ex))
		y0, y1 := minMax(d.py(sy), d.py(ey))
		rx, ry := d.lengthX(float64(rw))/2, d.lengthY(float64(rh))/2
		rasterx.AddRoundRect(x0, y0, x1, y1, rx, ry, 0, rasterx.RoundGap, rd)
	})
}

func (d *Device) Ellipse(sx, sy, ex, ey int16) {
	d.paint(true, func(rd *renderer) {
		x0, x1 := minMax(d.px(sx), d.px(ex))
		y0, y1 := minMax(d.py(sy), d.py(ey))
		if x0 == x1 || y0 == y1 {
			return
		}
		rasterx.AddEllipse((x0+x1)/2, (y0+y1)/2, (x1-x0)/2, (y1-y0)/2, 0, rd)
	})
}

func (d *Device) Arc(sxr, syr, exr, eyr, sxa, sya, exa, eya int16) {
	d.arc(arcOpen, sxr, syr, exr, eyr, sxa, sya, exa, eya)
}

func (d *Device) Chord(sxr, syr, exr, eyr, sxa, sya, exa, eya int16) {
	d.arc(arcChord, sxr, syr, exr, eyr, sxa, sya, exa, eya)
}

func (d *Device) Pie(sxr, syr, exr, eyr, sxa, sya, exa, eya int16) {
	d.arc(arcPie, sxr, syr, exr, eyr, sxa, sya, exa, eya)
}

const (
	arcOpen = iota
	arcChord
	arcPie
)

func (d *Device) arc(kind int, sxr, syr, exr, eyr, sxa, sya, exa, eya int16) {
	a, ok := gdi.NewArc(sxr, syr, exr, eyr, sxa, sya, exa, eya)
	if !ok {
		return
	}
	d.paint(kind != arcOpen, func(rd *renderer) {
		cx, cy := d.dc.ToAbsoluteX(a.CX)*d.scale, d.dc.ToAbsoluteY(a.CY)*d.scale
		rx, ry := d.lengthX(a.RX), d.lengthY(a.RY)
		if a.Full {
			rasterx.AddEllipse(cx, cy, rx, ry, 0, rd)
			return
		}
		sx, sy := d.dc.ToAbsoluteX(a.SX)*d.scale, d.dc.ToAbsoluteY(a.SY)*d.scale
		ex, ey := d.dc.ToAbsoluteX(a.EX)*d.scale, d.dc.ToAbsoluteY(a.EY)*d.scale
		if kind == arcPie {
			rd.Start(rasterx.ToFixedP(cx, cy))
			rd.Line(rasterx.ToFixedP(sx, sy))
		} else {
			rd.Start(rasterx.ToFixedP(sx, sy))
		}
		rasterx.AddArc([]float64{rx, ry, 0, boolFlag(a.Large), boolFlag(d.dc.Mirrored()), ex, ey}, cx, cy, sx, sy, rd)
		rd.Stop(kind != arcOpen)
	})
}

func (d *Device) addPolygon(rd *renderer, points []gdi.Point, closed bool) {
	for i, p := range points {
		pt := rasterx.ToFixedP(d.px(p.X), d.py(p.Y))
		if i == 0 {
			rd.Start(pt)
		} else {
			rd.Line(pt)
		}
	}
	rd.Stop(closed)
}

func (d *Device) Polygon(points []gdi.Point) {
	if len(points) == 0 {
		return
	}
	d.paint(true, func(rd *renderer) { d.addPolygon(rd, points, true) })
}

func (d *Device) Polyline(points []gdi.Point) {
	if len(points) == 0 {
		return
	}
	d.paint(false, func(rd *renderer) { d.addPolygon(rd, points, false) })
}

func (d *Device) PolyPolygon(polygons [][]gdi.Point) {
	d.paint(true, func(rd *renderer) {
		for _, points := range polygons {
			if len(points) != 0 {
				d.addPolygon(rd, points, true)
			}
		}
	})
}

func (d *Device) SetPixel(x, y int16, color int32) {
	d.canvas()
	pt := image.Pt(int(math.Floor(d.px(x))), int(math.Floor(d.py(y))))
	if pt.In(d.clipRect()) {
		d.img.SetRGBA(pt.X, pt.Y, gdi.ToRGBA(color))
	}
}

func minMax(a, b float64) (float64, float64) {
	if a > b {
		return b, a
	}
	return a, b
}

func boolFlag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
