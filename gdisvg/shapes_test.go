package gdisvg

import (
	"testing"

	"github.com/benoitkugler/wmfsvg/gdi"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultPenStyle = "stroke: black; stroke-width: 1; stroke-linejoin: round; "

func lastElement(d *Device) *node {
	return d.parent.children[len(d.parent.children)-1]
}

func TestArcs(t *testing.T) {
	d, _ := newTestDevice(Options{})

	d.Arc(0, 0, 100, 100, 50, 0, 50, 0)
	n := lastElement(d)
	assert.Equal(t, "circle", n.name)
	assert.Equal(t, "50", attr(n, "cx"))
	assert.Equal(t, "50", attr(n, "r"))
	assert.Equal(t, "none", attr(n, "fill"))
	assert.Equal(t, defaultPenStyle, attr(n, "style"))

	d.Chord(0, 0, 100, 50, 10, 10, 10, 10)
	n = lastElement(d)
	assert.Equal(t, "ellipse", n.name)
	assert.Equal(t, "50", attr(n, "rx"))
	assert.Equal(t, "25", attr(n, "ry"))
	assert.Equal(t, defaultPenStyle+"fill: white; ", attr(n, "style"))

	d.Arc(0, 0, 100, 100, 100, 50, 50, 0)
	assert.Equal(t, "M 100,50 A 50,50 0 0 0 50,0", attr(lastElement(d), "d"))
	d.Chord(0, 0, 100, 100, 100, 50, 50, 0)
	assert.Equal(t, "M 100,50 A 50,50 0 0 0 50,0 Z", attr(lastElement(d), "d"))
	d.Pie(0, 0, 100, 100, 100, 50, 50, 0)
	assert.Equal(t, "M 50,50 L 100,50 A 50,50 0 0 0 50,0 Z", attr(lastElement(d), "d"))

	// flat rectangle: nothing drawn
	count := len(d.parent.children)
	d.Pie(0, 0, 100, 0, 100, 50, 50, 0)
	assert.Len(t, d.parent.children, count)
}

func TestLinesAndPolygons(t *testing.T) {
	d, _ := newTestDevice(Options{})
	d.MoveToEx(1, 2)
	d.LineTo(10, 20)
	d.LineTo(30, 40)
	lines := collect(d.root, "line")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"10", "20", "30", "40"},
		[]string{attr(lines[1], "x1"), attr(lines[1], "y1"), attr(lines[1], "x2"), attr(lines[1], "y2")})

	d.SetPolyFillMode(gdi.Winding)
	d.Polygon([]gdi.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}})
	n := lastElement(d)
	assert.Equal(t, "0,0 10,0 10,10", attr(n, "points"))
	assert.Equal(t, "nonzero", attr(n, "fill-rule"))

	d.SetPolyFillMode(gdi.Alternate)
	d.PolyPolygon([][]gdi.Point{{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}}, {{X: 5, Y: 5}, {X: 6, Y: 6}, {X: 7, Y: 5}}})
	n = lastElement(d)
	assert.Equal(t, "M 0,0 L 1,1 2,0 z M 5,5 L 6,6 7,5 z", attr(n, "d"))
	_, ok := n.get("fill-rule")
	assert.False(t, ok)

	d.Polyline([]gdi.Point{{X: 0, Y: 0}, {X: -10, Y: 5}})
	assert.Equal(t, "0,0 -10,5", attr(lastElement(d), "points"))
}

func TestRectangles(t *testing.T) {
	d, _ := newTestDevice(Options{})
	d.SetWindowOrgEx(10, 10)
	d.Rectangle(50, 40, 20, 20)
	n := lastElement(d)
	assert.Equal(t, []string{"10", "10", "30", "20"},
		[]string{attr(n, "x"), attr(n, "y"), attr(n, "width"), attr(n, "height")})

	d.RoundRect(10, 10, 20, 20, 4, -6)
	n = lastElement(d)
	assert.Equal(t, "4", attr(n, "rx"))
	assert.Equal(t, "6", attr(n, "ry"))

	d.SelectObject(d.CreatePenIndirect(gdi.PsNull, 0, 0))
	d.SelectObject(d.CreateBrushIndirect(gdi.BsNull, 0, 0))
	d.Ellipse(0, 0, 20, 10)
	assert.Equal(t, "stroke: none; fill: none; ", attr(lastElement(d), "style"))

	d.SetPixel(3, 4, 0x00010203)
	n = lastElement(d)
	assert.Equal(t, "rgb(3,2,1)", attr(n, "fill"))
	assert.Equal(t, "1", attr(n, "width"))
}

func TestHatchPatterns(t *testing.T) {
	d, _ := newTestDevice(Options{UseStyle: true})
	b1 := d.CreateBrushIndirect(gdi.BsHatched, 0x000000FF, gdi.HsCross)
	b2 := d.CreateBrushIndirect(gdi.BsHatched, 0x000000FF, gdi.HsCross)
	assert.Equal(t, b1.(*brush).class, b2.(*brush).class)

	d.SelectObject(b1)
	d.Rectangle(0, 0, 10, 10)
	d.SelectObject(b2)
	d.Ellipse(0, 0, 10, 10)

	patterns := collect(d.defs, "pattern")
	require.Len(t, patterns, 1)
	assert.Equal(t, "pattern0", attr(patterns[0], "id"))
	// opaque background, then the two lines
	require.Len(t, patterns[0].children, 3)
	assert.Equal(t, "white", attr(patterns[0].children[0], "fill"))
	assert.Equal(t, "red", attr(patterns[0].children[1], "stroke"))

	for _, name := range []string{"rect", "ellipse"} {
		shapes := collect(d.parent, name)
		require.Len(t, shapes, 1)
		assert.Equal(t, "url(#pattern0)", attr(shapes[0], "fill"))
		assert.Equal(t, "pen0 brush1", attr(shapes[0], "class"))
	}

	d.SetBkMode(gdi.Transparent)
	d.Rectangle(0, 0, 10, 10)
	patterns = collect(d.defs, "pattern")
	require.Len(t, patterns, 2)
	assert.Len(t, patterns[1].children, 2)
	assert.Equal(t, "url(#pattern1)", attr(lastElement(d), "fill"))
}

func TestPatternBrush(t *testing.T) {
	d, hook := newTestDevice(Options{})
	dib := newDIB24(2, 2, 0xFF0000)
	d.SelectObject(d.DibCreatePatternBrush(dib, gdi.DibRGBColors))
	d.Rectangle(0, 0, 10, 10)
	d.Rectangle(0, 0, 20, 20)

	patterns := collect(d.defs, "pattern")
	require.Len(t, patterns, 1)
	assert.Equal(t, "2", attr(patterns[0], "width"))
	for _, rect := range collect(d.parent, "rect") {
		assert.Equal(t, "url(#pattern0)", attr(rect, "fill"))
	}

	// invalid bitmaps are not painted
	d.SelectObject(d.CreatePatternBrush([]byte{1, 2, 3}))
	d.Rectangle(0, 0, 10, 10)
	assert.Equal(t, "none", attr(lastElement(d), "fill"))
	assert.Contains(t, messages(hook, logrus.WarnLevel), "invalid bitmap skipped")

	// a plain brush replaces the pattern
	d.SelectObject(d.CreateBrushIndirect(gdi.BsSolid, 0, 0))
	d.Rectangle(0, 0, 10, 10)
	_, ok := lastElement(d).get("fill")
	assert.False(t, ok)
}

func TestColorString(t *testing.T) {
	for c, expected := range map[int32]string{
		0x00000000: "black",
		0x00FFFFFF: "white",
		0x000000FF: "red",
		0x0000FF00: "green",
		0x00FF0000: "blue",
		0x00563412: "rgb(18,52,86)",
	} {
		assert.Equal(t, expected, colorString(c))
	}
}
