package gdi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPixelModeIsIdentity(t *testing.T) {
	dc := NewDC()
	for _, v := range []float64{-32768, -120, -1, 0, 1, 7.5, 250, 32767} {
		assert.Equal(t, v, dc.ToAbsoluteX(v))
		assert.Equal(t, v, dc.ToAbsoluteY(v))
		assert.Equal(t, v, dc.ToRelativeX(v))
		assert.Equal(t, v, dc.ToRelativeY(v))
	}
}

func TestWindowTransform(t *testing.T) {
	dc := NewDC()
	dc.SetWindowOrgEx(100, 50)
	dc.SetWindowExtEx(200, -100)
	assert.Equal(t, 0., dc.ToAbsoluteX(100))
	assert.Equal(t, 50., dc.ToAbsoluteX(150))
	// negative extent flips the axis
	assert.Equal(t, -10., dc.ToAbsoluteY(60))
	assert.Equal(t, -10., dc.ToRelativeY(10))

	dc.OffsetWindowOrgEx(10, 0)
	dc.OffsetWindowOrgEx(10, 0)
	assert.Equal(t, 30., dc.ToAbsoluteX(150))

	dc.ScaleWindowExtEx(2, 1, 1, 1)
	assert.Equal(t, 15., dc.ToAbsoluteX(150))
	assert.Equal(t, 5., dc.ToRelativeX(10))

	dc.ScaleWindowExtEx(1, 0, 1, 0) // ignored
	assert.Equal(t, 5., dc.ToRelativeX(10))
}

func TestMapMode(t *testing.T) {
	dc := NewDC()
	dc.SetMapMode(MmTwips)
	assert.Equal(t, int16(MmTwips), dc.MapMode())
	assert.Equal(t, 1., dc.ToRelativeX(16))
	assert.Equal(t, -1., dc.ToRelativeY(16))

	dc.SetMapMode(MmHiEnglish)
	assert.InDelta(t, 9., dc.ToRelativeX(100), 1e-9)

	dc.SetMapMode(MmAnisotropic)
	assert.Equal(t, 100., dc.ToRelativeX(100))
}

func TestDPI(t *testing.T) {
	dc := NewDC()
	assert.Equal(t, uint16(DefaultDPI), dc.DPI())
	dc.SetDPI(96)
	assert.Equal(t, uint16(96), dc.DPI())
	dc.SetDPI(0)
	assert.Equal(t, uint16(DefaultDPI), dc.DPI())
}

func TestViewportOffsetIsReplaced(t *testing.T) {
	dc := NewDC()
	dc.OffsetViewportOrgEx(5, 5)
	dc.OffsetViewportOrgEx(3, 4)
	assert.Equal(t, int16(3), dc.vox)
	assert.Equal(t, int16(4), dc.voy)

	dc.SetViewportOrgEx(1, 2)
	dc.SetViewportExtEx(30, 40)
	x, y, w, h := dc.Viewport()
	assert.Equal(t, [4]int16{1, 2, 30, 40}, [4]int16{x, y, w, h})
	// the viewport does not alter the mapping
	assert.Equal(t, 12., dc.ToAbsoluteX(12))
}

func TestTextJustification(t *testing.T) {
	dc := NewDC()
	dc.SetTextJustification(10, 0)
	assert.Equal(t, int16(0), dc.TextSpace)
	dc.SetTextJustification(-10, 3)
	assert.Equal(t, int16(3), dc.TextSpace)
}

func TestSaveStack(t *testing.T) {
	var stack SaveStack[DC]
	dc := NewDC()
	for i := int16(1); i <= 4; i++ {
		dc.BkMode = i
		stack.Push(dc)
	}
	assert.Equal(t, 4, stack.Len())

	// -1 pops the last snapshot
	got, ok := stack.Restore(-1)
	assert.True(t, ok)
	assert.Equal(t, int16(4), got.BkMode)
	assert.Equal(t, 3, stack.Len())

	// positive: keep the first n snapshots
	got, ok = stack.Restore(1)
	assert.True(t, ok)
	assert.Equal(t, int16(2), got.BkMode)
	assert.Equal(t, 1, stack.Len())

	// unbalanced restores do not panic
	_, ok = stack.Restore(-5)
	assert.True(t, ok)
	_, ok = stack.Restore(-1)
	assert.False(t, ok)
	_, ok = stack.Restore(3)
	assert.False(t, ok)
	assert.Equal(t, 0, stack.Len())
}

func TestSnapshotIsCopy(t *testing.T) {
	var stack SaveStack[DC]
	dc := NewDC()
	stack.Push(dc)
	dc.SetWindowExtEx(10, 10)
	dc.TextColor = 0xff
	saved, _ := stack.Restore(-1)
	assert.Equal(t, int16(0), saved.WindowWidth)
	assert.Equal(t, int32(0), saved.TextColor)
}
