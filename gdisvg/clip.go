package gdisvg

import (
	"github.com/benoitkugler/wmfsvg/gdi"
	"github.com/sirupsen/logrus"
)

// asRegion returns the region created by this device, or nil.
func (d *Device) asRegion(obj gdi.Object, op string) *region {
	rgn, ok := obj.(*region)
	if !ok {
		d.log.WithFields(logrus.Fields{"op": op, "kind": kindOf(obj)}).Warn("region expected")
		return nil
	}
	return rgn
}

// use returns a reference to the definition of `rgn`.
func use(rgn *region) *node { return newNode("use", "xlink:href", "#"+rgn.id) }

func (d *Device) FillRgn(rgn, br gdi.Object) {
	r := d.asRegion(rgn, "FillRgn")
	if r == nil {
		return
	}
	n := use(r)
	switch br := br.(type) {
	case *brush:
		d.paint(n, false, br, nil)
	case *patternBrush:
		d.paint(n, false, nil, br)
	default:
		d.log.WithField("kind", kindOf(br)).Warn("brush expected")
		return
	}
	d.parent.add(n)
}

func (d *Device) PaintRgn(rgn gdi.Object) {
	r := d.asRegion(rgn, "PaintRgn")
	if r == nil {
		return
	}
	n := use(r)
	d.paint(n, false, d.dc.brush, d.dc.pattern)
	d.parent.add(n)
}

// FrameRgn strokes the border of the region, with the color
// of the given brush.
func (d *Device) FrameRgn(rgn, br gdi.Object, width, height int16) {
	r := d.asRegion(rgn, "FrameRgn")
	if r == nil {
		return
	}
	b, ok := br.(*brush)
	if !ok {
		d.log.WithField("kind", kindOf(br)).Warn("brush expected")
		return
	}
	strokeWidth := absInt(d.relX(float64(width)))
	if h := absInt(d.relY(float64(height))); h > strokeWidth {
		strokeWidth = h
	}
	if strokeWidth < 1 {
		strokeWidth = 1
	}
	stroke := colorString(b.color)
	if b.style == gdi.BsNull {
		stroke = "none"
	}
	d.parent.add(use(r).set("fill", "none").set("stroke", stroke).set("stroke-width", itoa(strokeWidth)))
}

func (d *Device) InvertRgn(rgn gdi.Object) {
	r := d.asRegion(rgn, "InvertRgn")
	if r == nil {
		return
	}
	n := use(r)
	if filter := d.ropFilter(gdi.DstInvert); filter != "" {
		n.set("filter", filter)
	}
	d.parent.add(n)
}

// openGroup replaces the current group (dropped if empty)
// by a new one, masked by `mask` if not nil.
func (d *Device) openGroup(mask *node) {
	if d.parent.isEmpty() {
		d.root.remove(d.parent)
	}
	d.parent = newNode("g")
	if mask != nil {
		id, _ := mask.get("id")
		d.parent.set("mask", "url(#"+id+")")
	}
	d.root.add(d.parent)
}

// defineMask adds `mask` to the definitions, with a new id,
// and makes it the current clip.
func (d *Device) defineMask(mask *node) {
	mask.set("id", d.nextID("mask"))
	d.defs.add(mask)
	d.dc.mask = mask
	d.openGroup(mask)
}

// clipOffset sets the translation of `mask` from the clip offset.
func (d *Device) clipOffset(mask *node) {
	if d.dc.OffsetClipX != 0 || d.dc.OffsetClipY != 0 {
		mask.set("transform", "translate("+itoa(int(d.dc.OffsetClipX))+","+itoa(int(d.dc.OffsetClipY))+")")
	} else {
		mask.unset("transform")
	}
}

// SelectClipRgn masks the following drawings with `rgn`,
// or removes the clip if `rgn` is nil.
func (d *Device) SelectClipRgn(rgn gdi.Object) {
	if rgn == nil {
		d.dc.mask = nil
		d.openGroup(nil)
		return
	}
	r := d.asRegion(rgn, "SelectClipRgn")
	if r == nil {
		return
	}
	mask := newNode("mask").add(use(r).set("fill", "white"))
	d.clipOffset(mask)
	d.defineMask(mask)
}

func (d *Device) OffsetClipRgn(x, y int16) {
	d.dc.OffsetClipRgn(x, y)
	if d.dc.mask == nil {
		return
	}
	mask := d.dc.mask.clone()
	d.clipOffset(mask)
	d.defineMask(mask)
}

// ExcludeClipRect removes a rectangle from the current clip.
// It has no effect without clip.
func (d *Device) ExcludeClipRect(left, top, right, bottom int16) {
	if d.dc.mask == nil {
		d.log.Debug("rectangle excluded without clip region")
		return
	}
	mask := d.dc.mask.clone()
	mask.add(d.rect(left, top, right, bottom).set("fill", "black"))
	d.defineMask(mask)
}

// IntersectClipRect restricts the clip to a rectangle.
func (d *Device) IntersectClipRect(left, top, right, bottom int16) {
	content := d.rect(left, top, right, bottom).set("fill", "white")
	if current := d.dc.mask; current != nil {
		id, _ := current.get("id")
		content = newNode("g", "mask", "url(#"+id+")").add(content)
	}
	d.defineMask(newNode("mask").add(content))
}
