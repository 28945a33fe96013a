package gdisvg

import (
	"strconv"

	"github.com/benoitkugler/wmfsvg/gdi"
)

const (
	invertMatrix    = "-1 0 0 0 1 0 -1 0 0 1 0 0 -1 0 1 0 0 0 1 0"
	blacknessMatrix = "0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 1 0"
	whitenessMatrix = "1 0 0 0 1 0 1 0 0 1 0 0 1 0 1 0 0 0 1 0"
)

func colorMatrix(in, values string) *node {
	return newNode("feColorMatrix", "type", "matrix", "in", in, "values", values)
}

// composite returns an arithmetic composition of `in` and `in2`,
// with the given k1, k2, k3 coefficients (k4 is 0).
func composite(in, in2 string, k1, k2, k3 string) *node {
	n := newNode("feComposite", "in", in, "in2", in2, "operator", "arithmetic")
	for i, k := range [...]string{k1, k2, k3} {
		if k != "" {
			n.set("k"+strconv.Itoa(i+1), k)
		}
	}
	return n
}

type filterDef struct {
	id         string
	primitives func() []*node
}

// ropFilters emulates the raster operations expressible with SVG filters.
// PatInvert, SrcInvert, MergeCopy, SrcCopy, PatCopy and PatPaint
// are rendered without filter.
var ropFilters = map[uint32]filterDef{
	gdi.Blackness: {"BLACKNESS_FILTER", func() []*node {
		return []*node{colorMatrix("SourceGraphic", blacknessMatrix)}
	}},
	gdi.NotSrcErase: {"NOTSRCERASE_FILTER", func() []*node {
		return []*node{
			composite("SourceGraphic", "BackgroundImage", "1", "", "").set("result", "result0"),
			colorMatrix("result0", invertMatrix),
		}
	}},
	gdi.NotSrcCopy: {"NOTSRCCOPY_FILTER", func() []*node {
		return []*node{colorMatrix("SourceGraphic", invertMatrix)}
	}},
	gdi.SrcErase: {"SRCERASE_FILTER", func() []*node {
		return []*node{
			colorMatrix("BackgroundImage", invertMatrix).set("result", "result0"),
			composite("SourceGraphic", "result0", "", "1", "1"),
		}
	}},
	gdi.DstInvert: {"DSTINVERT_FILTER", func() []*node {
		return []*node{colorMatrix("BackgroundImage", invertMatrix)}
	}},
	gdi.SrcAnd: {"SRCAND_FILTER", func() []*node {
		return []*node{composite("SourceGraphic", "BackgroundImage", "1", "", "")}
	}},
	gdi.MergePaint: {"MERGEPAINT_FILTER", func() []*node {
		return []*node{
			colorMatrix("SourceGraphic", invertMatrix).set("result", "result0"),
			composite("result0", "BackgroundImage", "1", "", ""),
		}
	}},
	gdi.SrcPaint: {"SRCPAINT_FILTER", func() []*node {
		return []*node{composite("SourceGraphic", "BackgroundImage", "", "1", "1")}
	}},
	gdi.Whiteness: {"WHITENESS_FILTER", func() []*node {
		return []*node{colorMatrix("SourceGraphic", whitenessMatrix)}
	}},
}

// ropFilter returns the reference to the filter emulating `rop`,
// or "" if `rop` needs no (or has no) filter.
// Each filter is defined once per document.
func (d *Device) ropFilter(rop uint32) string {
	f, ok := ropFilters[rop]
	if !ok {
		return ""
	}
	if _, ok := d.filters[rop]; !ok {
		d.defs.add(newNode("filter", "id", f.id).add(f.primitives()...))
		d.filters[rop] = f.id
		d.root.set("enable-background", "new")
	}
	return "url(#" + f.id + ")"
}
