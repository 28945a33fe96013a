package gdisvg

import (
	"strings"
	"unicode/utf8"

	"github.com/benoitkugler/wmfsvg/gdi"
)

const (
	alignHorizontal = gdi.TaCenter // also covers TaRight
	alignVertical   = gdi.TaBottom | gdi.TaBaseline
)

// decodeText converts `text` using the charset of the selected font.
func (d *Device) decodeText(text []byte) string {
	if f := d.dc.font; f != nil {
		return gdi.DecodeText(text, f.cs)
	}
	return gdi.DecodeText(text, gdi.DefaultCharset)
}

// newText returns a text element styled with the selected font,
// the text color and the alignment flags.
func (d *Device) newText(options uint16) (n *node, vertical bool, rotation int) {
	n = newNode("text")
	var style strings.Builder
	if f := d.dc.font; f != nil {
		if d.opts.UseStyle {
			n.set("class", f.className())
		} else {
			style.WriteString(f.css())
		}
		vertical, rotation = f.vertical, f.rotation()
	}
	n.set("fill", colorString(d.dc.TextColor))

	align := d.dc.TextAlign
	switch align & alignHorizontal {
	case gdi.TaRight:
		style.WriteString("text-anchor: end; ")
	case gdi.TaCenter:
		style.WriteString("text-anchor: middle; ")
	}
	switch {
	case vertical:
		n.set("writing-mode", "tb")
		style.WriteString("dominant-baseline: ideographic; ")
	case d.opts.Compatible, align&alignVertical == gdi.TaBaseline:
		style.WriteString("dominant-baseline: alphabetic; ")
	default:
		style.WriteString("dominant-baseline: text-before-edge; ")
	}
	if align&gdi.TaRTLReading != 0 || options&gdi.EtoRTLReading != 0 {
		style.WriteString("unicode-bidi: bidi-override; direction: rtl; ")
	}
	if d.dc.TextSpace > 0 {
		style.WriteString("word-spacing: " + itoa(int(d.dc.TextSpace)) + "; ")
	}
	n.set("style", style.String())
	n.set("stroke", "none")
	return n, vertical, rotation
}

// setContent adds the language and the characters of a text element.
func (d *Device) setContent(n *node, s string) {
	if f := d.dc.font; f != nil && f.lang != "" {
		n.set("xml:lang", f.lang)
	}
	n.set("xml:space", "preserve")
	d.appendText(n, s)
}

func rotate(n *node, rotation, ax, ay int) {
	if rotation != 0 {
		n.set("transform", "rotate("+formatFloat(-float64(rotation)/10)+", "+itoa(ax)+", "+itoa(ay)+")")
	}
}

// advance estimates the logical advance of `text` when no
// character widths are given: half the font height per byte.
func (d *Device) advance(text []byte) int16 {
	if f := d.dc.font; f != nil {
		return int16(absInt(int(f.height)) * len(text) / 2)
	}
	return 0
}

// TextOut draws a text without background. With TA_UPDATECP, the text
// starts at the current position, which is moved after it.
func (d *Device) TextOut(x, y int16, text []byte) {
	n, vertical, rotation := d.newText(0)
	if d.dc.TextAlign&gdi.TaUpdateCP != 0 {
		x, y = d.dc.CurrentX, d.dc.CurrentY
		if vertical {
			d.dc.MoveToEx(x, y+d.advance(text))
		} else {
			d.dc.MoveToEx(x+d.advance(text), y)
		}
	}
	ax, ay := d.absX(float64(x)), d.absY(float64(y))
	n.set("x", itoa(ax))
	n.set("y", itoa(ay))
	rotate(n, rotation, ax, ay)

	s := d.decodeText(text)
	if extra := d.dc.TextCharacterExtra; extra != 0 {
		if count := utf8.RuneCountInString(s); count > 1 {
			spacing := make([]string, count-1)
			for i := range spacing {
				spacing[i] = itoa(d.relX(float64(extra)))
			}
			n.set("dx", strings.Join(spacing, " "))
		}
	}
	d.setContent(n, s)
	d.parent.add(n)
}

// ExtTextOut draws a text with optional per character advances,
// background rectangle and clipping rectangle.
func (d *Device) ExtTextOut(x, y int16, options uint16, rect []int16, text []byte, dx []int16) {
	n, vertical, rotation := d.newText(options)
	f := d.dc.font
	align := d.dc.TextAlign
	updateCP := align&gdi.TaUpdateCP != 0
	if updateCP {
		x, y = d.dc.CurrentX, d.dc.CurrentY
	}
	if f != nil {
		dx = gdi.FixTextDx(f.cs, text, dx)
	}
	fontSize := 0
	if f != nil {
		fontSize = f.size
	}

	// offset of the first character, from the advances
	leading := func(total int) int {
		last := int(dx[len(dx)-1])
		switch align & alignHorizontal {
		case gdi.TaRight:
			return total - last
		case gdi.TaCenter:
			return (total - last) / 2
		}
		return 0
	}

	ax, ay := d.absX(float64(x)), d.absY(float64(y))
	var width, height int
	switch {
	case vertical:
		n.set("x", itoa(ax))
		width = fontSize
	case len(dx) != 0:
		for _, w := range dx {
			width += int(w)
		}
		tx := int(x) - leading(width)
		xs := make([]string, len(dx))
		for i, w := range dx {
			xs[i] = itoa(d.absX(float64(tx)))
			tx += int(w)
		}
		if updateCP {
			d.dc.MoveToEx(int16(tx), y)
		}
		n.set("x", strings.Join(xs, " "))
	default:
		width = fontSize * len(text) / 2
		if updateCP {
			d.dc.MoveToEx(x+d.advance(text), y)
		}
		n.set("x", itoa(ax))
	}

	if vertical {
		first := ay
		if align == 0 && f != nil {
			first += d.relY(float64(absInt(int(f.height))))
		}
		ys := []string{itoa(first)}
		if len(dx) != 0 {
			for _, h := range dx[:len(dx)-1] {
				height += int(h)
			}
			ty := int(y) - leading(height)
			for _, h := range dx {
				ys = append(ys, itoa(d.absY(float64(ty))))
				ty += int(h)
			}
			if updateCP {
				d.dc.MoveToEx(x, int16(ty))
			}
		} else {
			height = fontSize * len(text) / 2
			if updateCP {
				d.dc.MoveToEx(x, y+d.advance(text))
			}
		}
		n.set("y", strings.Join(ys, " "))
	} else {
		height = fontSize
		ty := ay
		bottom := align&alignVertical == gdi.TaBottom && len(rect) == 4
		if d.opts.Compatible {
			switch {
			case align&alignVertical == gdi.TaTop:
				ty += d.relY(float64(height) * 0.88)
			case bottom:
				ty += int(rect[3]) - int(rect[1]) + d.relY(float64(height)*0.88)
			}
		} else if bottom {
			ty += int(rect[3]) - int(rect[1]) - d.relY(float64(height))
		}
		n.set("y", itoa(ty))
	}

	var bk, clip *node
	if d.dc.BkMode == gdi.Opaque || options&gdi.EtoOpaque != 0 {
		if len(rect) != 4 && f != nil {
			rect = textBounds(x, y, width, height, vertical, align)
		}
		if len(rect) == 4 {
			bk = d.rect(rect[0], rect[1], rect[2], rect[3]).set("fill", colorString(d.dc.BkColor))
		}
	}
	if options&gdi.EtoClipped != 0 && len(rect) == 4 {
		id := d.nextID("clipPath")
		clip = newNode("clipPath", "id", id).add(d.rect(rect[0], rect[1], rect[2], rect[3]))
		n.set("clip-path", "url(#"+id+")")
	}

	d.setContent(n, d.decodeText(text))

	out := n
	if bk != nil || clip != nil {
		out = newNode("g")
		if bk != nil {
			out.add(bk)
		}
		if clip != nil {
			out.add(clip)
		}
		out.add(n)
	}
	rotate(out, rotation, ax, ay)
	d.parent.add(out)
}

// textBounds estimates the background rectangle of a text
// drawn at (x, y), in logical units.
func textBounds(x, y int16, width, height int, vertical bool, align int16) []int16 {
	left, top := int(x), int(y)
	if vertical {
		switch align & alignVertical {
		case gdi.TaBottom:
			left -= width
		case gdi.TaBaseline:
			left -= int(float64(width) * 0.85)
		}
		switch align & alignHorizontal {
		case gdi.TaRight:
			top -= height
		case gdi.TaCenter:
			top -= height / 2
		}
	} else {
		switch align & alignHorizontal {
		case gdi.TaRight:
			left -= width
		case gdi.TaCenter:
			left -= width / 2
		}
		switch align & alignVertical {
		case gdi.TaBottom:
			top -= height
		case gdi.TaBaseline:
			top -= int(float64(height) * 0.85)
		}
	}
	return []int16{int16(left), int16(top), int16(left + width), int16(top + height)}
}

type fontFamily uint8

const (
	inherited fontFamily = iota
	serif
	sansSerif
)

// appendText adds the characters of `s` to `n`, applying
// the compatibility and Symbol font replacements.
func (d *Device) appendText(n *node, s string) {
	if d.opts.Compatible {
		s = strings.ReplaceAll(s, "\r\n", "\u00a0")
	}
	if f := d.dc.font; !d.opts.ReplaceSymbolFont || f == nil || f.face != "Symbol" {
		n.add(textNode(s))
		return
	}

	var (
		run    []rune
		family = inherited
	)
	flush := func() {
		if len(run) == 0 {
			return
		}
		switch family {
		case inherited:
			n.add(textNode(string(run)))
		case serif:
			n.add(newNode("tspan", "font-family", "serif").add(textNode(string(run))))
		case sansSerif:
			n.add(newNode("tspan", "font-family", "sans-serif").add(textNode(string(run))))
		}
		run = run[:0]
	}
	for _, r := range s {
		next := inherited
		if sub, ok := symbolGlyphs[r]; ok {
			next = serif
			if 0xE2 <= r && r <= 0xE4 { // registered, copyright and trademark signs
				next = sansSerif
			}
			r = sub
		}
		if next != family {
			flush()
			family = next
		}
		run = append(run, r)
	}
	flush()
}

// symbolGlyphs maps the characters of the Symbol font (decoded as Latin-1)
// to Unicode.
var symbolGlyphs = map[rune]rune{
	'"': 0x2200, '$': 0x2203, '\'': 0x220D, '*': 0x2217, '-': 0x2212, '@': 0x2245,
	'A': 0x0391, 'B': 0x0392, 'C': 0x03A7, 'D': 0x0394, 'E': 0x0395, 'F': 0x03A6,
	'G': 0x0393, 'H': 0x0397, 'I': 0x0399, 'J': 0x03D1, 'K': 0x039A, 'L': 0x039B,
	'M': 0x039C, 'N': 0x039D, 'O': 0x039F, 'P': 0x03A0, 'Q': 0x0398, 'R': 0x03A1,
	'S': 0x03A3, 'T': 0x03A4, 'U': 0x03A5, 'V': 0x03C3, 'W': 0x03A9, 'X': 0x039E,
	'Y': 0x03A8, 'Z': 0x0396, '\\': 0x2234, '^': 0x22A5, '`': 0xF8E5, 'a': 0x03B1,
	'b': 0x03B2, 'c': 0x03C7, 'd': 0x03B4, 'e': 0x03B5, 'f': 0x03C6, 'g': 0x03B3,
	'h': 0x03B7, 'i': 0x03B9, 'j': 0x03D5, 'k': 0x03BA, 'l': 0x03BB, 'm': 0x03BC,
	'n': 0x03BD, 'o': 0x03BF, 'p': 0x03C0, 'q': 0x03B8, 'r': 0x03C1, 's': 0x03C3,
	't': 0x03C4, 'u': 0x03C5, 'v': 0x03D6, 'w': 0x03C9, 'x': 0x03BE, 'y': 0x03C8,
	'z': 0x03B6, '~': 0x223C, 0x00A0: 0x20AC, 0x00A1: 0x03D2, 0x00A2: 0x2032, 0x00A3: 0x2264,
	0x00A4: 0x2044, 0x00A5: 0x221E, 0x00A6: 0x0192, 0x00A7: 0x2663, 0x00A8: 0x2666, 0x00A9: 0x2665,
	0x00AA: 0x2660, 0x00AB: 0x2194, 0x00AC: 0x2190, 0x00AD: 0x2191, 0x00AE: 0x2192, 0x00AF: 0x2193,
	0x00B2: 0x2033, 0x00B3: 0x2265, 0x00B4: 0x00D7, 0x00B5: 0x221D, 0x00B6: 0x2202, 0x00B7: 0x2022,
	0x00B8: 0x00F7, 0x00B9: 0x2260, 0x00BA: 0x2261, 0x00BB: 0x2248, 0x00BC: 0x2026, 0x00BD: 0x23D0,
	0x00BE: 0x23AF, 0x00BF: 0x21B5, 0x00C0: 0x2135, 0x00C1: 0x2111, 0x00C2: 0x211C, 0x00C3: 0x2118,
	0x00C4: 0x2297, 0x00C5: 0x2295, 0x00C6: 0x2205, 0x00C7: 0x2229, 0x00C8: 0x222A, 0x00C9: 0x2283,
	0x00CA: 0x2287, 0x00CB: 0x2284, 0x00CC: 0x2282, 0x00CD: 0x2286, 0x00CE: 0x2208, 0x00CF: 0x2209,
	0x00D0: 0x2220, 0x00D1: 0x2207, 0x00D2: 0x00AE, 0x00D3: 0x00A9, 0x00D4: 0x2122, 0x00D5: 0x220F,
	0x00D6: 0x221A, 0x00D7: 0x22C5, 0x00D8: 0x00AC, 0x00D9: 0x2227, 0x00DA: 0x2228, 0x00DB: 0x21D4,
	0x00DC: 0x21D0, 0x00DD: 0x21D1, 0x00DE: 0x21D2, 0x00DF: 0x21D3, 0x00E0: 0x25CA, 0x00E1: 0x3008,
	0x00E2: 0x00AE, 0x00E3: 0x00A9, 0x00E4: 0x2122, 0x00E5: 0x2211, 0x00E6: 0x239B, 0x00E7: 0x239C,
	0x00E8: 0x239D, 0x00E9: 0x23A1, 0x00EA: 0x23A2, 0x00EB: 0x23A3, 0x00EC: 0x23A7, 0x00ED: 0x23A8,
	0x00EE: 0x23A9, 0x00EF: 0x23AA, 0x00F0: 0xF8FF, 0x00F1: 0x3009, 0x00F2: 0x222B, 0x00F3: 0x2320,
	0x00F4: 0x23AE, 0x00F5: 0x2321, 0x00F6: 0x239E, 0x00F7: 0x239F, 0x00F8: 0x23A0, 0x00F9: 0x23A4,
	0x00FA: 0x23A5, 0x00FB: 0x23A6, 0x00FC: 0x23AB, 0x00FD: 0x23AC, 0x00FE: 0x23AD, 0x00FF: 0x2192,
}
