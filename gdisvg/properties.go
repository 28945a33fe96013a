package gdisvg

import (
	"strconv"
	"strings"

	"github.com/benoitkugler/wmfsvg/gdi"
)

// Property key prefixes, followed by a font face name.
const (
	AlternativeFontKey = "alternative-font."
	FontEmHeightKey    = "font-emheight."
	FontCharsetKey     = "font-charset."
)

// Properties are per font face settings, stored with keys like
// "alternative-font.Arial" or "font-emheight.MS Gothic".
type Properties map[string]string

// DefaultProperties returns the built-in settings, mapping the
// usual Windows faces to fonts commonly available elsewhere.
func DefaultProperties() Properties {
	return Properties{
		AlternativeFontKey + "Arial":           "Helvetica",
		AlternativeFontKey + "Courier New":     "Courier",
		AlternativeFontKey + "Times New Roman": "Times",
		AlternativeFontKey + "MS Gothic":       "IPAGothic",
		AlternativeFontKey + "MS Mincho":       "IPAMincho",
		AlternativeFontKey + "MS PGothic":      "IPAPGothic",
		AlternativeFontKey + "MS PMincho":      "IPAPMincho",
		FontEmHeightKey + "Arial":              "0.9052734375",
		FontEmHeightKey + "Times New Roman":    "0.8876953125",
		FontEmHeightKey + "Courier New":        "0.83251953125",
		FontCharsetKey + "Wingdings":           "symbol",
	}
}

// Merge returns a copy of `p` updated with `overrides`.
// An empty value removes the key.
func (p Properties) Merge(overrides map[string]string) Properties {
	out := make(Properties, len(p)+len(overrides))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range overrides {
		if v == "" {
			delete(out, k)
		} else {
			out[k] = v
		}
	}
	return out
}

// AlternativeFont returns the fallback family for `face`, or "".
func (p Properties) AlternativeFont(face string) string {
	return strings.TrimSpace(p[AlternativeFontKey+face])
}

// FontEmHeight returns the multiplier applied to the height of `face`,
// looking also at its alternative font.
func (p Properties) FontEmHeight(face string) (float64, bool) {
	s, ok := p[FontEmHeightKey+face]
	if !ok {
		if alt := p.AlternativeFont(face); alt != "" {
			s, ok = p[FontEmHeightKey+alt]
		}
	}
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// FontCharset returns the character set forced for `face`,
// given as a number or a charset label.
func (p Properties) FontCharset(face string) (uint8, bool) {
	s, ok := p[FontCharsetKey+face]
	if !ok {
		return 0, false
	}
	return gdi.ParseCharset(s)
}
