package gdi

import (
	"bytes"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// CharsetEncoding returns the text encoding used by fonts
// with the given character set. Unknown sets default to Windows-1252.
func CharsetEncoding(cs uint8) encoding.Encoding {
	switch cs {
	case SymbolCharset:
		return charmap.ISO8859_1
	case MacCharset:
		return charmap.Macintosh
	case ShiftJISCharset:
		return japanese.ShiftJIS
	case HangulCharset, JohabCharset: // Johab is not supported: use the Unified Hangul Code
		return korean.EUCKR
	case GB2312Charset:
		return simplifiedchinese.GBK
	case ChineseBig5Charset:
		return traditionalchinese.Big5
	case GreekCharset:
		return charmap.Windows1253
	case TurkishCharset:
		return charmap.Windows1254
	case VietnameseCharset:
		return charmap.Windows1258
	case HebrewCharset:
		return charmap.Windows1255
	case ArabicCharset:
		return charmap.Windows1256
	case BalticCharset:
		return charmap.Windows1257
	case RussianCharset:
		return charmap.Windows1251
	case ThaiCharset:
		return charmap.Windows874
	case EastEuropeCharset:
		return charmap.Windows1250
	default: // ANSI, OEM, DEFAULT
		return charmap.Windows1252
	}
}

// labelToCharset maps the canonical names of the supported
// encodings to a character set.
var labelToCharset = map[string]uint8{
	"windows-1252": AnsiCharset,
	"macintosh":    MacCharset,
	"shift_jis":    ShiftJISCharset,
	"euc-kr":       HangulCharset,
	"gbk":          GB2312Charset,
	"gb18030":      GB2312Charset,
	"big5":         ChineseBig5Charset,
	"windows-1253": GreekCharset,
	"windows-1254": TurkishCharset,
	"windows-1258": VietnameseCharset,
	"windows-1255": HebrewCharset,
	"windows-1256": ArabicCharset,
	"windows-1257": BalticCharset,
	"windows-1251": RussianCharset,
	"windows-874":  ThaiCharset,
	"windows-1250": EastEuropeCharset,
}

// ParseCharset resolves a character set given either as a number
// ("128") or as an encoding label ("shift_jis", "cp1251", "x-mac-roman", ...).
func ParseCharset(s string) (uint8, bool) {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseUint(s, 10, 8); err == nil {
		return uint8(v), true
	}
	switch strings.ToLower(s) {
	case "iso-8859-1", "latin1", "symbol":
		// mapped to windows-1252 by the WHATWG tables
		return SymbolCharset, true
	case "johab":
		return JohabCharset, true
	}
	if _, name := charset.Lookup(s); name != "" {
		if cs, ok := labelToCharset[name]; ok {
			return cs, true
		}
	}
	return 0, false
}

// Language returns the BCP 47 tag associated with a character set,
// or an empty string.
func Language(cs uint8) string {
	switch cs {
	case AnsiCharset, SymbolCharset, MacCharset:
		return "en"
	case ShiftJISCharset:
		return "ja"
	case HangulCharset, JohabCharset:
		return "ko"
	case GB2312Charset:
		return "zh-CN"
	case ChineseBig5Charset:
		return "zh-TW"
	case GreekCharset:
		return "el"
	case TurkishCharset:
		return "tr"
	case VietnameseCharset:
		return "vi"
	case HebrewCharset:
		return "iw"
	case ArabicCharset:
		return "ar"
	case BalticCharset:
		return "bat"
	case RussianCharset:
		return "ru"
	case ThaiCharset:
		return "th"
	default:
		return ""
	}
}

// DecodeText converts the (NUL terminated) bytes of a string
// to UTF-8, using the encoding of the given character set.
func DecodeText(text []byte, cs uint8) string {
	if i := bytes.IndexByte(text, 0); i != -1 {
		text = text[:i]
	}
	out, err := CharsetEncoding(cs).NewDecoder().Bytes(text)
	if err != nil {
		// fall back to ASCII
		var b strings.Builder
		for _, c := range text {
			if c < 0x80 {
				b.WriteByte(c)
			} else {
				b.WriteRune('�')
			}
		}
		return b.String()
	}
	return string(out)
}

// EncodeText is the reverse of DecodeText. Characters not representable
// in the target encoding are replaced.
func EncodeText(s string, cs uint8) []byte {
	enc := encoding.ReplaceUnsupported(CharsetEncoding(cs).NewEncoder())
	out, err := enc.Bytes([]byte(s))
	if err != nil {
		return []byte(s)
	}
	return out
}

type byteRange struct{ min, max byte }

// leadByteRanges returns the ranges of the first byte
// of double-byte characters, or nil for single byte sets.
func leadByteRanges(cs uint8) []byteRange {
	switch cs {
	case ShiftJISCharset:
		return []byteRange{{0x81, 0x9F}, {0xE0, 0xFC}}
	case HangulCharset, JohabCharset, GB2312Charset:
		return []byteRange{{0x80, 0xFF}}
	case ChineseBig5Charset:
		return []byteRange{{0xA1, 0xFE}}
	default:
		return nil
	}
}

// IsDoubleByte returns true for character sets using lead bytes.
func IsDoubleByte(cs uint8) bool { return leadByteRanges(cs) != nil }

// FixTextDx converts an advance array with one entry per byte of `text`
// into an array with one entry per character, by merging the advance
// of each trail byte into its lead byte. `dx` is not modified.
// An empty array yields nil; single byte sets return `dx` as it is.
func FixTextDx(cs uint8, text []byte, dx []int16) []int16 {
	if len(dx) == 0 {
		return nil
	}
	ranges := leadByteRanges(cs)
	if ranges == nil {
		return dx
	}
	out := make([]int16, 0, len(dx))
	skip := false
	for i := 0; i < len(text) && i < len(dx); i++ {
		if skip {
			out[len(out)-1] += dx[i]
			skip = false
			continue
		}
		c := text[i]
		for _, r := range ranges {
			if r.min <= c && c <= r.max {
				skip = true
				break
			}
		}
		out = append(out, dx[i])
	}
	return out
}
