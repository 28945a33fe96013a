package wmf

import (
	"errors"

	"github.com/benoitkugler/wmfsvg/gdi"
	"github.com/benoitkugler/wmfsvg/wmfio"
)

var errNegativeLength = errors.New("negative length")

// fields decodes the parameters of one record. After the first
// error every read is a no-op returning zero, so that decoders may
// check the error once.
type fields struct {
	r    *wmfio.Reader
	size int // number of parameter bytes
	err  error
}

func newFields(body []byte) *fields {
	return &fields{r: wmfio.NewBytesReader(body, nil), size: len(body)}
}

// remaining returns the number of undecoded parameter bytes.
func (f *fields) remaining() int { return f.size - f.r.Count() }

func (f *fields) u8() uint8 {
	if f.err != nil {
		return 0
	}
	var v uint8
	v, f.err = f.r.ReadUint8()
	return v
}

func (f *fields) u16() uint16 {
	if f.err != nil {
		return 0
	}
	var v uint16
	v, f.err = f.r.ReadUint16()
	return v
}

func (f *fields) i16() int16 { return int16(f.u16()) }

func (f *fields) u32() uint32 {
	if f.err != nil {
		return 0
	}
	var v uint32
	v, f.err = f.r.ReadUint32()
	return v
}

func (f *fields) i32() int32 { return int32(f.u32()) }

func (f *fields) bytes(n int) []byte {
	if f.err != nil {
		return nil
	}
	if n < 0 {
		f.err = errNegativeLength
		return nil
	}
	var v []byte
	v, f.err = f.r.ReadBytes(n)
	return v
}

// rest returns all the remaining parameter bytes.
func (f *fields) rest() []byte { return f.bytes(f.remaining()) }

// text reads `count` bytes and the padding byte when `count` is odd.
func (f *fields) text(count int16) []byte {
	out := f.bytes(int(count))
	if count%2 == 1 {
		f.u8()
	}
	return out
}

// count reads a signed 16-bit number of items, rejecting negative values.
func (f *fields) count() int {
	n := f.i16()
	if n < 0 && f.err == nil {
		f.err = errNegativeLength
	}
	if n < 0 {
		return 0
	}
	return int(n)
}

func (f *fields) points(n int) []gdi.Point {
	if f.err != nil || n*4 > f.remaining() {
		if f.err == nil && n > 0 {
			f.err = wmfio.ErrTruncated
		}
		return nil
	}
	out := make([]gdi.Point, n)
	for i := range out {
		out[i].X = f.i16()
		out[i].Y = f.i16()
	}
	return out
}

func (f *fields) colors(n int) []int32 {
	if f.err != nil || n*4 > f.remaining() {
		if f.err == nil && n > 0 {
			f.err = wmfio.ErrTruncated
		}
		return nil
	}
	out := make([]int32, n)
	for i := range out {
		out[i] = f.i32()
	}
	return out
}

// writeText writes the bytes of `text`, padded to a word boundary.
func writeText(w *wmfio.Writer, text []byte) {
	w.WriteBytes(text)
	if len(text)%2 == 1 {
		w.WriteUint8(0)
	}
}

func writePoints(w *wmfio.Writer, points []gdi.Point) {
	for _, p := range points {
		w.WriteInt16(p.X)
		w.WriteInt16(p.Y)
	}
}

func writeColors(w *wmfio.Writer, colors []int32) {
	for _, c := range colors {
		w.WriteInt32(c)
	}
}
