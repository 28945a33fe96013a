package wmfio

import (
	"encoding/binary"
)

// Writer accumulates fixed width integers and raw bytes in memory.
// Writes never fail; the content is retrieved with Bytes.
type Writer struct {
	order binary.ByteOrder
	buf   []byte
}

// NewWriter returns an empty writer. A nil order defaults to little endian.
func NewWriter(order binary.ByteOrder) *Writer {
	if order == nil {
		order = binary.LittleEndian
	}
	return &Writer{order: order}
}

// WriteUint8 appends one byte.
func (w *Writer) WriteUint8(v uint8) { w.buf = append(w.buf, v) }

// WriteUint16 appends `v` on two bytes.
func (w *Writer) WriteUint16(v uint16) {
	var b [2]byte
	w.order.PutUint16(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// WriteInt16 appends `v` in two's complement.
func (w *Writer) WriteInt16(v int16) { w.WriteUint16(uint16(v)) }

// WriteUint32 appends `v` on four bytes.
func (w *Writer) WriteUint32(v uint32) {
	var b [4]byte
	w.order.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// WriteInt32 appends `v` in two's complement.
func (w *Writer) WriteInt32(v int32) { w.WriteUint32(uint32(v)) }

// WriteBytes appends `data` as is.
func (w *Writer) WriteBytes(data []byte) { w.buf = append(w.buf, data...) }

// Pad appends a zero byte if the content has an odd length,
// so that the next field is aligned on a 16-bit word.
func (w *Writer) Pad() {
	if len(w.buf)%2 == 1 {
		w.buf = append(w.buf, 0)
	}
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

// Bytes returns the accumulated content. The slice aliases the
// internal buffer until the next write.
func (w *Writer) Bytes() []byte { return w.buf }

// Reset empties the writer, keeping its byte order.
func (w *Writer) Reset() { w.buf = w.buf[:0] }
