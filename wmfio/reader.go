// Package wmfio provides the low level binary primitives used
// to decode and encode metafile records: a position tracking
// Reader and a buffered Writer, both parametrized by a byte order.
package wmfio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

// ErrTruncated is returned when the underlying stream
// yields fewer bytes than requested.
var ErrTruncated = errors.New("wmfio: truncated input")

// Reader decodes fixed width integers and raw byte runs from a stream.
// It tracks the total number of bytes read, and the number of bytes read
// since the last call to ResetCount.
type Reader struct {
	src   io.Reader
	order binary.ByteOrder

	pos   int64 // total bytes consumed
	count int   // bytes consumed since the marker

	buf [4]byte
}

// NewReader returns a reader consuming `src` in the given byte order.
// A nil order defaults to little endian.
func NewReader(src io.Reader, order binary.ByteOrder) *Reader {
	if order == nil {
		order = binary.LittleEndian
	}
	return &Reader{src: src, order: order}
}

// NewBytesReader is a convenience wrapper around NewReader.
func NewBytesReader(data []byte, order binary.ByteOrder) *Reader {
	return NewReader(bytes.NewReader(data), order)
}

func (r *Reader) fill(n int) error {
	read, err := io.ReadFull(r.src, r.buf[:n])
	r.pos += int64(read)
	r.count += read
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return ErrTruncated
		}
		return err
	}
	return nil
}

// ReadUint8 reads one byte.
func (r *Reader) ReadUint8() (uint8, error) {
	if err := r.fill(1); err != nil {
		return 0, err
	}
	return r.buf[0], nil
}

// ReadUint16 reads an unsigned 16-bit integer.
func (r *Reader) ReadUint16() (uint16, error) {
	if err := r.fill(2); err != nil {
		return 0, err
	}
	return r.order.Uint16(r.buf[:2]), nil
}

// ReadInt16 reads a signed 16-bit integer.
func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	return int16(v), err
}

// ReadUint32 reads an unsigned 32-bit integer.
func (r *Reader) ReadUint32() (uint32, error) {
	if err := r.fill(4); err != nil {
		return 0, err
	}
	return r.order.Uint32(r.buf[:4]), nil
}

// ReadInt32 reads a signed 32-bit integer.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadBytes reads exactly `n` bytes. The returned slice is
// owned by the caller.
// Memory is allocated as data arrives, so that a corrupted
// length does not trigger a huge allocation.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	var out bytes.Buffer
	read, err := io.CopyN(&out, r.src, int64(n))
	r.pos += read
	r.count += int(read)
	if err != nil {
		if err == io.EOF {
			return nil, ErrTruncated
		}
		return nil, err
	}
	return out.Bytes(), nil
}

// Skip discards `n` bytes.
func (r *Reader) Skip(n int) error {
	if n <= 0 {
		return nil
	}
	read, err := io.CopyN(io.Discard, r.src, int64(n))
	r.pos += read
	r.count += int(read)
	if err == io.EOF {
		return ErrTruncated
	}
	return err
}

// Count returns the number of bytes read since the last call to ResetCount.
func (r *Reader) Count() int { return r.count }

// ResetCount sets the marker to the current position.
func (r *Reader) ResetCount() { r.count = 0 }

// Offset returns the total number of bytes consumed.
func (r *Reader) Offset() int64 { return r.pos }
