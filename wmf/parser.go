// Package wmf implements a decoder for the Windows Metafile format.
// The records of a metafile are decoded into Record values and replayed
// against a gdi.Device, either while streaming (see Parser.Parse),
// or after a full decoding (see Decode and Metafile.Replay).
//
// The package also provides an Encoder, which is a gdi.Device serializing
// the operations back to the binary format.
package wmf

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/benoitkugler/wmfsvg/gdi"
	"github.com/benoitkugler/wmfsvg/wmfio"
	"github.com/sirupsen/logrus"
)

const (
	placeableKey = 0x9AC6CDD7

	headerType  = 1 // memory metafile
	headerWords = 9

	recordHeaderWords = 3 // size (2 words) and opcode
)

// Placeable is the optional prefix of a metafile,
// giving its bounding box and resolution.
type Placeable struct {
	Handle                   uint16
	Left, Top, Right, Bottom int16
	DPI                      uint16 // logical units per inch
	Reserved                 uint32
	Checksum                 uint16
}

// ComputeChecksum returns the XOR of the 10 words preceding the checksum.
func (p Placeable) ComputeChecksum() uint16 {
	words := [...]uint16{
		placeableKey & 0xFFFF, placeableKey >> 16,
		p.Handle,
		uint16(p.Left), uint16(p.Top), uint16(p.Right), uint16(p.Bottom),
		p.DPI,
		uint16(p.Reserved), uint16(p.Reserved >> 16),
	}
	var sum uint16
	for _, w := range words {
		sum ^= w
	}
	return sum
}

// Header is the mandatory metafile header.
type Header struct {
	Type       uint16
	HeaderSize uint16 // in words
	Version    uint16
	Size       uint32 // of the whole file, in words
	NumObjects uint16 // size of the handle table
	MaxRecord  uint32 // size of the largest record, in words
	NumParams  uint16 // unused
}

// Options controls the decoding.
type Options struct {
	ErrorMode ErrorMode
	// StrictChecksum rejects placeable headers
	// with an invalid checksum.
	StrictChecksum bool
	// Logger receives the diagnostics. Nil means logrus.StandardLogger().
	Logger logrus.FieldLogger
}

func (opts Options) logger() logrus.FieldLogger {
	if opts.Logger == nil {
		return logrus.StandardLogger()
	}
	return opts.Logger
}

// Parser decodes metafiles and drives a device.
// A Parser is stateless and may be used for several files,
// but not concurrently with the same device.
type Parser struct {
	opts Options
}

// NewParser returns a parser using `opts`.
func NewParser(opts Options) *Parser { return &Parser{opts: opts} }

// Parse decodes the metafile from `r`, calling the operations of
// `dev` as the records are read. The returned error, if any, is a *ParseError,
// and the state of `dev` should then be discarded.
func (ps *Parser) Parse(r io.Reader, dev gdi.Device) error {
	rd := wmfio.NewReader(r, binary.LittleEndian)
	placeable, header, err := ps.readHeaders(rd)
	if err != nil {
		return err
	}

	p := newPlayer(dev, header.NumObjects, ps.opts)
	p.begin(placeable)
	for {
		offset := rd.Offset()
		rec, err := ps.readRecord(rd)
		if err != nil {
			return err
		}
		if rec == nil {
			break
		}
		if err := p.play(rec, offset); err != nil {
			return err
		}
	}
	p.end()
	return nil
}

// Metafile is a fully decoded metafile.
type Metafile struct {
	Placeable *Placeable // optional
	Header    Header
	Records   []Record // without the final EOF record
}

// Decode reads a whole metafile from `r`, without replaying it.
func Decode(r io.Reader, opts Options) (*Metafile, error) {
	ps := NewParser(opts)
	rd := wmfio.NewReader(r, binary.LittleEndian)
	placeable, header, err := ps.readHeaders(rd)
	if err != nil {
		return nil, err
	}
	out := &Metafile{Placeable: placeable, Header: header}
	for {
		rec, err := ps.readRecord(rd)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return out, nil
		}
		out.Records = append(out.Records, rec)
	}
}

// Replay drives `dev` with the records of the metafile, as Parser.Parse would.
// Only the error mode and the logger of `opts` are used.
func (mf *Metafile) Replay(dev gdi.Device, opts Options) error {
	p := newPlayer(dev, mf.Header.NumObjects, opts)
	p.begin(mf.Placeable)
	for i, rec := range mf.Records {
		if err := p.play(rec, int64(i)); err != nil {
			return err
		}
	}
	p.end()
	return nil
}

func (ps *Parser) fail(rd *wmfio.Reader, op Opcode, err error) error {
	if errors.Is(err, wmfio.ErrTruncated) {
		err = ErrTruncated
	}
	return &ParseError{Offset: rd.Offset(), Opcode: op, Err: err}
}

// readHeaders reads the optional placeable prefix and the header.
func (ps *Parser) readHeaders(rd *wmfio.Reader) (*Placeable, Header, error) {
	var header Header
	key, err := rd.ReadUint32()
	if err != nil {
		if errors.Is(err, wmfio.ErrTruncated) {
			// first read of the stream
			return nil, header, &ParseError{Offset: 0, Err: ErrEmptyInput}
		}
		return nil, header, ps.fail(rd, EOF, err)
	}

	var placeable *Placeable
	if key == placeableKey {
		placeable, err = ps.readPlaceable(rd)
		if err != nil {
			return nil, header, err
		}
		header.Type, err = rd.ReadUint16()
		if err != nil {
			return nil, header, ps.fail(rd, EOF, err)
		}
		header.HeaderSize, err = rd.ReadUint16()
		if err != nil {
			return nil, header, ps.fail(rd, EOF, err)
		}
	} else {
		header.Type = uint16(key & 0xFFFF)
		header.HeaderSize = uint16(key >> 16)
	}

	var fields [5]uint32
	for i, wide := range [5]bool{false, true, false, true, false} {
		if wide {
			fields[i], err = rd.ReadUint32()
		} else {
			var v uint16
			v, err = rd.ReadUint16()
			fields[i] = uint32(v)
		}
		if err != nil {
			return nil, header, ps.fail(rd, EOF, err)
		}
	}
	header.Version = uint16(fields[0])
	header.Size = fields[1]
	header.NumObjects = uint16(fields[2])
	header.MaxRecord = fields[3]
	header.NumParams = uint16(fields[4])

	if header.Type != headerType || header.HeaderSize != headerWords {
		return nil, header, ps.fail(rd, EOF, ErrFormat)
	}
	return placeable, header, nil
}

func (ps *Parser) readPlaceable(rd *wmfio.Reader) (*Placeable, error) {
	var (
		p    Placeable
		err  error
		read = func(v *uint16) {
			if err == nil {
				*v, err = rd.ReadUint16()
			}
		}
		left, top, right, bottom uint16
	)
	read(&p.Handle)
	read(&left)
	read(&top)
	read(&right)
	read(&bottom)
	read(&p.DPI)
	if err == nil {
		p.Reserved, err = rd.ReadUint32()
	}
	read(&p.Checksum)
	if err != nil {
		return nil, ps.fail(rd, EOF, err)
	}
	p.Left, p.Top, p.Right, p.Bottom = int16(left), int16(top), int16(right), int16(bottom)

	if exp := p.ComputeChecksum(); exp != p.Checksum {
		if ps.opts.StrictChecksum {
			return nil, ps.fail(rd, EOF, ErrChecksum)
		}
		if ps.opts.ErrorMode != IgnoreErrorMode {
			ps.opts.logger().WithFields(logrus.Fields{
				"expected": exp,
				"found":    p.Checksum,
			}).Warn("invalid placeable header checksum")
		}
	}
	return &p, nil
}

// readRecord returns the next record, or nil for the EOF record.
func (ps *Parser) readRecord(rd *wmfio.Reader) (Record, error) {
	size, err := rd.ReadUint32()
	if err != nil {
		return nil, ps.fail(rd, EOF, err)
	}
	code, err := rd.ReadUint16()
	if err != nil {
		return nil, ps.fail(rd, EOF, err)
	}
	op := Opcode(code)
	if op == EOF {
		return nil, nil
	}
	if size < recordHeaderWords {
		return nil, ps.fail(rd, op, ErrFormat)
	}

	// decoding from the body only: the trailing bytes
	// not used by the record are skipped
	body, err := rd.ReadBytes(int(size-recordHeaderWords) * 2)
	if err != nil {
		return nil, ps.fail(rd, op, err)
	}

	rec := newRecord(op)
	f := newFields(body)
	rec.decode(f)
	if f.err != nil {
		if errors.Is(f.err, errNegativeLength) {
			return nil, ps.fail(rd, op, ErrFormat)
		}
		return nil, ps.fail(rd, op, f.err)
	}
	return rec, nil
}

// player replays records against a device, resolving
// the object handles.
type player struct {
	dev  gdi.Device
	objs handleTable
	mode ErrorMode
	log  logrus.FieldLogger
}

func newPlayer(dev gdi.Device, numObjects uint16, opts Options) *player {
	return &player{
		dev:  dev,
		objs: newHandleTable(int(numObjects)),
		mode: opts.ErrorMode,
		log:  opts.logger(),
	}
}

func (p *player) begin(placeable *Placeable) {
	if placeable != nil {
		p.dev.PlaceableHeader(placeable.Left, placeable.Top, placeable.Right, placeable.Bottom, placeable.DPI)
	}
	p.dev.Header()
}

func (p *player) end() {
	p.dev.Footer()
	p.objs.release()
}

func (p *player) play(rec Record, offset int64) error {
	if unknown, ok := rec.(*UnknownRecord); ok && p.mode == StrictErrorMode {
		return &ParseError{Offset: offset, Opcode: unknown.Op, Err: ErrUnsupported}
	}
	rec.replay(p)
	return nil
}

func (p *player) warn(op Opcode, fields logrus.Fields, msg string) {
	if p.mode == IgnoreErrorMode {
		return
	}
	fields["opcode"] = op
	p.log.WithFields(fields).Warn(msg)
}

func (p *player) unsupported(op Opcode, size int) {
	p.warn(op, logrus.Fields{"size": size}, "unsupported record")
}

// create stores `obj` in the first free slot.
func (p *player) create(op Opcode, obj gdi.Object) {
	if _, ok := p.objs.add(obj); !ok {
		p.warn(op, logrus.Fields{}, "object table is full")
	}
}

// object resolves the handle `h`, logging invalid references.
func (p *player) object(op Opcode, h uint16) (gdi.Object, bool) {
	obj, ok := p.objs.get(h)
	if !ok {
		p.warn(op, logrus.Fields{"handle": h}, "invalid object handle")
		return nil, false
	}
	if obj == nil {
		// created by a device not supporting the object kind
		return nil, false
	}
	return obj, true
}

// selectClip selects the region at `h` as the clip.
// Handles not designating a region select no clip.
func (p *player) selectClip(h uint16) {
	if h != 0 && int(h) >= len(p.objs.slots) {
		p.warn(SelectClipRgn, logrus.Fields{"handle": h}, "invalid object handle")
		return
	}
	obj, _ := p.objs.get(h)
	if obj == nil || obj.Kind() != gdi.RegionKind {
		obj = nil
	}
	p.dev.SelectClipRgn(obj)
}

// delete frees the slot `h`, notifying the device.
func (p *player) delete(h uint16) {
	obj, ok := p.objs.get(h)
	if !ok {
		p.warn(DeleteObject, logrus.Fields{"handle": h}, "invalid object handle")
		return
	}
	if obj != nil {
		p.dev.DeleteObject(obj)
	}
	p.objs.remove(h)
}
