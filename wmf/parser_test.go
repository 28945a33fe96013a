package wmf

import (
	"bytes"
	"errors"
	"testing"

	"github.com/benoitkugler/wmfsvg/gdi"
	"github.com/benoitkugler/wmfsvg/wmfio"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drawSample exercises every family of operations.
func drawSample(dev gdi.Device) {
	dev.PlaceableHeader(-10, 0, 1000, 800, 1440)
	dev.Header()

	dev.SetMapMode(gdi.MmAnisotropic)
	dev.SetWindowOrgEx(-10, 0)
	dev.SetWindowExtEx(1010, 800)
	dev.OffsetWindowOrgEx(2, 3)
	dev.ScaleWindowExtEx(2, 1, 3, 2)
	dev.SetViewportOrgEx(0, 0)
	dev.SetViewportExtEx(500, 400)
	dev.OffsetViewportOrgEx(1, 1)
	dev.ScaleViewportExtEx(1, 2, 1, 2)

	dev.SetBkMode(gdi.Transparent)
	dev.SetBkColor(0x00FFFFFF)
	dev.SetTextColor(0x000000FF)
	dev.SetROP2(gdi.R2CopyPen)
	dev.SetRelAbs(gdi.Absolute)
	dev.SetPolyFillMode(gdi.Winding)
	dev.SetStretchBltMode(gdi.ColorOnColor)
	dev.SetTextAlign(gdi.TaBaseline | gdi.TaCenter)
	dev.SetTextCharacterExtra(2)
	dev.SetTextJustification(10, 2)
	dev.SetLayout(gdi.LayoutRTL)
	dev.SetMapperFlags(1)

	pen := dev.CreatePenIndirect(gdi.PsDash, 1, 0x00112233)
	brush := dev.CreateBrushIndirect(gdi.BsHatched, 0x00445566, gdi.HsCross)
	font := dev.CreateFontIndirect(gdi.LogFont{
		Height: -12, Weight: gdi.FwBold, Italic: true, Charset: gdi.ShiftJISCharset,
		FaceName: []byte("Arial\x00"),
	})
	pattern := dev.DibCreatePatternBrush([]byte{1, 2, 3, 4}, gdi.DibRGBColors)
	palette := dev.CreatePalette(0x300, []int32{0x00FF0000, 0x0000FF00})
	rgn := dev.CreateRectRgn(10, 20, 110, 120)

	dev.SelectObject(pen)
	dev.SelectObject(brush)
	dev.SelectObject(font)

	dev.MoveToEx(1, 2)
	dev.LineTo(30, 40)
	dev.Rectangle(0, 0, 50, 60)
	dev.RoundRect(0, 0, 50, 60, 5, 6)
	dev.Ellipse(-5, -5, 5, 5)
	dev.Arc(0, 0, 100, 100, 100, 50, 50, 0)
	dev.Chord(0, 0, 100, 100, 100, 50, 50, 0)
	dev.Pie(0, 0, 100, 100, 100, 50, 50, 0)
	dev.Polygon([]gdi.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}})
	dev.Polyline([]gdi.Point{{X: 0, Y: 0}, {X: -10, Y: 5}})
	dev.PolyPolygon([][]gdi.Point{{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}}, {{X: 5, Y: 5}, {X: 6, Y: 6}, {X: 7, Y: 5}, {X: 5, Y: 5}}})
	dev.SetPixel(3, 4, 0x00010203)
	dev.FloodFill(3, 4, 0x00010203)
	dev.ExtFloodFill(3, 4, 0x00010203, 1)

	dev.SaveDC()
	dev.SelectClipRgn(rgn)
	dev.OffsetClipRgn(5, 5)
	dev.ExcludeClipRect(20, 20, 30, 30)
	dev.IntersectClipRect(0, 0, 200, 200)
	dev.FillRgn(rgn, brush)
	dev.FrameRgn(rgn, brush, 2, 3)
	dev.InvertRgn(rgn)
	dev.PaintRgn(rgn)
	dev.RestoreDC(-1)

	dev.TextOut(10, 20, []byte("odd"))
	dev.ExtTextOut(10, 20, gdi.EtoOpaque, []int16{0, 0, 40, 12}, []byte("hello"), []int16{8, 8, 8, 8, 8})
	dev.ExtTextOut(10, 40, 0, nil, []byte("ab"), nil)

	dev.PatBlt(0, 0, 10, 10, gdi.PatCopy)
	dev.BitBlt([]byte{9, 9}, 1, 2, 3, 4, 5, 6, gdi.SrcCopy)
	dev.DibBitBlt([]byte{7, 7, 7, 7}, 1, 2, 3, 4, 5, 6, gdi.SrcAnd)
	dev.DibBitBlt(nil, 1, 2, 3, 4, 0, 0, gdi.DstInvert)
	dev.StretchBlt([]byte{1, 1}, 1, 2, 3, 4, 5, 6, 7, 8, gdi.SrcCopy)
	dev.DibStretchBlt([]byte{2, 2}, 1, 2, 3, 4, 5, 6, 7, 8, gdi.SrcPaint)
	dev.SetDIBitsToDevice(1, 2, 3, 4, 5, 6, 0, 4, []byte{3, 3}, gdi.DibRGBColors)
	dev.StretchDIBits(1, 2, 3, 4, 5, 6, 7, 8, []byte{4, 4}, gdi.DibRGBColors, gdi.SrcCopy)

	dev.SelectPalette(palette, true)
	dev.SetPaletteEntries(palette, 1, []int32{0x00FFFFFF})
	dev.AnimatePalette(palette, 0, []int32{0x00000001})
	dev.ResizePalette(palette)
	dev.RealizePalette()
	dev.Escape([]byte{0x0F, 0x00, 0x02, 0x00, 'h', 'i'})

	dev.SelectClipRgn(nil)
	dev.DeleteObject(pattern)
	// reuses the slot of `pattern`
	pen2 := dev.CreatePenIndirect(gdi.PsSolid, 3, 0)
	dev.SelectObject(pen2)
	dev.DeleteObject(pen)
	dev.DeleteObject(pen2)

	dev.Footer()
}

var cmpOpts = []cmp.Option{cmpopts.EquateEmpty()}

func encodeSample(t *testing.T) []byte {
	t.Helper()
	enc := NewEncoder(Options{})
	drawSample(enc)
	require.NotEmpty(t, enc.Bytes())
	return enc.Bytes()
}

func TestRoundTrip(t *testing.T) {
	var direct recorder
	drawSample(&direct)

	data := encodeSample(t)
	var parsed recorder
	err := NewParser(Options{}).Parse(bytes.NewReader(data), &parsed)
	require.NoError(t, err)

	if diff := cmp.Diff(direct.calls, parsed.calls, cmpOpts...); diff != "" {
		t.Fatalf("unexpected calls (-want +got):\n%s", diff)
	}
}

func TestReencode(t *testing.T) {
	data := encodeSample(t)

	mf, err := Decode(bytes.NewReader(data), Options{})
	require.NoError(t, err)
	require.NotNil(t, mf.Placeable)
	assert.Equal(t, uint16(1440), mf.Placeable.DPI)
	assert.Equal(t, mf.Placeable.ComputeChecksum(), mf.Placeable.Checksum)
	assert.Equal(t, uint32(len(data)-22)/2, mf.Header.Size)

	enc := NewEncoder(Options{})
	require.NoError(t, mf.Replay(enc, Options{}))
	assert.Equal(t, data, enc.Bytes())

	var out bytes.Buffer
	n, err := enc.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), n)
}

func TestHeaderFields(t *testing.T) {
	enc := NewEncoder(Options{})
	enc.Header()
	a := enc.CreateRectRgn(0, 0, 1, 1)
	b := enc.CreateRectRgn(0, 0, 2, 2)
	enc.DeleteObject(a)
	enc.CreateRectRgn(0, 0, 3, 3) // slot 0 again
	enc.Polygon(make([]gdi.Point, 10))
	enc.DeleteObject(b)
	enc.Footer()

	mf, err := Decode(bytes.NewReader(enc.Bytes()), Options{})
	require.NoError(t, err)
	assert.Nil(t, mf.Placeable)
	assert.Equal(t, uint16(2), mf.Header.NumObjects)
	assert.Equal(t, uint32(3+1+20), mf.Header.MaxRecord)
	assert.Len(t, mf.Records, 6)
	assert.Equal(t, &ObjectRecord{Op: DeleteObject, Handle: 1}, mf.Records[5])
}

func TestHeaderOnly(t *testing.T) {
	enc := NewEncoder(Options{})
	enc.Header()
	enc.Footer()
	assert.Len(t, enc.Bytes(), 18+6)

	var rec recorder
	require.NoError(t, NewParser(Options{}).Parse(bytes.NewReader(enc.Bytes()), &rec))
	assert.Equal(t, []string{"Header", "Footer"}, rec.names())
}

// rawRecord encodes a record with 16-bit parameters.
func rawRecord(op Opcode, params ...int16) []byte {
	w := wmfio.NewWriter(nil)
	w.WriteUint32(uint32(recordHeaderWords + len(params)))
	w.WriteUint16(uint16(op))
	for _, p := range params {
		w.WriteInt16(p)
	}
	return w.Bytes()
}

// rawStream concatenates a header, the records and an EOF record.
func rawStream(numObjects uint16, records ...[]byte) []byte {
	w := wmfio.NewWriter(nil)
	w.WriteUint16(headerType)
	w.WriteUint16(headerWords)
	w.WriteUint16(metafileVersion)
	w.WriteUint32(0) // not checked
	w.WriteUint16(numObjects)
	w.WriteUint32(0)
	w.WriteUint16(0)
	for _, rec := range records {
		w.WriteBytes(rec)
	}
	w.WriteBytes(rawRecord(EOF))
	return w.Bytes()
}

func parseRaw(t *testing.T, opts Options, data []byte) (*recorder, error) {
	t.Helper()
	var rec recorder
	err := NewParser(opts).Parse(bytes.NewReader(data), &rec)
	return &rec, err
}

func TestEmptyInput(t *testing.T) {
	_, err := parseRaw(t, Options{}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyInput))
	assert.False(t, errors.Is(err, ErrTruncated))

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, int64(0), pe.Offset)
}

func TestTruncatedHeader(t *testing.T) {
	data := rawStream(0)
	for _, n := range []int{4, 10, 17} {
		_, err := parseRaw(t, Options{}, data[:n])
		assert.True(t, errors.Is(err, ErrTruncated), "length %d: %v", n, err)
		assert.False(t, errors.Is(err, ErrEmptyInput))
	}
}

func TestTruncatedRecord(t *testing.T) {
	data := rawStream(0, rawRecord(Rectangle, 4, 3, 2, 1))
	// cut inside the parameters of the rectangle
	rec, err := parseRaw(t, Options{}, data[:18+8])
	assert.True(t, errors.Is(err, ErrTruncated))
	assert.Equal(t, []string{"Header"}, rec.names())

	// missing EOF record
	_, err = parseRaw(t, Options{}, data[:len(data)-6])
	assert.True(t, errors.Is(err, ErrTruncated))

	// record shorter than its parameters
	_, err = parseRaw(t, Options{}, rawStream(0, rawRecord(Rectangle, 1, 2)))
	assert.True(t, errors.Is(err, ErrTruncated))
}

func TestInvalidHeader(t *testing.T) {
	data := rawStream(0)
	data[0] = 2 // type
	_, err := parseRaw(t, Options{}, data)
	assert.True(t, errors.Is(err, ErrFormat))

	data = rawStream(0)
	data[2] = 10 // header size
	_, err = parseRaw(t, Options{}, data)
	assert.True(t, errors.Is(err, ErrFormat))

	// record size smaller than its header
	bad := rawRecord(LineTo, 1, 2)
	bad[0] = 2
	_, err = parseRaw(t, Options{}, rawStream(0, bad))
	assert.True(t, errors.Is(err, ErrFormat))

	// negative point count
	_, err = parseRaw(t, Options{}, rawStream(0, rawRecord(Polygon, -1)))
	assert.True(t, errors.Is(err, ErrFormat))
}

func TestPlaceableChecksum(t *testing.T) {
	data := encodeSample(t)
	data[20] ^= 0xFF // checksum

	logger, hook := logtest.NewNullLogger()
	rec, err := parseRaw(t, Options{Logger: logger}, data)
	require.NoError(t, err)
	assert.Equal(t, "PlaceableHeader", rec.names()[0])
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.Entries[0].Level)

	_, err = parseRaw(t, Options{StrictChecksum: true}, data)
	assert.True(t, errors.Is(err, ErrChecksum))
}

func TestUnknownRecord(t *testing.T) {
	data := rawStream(0,
		rawRecord(SetBkMode, gdi.Opaque),
		rawRecord(Opcode(0x0999), 1, 2, 3),
		rawRecord(LineTo, 2, 1),
	)

	logger, hook := logtest.NewNullLogger()
	rec, err := parseRaw(t, Options{Logger: logger}, data)
	require.NoError(t, err)
	assert.Equal(t, []string{"Header", "SetBkMode", "LineTo", "Footer"}, rec.names())
	assert.Equal(t, []interface{}{int16(1), int16(2)}, rec.calls[2].Args)
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, Opcode(0x0999), hook.Entries[0].Data["opcode"])
	assert.Equal(t, 6, hook.Entries[0].Data["size"])

	hook.Reset()
	_, err = parseRaw(t, Options{Logger: logger, ErrorMode: IgnoreErrorMode}, data)
	require.NoError(t, err)
	assert.Empty(t, hook.Entries)

	_, err = parseRaw(t, Options{ErrorMode: StrictErrorMode}, data)
	assert.True(t, errors.Is(err, ErrUnsupported))
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, Opcode(0x0999), pe.Opcode)
	assert.Equal(t, int64(18+8), pe.Offset)
}

func TestTrailingParameters(t *testing.T) {
	data := rawStream(0,
		rawRecord(Rectangle, 4, 3, 2, 1, 99, 99),
		rawRecord(SaveDC, 42),
	)
	rec, err := parseRaw(t, Options{}, data)
	require.NoError(t, err)
	assert.Equal(t, []string{"Header", "Rectangle", "SaveDC", "Footer"}, rec.names())
	assert.Equal(t, []interface{}{int16(1), int16(2), int16(3), int16(4)}, rec.calls[1].Args)
}

func TestInvalidHandles(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	data := rawStream(2,
		rawRecord(CreateRectRgn, 4, 3, 2, 1),
		rawRecord(SelectClipRgn, 0), // region in the first slot
		rawRecord(SelectObject, 1),  // empty slot
		rawRecord(SelectObject, 7),  // out of range
		rawRecord(SelectClipRgn, 1), // empty slot: no clip
		rawRecord(SelectClipRgn, 7), // out of range
		rawRecord(DeleteObject, 0),
		rawRecord(SelectObject, 0),  // deleted
		rawRecord(FillRgn, 0, 5),    // missing region and brush
		rawRecord(SelectClipRgn, 0), // no clip
	)
	rec, err := parseRaw(t, Options{Logger: logger}, data)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Header", "CreateRectRgn", "SelectClipRgn", "SelectClipRgn",
		"DeleteObject", "SelectClipRgn", "Footer",
	}, rec.names())
	assert.Equal(t, []interface{}{1}, rec.calls[2].Args)
	assert.Equal(t, []interface{}{-1}, rec.calls[3].Args)
	assert.Equal(t, []interface{}{-1}, rec.calls[5].Args)
	assert.Len(t, hook.Entries, 5)
}

func TestClipRegionInFirstSlot(t *testing.T) {
	draw := func(dev gdi.Device) {
		dev.Header()
		rgn := dev.CreateRectRgn(10, 10, 50, 50)
		dev.SelectClipRgn(rgn)
		dev.Rectangle(0, 0, 100, 100)
		dev.SelectClipRgn(nil)
		pen := dev.CreatePenIndirect(gdi.PsSolid, 1, 0)
		dev.SelectClipRgn(nil)
		dev.DeleteObject(pen)
		dev.DeleteObject(rgn)
		dev.Footer()
	}
	var direct recorder
	draw(&direct)

	enc := NewEncoder(Options{})
	draw(enc)
	mf, err := Decode(bytes.NewReader(enc.Bytes()), Options{})
	require.NoError(t, err)
	// the reset uses a slot without region
	assert.Equal(t, &ObjectRecord{Op: SelectClipRgn, Handle: 0}, mf.Records[1])
	assert.Equal(t, &ObjectRecord{Op: SelectClipRgn, Handle: 1}, mf.Records[3])
	assert.Equal(t, &ObjectRecord{Op: SelectClipRgn, Handle: 1}, mf.Records[5])
	assert.Equal(t, uint16(2), mf.Header.NumObjects)

	var parsed recorder
	require.NoError(t, mf.Replay(&parsed, Options{}))
	if diff := cmp.Diff(direct.calls, parsed.calls, cmpOpts...); diff != "" {
		t.Fatalf("unexpected calls (-want +got):\n%s", diff)
	}
}

func TestEncoderReuse(t *testing.T) {
	enc := NewEncoder(Options{})
	enc.PlaceableHeader(0, 0, 10, 10, 96)
	enc.Header()
	enc.Footer()
	assert.Len(t, enc.Bytes(), 22+18+6)

	enc.Header()
	enc.Footer()
	mf, err := Decode(bytes.NewReader(enc.Bytes()), Options{})
	require.NoError(t, err)
	assert.Nil(t, mf.Placeable)
}

func TestTableFull(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	data := rawStream(1,
		rawRecord(CreateRectRgn, 4, 3, 2, 1),
		rawRecord(CreateRectRgn, 4, 3, 2, 1),
		rawRecord(SelectObject, 0),
	)
	rec, err := parseRaw(t, Options{Logger: logger}, data)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{1}, rec.calls[3].Args)
	assert.Len(t, hook.Entries, 1)
}

func TestRopOnlyDibBitBlt(t *testing.T) {
	rop := gdi.PatCopy
	data := rawStream(0,
		rawRecord(DibBitBlt, int16(rop), int16(rop>>16), 0, 0, 0, 20, 10, 5, 6),
	)
	rec, err := parseRaw(t, Options{}, data)
	require.NoError(t, err)
	require.Len(t, rec.calls, 3)
	got := rec.calls[1]
	assert.Equal(t, "DibBitBlt", got.Name)
	assert.Nil(t, got.Args[0])
	assert.Equal(t, []interface{}{int16(6), int16(5), int16(10), int16(20), int16(0), int16(0), rop}, got.Args[1:])
}

func TestSelectPaletteWithoutHandle(t *testing.T) {
	data := rawStream(1,
		rawRecord(CreatePalette, 0x300, 0),
		rawRecord(SelectPalette, 1),
		rawRecord(SelectPalette, 0, 0),
	)
	mf, err := Decode(bytes.NewReader(data), Options{})
	require.NoError(t, err)
	assert.Equal(t, &SelectPaletteRecord{Background: true}, mf.Records[1])

	var rec recorder
	require.NoError(t, mf.Replay(&rec, Options{}))
	assert.Equal(t, []string{"Header", "CreatePalette", "SelectPalette", "Footer"}, rec.names())
	assert.Equal(t, []interface{}{1, false}, rec.calls[2].Args)
}

func TestExtTextOutLayout(t *testing.T) {
	// y, x, count, options, rect, "abc" + pad, dx
	data := rawStream(0, rawRecord(ExtTextOut,
		20, 10, 3, gdi.EtoClipped,
		1, 2, 3, 4,
		int16('a')|int16('b')<<8, int16('c'),
		7, 8, 9,
	))
	rec, err := parseRaw(t, Options{}, data)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{
		int16(10), int16(20), uint16(gdi.EtoClipped),
		[]int16{1, 2, 3, 4}, []byte("abc"), []int16{7, 8, 9},
	}, rec.calls[1].Args)
}

func TestSaveRestoreBalance(t *testing.T) {
	for _, records := range [][][]byte{
		{rawRecord(SaveDC), rawRecord(RestoreDC, -1)},
		{rawRecord(SaveDC), rawRecord(SaveDC), rawRecord(RestoreDC, -1)},
		{rawRecord(RestoreDC, -3), rawRecord(RestoreDC, 2)},
	} {
		enc := NewEncoder(Options{})
		require.NoError(t, NewParser(Options{}).Parse(bytes.NewReader(rawStream(0, records...)), enc))
		assert.NotEmpty(t, enc.Bytes())
	}
}

func TestTableReleased(t *testing.T) {
	mf, err := Decode(bytes.NewReader(encodeSample(t)), Options{})
	require.NoError(t, err)

	var rec recorder
	p := newPlayer(&rec, mf.Header.NumObjects, Options{})
	p.begin(mf.Placeable)
	for i, r := range mf.Records {
		require.NoError(t, p.play(r, int64(i)))
	}
	assert.Equal(t, 4, p.objs.len()) // brush, font, palette, region
	p.end()
	assert.Equal(t, 0, p.objs.len())
	assert.Nil(t, p.objs.slots)
}

func TestUnsupportedDevice(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	err := NewParser(Options{Logger: logger}).Parse(bytes.NewReader(encodeSample(t)), gdi.Unsupported{Log: logger})
	require.NoError(t, err)
	assert.NotEmpty(t, hook.Entries)
	for _, entry := range hook.Entries {
		assert.Equal(t, logrus.DebugLevel, entry.Level, entry.Message)
	}
}
