package wmf

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned for a stream without any byte.
	ErrEmptyInput = errors.New("wmf: input is empty")
	// ErrTruncated is returned when the stream ends inside the header
	// or a record.
	ErrTruncated = errors.New("wmf: truncated input")
	// ErrFormat is returned for an invalid header or record length.
	ErrFormat = errors.New("wmf: invalid file format")
	// ErrUnsupported is returned in StrictErrorMode for unknown records.
	ErrUnsupported = errors.New("wmf: unsupported record")
	// ErrChecksum is returned, with Options.StrictChecksum, when the placeable
	// header checksum does not match.
	ErrChecksum = errors.New("wmf: invalid placeable header checksum")
)

// ParseError is the error returned for fatal conditions.
// Use errors.Is with the sentinel errors of this package to
// discriminate the cause.
type ParseError struct {
	Offset int64  // position in the stream (record index for Metafile.Replay)
	Opcode Opcode // record being processed, EOF for the headers
	Err    error
}

func (e *ParseError) Error() string {
	if e.Opcode == EOF {
		return fmt.Sprintf("%s (offset %d)", e.Err, e.Offset)
	}
	return fmt.Sprintf("%s (record %s, offset %d)", e.Err, e.Opcode, e.Offset)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ErrorMode determines how unsupported records are handled.
type ErrorMode uint8

const (
	// WarnErrorMode logs a warning and skips the record.
	WarnErrorMode ErrorMode = iota
	// IgnoreErrorMode silently skips the record.
	IgnoreErrorMode
	// StrictErrorMode aborts the parsing with ErrUnsupported.
	StrictErrorMode
)
