package stream

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/wippyai/pptfields"
)

var (
	// ErrLimitExceeded is returned when a read or a nested limit would cross
	// the innermost limit.
	ErrLimitExceeded = errors.New("read crosses record limit")
	// ErrNoLimit is returned by PopLimit when no limit is active.
	ErrNoLimit = errors.New("no active limit")
	// ErrNegativeCount is returned for a negative byte count.
	ErrNegativeCount = errors.New("negative byte count")
)

var _ pptfields.LimitedCursor = (*Reader)(nil)

// Reader wraps an io.ByteReader with position tracking and little-endian
// read methods.
type Reader struct {
	r      io.ByteReader
	limits []int // absolute end positions, innermost last
	pos    int
}

// NewReader creates a new Reader wrapping the given io.ByteReader.
func NewReader(r io.ByteReader) *Reader {
	return &Reader{r: r}
}

// NewBytesReader creates a Reader over an in-memory buffer.
func NewBytesReader(data []byte) *Reader {
	return NewReader(bytes.NewReader(data))
}

// Position returns the current byte position.
func (r *Reader) Position() int {
	return r.pos
}

// Remaining returns the number of bytes left before the innermost limit,
// or -1 when no limit is active.
func (r *Reader) Remaining() int {
	if len(r.limits) == 0 {
		return -1
	}
	return r.limits[len(r.limits)-1] - r.pos
}

// PushLimit confines subsequent reads to the next n bytes.
func (r *Reader) PushLimit(n int) error {
	if n < 0 {
		return r.WrapError("limit", ErrNegativeCount)
	}
	if rem := r.Remaining(); rem >= 0 && n > rem {
		return r.WrapError("limit", fmt.Errorf("%w: %d bytes requested, %d left", ErrLimitExceeded, n, rem))
	}
	r.limits = append(r.limits, r.pos+n)
	return nil
}

// PopLimit removes the innermost limit and returns how many bytes of its
// span were left unread. The unread bytes are not skipped.
func (r *Reader) PopLimit() (int, error) {
	if len(r.limits) == 0 {
		return 0, ErrNoLimit
	}
	left := r.Remaining()
	r.limits = r.limits[:len(r.limits)-1]
	return left, nil
}

func (r *Reader) checkLimit(n int) error {
	if n < 0 {
		return r.WrapError("", ErrNegativeCount)
	}
	if rem := r.Remaining(); rem >= 0 && n > rem {
		return r.WrapError("", fmt.Errorf("%w: %d bytes requested, %d left", ErrLimitExceeded, n, rem))
	}
	return nil
}

// ReadByte reads a single byte and advances the position. It reports io.EOF
// at the end of the underlying reader, as io.ByteReader does.
func (r *Reader) ReadByte() (byte, error) {
	if err := r.checkLimit(1); err != nil {
		return 0, err
	}
	b, err := r.r.ReadByte()
	if err != nil {
		return 0, err
	}
	r.pos++
	return b, nil
}

// readChunk caps the up-front allocation of ReadBytes. Longer spans grow
// with the bytes actually read.
const readChunk = 64 << 10

// ReadBytes reads exactly n bytes. Bytes consumed before a short read stay
// consumed.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if err := r.checkLimit(n); err != nil {
		return nil, err
	}
	if rd, ok := r.r.(io.Reader); ok {
		if n <= readChunk {
			buf := make([]byte, n)
			got, err := io.ReadFull(rd, buf)
			r.pos += got
			if err != nil {
				return nil, r.WrapError("", unexpected(err))
			}
			return buf, nil
		}
		var buf bytes.Buffer
		got, err := io.CopyN(&buf, rd, int64(n))
		r.pos += int(got)
		if err != nil {
			return nil, r.WrapError("", unexpected(err))
		}
		return buf.Bytes(), nil
	}
	buf := make([]byte, 0, min(n, readChunk))
	for len(buf) < n {
		b, err := r.r.ReadByte()
		if err != nil {
			return nil, r.WrapError("", unexpected(err))
		}
		r.pos++
		buf = append(buf, b)
	}
	return buf, nil
}

// Skip discards n bytes.
func (r *Reader) Skip(n int) error {
	if err := r.checkLimit(n); err != nil {
		return err
	}
	if rd, ok := r.r.(io.Reader); ok {
		got, err := io.CopyN(io.Discard, rd, int64(n))
		r.pos += int(got)
		if err != nil {
			return r.WrapError("skip", unexpected(err))
		}
		return nil
	}
	for i := 0; i < n; i++ {
		if _, err := r.r.ReadByte(); err != nil {
			return r.WrapError("skip", unexpected(err))
		}
		r.pos++
	}
	return nil
}

// ReadU8 reads one byte; end of input is reported as io.ErrUnexpectedEOF.
func (r *Reader) ReadU8() (uint8, error) {
	b, err := r.ReadByte()
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			return 0, err
		}
		return 0, r.WrapError("", unexpected(err))
	}
	return b, nil
}

// ReadU16LE reads a little-endian uint16 (fixed 2 bytes).
func (r *Reader) ReadU16LE() (uint16, error) {
	buf, err := r.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf), nil
}

// ReadU32LE reads a little-endian uint32 (fixed 4 bytes).
func (r *Reader) ReadU32LE() (uint32, error) {
	buf, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf), nil
}

// ReadI16LE reads a little-endian int16 (fixed 2 bytes).
func (r *Reader) ReadI16LE() (int16, error) {
	v, err := r.ReadU16LE()
	return int16(v), err
}

// ReadI32LE reads a little-endian int32 (fixed 4 bytes).
func (r *Reader) ReadI32LE() (int32, error) {
	v, err := r.ReadU32LE()
	return int32(v), err
}

func unexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

// ParseError represents a cursor failure with position information.
type ParseError struct {
	Err      error
	Section  string
	Position int
}

func (e *ParseError) Error() string {
	if e.Section != "" {
		return fmt.Sprintf("stream: %s at position %d: %v", e.Section, e.Position, e.Err)
	}
	return fmt.Sprintf("stream: at position %d: %v", e.Position, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// WrapError creates a ParseError with the current position.
func (r *Reader) WrapError(section string, err error) error {
	return &ParseError{
		Position: r.pos,
		Section:  section,
		Err:      err,
	}
}
