package pptfields

// Cursor is a forward-only reader over the bytes of one document stream.
// Multi-byte reads are little-endian. Every successful read advances
// Position by the number of bytes returned; there is no way to move back.
type Cursor interface {
	Position() int
	ReadU8() (uint8, error)
	ReadU16LE() (uint16, error)
	ReadU32LE() (uint32, error)
	ReadBytes(n int) ([]byte, error)
}

// LimitedCursor is a Cursor that can confine reads to the byte span of an
// enclosing record.
type LimitedCursor interface {
	Cursor
	PushLimit(n int) error
	PopLimit() (int, error)
	Remaining() int
}
