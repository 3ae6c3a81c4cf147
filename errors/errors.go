package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDecode   Phase = "decode"   // field and atom decoding
	PhaseValidate Phase = "validate" // document-level identifier checks
	PhaseLoad     Phase = "load"     // configuration and input loading
)

// Kind categorizes the error
type Kind string

const (
	KindCorruptedData     Kind = "corrupted_data"
	KindDuplicateID       Kind = "duplicate_id"
	KindDanglingReference Kind = "dangling_reference"
	KindInvalidInput      Kind = "invalid_input"
)

// ErrCorruptedData matches any decode error, for use with errors.Is.
var ErrCorruptedData = &Error{Phase: PhaseDecode, Kind: KindCorruptedData}

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Type   string
	Detail string
	Path   []string
	Offset int // stream offset of the field, -1 when unknown
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Offset >= 0 {
		fmt.Fprintf(&b, " (offset %d)", e.Offset)
	}

	if e.Type != "" {
		b.WriteString(": ")
		b.WriteString(e.Type)
	}

	if e.Detail != "" {
		if e.Type != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// WithParent returns a copy of the error with name prepended to its path.
// Composite decoders use it to record which child failed.
func (e *Error) WithParent(name string) *Error {
	cp := *e
	cp.Path = make([]string, 0, len(e.Path)+1)
	cp.Path = append(cp.Path, name)
	cp.Path = append(cp.Path, e.Path...)
	return &cp
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Offset: -1,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Type sets the Go type name of the decoded field
func (b *Builder) Type(t string) *Builder {
	b.err.Type = t
	return b
}

// Offset sets the stream offset where the field starts
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// CorruptedData creates a generic corrupted-data error
func CorruptedData(typ string, offset int, value any, detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindCorruptedData,
		Type:   typ,
		Offset: offset,
		Value:  value,
		Detail: detail,
	}
}

// OutOfRange creates an error for a scalar that violates its declared bound
func OutOfRange(typ string, offset int, value any, bound string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindCorruptedData,
		Type:   typ,
		Offset: offset,
		Value:  value,
		Detail: fmt.Sprintf("value %#x outside %s", value, bound),
	}
}

// ZeroValue creates an error for an identifier that must be non-zero
func ZeroValue(typ string, offset int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindCorruptedData,
		Type:   typ,
		Offset: offset,
		Value:  uint32(0),
		Detail: "value must be non-zero",
	}
}

// InvalidEnum creates an error for an enumeration code with no variant
func InvalidEnum(typ string, offset int, value any) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindCorruptedData,
		Type:   typ,
		Offset: offset,
		Value:  value,
		Detail: fmt.Sprintf("unknown code %#x", value),
	}
}

// InvalidEncoding creates an error for string bytes that are not valid in
// their declared encoding
func InvalidEncoding(typ string, offset int, encoding string, data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindCorruptedData,
		Type:   typ,
		Offset: offset,
		Detail: fmt.Sprintf("invalid %s sequence: %x", encoding, preview),
	}
}

// Truncated wraps a cursor failure as corrupted data
func Truncated(typ string, offset int, cause error) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindCorruptedData,
		Type:   typ,
		Offset: offset,
		Detail: "short read",
		Cause:  cause,
	}
}

// DuplicateID creates a collision error for two definitions of one identifier
func DuplicateID(namespace string, id uint32, first, second string) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindDuplicateID,
		Path:   []string{namespace},
		Offset: -1,
		Value:  id,
		Detail: fmt.Sprintf("identifier %#x defined by %s and again by %s", id, first, second),
	}
}

// DanglingReference creates an error for a reference with no matching definition
func DanglingReference(namespace string, id uint32) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindDanglingReference,
		Path:   []string{namespace},
		Offset: -1,
		Value:  id,
		Detail: fmt.Sprintf("identifier %#x is not defined", id),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Offset: -1,
		Detail: detail,
	}
}

// Load creates an input loading error
func Load(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidInput,
		Offset: -1,
		Detail: detail,
		Cause:  cause,
	}
}
