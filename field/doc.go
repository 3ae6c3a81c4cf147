// Package field decodes the primitive fields every record of the binary
// presentation format is built from.
//
// There are four decoder kinds, each reading from a pptfields.Cursor:
//
//   - Scalar aliases: raw little-endian integers with no constraint.
//   - Validated scalars: identifiers and small bounded values that must satisfy
//     a range or non-zero rule (ExObjID, ExHyperlinkID, MasterID, SlideID,
//     NotesID, IndentLevel).
//   - Enumerations: integers mapped onto a closed set of named variants.
//   - Sized strings: a caller-supplied byte count decoded as restricted ASCII,
//     UTF-16LE, UTF-8 or NUL-terminated UTF-16 (char2).
//
// Reference fields (SlideIDRef, PictureBulletIndex, ...) are plain values. Their
// sentinel ("no reference") decodes successfully; Ref converts them to a
// Reference, which keeps null and concrete values apart for the resolution
// layer.
//
// # Validation Table
//
//	Type           Width  Rule
//	ExObjID        u32    value != 0
//	ExHyperlinkID  u32    value != 0
//	MasterID       u32    value >= 0x80000000
//	SlideID        u32    0x00000100 <= value <= 0x7FFFFFFF
//	NotesID        u32    0x00000100 <= value <= 0x7FFFFFFF
//	IndentLevel    u16    value <= 4
//
// # Failure Model
//
// A decoder reads its full width (or byte count) before checking anything, so
// a failed decode still advances the cursor. Nothing is rewound. Every failure
// is an *errors.Error of kind corrupted_data; cursor failures are wrapped with
// the cursor error as the cause.
package field
