// Package errors provides structured error types for the pptfields library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the field path, the Go type of the decoded field, the
// offending raw value, the stream offset of the field, and an optional cause.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindCorruptedData).
//		Path("SlideAtom", "masterIdRef").
//		Type("MasterID").
//		Offset(12).
//		Value(uint32(0x7FFFFFFF)).
//		Detail("value below 0x80000000").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfRange("SlideID", 4, uint32(0xFF), "0x00000100..0x7FFFFFFF")
//	err := errors.InvalidEnum("TextType", 8, uint32(3))
//
// The field decoding layer only ever produces KindCorruptedData. The other
// kinds belong to the document validation pass and to configuration loading.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
