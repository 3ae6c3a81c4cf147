// Package pptfields provides the typed field decoders of the legacy binary
// presentation-document format.
//
// Records in the format are nested, size-delimited binary structures. Every
// record decoder is assembled from a small set of leaf decoders that read one
// field at a time from a shared stream cursor: fixed-width little-endian
// integers, identifiers with local validity ranges, closed enumerations, and
// strings whose byte count is supplied by the enclosing record.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	pptfields/           Root package with the Cursor interface
//	├── stream/          Forward-only little-endian Cursor implementation
//	├── field/           Scalar, identifier, enumeration, reference and string decoders
//	├── atom/            Fixed-structure records composed from field decoders
//	├── docindex/        Document-level identifier uniqueness and reference resolution
//	├── config/          CLI configuration (TOML or YAML)
//	├── errors/          Structured error types
//	└── cmd/pptfield/    Command line inspector
//
// # Quick Start
//
// Decode a single identifier:
//
//	r := stream.NewReader(bytes.NewReader(data))
//	id, err := field.ReadSlideID(r)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(id.Value())
//
// Decode a whole atom, header first:
//
//	h, err := atom.ReadRecordHeader(r)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	body, err := atom.Decode(h, r)
//
// # Failure Model
//
// Every decoder consumes its bytes first and validates afterwards. A failed
// decode leaves the cursor advanced past the consumed bytes; nothing is ever
// rewound. All decode failures are *errors.Error values of kind
// corrupted_data and match errors.ErrCorruptedData.
//
// Identifier uniqueness across records cannot be checked one field at a time.
// Collect identifiers into a docindex.Index while decoding and call Validate
// and ResolveAll once the whole document has been read.
//
// # Concurrency
//
// Decoders hold no state. A cursor must not be shared between goroutines;
// independent cursors may be decoded in parallel.
package pptfields
