// Package atom decodes fixed-layout structures and atom bodies of the
// presentation format out of field decoders.
//
// A structure decodes its children in declaration order. The first child
// failure aborts the decode and no partial value is returned; the stream
// is left wherever the failing child stopped. The returned *errors.Error
// carries the path of the failing child, for example
// "SlideAtom.masterIdRef".
//
// Decode dispatches on a RecordHeader:
//
//	r := stream.NewBytesReader(data)
//	h, err := atom.ReadRecordHeader(r)
//	if err != nil {
//		return err
//	}
//	a, err := atom.Decode(h, r)
//	if errors.Is(err, atom.ErrUnknownRecord) {
//		// skip h.Length bytes
//	}
//
// Nothing in this package logs or retries.
package atom
