// Package stream implements the forward-only, little-endian byte cursor the
// field decoders read from.
//
// A Reader wraps any io.ByteReader and tracks the number of bytes consumed.
// Readers never seek backwards. Record decoders may confine reads to the
// span announced by a length field with PushLimit/PopLimit; a read that
// would cross the innermost limit fails without consuming anything.
package stream
