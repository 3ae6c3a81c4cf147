package atom

import (
	"github.com/wippyai/pptfields"
	"github.com/wippyai/pptfields/errors"
)

// wrap prefixes a child failure with the child's field name.
func wrap(name string, err error) error {
	if fe, ok := err.(*errors.Error); ok {
		return fe.WithParent(name)
	}
	return errors.New(errors.PhaseDecode, errors.KindCorruptedData).
		Path(name).
		Cause(err).
		Build()
}

// skip consumes n bytes of reserved or trailing data.
func skip(c pptfields.Cursor, typ string, n int) error {
	if n <= 0 {
		return nil
	}
	off := c.Position()
	if _, err := c.ReadBytes(n); err != nil {
		return errors.Truncated(typ, off, err)
	}
	return nil
}
