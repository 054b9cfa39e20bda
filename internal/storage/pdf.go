package storage

import (
	"bytes"

	"github.com/cockroachdb/errors"
	"github.com/ledongthuc/pdf"
)

// InspectPDF returns the page count of data. The parser panics on some
// malformed inputs, so panics are reported as errors.
func InspectPDF(data []byte) (pages int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("pdf reader panic: %v", r)
		}
	}()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, errors.Wrap(err, "pdf reader")
	}
	return r.NumPage(), nil
}
