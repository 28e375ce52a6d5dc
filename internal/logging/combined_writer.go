package logging

import (
	"io"

	"go.uber.org/multierr"
)

type CombinedWriter struct {
	Writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	cw := &CombinedWriter{}
	cw.Writers = append(cw.Writers, writers...)
	return cw
}

// Write fans p out to every writer, collecting the errors. The reported
// count never exceeds len(p), keeping the io.Writer contract.
func (cw CombinedWriter) Write(p []byte) (n int, err error) {
	n = len(p)
	for _, w := range cw.Writers {
		written, werr := w.Write(p)
		if werr != nil {
			err = multierr.Combine(err, werr)
			if written < n {
				n = written
			}
		}
	}
	return n, err
}
