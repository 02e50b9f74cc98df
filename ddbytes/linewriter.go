// Package ddbytes is the output side of ddfmt: sinks that receive fully
// formatted log lines as bytes.
package ddbytes

import (
	"io"
	"os"
)

// LineWriter receives exactly one assembled record per call, newline
// included.  Implementations must not retain the slice after returning.
// A returned error means the line was not durably written; ddfmt does not
// retry.
type LineWriter interface {
	WriteLine([]byte) error
	Close()
}

var _ LineWriter = IOWriter{}

type IOWriter struct {
	io.Writer
}

func WriteToIOWriter(w io.Writer) LineWriter {
	return IOWriter{
		Writer: w,
	}
}

// Stdout is the default production sink: unbuffered writes to process
// standard output.
func Stdout() LineWriter { return IOWriter{Writer: os.Stdout} }

func (iow IOWriter) WriteLine(b []byte) error {
	_, err := iow.Write(b)
	return err
}

func (iow IOWriter) Close() {
	if wc, ok := iow.Writer.(io.WriteCloser); ok {
		_ = wc.Close()
	}
}
