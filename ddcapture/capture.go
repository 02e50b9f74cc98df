/*
Package ddcapture provides an introspective ddbytes.LineWriter.  Every line
written is saved to memory in write order and can be examined afterwards.
It exists for verification; nothing is ever dropped or partially recorded.
*/
package ddcapture

import (
	"strings"
	"sync"

	"github.com/muir/list"
	"github.com/pkg/errors"

	"github.com/ddfmt/ddfmt-go/ddbytes"
)

var _ ddbytes.LineWriter = &Writer{}

type Writer struct {
	mu     sync.Mutex
	lines  []string
	closed bool
}

func New() *Writer {
	return &Writer{}
}

func (w *Writer) WriteLine(b []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return errors.New("capture sink is closed")
	}
	w.lines = append(w.lines, string(b))
	return nil
}

// Close makes all further writes fail.  Tests use this to simulate a dead
// transport.
func (w *Writer) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
}

// Lines returns a snapshot of everything written so far, in write order.
func (w *Writer) Lines() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return list.Copy(w.lines)
}

func (w *Writer) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.lines)
}

// Dump concatenates the captured lines, mostly for t.Log output.
func (w *Writer) Dump() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return strings.Join(w.lines, "")
}
