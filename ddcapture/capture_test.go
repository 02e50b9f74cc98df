package ddcapture_test

import (
	"testing"

	"github.com/ddfmt/ddfmt-go/ddcapture"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapturePreservesOrder(t *testing.T) {
	w := ddcapture.New()
	require.NoError(t, w.WriteLine([]byte("one\n")))
	require.NoError(t, w.WriteLine([]byte("two\n")))
	assert.Equal(t, []string{"one\n", "two\n"}, w.Lines())
	assert.Equal(t, 2, w.Count())
	assert.Equal(t, "one\ntwo\n", w.Dump())
}

func TestCaptureSnapshotIsIndependent(t *testing.T) {
	w := ddcapture.New()
	require.NoError(t, w.WriteLine([]byte("one\n")))
	snap := w.Lines()
	require.NoError(t, w.WriteLine([]byte("two\n")))
	assert.Len(t, snap, 1)
	assert.Len(t, w.Lines(), 2)
}

func TestCaptureClosedWritesFail(t *testing.T) {
	w := ddcapture.New()
	w.Close()
	err := w.WriteLine([]byte("dropped\n"))
	assert.Error(t, err)
	assert.Equal(t, 0, w.Count(), "nothing recorded after close")
}
