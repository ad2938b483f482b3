package ring

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/control"
)

func TestStream_WriteRead(t *testing.T) {
	mr := control.NewMetricsRegistry()
	s, err := NewStream(8, WithMetrics(mr))
	require.NoError(t, err)

	n, err := s.Write([]byte("abcdef"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	p := make([]byte, 4)
	n, err = s.Read(p)
	require.NoError(t, err)
	assert.Equal(t, "abcd", string(p[:n]))

	// wraps: tail at 6, head at 4
	n, err = s.Write([]byte("ghijklmn"))
	assert.ErrorIs(t, err, api.ErrBufferFull)
	assert.Equal(t, 6, n)
	assert.Equal(t, 8, s.Len())
	assert.Equal(t, 0, s.Free())

	var out bytes.Buffer
	written, err := s.WriteTo(&out)
	require.NoError(t, err)
	assert.EqualValues(t, 8, written)
	assert.Equal(t, "efghijkl", out.String())

	n, err = s.Read(p)
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, io.EOF)

	assert.EqualValues(t, 12, mr.Counter(control.MetricProduced))
	assert.EqualValues(t, 12, mr.Counter(control.MetricConsumed))
	assert.EqualValues(t, 1, mr.Counter(control.MetricWraps))
	assert.EqualValues(t, 0, mr.Counter(control.MetricLen))
	assert.Equal(t, 8, mr.GetSnapshot()[control.MetricCap])
}

func TestStream_SharedRegistrySumsLen(t *testing.T) {
	mr := control.NewMetricsRegistry()
	a, err := NewStream(8, WithMetrics(mr))
	require.NoError(t, err)
	b, err := NewStream(8, WithMetrics(mr))
	require.NoError(t, err)

	_, err = a.Write([]byte("abc"))
	require.NoError(t, err)
	_, err = b.Write([]byte("defgh"))
	require.NoError(t, err)
	assert.EqualValues(t, 8, mr.Counter(control.MetricLen))

	_, err = a.Read(make([]byte, 2))
	require.NoError(t, err)
	assert.EqualValues(t, 6, mr.Counter(control.MetricLen))

	b.Reset()
	assert.EqualValues(t, 1, mr.Counter(control.MetricLen))
	a.Reset()
	assert.EqualValues(t, 0, mr.Counter(control.MetricLen))
}

func TestStream_InvalidCountsAreInternalErrors(t *testing.T) {
	s, err := NewStream(8)
	require.NoError(t, err)
	_, err = s.ReadOnce(overReader{})
	assert.Equal(t, api.ErrCodeInternal, api.CodeOf(err))
	assert.Equal(t, 0, s.Len())

	_, err = s.Write([]byte("abc"))
	require.NoError(t, err)
	_, err = s.WriteTo(overWriter{})
	assert.Equal(t, api.ErrCodeInternal, api.CodeOf(err))
	assert.Equal(t, 3, s.Len())
}

type overReader struct{}

func (overReader) Read(p []byte) (int, error) { return len(p) + 1, nil }

type overWriter struct{}

func (overWriter) Write(p []byte) (int, error) { return len(p) + 1, nil }

func TestStream_ReadFromFillsAcrossWrap(t *testing.T) {
	s, err := NewStream(10, WithChunkSize(3))
	require.NoError(t, err)
	_, err = s.Write([]byte("1234567"))
	require.NoError(t, err)
	_, err = s.Read(make([]byte, 5))
	require.NoError(t, err)

	got, err := s.ReadFrom(iotest.OneByteReader(strings.NewReader("abcdefghijkl")))
	require.NoError(t, err)
	assert.EqualValues(t, 8, got)
	assert.Equal(t, 10, s.Len())

	u1, u2 := s.Buffer().UsedBlocks()
	assert.Equal(t, "67abcdefgh", string(u1)+string(u2))
	assert.NotEmpty(t, u2, "contents should straddle the end of storage")
}

func TestStream_ReadFromStopsAtEOF(t *testing.T) {
	s, err := NewStream(64)
	require.NoError(t, err)
	n, err := s.ReadFrom(strings.NewReader("payload"))
	require.NoError(t, err)
	assert.EqualValues(t, 7, n)

	var out bytes.Buffer
	_, err = io.Copy(&out, s)
	require.NoError(t, err)
	assert.Equal(t, "payload", out.String())
}

func TestStream_ReadFromPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	s, err := NewStream(16)
	require.NoError(t, err)
	_, err = s.ReadFrom(iotest.ErrReader(boom))
	assert.ErrorIs(t, err, boom)

	_, err = s.ReadFrom(zeroReader{})
	assert.ErrorIs(t, err, io.ErrNoProgress)
}

func TestStream_WriteToShortWrite(t *testing.T) {
	s, err := NewStream(16)
	require.NoError(t, err)
	_, err = s.Write([]byte("0123456789"))
	require.NoError(t, err)

	w := &limitedWriter{max: 4}
	n, err := s.WriteTo(w)
	assert.ErrorIs(t, err, io.ErrShortWrite)
	assert.EqualValues(t, 4, n)
	assert.Equal(t, 6, s.Len())
}

func TestStreamFromConfig(t *testing.T) {
	cfg := control.DefaultConfig()
	cfg.Capacity = 32
	s, err := NewStreamFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, 32, s.Cap())

	cfg.Capacity = 0
	_, err = NewStreamFromConfig(cfg)
	assert.ErrorIs(t, err, api.ErrInvalidArgument)

	_, err = NewStream(8, WithChunkSize(-1))
	assert.ErrorIs(t, err, api.ErrInvalidArgument)
}

type zeroReader struct{}

func (zeroReader) Read([]byte) (int, error) { return 0, nil }

type limitedWriter struct {
	max int
	buf bytes.Buffer
}

func (w *limitedWriter) Write(p []byte) (int, error) {
	if len(p) > w.max {
		p = p[:w.max]
	}
	w.max -= len(p)
	return w.buf.Write(p)
}

func TestStream_ReadOnceUsesFirstBlockOnly(t *testing.T) {
	s, err := NewStream(6)
	require.NoError(t, err)
	_, err = s.Write([]byte("abcd"))
	require.NoError(t, err)
	_, err = s.Read(make([]byte, 3))
	require.NoError(t, err)

	// free: [4,6) then [0,3); a single read only reaches the first span
	n, err := s.ReadOnce(strings.NewReader("wxyz"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	n, err = s.ReadOnce(strings.NewReader("yz"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "dwxyz", string(s.Buffer().AppendTo(nil)))

	s.Buffer().Fill('f')
	n, err = s.ReadOnce(strings.NewReader("ignored"))
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
