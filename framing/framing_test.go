package framing

import (
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ring/api"
)

func TestRing_RecordsPreserveBoundaries(t *testing.T) {
	r, err := New(16, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, r.WriteRecord([]byte("alpha")))
	require.NoError(t, r.WriteRecord([]byte("be")))
	require.NoError(t, r.WriteRecord([]byte("gamma")))
	assert.Equal(t, 3, r.Records())
	assert.Equal(t, 12, r.Len())

	n, ok := r.PeekLen()
	require.True(t, ok)
	assert.Equal(t, 5, n)

	dst := make([]byte, 16)
	n, err = r.ReadRecord(dst)
	require.NoError(t, err)
	assert.Equal(t, "alpha", string(dst[:n]))

	_, err = r.ReadRecord(dst[:1])
	assert.ErrorIs(t, err, io.ErrShortBuffer)
	assert.Equal(t, 2, r.Records(), "short read must leave the record staged")

	n, err = r.Discard()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// wraps: tail at 12, head at 7
	require.NoError(t, r.WriteRecord([]byte("deltadelt")))
	b1, b2, ok := r.Next()
	require.True(t, ok)
	assert.Equal(t, "gamma", string(b1)+string(b2))

	n, err = r.ReadRecord(dst)
	require.NoError(t, err)
	assert.Equal(t, "gamma", string(dst[:n]))

	b1, b2, ok = r.Next()
	require.True(t, ok)
	assert.NotEmpty(t, b2)
	assert.Equal(t, "deltadelt", string(b1)+string(b2))

	n, err = r.ReadRecord(dst)
	require.NoError(t, err)
	assert.Equal(t, "deltadelt", string(dst[:n]))

	_, err = r.ReadRecord(dst)
	assert.ErrorIs(t, err, io.EOF)
	_, err = r.Discard()
	assert.ErrorIs(t, err, io.EOF)
	_, _, ok = r.Next()
	assert.False(t, ok)
}

func TestRing_RejectsOversizeAndEmpty(t *testing.T) {
	r, err := New(4, zerolog.Nop())
	require.NoError(t, err)

	err = r.WriteRecord(nil)
	assert.ErrorIs(t, err, api.ErrInvalidArgument)

	require.NoError(t, r.WriteRecord([]byte("abc")))
	err = r.WriteRecord([]byte("de"))
	assert.ErrorIs(t, err, api.ErrBufferFull)
	assert.Equal(t, api.ErrCodeResourceExhausted, api.CodeOf(err))
	assert.Equal(t, 1, r.Records())
	assert.Equal(t, 3, r.Len())

	r.Reset()
	assert.Equal(t, 0, r.Records())
	assert.Equal(t, 4, r.Free())
}

func TestNew_InvalidCapacity(t *testing.T) {
	_, err := New(0, zerolog.Nop())
	assert.ErrorIs(t, err, api.ErrInvalidArgument)
}
