package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeRing struct{ head, tail, size, cap int }

func (f fakeRing) Len() int            { return f.size }
func (f fakeRing) Cap() int            { return f.cap }
func (f fakeRing) Cursors() (int, int) { return f.head, f.tail }

func TestMetricsRegistry_Counters(t *testing.T) {
	mr := NewMetricsRegistry()
	assert.EqualValues(t, 0, mr.Counter(MetricProduced))
	assert.EqualValues(t, 3, mr.Add(MetricProduced, 3))
	assert.EqualValues(t, 7, mr.Add(MetricProduced, 4))
	mr.Set(MetricLen, 5)
	snap := mr.GetSnapshot()
	assert.EqualValues(t, 7, snap[MetricProduced])
	assert.Equal(t, 5, snap[MetricLen])
	assert.False(t, mr.Updated().IsZero())
}

func TestRegisterRing(t *testing.T) {
	dp := NewDebugProbes()
	RegisterRing(dp, "rx", fakeRing{head: 2, tail: 5, size: 3, cap: 8})
	RegisterPlatformProbes(dp)
	state := dp.DumpState()
	assert.Equal(t, 3, state["rx.len"])
	assert.Equal(t, 8, state["rx.cap"])
	assert.Equal(t, 2, state["rx.head"])
	assert.Equal(t, 5, state["rx.tail"])
	assert.Contains(t, state, "platform.pagesize")
}
