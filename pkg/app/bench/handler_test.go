package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-vector/pkg/app"
)

func TestRun_AppendOnlyWorkload(t *testing.T) {
	resp, err := Run(Request{Appends: 5, PayloadSize: 8, Seed: 1})
	require.NoError(t, err)

	assert.Equal(t, 5, resp.Operations)
	assert.Equal(t, 5, resp.Appends)
	assert.Equal(t, 5, resp.FinalLen)
	assert.Equal(t, 8, resp.FinalCap)

	// Doubling growth: 0->1, 1->2, 2->4, 4->8.
	require.Len(t, resp.Growths, 4)
	caps := make([]int, 0, len(resp.Growths))
	for _, ev := range resp.Growths {
		caps = append(caps, ev.ToCap)
	}
	assert.Equal(t, []int{1, 2, 4, 8}, caps)
	for i := 1; i < len(resp.Growths); i++ {
		assert.Equal(t, resp.Growths[i].FromCap, resp.Growths[i-1].ToCap,
			"growth events chain from one capacity to the next")
	}
}

func TestRun_MixedWorkloadBalances(t *testing.T) {
	resp, err := Run(Request{Appends: 200, Inserts: 50, Erases: 100, PayloadSize: 16, Seed: 42})
	require.NoError(t, err)

	assert.Equal(t, 200, resp.Appends)
	assert.Equal(t, 50, resp.Inserts)
	assert.Equal(t, 100, resp.Erases+resp.SkippedOps, "every requested erase either ran or was skipped on empty")
	assert.Equal(t, resp.Appends+resp.Inserts-resp.Erases, resp.FinalLen)
	assert.GreaterOrEqual(t, resp.FinalCap, resp.FinalLen)
}

func TestRun_DeterministicUnderSeed(t *testing.T) {
	req := Request{Appends: 100, Inserts: 30, Erases: 40, PayloadSize: 4, Seed: 7}

	a, err := Run(req)
	require.NoError(t, err)
	b, err := Run(req)
	require.NoError(t, err)

	assert.Equal(t, a.Growths, b.Growths)
	assert.Equal(t, a.FinalLen, b.FinalLen)
	assert.Equal(t, a.FinalCap, b.FinalCap)
	assert.Equal(t, a.SkippedOps, b.SkippedOps)
}

func TestRun_ReserveSuppressesGrowth(t *testing.T) {
	resp, err := Run(Request{Appends: 50, Reserve: 64, Seed: 3})
	require.NoError(t, err)

	assert.Empty(t, resp.Growths, "pre-reserved storage never regrows")
	assert.Equal(t, 64, resp.FinalCap)
	assert.Equal(t, 50, resp.FinalLen)
}

func TestRun_BudgetStopsWorkload(t *testing.T) {
	_, err := Run(Request{Appends: 100, MaxCapacity: 16, Seed: 3})
	require.Error(t, err)
	assert.Equal(t, app.ErrCodeAllocation, app.ErrorCode(err))
}

func TestRun_RejectsInvalidRequest(t *testing.T) {
	_, err := Run(Request{Appends: -1})
	require.Error(t, err)
	assert.Equal(t, app.ErrCodeInvalidInput, app.ErrorCode(err))
}

func TestSchedule(t *testing.T) {
	events, err := Schedule(5)
	require.NoError(t, err)

	require.Len(t, events, 4)
	assert.Equal(t, GrowthEvent{Operation: 0, FromCap: 0, ToCap: 1}, events[0])
	assert.Equal(t, GrowthEvent{Operation: 1, FromCap: 1, ToCap: 2}, events[1])
	assert.Equal(t, GrowthEvent{Operation: 2, FromCap: 2, ToCap: 4}, events[2])
	assert.Equal(t, GrowthEvent{Operation: 4, FromCap: 4, ToCap: 8}, events[3])

	empty, err := Schedule(0)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = Schedule(-1)
	require.Error(t, err)
	assert.Equal(t, app.ErrCodeInvalidInput, app.ErrorCode(err))
}

func TestCloneRecord_DeepCopiesPayload(t *testing.T) {
	orig := Record{Payload: []byte{1, 2, 3}}
	cp, err := cloneRecord(orig)
	require.NoError(t, err)

	cp.Payload[0] = 99
	assert.Equal(t, byte(1), orig.Payload[0])
	assert.Equal(t, orig.ID, cp.ID)
}
