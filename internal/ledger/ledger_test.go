package ledger

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinebook-lld/internal/models"
)

func TestAllocateIDStartsAtOneAndIsSequential(t *testing.T) {
	l := New()

	assert.Equal(t, uint64(1), l.AllocateID())
	assert.Equal(t, uint64(2), l.AllocateID())
	assert.Equal(t, uint64(3), l.AllocateID())
}

func TestAppendAndLookup(t *testing.T) {
	l := New()

	id := l.AllocateID()
	booking := models.NewBooking(id, 1, 1, []string{"a1"})
	l.Append(booking)

	found, ok := l.Lookup(id)
	require.True(t, ok)
	assert.Equal(t, booking, found)
}

func TestLookupMissForUnknownID(t *testing.T) {
	l := New()

	_, ok := l.Lookup(999)
	assert.False(t, ok)
}

// TestAllocateIDConcurrentIsGapFreeAndUnique drives many goroutines
// allocating ids concurrently and checks the resulting set is a contiguous
// run of unique values, matching the strictly-monotonic-allocation
// invariant.
func TestAllocateIDConcurrentIsGapFreeAndUnique(t *testing.T) {
	l := New()
	const workers = 500

	ids := make([]uint64, workers)
	var wg sync.WaitGroup

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		i := i
		go func() {
			defer wg.Done()
			ids[i] = l.AllocateID()
		}()
	}
	wg.Wait()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	seen := make(map[uint64]bool, workers)
	for _, id := range ids {
		assert.False(t, seen[id], "duplicate id %d allocated", id)
		seen[id] = true
	}
	assert.Equal(t, uint64(1), ids[0])
	assert.Equal(t, uint64(workers), ids[workers-1])
}
