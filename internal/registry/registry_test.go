package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupMissOnEmptyRegistry(t *testing.T) {
	r := New()

	_, ok := r.Lookup(1, 1)
	assert.False(t, ok)
}

func TestGetOrCreateCreatesOnce(t *testing.T) {
	r := New()

	state := r.GetOrCreate(1, 1)
	require.NotNil(t, state)

	again := r.GetOrCreate(1, 1)
	assert.Same(t, state, again, "GetOrCreate must return the same state for a repeated key")
}

func TestGetOrCreateDistinctKeysDistinctStates(t *testing.T) {
	r := New()

	a := r.GetOrCreate(1, 1)
	b := r.GetOrCreate(1, 2)
	c := r.GetOrCreate(2, 1)

	assert.NotSame(t, a, b)
	assert.NotSame(t, a, c)
	assert.NotSame(t, b, c)
}

func TestLookupSeesStateAfterCreate(t *testing.T) {
	r := New()

	created := r.GetOrCreate(5, 9)
	found, ok := r.Lookup(5, 9)
	require.True(t, ok)
	assert.Same(t, created, found)
}

// TestGetOrCreateConcurrentSameKey ensures only one State is ever minted for
// a key under concurrent first-use races.
func TestGetOrCreateConcurrentSameKey(t *testing.T) {
	r := New()
	const workers = 200

	var wg sync.WaitGroup
	results := make([]interface{}, workers)

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		i := i
		go func() {
			defer wg.Done()
			results[i] = r.GetOrCreate(3, 3)
		}()
	}
	wg.Wait()

	first := results[0]
	for i, state := range results {
		assert.Same(t, first, state, "goroutine %d got a different state instance", i)
	}
}
