// Copyright (c) Arbor Lane Labs
// SPDX-License-Identifier: MIT

package avl

import (
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMultiset_DuplicateKey(t *testing.T) {
	t.Parallel()

	set := NewMultiset[int]()
	for _, k := range scenarioKeys {
		require.True(t, set.Add(k))
	}
	require.Equal(t, len(scenarioKeys), set.Len())

	// a second copy shares the node
	require.False(t, set.Add(14))
	require.Equal(t, len(scenarioKeys), set.Len())
	require.Equal(t, 2, set.Count(14))
	require.NoError(t, set.Check())

	// the first remove only drops the surplus copy
	require.False(t, set.Remove(14))
	require.True(t, set.Contains(14))
	require.Equal(t, 1, set.Count(14))
	require.Equal(t, len(scenarioKeys), set.Len())

	// the second remove splices the node out
	require.True(t, set.Remove(14))
	require.False(t, set.Contains(14))
	require.Equal(t, 0, set.Count(14))
	require.Equal(t, len(scenarioKeys)-1, set.Len())
	require.NoError(t, set.Check())
}

func TestMultiset_CountMissing(t *testing.T) {
	t.Parallel()

	set := NewMultiset[string]()
	require.Equal(t, 0, set.Count("absent"))
	require.False(t, set.Remove("absent"))
	require.True(t, set.IsEmpty())
}

func TestMultiset_KeysAreDistinctAndSorted(t *testing.T) {
	t.Parallel()

	set := NewMultiset[int]()
	for i := 0; i < 200; i++ {
		set.Add(i % 50) // each key added four times
	}
	require.Equal(t, 50, set.Len())

	keys := set.Keys()
	require.Len(t, keys, 50)
	require.True(t, sort.IntsAreSorted(keys))
	for _, k := range keys {
		require.Equal(t, 4, set.Count(k))
	}
	require.NoError(t, set.Check())
}

func TestMultiset_RandomCounts(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	set := NewMultiset[int]()
	ref := make(map[int]int)

	for i := 0; i < 5000; i++ {
		k := rng.Intn(100)
		if rng.Intn(2) == 0 {
			set.Add(k)
			ref[k]++
		} else if ref[k] > 0 {
			set.Remove(k)
			ref[k]--
			if ref[k] == 0 {
				delete(ref, k)
			}
		} else {
			require.False(t, set.Remove(k))
		}
		if i%97 == 0 {
			require.NoError(t, set.Check())
		}
	}

	require.Equal(t, len(ref), set.Len())
	for k, n := range ref {
		require.Equal(t, n, set.Count(k))
	}
	require.NoError(t, set.Check())
}

func TestMultiset_Clear(t *testing.T) {
	t.Parallel()

	set := NewMultiset[int]()
	set.Add(1)
	set.Add(1)
	set.Add(2)
	set.Clear()
	require.True(t, set.IsEmpty())
	require.Equal(t, 0, set.Count(1))
}
