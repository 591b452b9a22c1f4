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

func TestTree_DeleteMissing(t *testing.T) {
	t.Parallel()

	tree := New[int, int]()
	require.False(t, tree.Delete(0))
	require.False(t, tree.Contains(0))
	require.Equal(t, 0, tree.Len())

	for _, k := range scenarioKeys {
		tree.Insert(k, k)
	}
	n := tree.Len()

	// erasing an absent key is idempotent
	require.False(t, tree.Delete(99))
	require.False(t, tree.Delete(99))
	require.Equal(t, n, tree.Len())
	require.NoError(t, tree.Check())
}

func TestTree_EraseScenario(t *testing.T) {
	t.Parallel()

	ascending := append([]int(nil), scenarioKeys...)
	sort.Ints(ascending)
	descending := make([]int, len(ascending))
	for i, k := range ascending {
		descending[len(descending)-1-i] = k
	}
	shuffled := append([]int(nil), scenarioKeys...)
	rand.New(rand.NewSource(time.Now().UnixNano())).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	orders := map[string][]int{
		"insertion":  scenarioKeys,
		"ascending":  ascending,
		"descending": descending,
		"shuffled":   shuffled,
	}

	for name, order := range orders {
		order := order
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			tree := New[int, int]()
			for _, k := range scenarioKeys {
				tree.Insert(k, k)
			}

			remaining := len(scenarioKeys)
			for _, k := range order {
				require.True(t, tree.Delete(k), "key %d", k)
				remaining--
				require.Equal(t, remaining, tree.Len())
				require.NoError(t, tree.Check())
				require.False(t, tree.Contains(k))
			}
			require.True(t, tree.IsEmpty())
		})
	}
}

func TestTree_DeleteRoundTrip(t *testing.T) {
	t.Parallel()

	tree := New[string, string]()
	tree.Insert("k", "v")
	v, ok := tree.Get("k")
	require.True(t, ok)
	require.Equal(t, "v", v)

	require.True(t, tree.Delete("k"))
	_, ok = tree.Get("k")
	require.False(t, ok)
	require.True(t, tree.IsEmpty())
}

// The donor replacing an interior node must come from the deeper subtree:
// the rightmost node of the left subtree when the node leans left or is
// even, the leftmost node of the right subtree when it leans right.
func TestTree_DonorFromDeeperSide(t *testing.T) {
	t.Parallel()

	t.Run("left deeper", func(t *testing.T) {
		t.Parallel()

		tree := New[int, int]()
		for _, k := range []int{10, 5, 15, 3} {
			tree.Insert(k, k)
		}
		require.True(t, tree.Delete(10))
		require.Equal(t, 5, tree.root.key) // predecessor promoted
		require.Equal(t, []int{3, 5, 15}, tree.Keys())
		require.NoError(t, tree.Check())
	})

	t.Run("right deeper", func(t *testing.T) {
		t.Parallel()

		tree := New[int, int]()
		for _, k := range []int{10, 5, 15, 20} {
			tree.Insert(k, k)
		}
		require.True(t, tree.Delete(10))
		require.Equal(t, 15, tree.root.key) // successor promoted
		require.Equal(t, []int{5, 15, 20}, tree.Keys())
		require.NoError(t, tree.Check())
	})
}

// A delete-time single rotation around a child with balance 0 preserves
// the subtree height, so the shrink signal must stop there.
func TestTree_ShrinkRotationStopsOnEvenChild(t *testing.T) {
	t.Parallel()

	tree := New[int, int]()
	for _, k := range []int{4, 2, 6, 5, 7} {
		tree.Insert(k, k)
	}
	require.Equal(t, uint64(0), tree.Rotations().Total())

	require.True(t, tree.Delete(2))
	require.Equal(t, uint64(1), tree.Rotations().RR)
	require.Equal(t, 6, tree.root.key)
	require.Equal(t, int8(-1), tree.root.balance)
	require.NoError(t, tree.Check())
}

func TestTree_RotationCounters(t *testing.T) {
	t.Parallel()

	// ascending inserts lean right every step: RR rotations only
	tree := New[int, int]()
	for k := 1; k <= 64; k++ {
		tree.Insert(k, k)
	}
	rot := tree.Rotations()
	require.NotZero(t, rot.RR)
	require.Zero(t, rot.LL)
	require.Zero(t, rot.LR)
	require.Zero(t, rot.RL)
	require.Equal(t, rot.RR, rot.Total())
	require.NoError(t, tree.Check())

	// descending inserts mirror to LL rotations only
	tree = New[int, int]()
	for k := 64; k >= 1; k-- {
		tree.Insert(k, k)
	}
	rot = tree.Rotations()
	require.NotZero(t, rot.LL)
	require.Zero(t, rot.RR)
	require.NoError(t, tree.Check())
}

func TestTree_CorruptBalance(t *testing.T) {
	t.Parallel()

	tree := New[int, int]()
	for _, k := range []int{2, 1, 3} {
		tree.Insert(k, k)
	}
	tree.root.balance = 3

	require.Error(t, tree.Check())
	require.Panics(t, func() {
		tree.Delete(2)
	})
}
