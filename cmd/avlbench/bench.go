// Copyright (c) Arbor Lane Labs
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/schollz/progressbar/v3"

	"github.com/arborlane/go-avl"
)

type timings struct {
	insert time.Duration
	search time.Duration
	delete time.Duration
}

func runBench(words []string, iterations int, baseline bool) error {
	if iterations < 1 {
		return fmt.Errorf("iterations must be at least 1, got %d", iterations)
	}
	fmt.Fprintf(os.Stderr, "dataset: %d keys, %d rounds\n", len(words), iterations)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	// String-keyed tree over the word list, the dictionary workload.
	strTree := avl.New[string, int]()
	var str timings
	bar := newBar(iterations, "string rounds")
	for it := 0; it < iterations; it++ {
		rng.Shuffle(len(words), func(i, j int) {
			words[i], words[j] = words[j], words[i]
		})

		start := time.Now()
		for i, w := range words {
			if strTree.Insert(w, i) {
				fmt.Fprintf(os.Stderr, "key %q already in string tree\n", w)
			}
		}
		str.insert += time.Since(start)
		if strTree.Len() != len(words) {
			return fmt.Errorf("string tree holds %d keys, expected %d", strTree.Len(), len(words))
		}

		start = time.Now()
		for i, w := range words {
			v, ok := strTree.Get(w)
			if !ok {
				fmt.Fprintf(os.Stderr, "key %q not in string tree\n", w)
			} else if v != i {
				fmt.Fprintf(os.Stderr, "wrong value %d for key %q\n", v, w)
			}
		}
		str.search += time.Since(start)

		rng.Shuffle(len(words), func(i, j int) {
			words[i], words[j] = words[j], words[i]
		})
		start = time.Now()
		for _, w := range words {
			if !strTree.Delete(w) {
				fmt.Fprintf(os.Stderr, "key %q not in string tree for deletion\n", w)
			}
		}
		str.delete += time.Since(start)
		if !strTree.IsEmpty() {
			return fmt.Errorf("%d keys remain in string tree after deletion", strTree.Len())
		}
		bar.Add(1)
	}
	bar.Finish()
	report("string", len(words), iterations, str, strTree.Rotations())

	// Integer-keyed tree over a permutation of the same cardinality.
	numbers := make([]uint32, len(words))
	for i := range numbers {
		numbers[i] = uint32(i)
	}
	intTree := avl.New[uint32, int]()
	var num timings
	bar = newBar(iterations, "integer rounds")
	for it := 0; it < iterations; it++ {
		rng.Shuffle(len(numbers), func(i, j int) {
			numbers[i], numbers[j] = numbers[j], numbers[i]
		})

		start := time.Now()
		for i, n := range numbers {
			intTree.Insert(n, i)
		}
		num.insert += time.Since(start)
		if intTree.Len() != len(numbers) {
			return fmt.Errorf("integer tree holds %d keys, expected %d", intTree.Len(), len(numbers))
		}

		start = time.Now()
		for i, n := range numbers {
			v, ok := intTree.Get(n)
			if !ok {
				fmt.Fprintf(os.Stderr, "key %d not in integer tree\n", n)
			} else if v != i {
				fmt.Fprintf(os.Stderr, "wrong value %d for key %d\n", v, n)
			}
		}
		num.search += time.Since(start)

		rng.Shuffle(len(numbers), func(i, j int) {
			numbers[i], numbers[j] = numbers[j], numbers[i]
		})
		start = time.Now()
		for _, n := range numbers {
			if !intTree.Delete(n) {
				fmt.Fprintf(os.Stderr, "key %d not in integer tree for deletion\n", n)
			}
		}
		num.delete += time.Since(start)
		if !intTree.IsEmpty() {
			return fmt.Errorf("%d keys remain in integer tree after deletion", intTree.Len())
		}
		bar.Add(1)
	}
	bar.Finish()
	report("integer", len(numbers), iterations, num, intTree.Rotations())

	if baseline {
		return runBaseline(words)
	}
	return nil
}

func newBar(rounds int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(rounds,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func report(label string, n, iterations int, t timings, rot avl.Rotations) {
	it := time.Duration(iterations)
	rounds := uint64(iterations)
	fmt.Printf("%s keys = %d\n", label, n)
	fmt.Printf("%s insert time = %v\n", label, t.insert/it)
	fmt.Printf("%s search time = %v\n", label, t.search/it)
	fmt.Printf("%s delete time = %v\n", label, t.delete/it)
	fmt.Printf("%s LL = %d  LR = %d  RL = %d  RR = %d  total = %d\n",
		label, rot.LL/rounds, rot.LR/rounds, rot.RL/rounds, rot.RR/rounds, rot.Total()/rounds)
}

// runBaseline times the same key set against an LRU cache sized to hold
// everything and against the built-in map, as unordered reference points
// for the tree's ordered lookups.
func runBaseline(words []string) error {
	cache, err := lru.New[string, int](len(words))
	if err != nil {
		return err
	}
	start := time.Now()
	for i, w := range words {
		cache.Add(w, i)
	}
	lruInsert := time.Since(start)
	start = time.Now()
	for _, w := range words {
		cache.Get(w)
	}
	lruSearch := time.Since(start)

	m := make(map[string]int, len(words))
	start = time.Now()
	for i, w := range words {
		m[w] = i
	}
	mapInsert := time.Since(start)
	var sink int
	start = time.Now()
	for _, w := range words {
		sink += m[w]
	}
	mapSearch := time.Since(start)
	_ = sink

	fmt.Printf("baseline lru insert time = %v, lookup time = %v\n", lruInsert, lruSearch)
	fmt.Printf("baseline map insert time = %v, lookup time = %v\n", mapInsert, mapSearch)
	return nil
}
