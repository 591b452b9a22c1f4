// Copyright (c) Arbor Lane Labs
// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/hashicorp/go-uuid"
)

const defaultSyntheticSize = 100000

// loadDataset reads one key per line from path, capped at size entries
// when size is positive. A missing file is not an error: a synthetic UUID
// dataset is generated instead so the benchmark runs without fixtures.
func loadDataset(path string, size int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return generateDataset(size)
		}
		return nil, err
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if size > 0 && len(words) == size {
			break
		}
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("no keys in %s", path)
	}
	return words, nil
}

func generateDataset(size int) ([]string, error) {
	if size <= 0 {
		size = defaultSyntheticSize
	}
	words := make([]string, size)
	for i := range words {
		w, err := uuid.GenerateUUID()
		if err != nil {
			return nil, err
		}
		words[i] = w
	}
	return words, nil
}
