// Copyright (c) Arbor Lane Labs
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var (
		wordsPath   string
		datasetSize int
		iterations  int
		baseline    bool
	)

	cmdRun := &cobra.Command{
		Use:   "run",
		Short: "Benchmark insert, search and delete over a shuffled word list",
		Long: `Run loads a newline-separated word list (falling back to a synthetic
UUID dataset when the file is missing) and, for the requested number of
rounds, shuffles it, inserts every key, verifies every lookup, then
deletes every key, reporting mean timings and rotation tallies for both
a string-keyed and an integer-keyed tree.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := loadDataset(wordsPath, datasetSize)
			if err != nil {
				return err
			}
			return runBench(words, iterations, baseline)
		},
	}
	cmdRun.Flags().StringVar(&wordsPath, "words", "words.txt", "newline-separated word list seeding the workload")
	cmdRun.Flags().IntVar(&datasetSize, "size", 0, "cap the dataset at this many keys (0 = all)")
	cmdRun.Flags().IntVar(&iterations, "iterations", 10, "number of shuffle/insert/search/delete rounds")
	cmdRun.Flags().BoolVar(&baseline, "baseline", false, "also time an LRU cache and the built-in map for comparison")

	cmdDemo := &cobra.Command{
		Use:   "demo",
		Short: "Step through a fixed insert/erase sequence, printing the tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(os.Stdout)
		},
	}

	rootCmd := &cobra.Command{
		Use:   "avlbench",
		Short: "Workload driver for the go-avl ordered map",
	}
	rootCmd.AddCommand(cmdRun, cmdDemo)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
