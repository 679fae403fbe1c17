// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command msstat summarizes a multiset given as a list of counts.
//
// Usage:
//
//	msstat 2 1 1 0
//	msstat 1,2,0,0 --other 0,2,3,0
//	msstat 5 0 3 --draws 10 --seed 7
//
// The number of counts is the domain size and must be one the multiset
// package supports (see multiset.SupportedSizes). Counts are uint32.
//
// Environment:
//
//	MSSTAT_SEED     default for --seed
//	MSSTAT_DRAWS    default for --draws
//	HWY_NO_SIMD     force the scalar realization
package main

//go:generate go run ../multisetgen -kind dispatch -pkg main -output sizes_gen.go

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-multiset/hwy"
	"github.com/ajroetker/go-multiset/multiset"
)

var version = "dev"

type options struct {
	other   string
	draws   int
	seed    uint64
	verbose bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	rootCmd := &cobra.Command{
		Use:   "msstat COUNT...",
		Short: "Summarize a fixed-size multiset of counts",
		Long: `msstat builds a multiset from the given counts, one per domain
element, and prints its reductions, entropies and optional weighted
random draws. Counts may be separate arguments or comma separated.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		Version:      version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStat(cmd, args, opts)
		},
	}
	addFlags(rootCmd.Flags(), &opts)
	return rootCmd
}

func addFlags(fs *pflag.FlagSet, opts *options) {
	fs.StringVar(&opts.other, "other", "", "Second multiset of the same size to intersect, unite and compare with")
	fs.IntVar(&opts.draws, "draws", getEnvInt("MSSTAT_DRAWS", 0), "Number of weighted random draws to report")
	fs.Uint64Var(&opts.seed, "seed", getEnvUint64("MSSTAT_SEED", 0), "Seed for random draws (0 picks a random seed)")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug information to stderr")
}

func runStat(cmd *cobra.Command, args []string, opts options) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)

	counts, err := parseCounts(args)
	if err != nil {
		return err
	}
	if !multiset.IsSupportedSize(len(counts)) {
		return fmt.Errorf("unsupported domain size %d: sizes are %v", len(counts), multiset.SupportedSizes())
	}

	sopts := summaryOptions{draws: opts.draws}
	if opts.other != "" {
		other, err := parseCounts([]string{opts.other})
		if err != nil {
			return fmt.Errorf("parsing --other: %w", err)
		}
		if len(other) != len(counts) {
			return fmt.Errorf("--other has %d counts, want %d", len(other), len(counts))
		}
		sopts.other = other
	}
	if opts.draws < 0 {
		return fmt.Errorf("--draws must not be negative, got %d", opts.draws)
	}
	if opts.draws > 0 {
		seed := opts.seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		sopts.rng = rand.New(rand.NewPCG(seed, seed))
		logger.Debug("seeded random source", "seed", seed)
	}

	logger.Debug("building multiset",
		"size", len(counts),
		"backend", multiset.ActiveBackend(),
		"dispatch", hwy.CurrentName(),
		"host_width", hwy.HostWidth())

	summary, ok := summarizeCounts(counts, sopts)
	if !ok {
		return fmt.Errorf("no storage for domain size %d", len(counts))
	}
	return summary.Write(cmd.OutOrStdout())
}

// parseCounts accepts counts as separate arguments, comma separated, or both.
func parseCounts(args []string) ([]uint32, error) {
	var counts []uint32
	for _, arg := range args {
		for field := range strings.SplitSeq(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			v, err := strconv.ParseUint(field, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("invalid count %q: %w", field, err)
			}
			counts = append(counts, uint32(v))
		}
	}
	return counts, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// getEnvInt returns environment variable as int or default
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// getEnvUint64 returns environment variable as uint64 or default
func getEnvUint64(key string, defaultVal uint64) uint64 {
	if val := os.Getenv(key); val != "" {
		if u, err := strconv.ParseUint(val, 10, 64); err == nil {
			return u
		}
	}
	return defaultVal
}
