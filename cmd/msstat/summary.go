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

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ajroetker/go-multiset/multiset"
)

type summaryOptions struct {
	other []uint32
	draws int
	rng   multiset.Rand
}

// Summary holds everything msstat reports about one multiset.
type Summary struct {
	Size      int
	Counts    string
	Total     uint32
	NonZero   int
	Zero      int
	Empty     bool
	Singleton bool
	ArgMax    int
	Max       uint32
	ArgMin    int
	Min       uint32
	Collision float64
	Shannon   float64

	// Set only when a second multiset was given.
	Other        string
	Intersection string
	Union        string
	Ordering     string
	Disjoint     bool

	// Elements picked by successive weighted draws.
	Draws []int
}

func summarize[S multiset.Storage[uint32]](counts []uint32, opts summaryOptions) Summary {
	m := multiset.FromSlice[uint32, S](counts)
	s := Summary{
		Size:      m.Len(),
		Counts:    m.String(),
		Total:     m.Total(),
		NonZero:   m.CountNonZero(),
		Zero:      m.CountZero(),
		Empty:     m.IsEmpty(),
		Singleton: m.IsSingleton(),
		Collision: multiset.CollisionEntropy(&m),
		Shannon:   multiset.ShannonEntropy(&m),
	}
	s.ArgMax, s.Max = m.Argmax()
	s.ArgMin, s.Min = m.Argmin()

	if opts.other != nil {
		o := multiset.FromSlice[uint32, S](opts.other)
		inter := m.Intersection(&o)
		union := m.Union(&o)
		s.Other = o.String()
		s.Intersection = inter.String()
		s.Union = union.String()
		s.Ordering = m.PartialCompare(&o).String()
		s.Disjoint = m.IsDisjoint(&o)
	}

	for range opts.draws {
		pick := m
		pick.ChooseRandom(opts.rng)
		if pick.IsEmpty() {
			break
		}
		s.Draws = append(s.Draws, pick.Imax())
	}
	return s
}

// Write prints the summary as aligned "name value" lines.
func (s Summary) Write(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "counts\t%s\n", s.Counts)
	fmt.Fprintf(tw, "size\t%d\n", s.Size)
	fmt.Fprintf(tw, "total\t%d\n", s.Total)
	fmt.Fprintf(tw, "non-zero\t%d\n", s.NonZero)
	fmt.Fprintf(tw, "zero\t%d\n", s.Zero)
	fmt.Fprintf(tw, "empty\t%t\n", s.Empty)
	fmt.Fprintf(tw, "singleton\t%t\n", s.Singleton)
	if s.Size > 0 {
		fmt.Fprintf(tw, "argmax\t%d (%d)\n", s.ArgMax, s.Max)
		fmt.Fprintf(tw, "argmin\t%d (%d)\n", s.ArgMin, s.Min)
	}
	fmt.Fprintf(tw, "collision entropy\t%.6f bits\n", s.Collision)
	fmt.Fprintf(tw, "shannon entropy\t%.6f nats\n", s.Shannon)
	if s.Other != "" {
		fmt.Fprintf(tw, "other\t%s\n", s.Other)
		fmt.Fprintf(tw, "intersection\t%s\n", s.Intersection)
		fmt.Fprintf(tw, "union\t%s\n", s.Union)
		fmt.Fprintf(tw, "ordering\t%s\n", s.Ordering)
		fmt.Fprintf(tw, "disjoint\t%t\n", s.Disjoint)
	}
	if len(s.Draws) > 0 {
		fmt.Fprintf(tw, "draws\t%v\n", s.Draws)
	}
	return tw.Flush()
}
