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

// Command multisetgen generates the size tables of the multiset package.
//
// Usage:
//
//	multisetgen -kind storage -pkg multiset -output storage_gen.go
//	multisetgen -kind dispatch -pkg main -output sizes_gen.go
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/multisetgen -kind storage -output storage_gen.go
//
// The storage kind emits the Storage constraint, the list of supported
// domain sizes and the per-width aliases (MSu8, MSu16, MSu32, MSu64).
// The dispatch kind emits a function that maps a runtime slice length onto
// the matching compile-time array type, for tools that read counts from
// their input.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	kind       = flag.String("kind", "storage", "What to generate: storage or dispatch")
	outputFile = flag.String("output", "storage_gen.go", "Output file")
	packageOut = flag.String("pkg", "multiset", "Output package name")
)

func main() {
	flag.Parse()

	gen := &Generator{
		Kind:    Kind(*kind),
		Package: *packageOut,
		Sizes:   SupportedSizes(),
	}

	if err := gen.WriteFile(*outputFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated %s (%s, %d sizes)\n", *outputFile, gen.Kind, len(gen.Sizes))
}
