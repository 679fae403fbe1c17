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
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

// Kind selects which table the generator emits.
type Kind string

const (
	// KindStorage emits the Storage constraint and the per-width aliases.
	KindStorage Kind = "storage"

	// KindDispatch emits a switch from a runtime length to a storage type.
	KindDispatch Kind = "dispatch"
)

// maxUnionTerms is the go/types limit on terms in a single union.
const maxUnionTerms = 100

// termsPerLine keeps the generated union readable.
const termsPerLine = 8

// Width describes one counter width that gets an alias.
type Width struct {
	Alias string
	Type  string
}

// Widths returns the counter widths in ascending order.
func Widths() []Width {
	return []Width{
		{Alias: "MSu8", Type: "uint8"},
		{Alias: "MSu16", Type: "uint16"},
		{Alias: "MSu32", Type: "uint32"},
		{Alias: "MSu64", Type: "uint64"},
	}
}

// SupportedSizes returns every domain size that gets a storage type:
// each size from 0 to 64, multiples of 8 up to 256, then a few larger
// powers-of-two-ish sizes up to 1024.
func SupportedSizes() []int {
	var sizes []int
	for n := 0; n <= 64; n++ {
		sizes = append(sizes, n)
	}
	for n := 72; n <= 256; n += 8 {
		sizes = append(sizes, n)
	}
	return append(sizes, 320, 384, 448, 512, 768, 1024)
}

// Generator renders one generated file.
type Generator struct {
	Kind    Kind
	Package string
	Sizes   []int
}

// Generate returns the formatted source for the configured kind.
func (g *Generator) Generate() ([]byte, error) {
	if len(g.Sizes) == 0 {
		return nil, fmt.Errorf("no sizes to generate")
	}
	if len(g.Sizes) > maxUnionTerms {
		return nil, fmt.Errorf("%d sizes exceed the %d union terms the type checker accepts", len(g.Sizes), maxUnionTerms)
	}
	for i := 1; i < len(g.Sizes); i++ {
		if g.Sizes[i] <= g.Sizes[i-1] {
			return nil, fmt.Errorf("sizes must be strictly ascending: %d follows %d", g.Sizes[i], g.Sizes[i-1])
		}
	}

	var tmpl *template.Template
	switch g.Kind {
	case KindStorage:
		tmpl = storageTemplate
	case KindDispatch:
		tmpl = dispatchTemplate
	default:
		return nil, fmt.Errorf("unknown kind %q (want %q or %q)", g.Kind, KindStorage, KindDispatch)
	}

	var buf bytes.Buffer
	data := struct {
		Package  string
		Sizes    []int
		Union    []string
		SizesDoc string
		Widths   []Width
	}{
		Package:  g.Package,
		Sizes:    g.Sizes,
		Union:    unionLines(g.Sizes),
		SizesDoc: sizesDoc(g.Sizes),
		Widths:   Widths(),
	}
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing %s template: %w", g.Kind, err)
	}

	formatted, err := imports.Process(string(g.Kind)+"_gen.go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated %s code: %w\n%s", g.Kind, err, buf.String())
	}
	return formatted, nil
}

// WriteFile generates the source and writes it to path.
func (g *Generator) WriteFile(path string) error {
	src, err := g.Generate()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// unionLines splits the union terms into lines. Every line but the last
// ends with "|" so the union continues on the next line.
func unionLines(sizes []int) []string {
	var lines []string
	for start := 0; start < len(sizes); start += termsPerLine {
		end := min(start+termsPerLine, len(sizes))
		terms := make([]string, 0, end-start)
		for _, n := range sizes[start:end] {
			terms = append(terms, fmt.Sprintf("~[%d]T", n))
		}
		line := strings.Join(terms, " | ")
		if end < len(sizes) {
			line += " |"
		}
		lines = append(lines, line)
	}
	return lines
}

// sizesDoc compresses runs of consecutive sizes for the doc comment,
// e.g. "0-64, 72, 80".
func sizesDoc(sizes []int) string {
	var parts []string
	for i := 0; i < len(sizes); {
		j := i
		for j+1 < len(sizes) && sizes[j+1] == sizes[j]+1 {
			j++
		}
		if j > i {
			parts = append(parts, fmt.Sprintf("%d-%d", sizes[i], sizes[j]))
		} else {
			parts = append(parts, fmt.Sprint(sizes[i]))
		}
		i = j + 1
	}
	return strings.Join(parts, ", ")
}

var storageTemplate = template.Must(template.New("storage").Parse(`// Code generated by multisetgen. DO NOT EDIT.

package {{.Package}}

// Storage is the set of array types that can back a Multiset of T. The
// array length is the domain size N, so an unsupported size or a counter
// type that differs from T is rejected at compile time.
//
// Supported sizes: {{.SizesDoc}}.
type Storage[T Counter] interface {
{{- range .Union}}
	{{.}}
{{- end}}
}

var supportedSizes = [...]int{
{{- range .Sizes}}{{.}}, {{end -}}
}
{{range .Widths}}
// {{.Alias}} is a multiset of {{.Type}} counters whose domain size is the
// length of S.
type {{.Alias}}[S Storage[{{.Type}}]] = Multiset[{{.Type}}, S]
{{end}}`))

var dispatchTemplate = template.Must(template.New("dispatch").Parse(`// Code generated by multisetgen. DO NOT EDIT.

package {{.Package}}

// summarizeCounts builds a multiset whose domain size is len(counts) and
// summarizes it. ok is false when no storage type has that size.
func summarizeCounts(counts []uint32, opts summaryOptions) (s Summary, ok bool) {
	switch len(counts) {
{{- range .Sizes}}
	case {{.}}:
		return summarize[[{{.}}]uint32](counts, opts), true
{{- end}}
	}
	return Summary{}, false
}
`))
