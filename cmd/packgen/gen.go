// Copyright 2025 breadsimd Authors
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
	"errors"
	"fmt"
	"slices"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

const generatedHeader = "// Code generated by packgen. DO NOT EDIT."

// nativeBuildTag is the constraint under which the pack package defines the
// native backends. It must match native.go.
const nativeBuildTag = "(amd64 && goexperiment.simd && !noasm) || (arm64 && !noasm)"

type kind int

const (
	signedKind kind = iota
	unsignedKind
	floatKind
)

// composite is the suffix of the array backend that carries every capability
// of the kind: arrayQuadS, arrayQuadU, arrayQuadF.
func (k kind) composite() string {
	switch k {
	case signedKind:
		return "S"
	case unsignedKind:
		return "U"
	default:
		return "F"
	}
}

// elemType is one lane type the capability table has an entry for.
type elemType struct {
	Name   string // Go type name, "float32"
	Ident  string // field suffix, "Float32"
	Native string // native backend suffix, "F32"
	Kind   kind
}

// Composite returns the backend suffix for the type's kind.
func (e elemType) Composite() string { return e.Kind.composite() }

// allTypes lists the lane types in table order.
var allTypes = []string{
	"int8", "int16", "int32", "int64", "int",
	"uint8", "uint16", "uint32", "uint64", "uint", "uintptr",
	"float32", "float64",
}

// nativeCapable lists the types with a 128-bit native backend.
var nativeCapable = []string{"float32", "int32", "uint32"}

var titler = cases.Title(language.Und, cases.NoLower)

func newElemType(name string) (elemType, error) {
	if !slices.Contains(allTypes, name) {
		return elemType{}, fmt.Errorf("unknown element type %q (valid: %s)", name, strings.Join(allTypes, ","))
	}
	e := elemType{Name: name, Ident: titler.String(name)}
	switch {
	case strings.HasPrefix(name, "float"):
		e.Kind = floatKind
	case strings.HasPrefix(name, "uint"):
		e.Kind = unsignedKind
	default:
		e.Kind = signedKind
	}
	bits := strings.TrimLeftFunc(name, func(r rune) bool { return r >= 'a' && r <= 'z' })
	e.Native = strings.ToUpper(name[:1]) + bits
	return e, nil
}

// group is one capability: an interface family and the kinds that have it.
type group struct {
	Suffix     string // interface suffix after quad/double: "Ops", "IntOps"
	Constraint string
	Label      string // used in capability panics
	Fallback   string // array backend suffix after arrayQuad/arrayDouble
	kinds      []kind
}

var groups = []group{
	{Suffix: "Ops", Constraint: "Lanes", Label: "tuple", kinds: []kind{signedKind, unsignedKind, floatKind}},
	{Suffix: "IntOps", Constraint: "Integers", Label: "integer", Fallback: "Int", kinds: []kind{signedKind, unsignedKind}},
	{Suffix: "NegOps", Constraint: "Signed", Label: "signed", Fallback: "Neg", kinds: []kind{signedKind, floatKind}},
	{Suffix: "MathOps", Constraint: "Floats", Label: "float", Fallback: "Math", kinds: []kind{floatKind}},
}

// lookup is one generated ...OpsFor function.
type lookup struct {
	Width      string // "quad" or "double"
	Array      string // "Quad" or "Double"
	Suffix     string
	Constraint string
	Label      string
	Fallback   string
	Types      []elemType
}

// Config holds everything a generation run needs.
type Config struct {
	Package string
	Types   []string
	Native  []string
}

type tableData struct {
	Header  string
	Package string
	Widths  []string
	Types   []elemType
	Lookups []lookup
}

type nativeData struct {
	Header   string
	BuildTag string
	Package  string
	Types    []elemType
}

func (c Config) elemTypes(names []string) ([]elemType, error) {
	names = lo.Uniq(lo.Map(names, func(s string, _ int) string { return strings.TrimSpace(s) }))
	names = lo.Compact(names)
	types := make([]elemType, 0, len(names))
	for _, name := range names {
		e, err := newElemType(name)
		if err != nil {
			return nil, err
		}
		types = append(types, e)
	}
	// Keep table order regardless of flag order.
	slices.SortFunc(types, func(a, b elemType) int {
		return slices.Index(allTypes, a.Name) - slices.Index(allTypes, b.Name)
	})
	return types, nil
}

// GenerateTable returns the formatted source of the capability table file.
func GenerateTable(c Config) ([]byte, error) {
	types, err := c.elemTypes(c.Types)
	if err != nil {
		return nil, err
	}
	if len(types) == 0 {
		return nil, errors.New("no element types")
	}
	data := tableData{
		Header:  generatedHeader,
		Package: c.Package,
		Widths:  []string{"quad", "double"},
		Types:   types,
	}
	for _, width := range data.Widths {
		for _, g := range groups {
			members := lo.Filter(types, func(e elemType, _ int) bool {
				return slices.Contains(g.kinds, e.Kind)
			})
			data.Lookups = append(data.Lookups, lookup{
				Width:      width,
				Array:      titler.String(width),
				Suffix:     g.Suffix,
				Constraint: g.Constraint,
				Label:      g.Label,
				Fallback:   g.Fallback,
				Types:      members,
			})
		}
	}
	return execute(tableTemplate, "table_gen.go", data)
}

// GenerateNative returns the formatted source of the file that installs the
// native backends. Every native type must also be a table type.
func GenerateNative(c Config) ([]byte, error) {
	tableTypes, err := c.elemTypes(c.Types)
	if err != nil {
		return nil, err
	}
	native, err := c.elemTypes(c.Native)
	if err != nil {
		return nil, err
	}
	for _, e := range native {
		if !slices.Contains(nativeCapable, e.Name) {
			return nil, fmt.Errorf("element type %q has no native backend (valid: %s)", e.Name, strings.Join(nativeCapable, ","))
		}
		if !slices.ContainsFunc(tableTypes, func(t elemType) bool { return t.Name == e.Name }) {
			return nil, fmt.Errorf("native type %q is not in the table types", e.Name)
		}
	}
	data := nativeData{
		Header:   generatedHeader,
		BuildTag: nativeBuildTag,
		Package:  c.Package,
		Types:    native,
	}
	return execute(nativeTemplate, "native_gen.go", data)
}

func execute(tmpl *template.Template, filename string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing %s template: %w", tmpl.Name(), err)
	}
	src, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting %s: %w\n%s", filename, err, buf.Bytes())
	}
	return src, nil
}

var tableTemplate = template.Must(template.New("table").Parse(`{{.Header}}

package {{.Package}}

// capabilityTable holds the backend selected for every element type that can
// have a native backend, at both widths. arrayTable fills it with array
// backends; platform init code replaces entries before any tuple exists.
type capabilityTable struct {
{{- range $w := .Widths}}
{{range $.Types}}	{{$w}}{{.Ident}} {{$w}}Ops[{{.Name}}]
{{end}}
{{- end}}}

func arrayTable() capabilityTable {
	return capabilityTable{
{{- range $w := .Widths}}
{{range $.Types}}		{{$w}}{{.Ident}}: array{{if eq $w "quad"}}Quad{{else}}Double{{end}}{{.Composite}}[{{.Name}}]{},
{{end}}
{{- end}}	}
}
{{range $l := .Lookups}}
func {{$l.Width}}{{$l.Suffix}}For[T {{$l.Constraint}}]() {{$l.Width}}{{$l.Suffix}}[T] {
	var zero T
	switch any(zero).(type) {
{{- range $l.Types}}
	case {{.Name}}:
		return capability[{{$l.Width}}{{$l.Suffix}}[T]](table.{{$l.Width}}{{.Ident}}, "{{$l.Label}}")
{{- end}}
	}
	return array{{$l.Array}}{{$l.Fallback}}[T]{}
}
{{end}}`))

var nativeTemplate = template.Must(template.New("native").Parse(`{{.Header}}

//go:build {{.BuildTag}}

package {{.Package}}

// registerNative installs the native backends in the capability table.
func registerNative() {
{{- range .Types}}
	table.quad{{.Ident}} = nativeQuad{{.Native}}{}
{{- end}}
{{- range .Types}}
	table.double{{.Ident}} = promote{{.Composite}}[{{.Name}}](nativeQuad{{.Native}}{})
{{- end}}
}
`))
