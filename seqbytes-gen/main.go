// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the seqbytes library.

// seqbytes-gen generates the typed Reader method surface (reader_gen.go).
// Go methods cannot take type parameters, so each type admitted by the
// seqbytes.Number constraint gets concrete Shift/Next wrappers. The type
// list is read from the constraint itself rather than duplicated here.
package main

import (
	"bytes"
	"flag"
	"go/types"
	"log"
	"os"
	"strings"
	"text/template"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/imports"
)

const seqbytesPackage = "github.com/pk910/seqbytes"

const fileHeader = `// Code generated by seqbytes-gen. DO NOT EDIT.

package seqbytes

import (
	"encoding/binary"
)
`

const methodTemplate = `
// Shift{{.Name}} reads the next {{.Type}} in canonical (little-endian) order,
// advancing the cursor.
func (r *Reader) Shift{{.Name}}() ({{.Type}}, error) {
	return Shift[{{.Type}}](r.src)
}

// Shift{{.Name}}Order reads the next {{.Type}} in the given byte order,
// advancing the cursor.
func (r *Reader) Shift{{.Name}}Order(order binary.ByteOrder) ({{.Type}}, error) {
	return ShiftOrder[{{.Type}}](r.src, order)
}

// Next{{.Name}} reads the next {{.Type}} in canonical (little-endian) order
// without moving the cursor.
func (r *Reader) Next{{.Name}}() ({{.Type}}, error) {
	return Next[{{.Type}}](r.src)
}

// Next{{.Name}}Order reads the next {{.Type}} in the given byte order
// without moving the cursor.
func (r *Reader) Next{{.Name}}Order(order binary.ByteOrder) ({{.Type}}, error) {
	return NextOrder[{{.Type}}](r.src, order)
}
`

type methodType struct {
	Type string
	Name string
}

func main() {
	var (
		outputFile = flag.String("output", "reader_gen.go", "Output file path for generated code")
		verbose    = flag.Bool("v", false, "Verbose output")
	)
	flag.Parse()

	numberTypes, err := loadNumberTypes()
	if err != nil {
		log.Fatalf("Failed to resolve Number constraint: %v", err)
	}
	if *verbose {
		log.Printf("Number constraint admits %d types", len(numberTypes))
	}

	var buf bytes.Buffer
	buf.WriteString(fileHeader)

	tmpl := template.Must(template.New("method").Parse(methodTemplate))
	for _, typeName := range numberTypes {
		m := methodType{
			Type: typeName,
			Name: strings.ToUpper(typeName[:1]) + typeName[1:],
		}
		if err := tmpl.Execute(&buf, m); err != nil {
			log.Fatalf("Failed to render methods for %s: %v", typeName, err)
		}
	}

	formatted, err := imports.Process(*outputFile, buf.Bytes(), nil)
	if err != nil {
		log.Fatalf("Failed to format generated code: %v", err)
	}

	if err := os.WriteFile(*outputFile, formatted, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *outputFile, err)
	}
	if *verbose {
		log.Printf("Wrote %s", *outputFile)
	}
}

// loadNumberTypes returns the type names in the union of the seqbytes.Number
// constraint, in declaration order.
func loadNumberTypes() ([]string, error) {
	cfg := &packages.Config{
		Mode: packages.NeedTypes | packages.NeedTypesInfo | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg, seqbytesPackage)
	if err != nil {
		return nil, err
	}
	if len(pkgs) == 0 {
		log.Fatalf("No packages found for %s", seqbytesPackage)
	}

	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		for _, err := range pkg.Errors {
			log.Printf("Package error: %v", err)
		}
		log.Fatalf("Package %s has errors", seqbytesPackage)
	}

	obj := pkg.Types.Scope().Lookup("Number")
	if obj == nil {
		log.Fatalf("Type Number not found in package %s", seqbytesPackage)
	}

	iface, ok := obj.Type().Underlying().(*types.Interface)
	if !ok || iface.NumEmbeddeds() != 1 {
		log.Fatalf("Number is not a single-union constraint")
	}

	union, ok := iface.EmbeddedType(0).(*types.Union)
	if !ok {
		log.Fatalf("Number does not embed a type union")
	}

	names := make([]string, 0, union.Len())
	for i := 0; i < union.Len(); i++ {
		term := union.Term(i)
		if term.Tilde() {
			log.Fatalf("Number contains approximation term ~%s; typed methods require exact types", term.Type())
		}
		names = append(names, term.Type().String())
	}

	return names, nil
}
