// Package codegen turns an ingested schema.Table into a small Go
// source file: two lookup tables (ID to name, ID to type) and a
// constructor wiring them into runtime/ebmldecode's Lookup interface.
// Every byte of the decoder's algorithmic logic lives in
// runtime/ebmldecode instead; codegen only ever emits data.
package codegen

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"text/template"

	"github.com/segmentio/encoding/json"

	"github.com/Pecora0/ebmltool/internal/schema"
)

//go:embed templates/*.tmpl
var templates embed.FS

var typeConsts = map[string]string{
	"master":   "TypeMaster",
	"uinteger": "TypeUInteger",
	"integer":  "TypeInteger",
	"utf-8":    "TypeUTF8",
	"string":   "TypeString",
	"date":     "TypeDate",
	"binary":   "TypeBinary",
	"float":    "TypeFloat",
}

var tmpl = template.Must(template.New("lookup").Funcs(template.FuncMap{
	"hex":       func(id uint64) string { return fmt.Sprintf("0x%X", id) },
	"typeConst": func(spelling string) string { return typeConsts[spelling] },
}).ParseFS(templates, "templates/*.tmpl"))

// Options configures one Emit call.
type Options struct {
	// Package is the package clause of the generated file.
	Package string
	// SchemaPath is recorded in the generated file's doc comment,
	// naming the schema this lookup was built from.
	SchemaPath string
	// GeneratedAt is recorded verbatim in the doc comment. Emit never
	// calls time.Now() itself, so a given Table and Options always
	// produce byte-identical output.
	GeneratedAt string
}

// elementView is the per-element data the template renders. The
// template cannot read schema.ElementDef's fields, which are all
// unexported; a plain struct of exported fields keeps it from having
// to call ElementDef's accessor methods instead.
type elementView struct {
	Name string
	ID   uint64
	Type string
}

// Emit renders table as a complete, gofmt-formatted Go source file per
// opts.
func Emit(table *schema.Table, opts Options) ([]byte, error) {
	if opts.Package == "" {
		opts.Package = "ebmlgen"
	}

	elements := table.Elements()
	views := make([]elementView, len(elements))
	for i, def := range elements {
		views[i] = elementView{Name: def.Name(), ID: def.ID(), Type: def.Type().String()}
	}

	data := struct {
		Package     string
		SchemaPath  string
		GeneratedAt string
		Elements    []elementView
	}{
		Package:     opts.Package,
		SchemaPath:  opts.SchemaPath,
		GeneratedAt: opts.GeneratedAt,
		Elements:    views,
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "lookup.go.tmpl", data); err != nil {
		return nil, fmt.Errorf("codegen: rendering template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("codegen: generated source does not gofmt: %w", err)
	}
	return formatted, nil
}

// jsonElement is the --dump-json representation of one element
// definition: the normalized table laid out for diffing in CI rather
// than for consumption by this module itself.
type jsonElement struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	Type string `json:"type"`
}

// DumpJSON renders table's normalized element definitions as an
// indented JSON array in the table's insertion order, for CI diffing of a schema's effective, post-redefinition
// shape.
func DumpJSON(table *schema.Table) ([]byte, error) {
	elements := table.Elements()
	out := make([]jsonElement, len(elements))
	for i, def := range elements {
		out[i] = jsonElement{
			Name: def.Name(),
			ID:   fmt.Sprintf("0x%X", def.ID()),
			Type: def.Type().String(),
		}
	}
	return json.MarshalIndent(out, "", "  ")
}
