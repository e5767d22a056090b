package schema

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// draft accumulates one <element>'s attribute text before it is
// normalized into an ElementDef at </element>. A generic SAX-style
// tokenizer contract may deliver an attribute's value in chunks across
// several events for the same attribute; draft fields are therefore
// built with strings.Builder and appended to, not assigned, even
// though encoding/xml in practice hands back whole attribute values
// per token.
type draft struct {
	name, path, id, typ, rng strings.Builder
}

// Ingest drives an XML schema document through encoding/xml's
// tokenizer and returns a Table seeded from base with every <element>
// found merged in by Table.Insert's replace-by-ID semantics. base is
// not mutated; a copy is returned.
//
// If ingest encounters more than one malformed <element>, every error
// is collected and returned together via multierr, rather than
// stopping at the first — a single schema run should report everything
// wrong with it at once.
func Ingest(r io.Reader, base *Table) (*Table, error) {
	table := cloneTable(base)

	dec := xml.NewDecoder(r)

	var cur *draft
	var errs error
	elementCount := 0

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("schema: malformed XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "element" {
				cur = &draft{}
				for _, attr := range t.Attr {
					target := attrTarget(cur, attr.Name.Local)
					if target == nil {
						continue
					}
					target.WriteString(attr.Value)
				}
			}
		case xml.EndElement:
			if t.Name.Local == "element" && cur != nil {
				def, err := normalize(*cur)
				if err != nil {
					errs = multierr.Append(errs, fmt.Errorf("schema: element #%d: %w", elementCount, err))
				} else {
					if err := table.Insert(def); err != nil {
						errs = multierr.Append(errs, fmt.Errorf("schema: element %q: %w", def.Name(), err))
					} else {
						logrus.WithFields(logrus.Fields{
							"name": def.Name(),
							"id":   fmt.Sprintf("0x%X", def.ID()),
							"type": def.Type().String(),
						}).Debug("ingested element definition")
					}
				}
				elementCount++
				cur = nil
			}
		}
	}

	if errs != nil {
		return nil, errs
	}

	logrus.WithFields(logrus.Fields{
		"elements": table.Len(),
	}).Info("schema ingest complete")

	return table, nil
}

// attrTarget maps an <element> attribute name to the draft field it
// should accumulate into.
func attrTarget(d *draft, name string) *strings.Builder {
	switch name {
	case "name":
		return &d.name
	case "path":
		return &d.path
	case "id":
		return &d.id
	case "type":
		return &d.typ
	case "range":
		return &d.rng
	default:
		return nil
	}
}

// normalize converts a fully-accumulated draft into an ElementDef,
// parsing id as hexadecimal, type against the fixed spelling table,
// path via ParsePath, and range via ParseRange.
func normalize(d draft) (ElementDef, error) {
	name := d.name.String()
	if name == "" {
		return ElementDef{}, fmt.Errorf("missing name attribute")
	}

	idStr := strings.TrimPrefix(strings.TrimPrefix(d.id.String(), "0x"), "0X")
	id, err := strconv.ParseUint(idStr, 16, 64)
	if err != nil {
		return ElementDef{}, fmt.Errorf("element %q: invalid id %q: %w", name, d.id.String(), err)
	}

	typ, ok := ParseType(d.typ.String())
	if !ok {
		return ElementDef{}, fmt.Errorf("element %q: unknown type %q", name, d.typ.String())
	}

	path, err := ParsePath(d.path.String())
	if err != nil {
		return ElementDef{}, fmt.Errorf("element %q: %w", name, err)
	}

	rng := ParseRange(d.rng.String())

	return NewElementDef(name, path, id, typ, rng), nil
}

// cloneTable returns a Table holding the same definitions as base, in
// the same order, as an independent copy.
func cloneTable(base *Table) *Table {
	t := NewTable()
	if base == nil {
		return t
	}
	for _, def := range base.Elements() {
		_ = t.Insert(def)
	}
	return t
}
