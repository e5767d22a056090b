package ebmldecode

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
)

// Print writes at most one human-readable line describing ev to w,
// indented by the element's depth: a master element's name on its
// EventElemStart, and any other element's name and value on its
// EventElemEnd. Other events (a leaf's EventElemStart, a master's
// EventElemEnd, EventOK) write nothing. It is the diagnostic ebmldump
// drives directly off the streaming event API, not anything Decoder
// itself needs to function. When color is true, element names are
// wrapped in a bold ANSI escape, for a caller that has already checked
// its output is a terminal.
func (d *Decoder) Print(w io.Writer, ev Event, color bool) error {
	indent := strings.Repeat("  ", d.ThisDepth)
	name := d.Name
	if color {
		name = "\x1b[1m" + name + "\x1b[0m"
	}

	switch ev {
	case EventElemStart:
		switch d.Type {
		case TypeMaster:
			_, err := fmt.Fprintf(w, "%s%s\n", indent, name)
			return err
		default:
			return nil
		}
	case EventElemEnd:
		return d.printLeaf(w, indent, name)
	default:
		return nil
	}
}

func (d *Decoder) printLeaf(w io.Writer, indent, name string) error {
	switch d.Type {
	case TypeMaster:
		return nil
	case TypeUInteger:
		_, err := fmt.Fprintf(w, "%s%s = %d\n", indent, name, d.Value)
		return err
	case TypeInteger:
		_, err := fmt.Fprintf(w, "%s%s = %d\n", indent, name, int64(d.Value))
		return err
	case TypeDate:
		_, err := fmt.Fprintf(w, "%s%s = %d (ns since 2001-01-01)\n", indent, name, int64(d.Value))
		return err
	case TypeFloat:
		_, err := fmt.Fprintf(w, "%s%s = %g\n", indent, name, d.FloatValue)
		return err
	case TypeString, TypeUTF8:
		_, err := fmt.Fprintf(w, "%s%s = %q\n", indent, name, d.String())
		return err
	case TypeBinary:
		_, err := fmt.Fprintf(w, "%s%s = <%s binary>\n", indent, name, humanize.Bytes(d.Size))
		return err
	default:
		return nil
	}
}
