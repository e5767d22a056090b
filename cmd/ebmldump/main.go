// Command ebmldump reads an EBML document and prints its element
// structure. It is the demo tool shipped alongside the decoder runtime,
// driving Decoder.Print directly off the streaming event API from a
// command line instead of only a library call.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Pecora0/ebmltool/internal/schema"
	"github.com/Pecora0/ebmltool/runtime/ebmldecode"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var schemaPath string

	cmd := &cobra.Command{
		Use:   "ebmldump <file>",
		Short: "Print the element structure of an EBML document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lookup, err := loadLookup(schemaPath)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening document: %w", err)
			}
			defer f.Close()

			color := term.IsTerminal(int(os.Stdout.Fd()))
			return dumpDocument(os.Stdout, f, lookup, color)
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "", "path to an EBML schema XML document (defaults to the built-in EBML header schema)")
	return cmd
}

// loadLookup returns the builtin EBML header schema, optionally merged
// with the user schema named by schemaPath.
func loadLookup(schemaPath string) (ebmldecode.Lookup, error) {
	if schemaPath == "" {
		return schema.Builtin(), nil
	}
	f, err := os.Open(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("opening schema: %w", err)
	}
	defer f.Close()

	table, err := schema.Ingest(f, schema.Builtin())
	if err != nil {
		return nil, fmt.Errorf("ingesting schema: %w", err)
	}
	return table, nil
}

// dumpDocument drives a StreamReader over r and passes every
// elemstart/elemend to Decoder.Print, which prints master elements as
// they open and other elements with their values as they close — the
// same diagnostic a generated
// decoder's caller would reach for when tracing a document by hand.
func dumpDocument(w io.Writer, r io.Reader, lookup ebmldecode.Lookup, color bool) error {
	sr := ebmldecode.NewStreamReader(r, lookup)
	for {
		ev, err := sr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("decoding document: %w", err)
		}
		if err := sr.Decoder().Print(w, ev, color); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
}
