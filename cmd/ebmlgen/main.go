// Command ebmlgen reads an EBML schema XML document and generates a Go
// source file wiring its element definitions into
// github.com/Pecora0/ebmltool/runtime/ebmldecode.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Pecora0/ebmltool/internal/codegen"
	"github.com/Pecora0/ebmltool/internal/schema"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ebmlgen",
		Short: "Generate a Go lookup table from an EBML schema",
	}
	root.AddCommand(newGenerateCmd())
	return root
}

func newGenerateCmd() *cobra.Command {
	var (
		schemaPath  string
		outPath     string
		packageName string
		dumpJSON    bool
		generatedAt string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Ingest a schema and emit its lookup table",
		RunE: func(cmd *cobra.Command, args []string) error {
			if term.IsTerminal(int(os.Stderr.Fd())) {
				logrus.SetFormatter(&logrus.TextFormatter{ForceColors: true})
			} else {
				logrus.SetFormatter(&logrus.JSONFormatter{})
			}

			f, err := os.Open(schemaPath)
			if err != nil {
				return fmt.Errorf("opening schema: %w", err)
			}
			defer f.Close()

			table, err := schema.Ingest(f, schema.Builtin())
			if err != nil {
				return fmt.Errorf("ingesting schema: %w", err)
			}

			src, err := codegen.Emit(table, codegen.Options{
				Package:     packageName,
				SchemaPath:  schemaPath,
				GeneratedAt: generatedAt,
			})
			if err != nil {
				return fmt.Errorf("generating source: %w", err)
			}

			if err := os.WriteFile(outPath, src, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}
			logrus.WithFields(logrus.Fields{"out": outPath, "elements": table.Len()}).Info("wrote lookup table")

			if dumpJSON {
				jsonPath := outPath + ".json"
				doc, err := codegen.DumpJSON(table)
				if err != nil {
					return fmt.Errorf("dumping schema JSON: %w", err)
				}
				if err := os.WriteFile(jsonPath, doc, 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", jsonPath, err)
				}
				logrus.WithField("out", jsonPath).Info("wrote schema JSON dump")
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "schema.xml", "path to the EBML schema XML document")
	cmd.Flags().StringVar(&outPath, "out", "ebmlgen_lookup.go", "path to write the generated Go source")
	cmd.Flags().StringVar(&packageName, "package", "ebmlgen", "package clause of the generated file")
	cmd.Flags().BoolVar(&dumpJSON, "dump-json", false, "also write the normalized schema as JSON")
	cmd.Flags().StringVar(&generatedAt, "generated-at", "unspecified", "timestamp recorded in the generated file's doc comment")

	return cmd
}
