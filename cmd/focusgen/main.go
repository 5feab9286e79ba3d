// Command focusgen generates record types and their field lenses from a
// YAML schema.
//
// Usage:
//
//	focusgen --schema records.yaml --out records_gen.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/smpoulsen/focus/gen"
)

func main() {
	if err := buildCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildCmd() *cobra.Command {
	var (
		schemaPath string
		outPath    string
		pkgName    string
	)

	cmd := &cobra.Command{
		Use:          "focusgen",
		Short:        "Generate record types and field lenses from a YAML schema",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(schemaPath)
			if err != nil {
				return err
			}
			defer f.Close()

			schema, err := gen.LoadSchema(f)
			if err != nil {
				return err
			}
			if pkgName != "" {
				schema.Package = pkgName
			}

			if outPath == "" || outPath == "-" {
				return gen.Generate(cmd.OutOrStdout(), schema)
			}
			out, err := os.Create(outPath)
			if err != nil {
				return err
			}
			if err := gen.Generate(out, schema); err != nil {
				out.Close()
				return err
			}
			return out.Close()
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "", "path to the YAML schema (required)")
	cmd.Flags().StringVar(&outPath, "out", "-", "output file, - for stdout")
	cmd.Flags().StringVar(&pkgName, "package", "", "override the schema's package name")
	cmd.MarkFlagRequired("schema")

	return cmd
}
