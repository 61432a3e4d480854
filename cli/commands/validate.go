package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/prismagen/tsgen/cli/internal/config"
	"github.com/prismagen/tsgen/cli/internal/ui"
	"github.com/prismagen/tsgen/generator"
	"github.com/prismagen/tsgen/generator/schema"
	"github.com/prismagen/tsgen/psl"
)

var validateCmd = &cobra.Command{
	Use:   "validate [schema-path]",
	Short: "Validate a Prisma schema",
	Long: `Parse a Prisma schema and run the generation pipeline without
writing anything, reporting configuration errors such as missing
identifiers or undefined enum references.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

var validateSchemaPath string

func init() {
	validateCmd.Flags().StringVarP(&validateSchemaPath, "schema", "s", "", "Path to schema file")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	path := schemaPath(validateSchemaPath, args, cfg.SchemaPath)

	content, err := afero.ReadFile(config.AppFs, path)
	if err != nil {
		return fmt.Errorf("failed to read schema: %w", err)
	}

	schemaAST, err := psl.ParseSchemaString(path, string(content))
	if err != nil {
		ui.PrintDiagnostic("schema parsing failed", err)
		return fmt.Errorf("schema is invalid")
	}

	doc := schema.FromAST(schemaAST)
	if err := generator.Check(doc); err != nil {
		ui.PrintDiagnostic(path, err)
		return fmt.Errorf("schema is invalid")
	}

	ui.PrintSuccess("Schema is valid")
	ui.PrintTable(
		[]string{"Kind", "Count"},
		[][]string{
			{"Models", strconv.Itoa(len(doc.Models))},
			{"Enums", strconv.Itoa(len(doc.Enums))},
		},
	)
	return nil
}
