package commands

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/prismagen/tsgen/cli/internal/config"
	"github.com/prismagen/tsgen/cli/internal/ui"
	"github.com/prismagen/tsgen/cli/internal/watch"
	"github.com/prismagen/tsgen/generator"
	"github.com/prismagen/tsgen/generator/schema"
	"github.com/prismagen/tsgen/internal/debug"
	"github.com/prismagen/tsgen/psl"
	"github.com/prismagen/tsgen/psl/ast"
)

var generateCmd = &cobra.Command{
	Use:   "generate [schema-path]",
	Short: "Generate Kysely type definitions",
	Long: `Generate TypeScript type definitions from your Prisma schema.

This command will:
- Parse your schema.prisma file
- Resolve implicit many-to-many join tables
- Write enums.ts, types.ts and index.ts to the output directory`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

var (
	generateSchemaPath string
	generateOutputDir  string
	generateWatch      bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateSchemaPath, "schema", "s", "", "Path to schema file")
	generateCmd.Flags().StringVarP(&generateOutputDir, "output", "o", "", "Output directory for generated files")
	generateCmd.Flags().BoolVarP(&generateWatch, "watch", "w", false, "Watch schema file for changes")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	path := schemaPath(generateSchemaPath, args, cfg.SchemaPath)

	if generateWatch {
		return runGenerateWatch(path, cfg)
	}

	ui.PrintHeader("tsgen", "Generate Kysely Types")

	// Spinner frames interleave with debug logging on stderr, so drop the
	// spinner when debug output is on.
	var spinner *pterm.SpinnerPrinter
	if !debug.Enabled() {
		spinner, _ = ui.PrintSpinner("Generating type definitions...")
	}

	outputDir, err := generateOnce(path, cfg)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	absPath, _ := filepath.Abs(outputDir)
	ui.PrintSuccess("Generated Kysely types at %s", absPath)
	fmt.Println()

	ui.PrintSection("Generated Files")
	ui.PrintList([]string{
		generator.EnumsFile + "  - Enum const objects",
		generator.TypesFile + "  - Table interfaces and the DB aggregate",
		generator.IndexFile + "  - Re-export manifest",
	})

	return nil
}

// generateOnce runs the whole pipeline for one schema file and returns the
// output directory it wrote to.
func generateOnce(path string, cfg *config.Config) (string, error) {
	if _, err := config.AppFs.Stat(path); os.IsNotExist(err) {
		return "", fmt.Errorf("schema file not found: %s", path)
	}

	content, err := afero.ReadFile(config.AppFs, path)
	if err != nil {
		return "", fmt.Errorf("failed to read schema: %w", err)
	}

	schemaAST, err := psl.ParseSchemaString(path, string(content))
	if err != nil {
		ui.PrintDiagnostic("schema parsing failed", err)
		return "", fmt.Errorf("cannot generate from invalid schema")
	}

	doc := schema.FromAST(schemaAST)
	outputDir := resolveOutputDir(generateOutputDir, schemaAST, cfg, filepath.Dir(path))

	gen := generator.NewWithFs(doc, config.AppFs)
	if err := gen.Generate(outputDir); err != nil {
		return "", err
	}
	return outputDir, nil
}

// resolveOutputDir picks the output directory from, in priority order: the
// --output flag, the schema's generator block output property (relative
// paths resolve against the schema file's directory), the config file.
// Returns "" when none is configured; the generator rejects that before
// doing any work.
func resolveOutputDir(flagValue string, schemaAST *ast.SchemaAst, cfg *config.Config, schemaDir string) string {
	if flagValue != "" {
		return flagValue
	}
	for _, gen := range schemaAST.Generators() {
		prop := gen.GetProperty("output")
		if prop == nil {
			continue
		}
		if out := prop.StringValue(); out != "" {
			if !filepath.IsAbs(out) {
				out = filepath.Join(schemaDir, out)
			}
			return out
		}
	}
	return cfg.OutputPath
}

func runGenerateWatch(path string, cfg *config.Config) error {
	ui.PrintHeader("tsgen", "Watch Mode")

	regenerate := func() error {
		ui.PrintInfo("Schema changed, regenerating...")
		outputDir, err := generateOnce(path, cfg)
		if err != nil {
			return err
		}
		absPath, _ := filepath.Abs(outputDir)
		ui.PrintSuccess("Generated Kysely types at %s", absPath)
		return nil
	}

	if _, err := generateOnce(path, cfg); err != nil {
		return err
	}
	ui.PrintSuccess("Initial generation done")

	watcher, err := watch.New(path, regenerate)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Stop()

	watcher.Start()
	ui.PrintSuccess("Watching %s for changes... (Press Ctrl+C to stop)", path)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	ui.PrintInfo("\nStopping watch mode...")
	return nil
}
