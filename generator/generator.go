// Package generator turns a resolved Prisma schema document into Kysely
// TypeScript definition files.
package generator

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/prismagen/tsgen/generator/codegen"
	"github.com/prismagen/tsgen/generator/schema"
	"github.com/prismagen/tsgen/internal/debug"
)

// UnconfiguredOutputError reports that no output destination was supplied
// by the invoking host. It is raised before any generation work begins.
type UnconfiguredOutputError struct{}

func (e *UnconfiguredOutputError) Error() string {
	return "no output directory configured: pass --output, set the generator block's output property, or set output_path in the config file"
}

// Generator runs the transformation pipeline over one schema document.
type Generator struct {
	doc *schema.Document
	fs  afero.Fs
}

// New creates a generator writing to the OS filesystem.
func New(doc *schema.Document) *Generator {
	return NewWithFs(doc, afero.NewOsFs())
}

// NewWithFs creates a generator writing to the given filesystem.
func NewWithFs(doc *schema.Document, fs afero.Fs) *Generator {
	return &Generator{doc: doc, fs: fs}
}

// Generate produces the three artifacts and writes them under outputDir.
// Errors from the pipeline propagate unwrapped apart from context: they are
// all terminal configuration errors, and partial output on disk is not
// meaningful.
func (g *Generator) Generate(outputDir string) error {
	if strings.TrimSpace(outputDir) == "" {
		return &UnconfiguredOutputError{}
	}

	debug.Debug("Starting generation", "outputDir", outputDir, "models", len(g.doc.Models), "enums", len(g.doc.Enums))

	if err := validateTableNames(g.doc); err != nil {
		return err
	}

	artifacts, err := codegen.Emit(g.doc)
	if err != nil {
		debug.Error("Generation failed", "error", err)
		return err
	}

	if err := writeArtifacts(g.fs, outputDir, artifacts); err != nil {
		return fmt.Errorf("failed to write artifacts: %w", err)
	}

	debug.Info("Generation completed", "outputDir", outputDir)
	return nil
}

// Check runs the full transformation pipeline without writing anything,
// surfacing the same errors Generate would.
func Check(doc *schema.Document) error {
	if err := validateTableNames(doc); err != nil {
		return err
	}
	_, err := codegen.Emit(doc)
	return err
}

// validateTableNames rejects documents where two models map to the same
// physical table.
func validateTableNames(doc *schema.Document) error {
	tables := make(map[string]string)
	for i := range doc.Models {
		m := &doc.Models[i]
		if existing, ok := tables[m.TableName()]; ok {
			return fmt.Errorf("duplicate table name %q: models %q and %q both map to the same table", m.TableName(), existing, m.Name)
		}
		tables[m.TableName()] = m.Name
	}
	return nil
}
