// Package commands implements the tsgen CLI.
package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/prismagen/tsgen/cli/internal/ui"
	"github.com/prismagen/tsgen/cli/internal/version"
	"github.com/prismagen/tsgen/internal/debug"
)

var rootCmd = &cobra.Command{
	Use:   "tsgen",
	Short: "Generate Kysely TypeScript types from a Prisma schema",
	Long: `tsgen reads a Prisma schema and generates TypeScript type
definitions for the Kysely query builder: enum const objects, one
interface per table with column type wrappers and branded identifier
types, and an aggregate DB interface.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var debugEnabled bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugEnabled, "debug", false, "Enable debug logging")
	cobra.OnInitialize(func() {
		debug.Init(debugEnabled || os.Getenv("TSGEN_DEBUG") != "")
	})
}

// Execute is the entry point for the CLI.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		ui.PrintError("%v", err)
		return err
	}
	return nil
}
