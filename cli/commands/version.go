package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prismagen/tsgen/cli/internal/update"
	"github.com/prismagen/tsgen/cli/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE:  runVersion,
}

var (
	versionFull  bool
	versionCheck bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionFull, "full", false, "Print detailed build information")
	versionCmd.Flags().BoolVar(&versionCheck, "check", false, "Check for a newer release")

	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := version.Get()
	if versionFull {
		fmt.Println(info.FullString())
	} else {
		fmt.Println(info.String())
	}

	if versionCheck {
		return update.CheckForUpdates(info.Version)
	}
	return nil
}
