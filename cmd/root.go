package cmd

import (
	"github.com/spf13/cobra"
)

// Version is overwritten at startup from the embedded VERSION file.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "snapstamp",
	Short: "Snapstamp capture-date renamer",
}

func Execute() error {
	return rootCmd.Execute()
}

// ApplyVersion pushes the current Version value onto the root command.
func ApplyVersion() {
	rootCmd.Version = Version
}

func init() {
	ApplyVersion()
}
