package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"snapstamp/internal"
)

var useExifTool bool

var renameCmd = &cobra.Command{
	Use:   "rename [folder]",
	Short: "Rename media files in folder by capture date",
	Long: `Renames every supported image and video in a folder to a canonical
IMG_/VID_ timestamp name, preferring embedded capture metadata over file
times. Files whose metadata cannot be read are still renamed from file times
and their names are appended to per-category record files in the working
directory.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		folder := args[0]

		info, err := os.Stat(folder)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("folder does not exist or is not a directory: %s", folder)
		}

		conf, err := internal.LoadConfig()
		if err != nil {
			return err
		}
		if useExifTool {
			conf.UseExifTool = true
		}

		renamer := internal.NewRenamer(conf)
		defer renamer.Close()

		if err := renamer.ProcessDir(folder); err != nil {
			return err
		}

		stats := renamer.Stats
		fmt.Printf("Processed %d media files: %d renamed, %d already named",
			stats.Scanned, stats.Renamed, stats.Skipped)
		if n := stats.FailureCount(); n > 0 {
			fmt.Printf(", %d without usable metadata", n)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	renameCmd.Flags().BoolVar(&useExifTool, "exiftool", false, "Also try the exiftool binary as a metadata reader")
	rootCmd.AddCommand(renameCmd)
}
