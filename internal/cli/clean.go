package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syncthing-android/nativebuild"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove built libraries and the Go package cache",
	Long: `Delete app/src/main/jniLibs and syncthing/gobuild. This is kept apart from
"gradle clean" so a normal app clean does not throw away native builds.`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

func runClean(cmd *cobra.Command, args []string) error {
	removed, err := nativebuild.Clean(config.ProjectDir)
	if err != nil {
		return err
	}
	if len(removed) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing to clean")
		return nil
	}
	for _, dir := range removed {
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", dir)
	}
	return nil
}
