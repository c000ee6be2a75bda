package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syncthing-android/nativebuild/pkg/bundle"
	"github.com/syncthing-android/nativebuild/pkg/core"
)

var bundleOutput string

var bundleCmd = &cobra.Command{
	Use:   "bundle",
	Short: "Pack built libraries into a tar.xz archive",
	Args:  cobra.NoArgs,
	RunE:  runBundle,
}

func init() {
	bundleCmd.Flags().StringVarP(&bundleOutput, "output", "o", "jniLibs.tar.xz", "archive to write")
}

func runBundle(cmd *cobra.Command, args []string) error {
	layout := core.NewLayout(config.ProjectDir)
	entries, err := bundle.WriteFile(bundleOutput, layout.JNILibsDir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", e)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d libraries)\n", bundleOutput, len(entries))
	return nil
}
