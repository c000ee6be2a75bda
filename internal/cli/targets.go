package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syncthing-android/nativebuild"
	"github.com/syncthing-android/nativebuild/pkg/core"
	"github.com/syncthing-android/nativebuild/pkg/gradle"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List the Android targets and their compilers",
	Args:  cobra.NoArgs,
	RunE:  runTargets,
}

func runTargets(cmd *cobra.Command, args []string) error {
	targets, err := nativebuild.LoadTargets(config.TargetsFile, config.Targets)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	layout := core.NewLayout(config.ProjectDir)
	minSDK, err := gradle.ReadMinSDK(layout.GradleFile)
	if err != nil {
		if config.Debug {
			fmt.Fprintf(out, "minSdk unavailable: %v\n", err)
		}
		minSDK = 0
	} else {
		fmt.Fprintf(out, "minSdk: %d\n\n", minSDK)
	}

	fmt.Fprintf(out, "%-8s %-8s %-12s %s\n", "ARCH", "GOARCH", "JNI DIR", "COMPILER")
	for _, t := range targets {
		cc := t.CC
		if minSDK > 0 {
			cc = t.CompilerName(minSDK)
		}
		fmt.Fprintf(out, "%-8s %-8s %-12s %s\n", t.Arch, t.GoArch, t.JNIDir, cc)
	}
	return nil
}
