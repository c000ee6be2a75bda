// internal/cli/build.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syncthing-android/nativebuild"
)

var (
	buildTargets    []string
	buildSkipFetch  bool
	buildFetcher    string
	buildStrategies []string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build libsyncthing.so for every Android target",
	Long: `Fetch tags in the Syncthing checkout, then run build.go once per target
and move each result into app/src/main/jniLibs/<abi>/libsyncthing.so.

Examples:
  nativebuild build
  nativebuild build --target arm64 --target x86_64
  nativebuild build --skip-fetch --fetcher=go-git
  nativebuild build --ndk-strategy env-override --ndk-strategy env-version`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringSliceVar(&buildTargets, "target", nil, "build only these target archs (arm, arm64, x86, x86_64)")
	buildCmd.Flags().BoolVar(&buildSkipFetch, "skip-fetch", false, "do not fetch tags before building")
	buildCmd.Flags().StringVar(&buildFetcher, "fetcher", "", "tag fetcher to use (git, go-git)")
	buildCmd.Flags().StringSliceVar(&buildStrategies, "ndk-strategy", nil, "NDK location strategies (env-override, local-properties, env-version)")
}

func runBuild(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	targets := config.Targets
	if len(buildTargets) > 0 {
		targets = buildTargets
	}
	strategies := config.NDK.Strategies
	if len(buildStrategies) > 0 {
		strategies = buildStrategies
	}
	fetcher := config.Fetcher
	if buildFetcher != "" {
		fetcher = buildFetcher
	}

	cfg, err := nativebuild.NewBuildConfig(nativebuild.Options{
		ProjectDir:    config.ProjectDir,
		NDKStrategies: strategies,
		TargetsFile:   config.TargetsFile,
		Targets:       targets,
		GoBinary:      config.GoBinary,
		Diagnostics:   cmd.OutOrStdout(),
		Logger:        logger,
	})
	if err != nil {
		return err
	}

	b, err := nativebuild.NewBuilder(cfg, nativebuild.BuilderOptions{
		Fetcher:   fetcher,
		GitBinary: config.GitBinary,
		SkipFetch: buildSkipFetch,
		Out:       cmd.OutOrStdout(),
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("initializing builder: %w", err)
	}

	return b.Run(cmd.Context())
}
