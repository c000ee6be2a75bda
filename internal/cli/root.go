// internal/cli/root.go
package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/syncthing-android/nativebuild/pkg/core"
)

var (
	cfgFile    string
	projectDir string
	debug      bool
	config     *core.Config
	configErr  error
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "nativebuild",
	Short: "Cross-compile Syncthing for the Android app",
	Long: `nativebuild - Syncthing native library builder

Locates the Android NDK, reads minSdk from app/build.gradle.kts and runs
Syncthing's build.go for every Android ABI, placing libsyncthing.so under
app/src/main/jniLibs.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext executes the root command with ctx available to subcommands
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentPreRunE = checkConfig

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is <project>/nativebuild.yaml)")
	rootCmd.PersistentFlags().StringVar(&projectDir, "project", "", "app project root (default is the current directory)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(targetsCmd)
	rootCmd.AddCommand(bundleCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	config, configErr = core.LoadConfig(cfgFile, projectDir)
	if configErr != nil {
		config = core.DefaultConfig()
	}

	// Override config with flags
	if projectDir != "" {
		config.ProjectDir = projectDir
	}
	if debug {
		config.Debug = true
	}
}

// checkConfig fails commands that depend on a config file that exists but
// could not be loaded. config init and version still run so a broken file
// can be replaced.
func checkConfig(cmd *cobra.Command, args []string) error {
	if configErr == nil || cmd == configInitCmd || cmd == versionCmd {
		return nil
	}
	return fmt.Errorf("loading config: %w", configErr)
}

// newLogger returns the debug logger, discarding output unless --debug
func newLogger() *log.Logger {
	if config.Debug {
		return log.New(os.Stderr, "[DEBUG] ", log.LstdFlags)
	}
	return log.New(io.Discard, "", 0)
}
