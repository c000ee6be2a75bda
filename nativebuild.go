// nativebuild.go
package nativebuild

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/syncthing-android/nativebuild/pkg/build"
	"github.com/syncthing-android/nativebuild/pkg/core"
	"github.com/syncthing-android/nativebuild/pkg/gradle"
	"github.com/syncthing-android/nativebuild/pkg/ndk"
	"github.com/syncthing-android/nativebuild/pkg/platform"
	"github.com/syncthing-android/nativebuild/pkg/registry"
	"github.com/syncthing-android/nativebuild/pkg/relocate"
	"github.com/syncthing-android/nativebuild/pkg/runner"
	"github.com/syncthing-android/nativebuild/pkg/vcs"
)

// Re-export core types for convenience
type (
	Config      = core.Config
	BuildConfig = core.BuildConfig
	Target      = core.Target
	Layout      = core.Layout
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// Options are the inputs NewBuildConfig resolves into a BuildConfig
type Options struct {
	ProjectDir    string    // App project root
	GOOS          string    // Host OS, runtime.GOOS if empty
	Environ       []string  // Environment, os.Environ() if nil
	NDKStrategies []string  // NDK location strategies, env-version if empty
	TargetsFile   string    // TOML target table, built-in table if empty
	Targets       []string  // Subset of target archs to build, all if empty
	GoBinary      string    // go executable, "go" if empty
	Diagnostics   io.Writer // Where NDK diagnostics go, os.Stdout if nil
	Logger        *log.Logger
}

// NewBuildConfig resolves the host platform, minSdk, NDK location and
// target list once, in that order, stopping at the first failure.
func NewBuildConfig(opts Options) (*BuildConfig, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	goos := opts.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	environ := opts.Environ
	if environ == nil {
		environ = os.Environ()
	}
	goBinary := opts.GoBinary
	if goBinary == "" {
		goBinary = "go"
	}

	projectDir, err := filepath.Abs(opts.ProjectDir)
	if err != nil {
		return nil, fmt.Errorf("resolving project directory: %w", err)
	}
	layout := core.NewLayout(projectDir)

	label, err := platform.Resolve(goos)
	if err != nil {
		return nil, err
	}
	logger.Printf("Platform: %s -> %s", goos, label)

	minSDK, err := gradle.ReadMinSDK(layout.GradleFile)
	if err != nil {
		return nil, err
	}
	logger.Printf("minSdk: %d", minSDK)

	var strategies []ndk.Strategy
	if len(opts.NDKStrategies) > 0 {
		strategies, err = ndk.ParseStrategies(opts.NDKStrategies)
		if err != nil {
			return nil, err
		}
	}
	locator := &ndk.Locator{
		Getenv:         ndk.LookupFunc(environ),
		PropertiesFile: layout.LocalProperties,
		Strategies:     strategies,
		Diagnostics:    opts.Diagnostics,
		Logger:         logger,
	}
	ndkHome, err := locator.Locate()
	if err != nil {
		return nil, err
	}

	targets, err := LoadTargets(opts.TargetsFile, opts.Targets)
	if err != nil {
		return nil, err
	}

	cfg := &BuildConfig{
		Platform: label,
		NDKHome:  ndkHome,
		MinSDK:   minSDK,
		Targets:  targets,
		Layout:   layout,
		Env:      environ,
		GoBinary: goBinary,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadTargets returns the target table from path (or the built-in one),
// narrowed to archs.
func LoadTargets(path string, archs []string) ([]Target, error) {
	targets := registry.Default()
	if path != "" {
		var err error
		targets, err = registry.Load(path)
		if err != nil {
			return nil, err
		}
	}
	return registry.Select(targets, archs)
}

// Builder runs a full native build
type Builder struct {
	driver *build.Driver
}

// BuilderOptions selects the collaborators of a Builder
type BuilderOptions struct {
	Fetcher   string // core.FetcherGit or core.FetcherGoGit
	GitBinary string
	SkipFetch bool
	Out       io.Writer
	Logger    *log.Logger
}

// NewBuilder wires the subprocess runner, filesystem relocator and tag
// fetcher around cfg.
func NewBuilder(cfg *BuildConfig, opts BuilderOptions) (*Builder, error) {
	r := runner.New(opts.Logger)

	var fetcher core.TagFetcher
	if !opts.SkipFetch {
		var err error
		fetcher, err = vcs.New(opts.Fetcher, r, opts.GitBinary, cfg.Env, opts.Logger)
		if err != nil {
			return nil, err
		}
	}

	d, err := build.NewDriver(cfg, build.Options{
		Runner:    r,
		Relocator: &relocate.FS{Logger: opts.Logger},
		Fetcher:   fetcher,
		Out:       opts.Out,
		Logger:    opts.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing driver: %w", err)
	}
	return &Builder{driver: d}, nil
}

// Run builds every target
func (b *Builder) Run(ctx context.Context) error {
	return b.driver.Run(ctx)
}

// Clean removes built libraries and the Go build cache of a project. It
// returns the directories that existed.
func Clean(projectDir string) ([]string, error) {
	layout := core.NewLayout(projectDir)
	return relocate.Clean(layout.JNILibsDir, layout.GoBuildDir)
}
