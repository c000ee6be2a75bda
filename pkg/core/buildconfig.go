package core

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
)

// buildEnv is overlaid on the caller's environment for every go invocation
var buildEnv = []string{
	"GO111MODULE=on",
	"CGO_ENABLED=1",
}

// BuildConfig is everything one build run needs, resolved once up front
type BuildConfig struct {
	Platform string   // NDK prebuilt directory label, e.g. linux-x86_64
	NDKHome  string   // NDK installation root
	MinSDK   int      // minSdk from the Gradle build file
	Targets  []Target // Targets in build order
	Layout   *Layout  // Project paths
	Env      []string // Base environment, KEY=VALUE
	GoBinary string   // go executable name or path
}

// Validate reports every missing field at once
func (c *BuildConfig) Validate() error {
	var err error
	if c.Platform == "" {
		err = multierr.Append(err, errors.New("platform is required"))
	}
	if c.NDKHome == "" {
		err = multierr.Append(err, errors.New("NDK home is required"))
	}
	if c.MinSDK <= 0 {
		err = multierr.Append(err, fmt.Errorf("min SDK must be positive, got %d", c.MinSDK))
	}
	if len(c.Targets) == 0 {
		err = multierr.Append(err, errors.New("at least one target is required"))
	}
	if c.Layout == nil {
		err = multierr.Append(err, errors.New("project layout is required"))
	}
	if c.GoBinary == "" {
		err = multierr.Append(err, errors.New("go binary is required"))
	}
	return err
}

// CompilerPath joins the NDK toolchain bin directory with the target's
// clang wrapper for MinSDK.
func (c *BuildConfig) CompilerPath(t Target) string {
	return filepath.Join(c.NDKHome, "toolchains", "llvm", "prebuilt", c.Platform, "bin", t.CompilerName(c.MinSDK))
}

// BuildEnv returns Env with module mode and cgo switched on.
func (c *BuildConfig) BuildEnv() []string {
	return OverlayEnv(c.Env, buildEnv...)
}

// OverlayEnv returns base with each KEY=VALUE in overlay set, replacing any
// earlier value for the same key.
func OverlayEnv(base []string, overlay ...string) []string {
	keys := make(map[string]bool, len(overlay))
	for _, kv := range overlay {
		keys[envKey(kv)] = true
	}

	env := make([]string, 0, len(base)+len(overlay))
	for _, kv := range base {
		if !keys[envKey(kv)] {
			env = append(env, kv)
		}
	}
	return append(env, overlay...)
}

func envKey(kv string) string {
	if i := strings.IndexByte(kv, '='); i >= 0 {
		return kv[:i]
	}
	return kv
}
