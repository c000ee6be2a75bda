// Package ndk locates an Android NDK installation.
package ndk

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/syncthing-android/nativebuild/pkg/core"
)

// Strategy names one way of finding the NDK
type Strategy string

const (
	// EnvOverride uses ANDROID_NDK_HOME as is
	EnvOverride Strategy = "env-override"
	// LocalProperties reads ndk.dir from the project's local.properties
	LocalProperties Strategy = "local-properties"
	// EnvVersion joins ANDROID_HOME, "ndk" and NDK_VERSION
	EnvVersion Strategy = "env-version"
)

// Environment variables consulted by the locator
const (
	EnvAndroidHome    = "ANDROID_HOME"
	EnvAndroidNDKHome = "ANDROID_NDK_HOME"
	EnvNDKVersion     = "NDK_VERSION"
)

// order is the fixed precedence; enabled strategies are tried in this order
var order = []Strategy{EnvOverride, LocalProperties, EnvVersion}

// DefaultStrategies is what runs when nothing else is configured
func DefaultStrategies() []Strategy {
	return []Strategy{EnvVersion}
}

// ParseStrategies converts configured names, rejecting unknown ones
func ParseStrategies(names []string) ([]Strategy, error) {
	out := make([]Strategy, 0, len(names))
	for _, name := range names {
		s := Strategy(strings.TrimSpace(name))
		if !known(s) {
			return nil, fmt.Errorf("unknown NDK strategy %q (want one of %s, %s, %s)", name, EnvOverride, LocalProperties, EnvVersion)
		}
		out = append(out, s)
	}
	return out, nil
}

func known(s Strategy) bool {
	for _, o := range order {
		if o == s {
			return true
		}
	}
	return false
}

// Locator resolves the NDK directory from explicit inputs
type Locator struct {
	// Getenv looks up an environment variable; empty means unset
	Getenv func(string) string

	// PropertiesFile is the local.properties path for LocalProperties
	PropertiesFile string

	// Strategies enabled for this run; nil means DefaultStrategies
	Strategies []Strategy

	// Diagnostics receives the environment dump when nothing is found
	Diagnostics io.Writer

	Logger *log.Logger
}

// Locate returns the first directory produced by an enabled strategy
func (l *Locator) Locate() (string, error) {
	getenv := l.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	logger := l.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	enabled := l.Strategies
	if enabled == nil {
		enabled = DefaultStrategies()
	}

	for _, s := range order {
		if !contains(enabled, s) {
			continue
		}
		dir, err := l.try(s, getenv)
		if err != nil {
			logger.Printf("NDK strategy %s: %v", s, err)
			continue
		}
		if dir != "" {
			logger.Printf("NDK strategy %s: %s", s, dir)
			return dir, nil
		}
		logger.Printf("NDK strategy %s: no result", s)
	}

	diag := l.Diagnostics
	if diag == nil {
		diag = os.Stdout
	}
	fmt.Fprintf(diag, "%s: %s\n", EnvAndroidHome, getenv(EnvAndroidHome))
	fmt.Fprintf(diag, "%s: %s\n", EnvAndroidNDKHome, getenv(EnvAndroidNDKHome))
	fmt.Fprintf(diag, "%s: %s\n", EnvNDKVersion, getenv(EnvNDKVersion))

	return "", core.ErrNDKNotFound
}

func (l *Locator) try(s Strategy, getenv func(string) string) (string, error) {
	switch s {
	case EnvOverride:
		return getenv(EnvAndroidNDKHome), nil
	case LocalProperties:
		if l.PropertiesFile == "" {
			return "", nil
		}
		return readNDKDir(l.PropertiesFile)
	case EnvVersion:
		version, home := getenv(EnvNDKVersion), getenv(EnvAndroidHome)
		if version == "" || home == "" {
			return "", nil
		}
		return filepath.Join(home, "ndk", version), nil
	}
	return "", fmt.Errorf("unknown strategy %q", s)
}

func contains(list []Strategy, s Strategy) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// LookupFunc builds a Getenv over a KEY=VALUE list. The last entry for a
// key wins, as with exec.Cmd.Env.
func LookupFunc(environ []string) func(string) string {
	vars := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	return func(key string) string {
		return vars[key]
	}
}
