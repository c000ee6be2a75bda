// Package registry holds the table of Android targets the library is built for.
package registry

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/syncthing-android/nativebuild/pkg/core"
)

// defaultTargets must stay in sync with the builder image's prebuild script.
var defaultTargets = []core.Target{
	{Arch: "arm", GoArch: "arm", JNIDir: "armeabi", CC: "armv7a-linux-androideabi%d-clang"},
	{Arch: "arm64", GoArch: "arm64", JNIDir: "arm64-v8a", CC: "aarch64-linux-android%d-clang"},
	{Arch: "x86", GoArch: "386", JNIDir: "x86", CC: "i686-linux-android%d-clang"},
	{Arch: "x86_64", GoArch: "amd64", JNIDir: "x86_64", CC: "x86_64-linux-android%d-clang"},
}

// file is the on-disk form of a target table:
//
//	[[target]]
//	arch = "arm64"
//	goarch = "arm64"
//	jni_dir = "arm64-v8a"
//	cc = "aarch64-linux-android%d-clang"
type file struct {
	Targets []core.Target `toml:"target"`
}

// Default returns the four built-in targets in build order
func Default() []core.Target {
	return append([]core.Target(nil), defaultTargets...)
}

// Load reads a TOML target table. Entries keep their file order.
func Load(path string) ([]core.Target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("registry: reading %s: %w", path, err)
	}

	var f file
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, fmt.Errorf("registry: failed to parse '%s': %w", path, err)
	}
	if len(f.Targets) == 0 {
		return nil, fmt.Errorf("registry: '%s' defines no targets", path)
	}

	seen := make(map[string]bool, len(f.Targets))
	for i, t := range f.Targets {
		if t.Arch == "" || t.GoArch == "" || t.JNIDir == "" || t.CC == "" {
			return nil, fmt.Errorf("registry: target %d in '%s' needs arch, goarch, jni_dir and cc", i+1, path)
		}
		if !strings.Contains(t.CC, "%d") {
			return nil, fmt.Errorf("registry: target '%s' cc %q has no %%d for the min SDK", t.Arch, t.CC)
		}
		if seen[t.Arch] {
			return nil, fmt.Errorf("registry: duplicate target '%s'", t.Arch)
		}
		seen[t.Arch] = true
	}

	return f.Targets, nil
}

// Select keeps the targets named in archs, preserving table order. An empty
// selection keeps everything.
func Select(targets []core.Target, archs []string) ([]core.Target, error) {
	if len(archs) == 0 {
		return targets, nil
	}

	want := make(map[string]bool, len(archs))
	for _, a := range archs {
		want[a] = true
	}

	var out []core.Target
	for _, t := range targets {
		if want[t.Arch] {
			out = append(out, t)
			delete(want, t.Arch)
		}
	}
	if len(want) > 0 {
		var unknown []string
		for _, a := range archs {
			if want[a] {
				unknown = append(unknown, a)
			}
		}
		return nil, fmt.Errorf("registry: unknown target(s) %s (have %s)", strings.Join(unknown, ", "), strings.Join(Names(targets), ", "))
	}
	return out, nil
}

// Names lists the architecture names of targets
func Names(targets []core.Target) []string {
	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = t.Arch
	}
	return names
}
