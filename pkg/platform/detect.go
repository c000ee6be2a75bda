// pkg/platform/detect.go
package platform

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/syncthing-android/nativebuild/pkg/core"
)

// hostDir maps a host OS to its NDK prebuilt toolchain directory. The NDK
// only ships x86_64 host toolchains; Apple silicon runs them translated.
var hostDir = map[string]string{
	"windows": "windows-x86_64",
	"linux":   "linux-x86_64",
	"darwin":  "darwin-x86_64",
}

// supported lists host OS names in the order they are reported
var supported = []string{"Windows", "Linux", "Darwin"}

// Detect resolves the toolchain directory for the running host
func Detect() (string, error) {
	return Resolve(runtime.GOOS)
}

// Resolve returns the NDK prebuilt directory label for an OS name. Both
// GOOS spellings ("linux") and uname spellings ("Linux") are accepted.
func Resolve(osName string) (string, error) {
	dir, ok := hostDir[strings.ToLower(osName)]
	if !ok {
		return "", fmt.Errorf("%w: Unsupported platform %s. Supported platforms: %s",
			core.ErrPlatformNotSupported, osName, strings.Join(supported, ", "))
	}
	return dir, nil
}

// Supported returns the supported host OS names
func Supported() []string {
	return append([]string(nil), supported...)
}
