package core

import "fmt"

// Target describes one Android ABI the native library is built for
type Target struct {
	Arch   string `toml:"arch"`    // Architecture name (e.g., "arm64")
	GoArch string `toml:"goarch"`  // GOARCH passed to build.go
	JNIDir string `toml:"jni_dir"` // Subdirectory under jniLibs
	CC     string `toml:"cc"`      // Compiler name template, %d is the min SDK
}

// CompilerName formats the compiler executable name for the given min SDK
func (t Target) CompilerName(minSDK int) string {
	return fmt.Sprintf(t.CC, minSDK)
}
