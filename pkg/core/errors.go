// pkg/core/errors.go
package core

import (
	"errors"
	"fmt"
)

var (
	// ErrPlatformNotSupported indicates the host OS has no NDK prebuilt toolchain
	ErrPlatformNotSupported = errors.New("platform not supported")

	// ErrMinSDKNotFound indicates the Gradle build file has no minSdk declaration
	ErrMinSDKNotFound = errors.New("Failed to find minSdkVersion")

	// ErrMinSDKMalformed indicates a minSdk declaration whose value is not an integer
	ErrMinSDKMalformed = errors.New("malformed minSdk value")

	// ErrNDKNotFound indicates no NDK location strategy produced a directory
	ErrNDKNotFound = errors.New("ANDROID_NDK_HOME or NDK_VERSION and ANDROID_HOME environment variable must be defined")

	// ErrGoNotFound indicates the go executable could not be started at all
	ErrGoNotFound = errors.New("GO NOT FOUND!")

	// ErrGoFailed indicates the go toolchain check exited unsuccessfully
	ErrGoFailed = errors.New("ERROR: Something went wrong with go!")

	// ErrCommandNotFound indicates a subprocess executable does not exist
	ErrCommandNotFound = errors.New("command not found")

	// ErrCommandFailed indicates a subprocess exited with a non-zero status
	ErrCommandFailed = errors.New("command failed")
)

// Error wraps a failed build step with the target it belongs to
type Error struct {
	Op     string // Step that failed
	Target string // Target architecture if applicable
	Err    error  // Underlying error
}

func (e *Error) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("%s (%s): %v", e.Op, e.Target, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
