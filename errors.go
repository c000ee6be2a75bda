// errors.go
package nativebuild

import "github.com/syncthing-android/nativebuild/pkg/core"

// Re-export error values so callers can match failures with errors.Is
var (
	ErrPlatformNotSupported = core.ErrPlatformNotSupported
	ErrMinSDKNotFound       = core.ErrMinSDKNotFound
	ErrMinSDKMalformed      = core.ErrMinSDKMalformed
	ErrNDKNotFound          = core.ErrNDKNotFound
	ErrGoNotFound           = core.ErrGoNotFound
	ErrGoFailed             = core.ErrGoFailed
	ErrCommandNotFound      = core.ErrCommandNotFound
	ErrCommandFailed        = core.ErrCommandFailed
)

// Error is a failed build step
type Error = core.Error
