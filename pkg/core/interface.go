package core

import "context"

// Command is a single subprocess invocation
type Command struct {
	Args []string // Program and arguments
	Dir  string   // Working directory, empty for the current one
	Env  []string // Full environment, KEY=VALUE
}

// Runner runs external commands to completion
type Runner interface {
	// Run blocks until the command exits. Missing executables wrap
	// ErrCommandNotFound, non-zero exits wrap ErrCommandFailed.
	Run(ctx context.Context, cmd Command) error
}

// Relocator moves a freshly built artifact into its destination directory
type Relocator interface {
	// Relocate moves src to dstDir/name, creating dstDir and replacing any
	// file already there. It returns the final path.
	Relocate(src, dstDir, name string) (string, error)
}

// TagFetcher refreshes the tags of a source checkout
type TagFetcher interface {
	FetchTags(ctx context.Context, dir string) error
}
