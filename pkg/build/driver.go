// Package build drives Syncthing's build.go once per Android target.
package build

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/syncthing-android/nativebuild/pkg/core"
)

// Driver builds every configured target in order and moves each artifact
// into the app's jniLibs tree. The first failure stops the run.
type Driver struct {
	config    *core.BuildConfig
	runner    core.Runner
	relocator core.Relocator
	fetcher   core.TagFetcher
	out       io.Writer
	logger    *log.Logger
}

// Options configures a Driver. Runner and Relocator are required.
type Options struct {
	Runner    core.Runner
	Relocator core.Relocator
	Fetcher   core.TagFetcher // nil skips the tag fetch
	Out       io.Writer       // progress messages, os.Stdout if nil
	Logger    *log.Logger     // debug logging, discarded if nil
}

// NewDriver validates cfg and returns a driver for it
func NewDriver(cfg *core.BuildConfig, opts Options) (*Driver, error) {
	if cfg == nil {
		return nil, errors.New("build config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid build config: %w", err)
	}
	if opts.Runner == nil || opts.Relocator == nil {
		return nil, errors.New("runner and relocator are required")
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Driver{
		config:    cfg,
		runner:    opts.Runner,
		relocator: opts.Relocator,
		fetcher:   opts.Fetcher,
		out:       out,
		logger:    logger,
	}, nil
}

// Run fetches tags and then builds each target. Artifacts of targets that
// finished before a failure are left in place.
func (d *Driver) Run(ctx context.Context) error {
	d.logger.Printf("platform=%s ndk=%s minSdk=%d", d.config.Platform, d.config.NDKHome, d.config.MinSDK)

	if d.fetcher != nil {
		if err := d.fetcher.FetchTags(ctx, d.config.Layout.SyncthingDir); err != nil {
			return &core.Error{Op: "fetch tags", Err: err}
		}
	}

	for _, t := range d.config.Targets {
		if err := d.buildTarget(ctx, t); err != nil {
			return err
		}
	}

	fmt.Fprintln(d.out, "All builds finished")
	return nil
}

func (d *Driver) buildTarget(ctx context.Context, t core.Target) error {
	fmt.Fprintln(d.out, "Building syncthing for", t.Arch)

	env := d.config.BuildEnv()

	if err := d.goCmd(ctx, env, "version"); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if errors.Is(err, core.ErrCommandNotFound) {
			return &core.Error{Op: "go version", Target: t.Arch, Err: core.ErrGoNotFound}
		}
		d.logger.Printf("go version: %v", err)
		return &core.Error{Op: "go version", Target: t.Arch, Err: core.ErrGoFailed}
	}

	if err := d.goCmd(ctx, env, "run", "build.go", "version"); err != nil {
		return &core.Error{Op: "build.go version", Target: t.Arch, Err: err}
	}

	cc := d.config.CompilerPath(t)
	d.logger.Printf("compiler for %s: %s", t.Arch, cc)

	err := d.goCmd(ctx, env,
		"run", "build.go",
		"-goos", "android",
		"-goarch", t.GoArch,
		"-cc", cc,
		"-pkgdir", d.config.Layout.PackageDir(t.GoArch),
		"-no-upgrade",
		"build",
	)
	if err != nil {
		return &core.Error{Op: "build.go build", Target: t.Arch, Err: err}
	}

	layout := d.config.Layout
	dst, err := d.relocator.Relocate(layout.BuiltArtifact(), layout.ArtifactDir(t.JNIDir), core.ArtifactName)
	if err != nil {
		return &core.Error{Op: "relocate artifact", Target: t.Arch, Err: err}
	}
	d.logger.Printf("artifact for %s: %s", t.Arch, dst)

	fmt.Fprintln(d.out, "Finished build for", t.Arch)
	return nil
}

func (d *Driver) goCmd(ctx context.Context, env []string, args ...string) error {
	return d.runner.Run(ctx, core.Command{
		Args: append([]string{d.config.GoBinary}, args...),
		Dir:  d.config.Layout.SyncthingDir,
		Env:  env,
	})
}
