// Package relocate moves build artifacts into the app's jniLibs tree.
package relocate

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"syscall"
)

// FS is a core.Relocator on the local filesystem.
type FS struct {
	Logger *log.Logger
}

// Relocate moves src to dstDir/name. dstDir is created if needed and any
// previous artifact there is removed first.
func (r *FS) Relocate(src, dstDir, name string) (string, error) {
	if err := os.MkdirAll(dstDir, 0755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dstDir, err)
	}

	dst := filepath.Join(dstDir, name)
	if _, err := os.Lstat(dst); err == nil {
		r.debugf("removing previous artifact %s", dst)
		if err := os.Remove(dst); err != nil {
			return "", fmt.Errorf("removing previous artifact: %w", err)
		}
	}

	r.debugf("moving %s -> %s", src, dst)
	err := os.Rename(src, dst)
	if err == nil {
		return dst, nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return "", fmt.Errorf("moving artifact: %w", err)
	}

	// Source and destination are on different filesystems
	if err := copyFile(src, dst); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("copying artifact: %w", err)
	}
	if err := os.Remove(src); err != nil {
		return "", fmt.Errorf("removing built artifact: %w", err)
	}
	return dst, nil
}

func (r *FS) debugf(format string, args ...interface{}) {
	if r.Logger != nil {
		r.Logger.Printf(format, args...)
	}
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Clean removes each directory tree, ignoring ones that do not exist. It
// returns the directories that were present.
func Clean(dirs ...string) ([]string, error) {
	var removed []string
	for _, dir := range dirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			continue
		}
		if err := os.RemoveAll(dir); err != nil {
			return removed, fmt.Errorf("removing %s: %w", dir, err)
		}
		removed = append(removed, dir)
	}
	return removed, nil
}
