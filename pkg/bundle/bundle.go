// Package bundle packs built native libraries into a tar.xz archive for
// distribution outside of a Gradle build.
package bundle

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/ulikunitz/xz"

	"github.com/syncthing-android/nativebuild/pkg/core"
)

// Entries returns the artifact paths under jniLibsDir, relative and with
// forward slashes, sorted by ABI directory.
func Entries(jniLibsDir string) ([]string, error) {
	dirs, err := os.ReadDir(jniLibsDir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", jniLibsDir, err)
	}

	var entries []string
	for _, d := range dirs {
		if !d.IsDir() {
			continue
		}
		info, err := os.Stat(filepath.Join(jniLibsDir, d.Name(), core.ArtifactName))
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		entries = append(entries, d.Name()+"/"+core.ArtifactName)
	}
	sort.Strings(entries)
	return entries, nil
}

// Write streams a tar.xz of every <abi>/libsyncthing.so under jniLibsDir.
func Write(w io.Writer, jniLibsDir string) ([]string, error) {
	entries, err := Entries(jniLibsDir)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no %s found under %s", core.ArtifactName, jniLibsDir)
	}

	xw, err := xz.NewWriter(w)
	if err != nil {
		return nil, fmt.Errorf("creating xz writer: %w", err)
	}
	tw := tar.NewWriter(xw)

	for _, name := range entries {
		if err := addFile(tw, filepath.Join(jniLibsDir, filepath.FromSlash(name)), name); err != nil {
			return nil, fmt.Errorf("adding %s: %w", name, err)
		}
	}

	if err := tw.Close(); err != nil {
		return nil, fmt.Errorf("closing tar: %w", err)
	}
	if err := xw.Close(); err != nil {
		return nil, fmt.Errorf("closing xz: %w", err)
	}
	return entries, nil
}

// WriteFile writes the bundle to path, replacing any existing file.
func WriteFile(path, jniLibsDir string) ([]string, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating bundle: %w", err)
	}

	entries, err := Write(f, jniLibsDir)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("closing bundle: %w", cerr)
	}
	if err != nil {
		os.Remove(path)
		return nil, err
	}
	return entries, nil
}

func addFile(tw *tar.Writer, path, name string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	hdr, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return err
	}
	hdr.Name = name
	if err := tw.WriteHeader(hdr); err != nil {
		return err
	}
	_, err = io.Copy(tw, f)
	return err
}
