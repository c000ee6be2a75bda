package relocate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelocate_CreatesDestination(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "checkout", "syncthing")
	require.NoError(t, os.MkdirAll(filepath.Dir(src), 0755))
	require.NoError(t, os.WriteFile(src, []byte("new"), 0755))

	dstDir := filepath.Join(root, "jniLibs", "arm64-v8a")
	got, err := (&FS{}).Relocate(src, dstDir, "libsyncthing.so")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dstDir, "libsyncthing.so"), got)

	data, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	_, err = os.Stat(src)
	assert.True(t, os.IsNotExist(err), "source is moved, not copied")
}

func TestRelocate_ReplacesPreviousArtifact(t *testing.T) {
	root := t.TempDir()
	dstDir := filepath.Join(root, "jniLibs", "x86")
	require.NoError(t, os.MkdirAll(dstDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dstDir, "libsyncthing.so"), []byte("stale"), 0644))

	src := filepath.Join(root, "syncthing")
	require.NoError(t, os.WriteFile(src, []byte("fresh"), 0755))

	got, err := (&FS{}).Relocate(src, dstDir, "libsyncthing.so")
	require.NoError(t, err)

	data, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(data))

	entries, err := os.ReadDir(dstDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRelocate_MissingSource(t *testing.T) {
	root := t.TempDir()
	_, err := (&FS{}).Relocate(filepath.Join(root, "syncthing"), filepath.Join(root, "out"), "libsyncthing.so")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "moving artifact")
}

func TestCopyFile_PreservesMode(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "a")
	dst := filepath.Join(root, "b")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0750))

	require.NoError(t, copyFile(src, dst))
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	srcInfo, err := os.Stat(src)
	require.NoError(t, err)
	dstInfo, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, srcInfo.Mode().Perm(), dstInfo.Mode().Perm())
}

func TestClean(t *testing.T) {
	root := t.TempDir()
	jni := filepath.Join(root, "jniLibs")
	require.NoError(t, os.MkdirAll(filepath.Join(jni, "x86"), 0755))
	missing := filepath.Join(root, "gobuild")

	removed, err := Clean(jni, missing)
	require.NoError(t, err)
	assert.Equal(t, []string{jni}, removed)

	_, err = os.Stat(jni)
	assert.True(t, os.IsNotExist(err))
}
