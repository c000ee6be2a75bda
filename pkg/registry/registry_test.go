package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syncthing-android/nativebuild/pkg/core"
)

func TestDefault_FixedOrder(t *testing.T) {
	targets := Default()
	assert.Equal(t, []string{"arm", "arm64", "x86", "x86_64"}, Names(targets))
	assert.Equal(t, []string{"armeabi", "arm64-v8a", "x86", "x86_64"}, []string{
		targets[0].JNIDir, targets[1].JNIDir, targets[2].JNIDir, targets[3].JNIDir,
	})
	assert.Equal(t, "i686-linux-android24-clang", targets[2].CompilerName(24))

	targets[0].Arch = "mips"
	assert.Equal(t, "arm", Default()[0].Arch, "callers get a copy")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "targets.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[target]]
arch = "arm64"
goarch = "arm64"
jni_dir = "arm64-v8a"
cc = "aarch64-linux-android%d-clang"

[[target]]
arch = "riscv64"
goarch = "riscv64"
jni_dir = "riscv64"
cc = "riscv64-linux-android%d-clang"
`), 0644))

	targets, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []core.Target{
		{Arch: "arm64", GoArch: "arm64", JNIDir: "arm64-v8a", CC: "aarch64-linux-android%d-clang"},
		{Arch: "riscv64", GoArch: "riscv64", JNIDir: "riscv64", CC: "riscv64-linux-android%d-clang"},
	}, targets)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"empty":      "",
		"missing cc": "[[target]]\narch = \"x86\"\ngoarch = \"386\"\njni_dir = \"x86\"\n",
		"no verb":    "[[target]]\narch = \"x86\"\ngoarch = \"386\"\njni_dir = \"x86\"\ncc = \"i686-clang\"\n",
		"duplicate":  "[[target]]\narch = \"x86\"\ngoarch = \"386\"\njni_dir = \"x86\"\ncc = \"a%d\"\n[[target]]\narch = \"x86\"\ngoarch = \"386\"\njni_dir = \"x86\"\ncc = \"a%d\"\n",
		"bad toml":   "[[target]\n",
	}
	for name, body := range cases {
		path := filepath.Join(t.TempDir(), "targets.toml")
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))
		_, err := Load(path)
		assert.Error(t, err, name)
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestSelect(t *testing.T) {
	got, err := Select(Default(), []string{"x86_64", "arm"})
	require.NoError(t, err)
	assert.Equal(t, []string{"arm", "x86_64"}, Names(got), "table order is kept")

	all, err := Select(Default(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	_, err = Select(Default(), []string{"arm", "mips"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown target(s) mips")
}
