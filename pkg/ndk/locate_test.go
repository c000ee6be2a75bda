package ndk

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syncthing-android/nativebuild/pkg/core"
)

func TestLocate_EnvVersion(t *testing.T) {
	l := &Locator{
		Getenv: LookupFunc([]string{"NDK_VERSION=25.1", "ANDROID_HOME=/opt/android"}),
	}

	got, err := l.Locate()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/opt/android", "ndk", "25.1"), got)
}

func TestLocate_NothingSetPrintsEnvironment(t *testing.T) {
	var diag bytes.Buffer
	l := &Locator{
		Getenv:      LookupFunc(nil),
		Diagnostics: &diag,
	}

	_, err := l.Locate()
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNDKNotFound)
	assert.Equal(t, "ANDROID_HOME: \nANDROID_NDK_HOME: \nNDK_VERSION: \n", diag.String())
}

func TestLocate_OnlyOneVariableSet(t *testing.T) {
	var diag bytes.Buffer
	l := &Locator{
		Getenv:      LookupFunc([]string{"ANDROID_HOME=/opt/android"}),
		Diagnostics: &diag,
	}

	_, err := l.Locate()
	assert.ErrorIs(t, err, core.ErrNDKNotFound)
	assert.Contains(t, diag.String(), "ANDROID_HOME: /opt/android\n")
}

func TestLocate_OverrideIgnoredByDefault(t *testing.T) {
	l := &Locator{
		Getenv:      LookupFunc([]string{"ANDROID_NDK_HOME=/ndk/override"}),
		Diagnostics: &bytes.Buffer{},
	}

	_, err := l.Locate()
	assert.ErrorIs(t, err, core.ErrNDKNotFound)
}

func TestLocate_StrategyPrecedence(t *testing.T) {
	props := filepath.Join(t.TempDir(), "local.properties")
	require.NoError(t, os.WriteFile(props, []byte("## generated\nsdk.dir=/opt/android\nndk.dir=/ndk/props\n"), 0644))

	env := []string{
		"ANDROID_NDK_HOME=/ndk/override",
		"NDK_VERSION=25.1",
		"ANDROID_HOME=/opt/android",
	}
	all := []Strategy{EnvVersion, LocalProperties, EnvOverride}

	l := &Locator{Getenv: LookupFunc(env), PropertiesFile: props, Strategies: all}
	got, err := l.Locate()
	require.NoError(t, err)
	assert.Equal(t, "/ndk/override", got, "configured order does not change precedence")

	l.Getenv = LookupFunc(env[1:])
	got, err = l.Locate()
	require.NoError(t, err)
	assert.Equal(t, "/ndk/props", got)

	l.PropertiesFile = filepath.Join(t.TempDir(), "missing.properties")
	got, err = l.Locate()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/opt/android", "ndk", "25.1"), got)
}

func TestReadNDKDir_UnescapesWindowsPaths(t *testing.T) {
	props := filepath.Join(t.TempDir(), "local.properties")
	require.NoError(t, os.WriteFile(props, []byte(`ndk.dir=C\:\\Users\\dev\\Android\\ndk\\25.1`+"\n"), 0644))

	got, err := readNDKDir(props)
	require.NoError(t, err)
	assert.Equal(t, `C:\Users\dev\Android\ndk\25.1`, got)
}

func TestReadNDKDir_PropertiesSyntax(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"dollar kept literally", "ndk.dir=/opt/$HOME/ndk\n", "/opt/$HOME/ndk"},
		{"brace reference not expanded", "home=/x\nndk.dir=${home}/ndk\n", "${home}/ndk"},
		{"bang comment", "! bang comment\nndk.dir=/opt/ndk\n", "/opt/ndk"},
		{"hash comment", "# sdk.dir=/nope\nndk.dir=/opt/ndk\n", "/opt/ndk"},
		{"hash inside value", "ndk.dir=/opt/my ndk #1\n", "/opt/my ndk #1"},
		{"colon separator", "ndk.dir: /opt/ndk\n", "/opt/ndk"},
		{"key absent", "sdk.dir=/opt/sdk\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := filepath.Join(t.TempDir(), "local.properties")
			require.NoError(t, os.WriteFile(props, []byte(tt.content), 0644))

			got, err := readNDKDir(props)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadNDKDir_MissingFile(t *testing.T) {
	got, err := readNDKDir(filepath.Join(t.TempDir(), "local.properties"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseStrategies(t *testing.T) {
	got, err := ParseStrategies([]string{"env-override", " env-version "})
	require.NoError(t, err)
	assert.Equal(t, []Strategy{EnvOverride, EnvVersion}, got)

	_, err = ParseStrategies([]string{"sdkmanager"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown NDK strategy")
}

func TestLookupFunc_LastValueWins(t *testing.T) {
	get := LookupFunc([]string{"A=1", "A=2", "B=x=y", "broken"})
	assert.Equal(t, "2", get("A"))
	assert.Equal(t, "x=y", get("B"))
	assert.Equal(t, "", get("broken"))
}
