package core

import "path/filepath"

const (
	// BuiltBinary is what build.go leaves in the checkout root
	BuiltBinary = "syncthing"

	// ArtifactName is the library name the app loads
	ArtifactName = "libsyncthing.so"
)

// Layout holds the resolved filesystem paths of an app checkout.
type Layout struct {
	ProjectDir      string // <project>/
	GradleFile      string // <project>/app/build.gradle.kts
	LocalProperties string // <project>/local.properties
	JNILibsDir      string // <project>/app/src/main/jniLibs/

	ModuleDir    string // <project>/syncthing/
	SyncthingDir string // <project>/syncthing/src/github.com/syncthing/syncthing/
	GoBuildDir   string // <project>/syncthing/gobuild/
	PackagesDir  string // <project>/syncthing/gobuild/go-packages/
}

// NewLayout constructs all paths from the app project root.
func NewLayout(projectDir string) *Layout {
	module := filepath.Join(projectDir, "syncthing")
	gobuild := filepath.Join(module, "gobuild")
	return &Layout{
		ProjectDir:      projectDir,
		GradleFile:      filepath.Join(projectDir, "app", "build.gradle.kts"),
		LocalProperties: filepath.Join(projectDir, "local.properties"),
		JNILibsDir:      filepath.Join(projectDir, "app", "src", "main", "jniLibs"),

		ModuleDir:    module,
		SyncthingDir: filepath.Join(module, "src", "github.com", "syncthing", "syncthing"),
		GoBuildDir:   gobuild,
		PackagesDir:  filepath.Join(gobuild, "go-packages"),
	}
}

// PackageDir is the per-GOARCH package cache handed to build.go.
func (l *Layout) PackageDir(goarch string) string {
	return filepath.Join(l.PackagesDir, goarch)
}

// ArtifactDir is the jniLibs subdirectory for one ABI.
func (l *Layout) ArtifactDir(jniDir string) string {
	return filepath.Join(l.JNILibsDir, jniDir)
}

// BuiltArtifact is where build.go writes its output.
func (l *Layout) BuiltArtifact() string {
	return filepath.Join(l.SyncthingDir, BuiltBinary)
}
