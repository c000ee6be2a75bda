package ndk

import (
	"fmt"
	"os"
	"strings"

	"github.com/magiconair/properties"
)

// readNDKDir returns ndk.dir from a local.properties file. A missing file
// or key yields "". Values are taken literally: ${...} is not expanded.
func readNDKDir(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	loader := &properties.Loader{Encoding: properties.ISO_8859_1, DisableExpansion: true}
	props, err := loader.LoadBytes(data)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", path, err)
	}
	dir, _ := props.Get("ndk.dir")
	return strings.TrimSpace(dir), nil
}
