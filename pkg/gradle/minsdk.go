// Package gradle reads values out of an Android app's Gradle build script.
package gradle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/syncthing-android/nativebuild/pkg/core"
)

// MinSDK returns the integer from the first "minSdk = <n>" line. Lines are
// split on whitespace and must have exactly three tokens.
func MinSDK(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) != 3 || tokens[0] != "minSdk" {
			continue
		}
		n, err := strconv.Atoi(tokens[2])
		if err != nil {
			return 0, fmt.Errorf("%w %q: %v", core.ErrMinSDKMalformed, tokens[2], err)
		}
		return n, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("scanning build file: %w", err)
	}
	return 0, core.ErrMinSDKNotFound
}

// ReadMinSDK reads minSdk from the Gradle file at path
func ReadMinSDK(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening build file: %w", err)
	}
	defer f.Close()

	n, err := MinSDK(f)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}
