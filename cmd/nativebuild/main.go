// cmd/nativebuild/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/syncthing-android/nativebuild"
	"github.com/syncthing-android/nativebuild/internal/cli"
)

const goNotFoundBanner = "\n==============================\n\tGO NOT FOUND!\n==============================\n"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.ExecuteContext(ctx)
	stop()
	if err != nil {
		if errors.Is(err, nativebuild.ErrGoNotFound) {
			fmt.Fprint(os.Stderr, goNotFoundBanner+"\n")
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
