// Command albumctl is the operator tool for the album store: it applies
// migrations, creates and exports albums, converts albums to tag albums and
// shows how timestamps are normalized.
//
// Configuration is read from --config, CONFIG_PATH or ./albums.yaml, and
// overridden by environment variables.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
