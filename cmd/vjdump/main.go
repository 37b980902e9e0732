// Command vjdump renders YAML or JSON documents as collapsible HTML trees.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "vjdump:", err)
		os.Exit(1)
	}
}
