// SPDX-License-Identifier: MIT

// Command analytica is a calculator front-end for the complexnum, matrix and
// polynomial packages.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "analytica:", err)
		os.Exit(1)
	}
}
