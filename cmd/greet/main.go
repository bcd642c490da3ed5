// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/llbbl/greet/internal/cmd"
	"github.com/llbbl/greet/internal/greeter"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// A failed stdout write exits non-zero without a message of our own.
		if !errors.Is(err, greeter.ErrWrite) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
