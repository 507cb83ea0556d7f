// devpalette - A device-type colour palette generator
//
// devpalette expands one base colour per device type into distinct
// variations and renders them as HTML, JSON, CSS, PNG or terminal swatches.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/devpalette/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
