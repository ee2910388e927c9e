// colornom - A colour nomenclature tool
//
// colornom reports the name of a colour given in hex or rgb() form and
// copies it to the clipboard.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"context"
	"os"

	"github.com/jmylchreest/colornom/internal/cli"
)

func main() {
	os.Exit(cli.Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
