// Package main provides the CLI entrypoint for mkprop.
//
// mkprop compiles a robot property template and a driver-data file into a
// JVM class file holding one public static final int per mapped constant:
//   - Parses the template (@CLASS, MAP ... [OPT]) and driver data (DEF ...)
//   - Reconciles mappings against bindings, warning about leftovers
//   - Writes the class file and an optional YAML report
package main

import (
	"os"

	"mkprop/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
