// Command bookq runs the books query library from the command line.
package main

import (
	"fmt"
	"os"

	"bookquery/internal/config"
	"bookquery/internal/platform/database"
)

func main() {
	config.LoadEnvFiles()

	a := &app{
		v:      config.New(),
		out:    os.Stdout,
		errOut: os.Stderr,
		open:   database.Open,
	}
	if err := newRootCmd(a).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
