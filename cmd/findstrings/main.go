package main

import (
	"fmt"
	"os"

	"findstrings/internal/cli"
	"findstrings/internal/output"
	perr "findstrings/internal/platform/errors"
)

func main() {
	err := cli.Execute()
	if err != nil && !output.IsBrokenPipe(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(perr.Exit(err))
}
