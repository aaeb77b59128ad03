package main

import (
	"fmt"
	"os"

	"github.com/cpick/qemu-plugin-bindgen/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		if _, ok := err.(*cli.ExitError); !ok {
			// Flag and usage errors never reach a formatter.
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(cli.ExitCommandError)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
