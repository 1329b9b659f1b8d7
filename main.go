package main

import (
	"fmt"
	"os"

	"github.com/schmitthub/plugin-editions/internal/build"
	"github.com/schmitthub/plugin-editions/internal/cmd"
	perrors "github.com/schmitthub/plugin-editions/internal/errors"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(perrors.ExitCode(err))
	}
}

func run() error {
	rootCmd := cmd.NewRootCmd(build.Version, build.Date)
	_, err := rootCmd.ExecuteC()
	return err
}
