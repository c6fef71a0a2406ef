package main

import (
	"os"

	"github.com/arthur-debert/chatml/cmd/chatml"
	"github.com/arthur-debert/chatml/pkg/errors"
	"github.com/arthur-debert/chatml/pkg/ui/terminal"
)

func main() {
	rootCmd := chatml.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		if r, rerr := terminal.New(os.Stderr); rerr == nil {
			_ = r.RenderError(err)
		}
		os.Exit(errors.ExitCode(err))
	}
}
