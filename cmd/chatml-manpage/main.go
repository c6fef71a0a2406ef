package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/chatml/cmd/chatml"
	"github.com/arthur-debert/chatml/internal/version"
)

func main() {
	rootCmd := chatml.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "CHATML",
		Section: "1",
		Source:  "chatml " + version.Version,
		Manual:  "chatml manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
