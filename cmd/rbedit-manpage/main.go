package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/rbedit/cmd/rbedit"
	"github.com/arthur-debert/rbedit/internal/version"
)

func main() {
	rootCmd := rbedit.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "RBEDIT",
		Section: "1",
		Source:  "rbedit " + version.Version,
		Manual:  "rbedit manual",
	}

	if len(os.Args) > 1 {
		// Write one page per command into the given directory
		if err := doc.GenManTree(rootCmd, header, os.Args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating man pages: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
