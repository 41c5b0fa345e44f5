package main

import (
	"os"

	"github.com/arthur-debert/rbedit/cmd/rbedit"
	"github.com/arthur-debert/rbedit/pkg/errors"
	"github.com/arthur-debert/rbedit/pkg/style"
)

func main() {
	rootCmd := rbedit.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		renderer, rerr := style.NewRenderer(style.DetectFormat(os.Stderr), os.Stderr)
		if rerr == nil {
			_ = renderer.RenderError(err)
		}
		os.Exit(errors.ExitStatus(err))
	}
}
