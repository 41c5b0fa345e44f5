package edit

import (
	"github.com/arthur-debert/rbedit/pkg/commands/internal"
	"github.com/arthur-debert/rbedit/pkg/document"
	"github.com/arthur-debert/rbedit/pkg/engine"
	"github.com/arthur-debert/rbedit/pkg/errors"
	"github.com/arthur-debert/rbedit/pkg/logging"
)

// EditFileOptions defines the options for the EditFile command.
type EditFileOptions struct {
	internal.InputOptions

	// FilePath is the file being edited
	FilePath string

	// DryRun computes the diff without writing
	DryRun bool

	Engine engine.Options
	Save   document.SaveOptions
}

// EditFileResult is the outcome of editing one file
type EditFileResult struct {
	Path    string
	DryRun  bool
	Written bool
	Result  *engine.Result
	Diff    string
}

// EditFile applies a rule set to a file. Per-keyword failures are reported in
// the result and do not stop the run; the file is still saved.
func EditFile(opts EditFileOptions) (*EditFileResult, error) {
	log := logging.ForFile("commands.edit", opts.FilePath)
	defer logging.LogOperationStart(log, "EditFile")()

	if opts.FilePath == "" {
		return nil, errors.New(errors.ErrArgumentMissing, "no file to edit")
	}

	ruleSet, tree, err := internal.LoadInputs(opts.InputOptions)
	if err != nil {
		return nil, err
	}

	doc, err := document.Open(opts.FS, opts.FilePath)
	if err != nil {
		return nil, err
	}

	result, err := engine.New(opts.Engine).Apply(doc, ruleSet, tree)
	if err != nil {
		return nil, err
	}

	diff, err := doc.Diff()
	if err != nil {
		return nil, err
	}

	out := &EditFileResult{
		Path:   opts.FilePath,
		DryRun: opts.DryRun,
		Result: result,
		Diff:   diff,
	}

	if !opts.DryRun {
		written, err := doc.Save(opts.Save)
		if err != nil {
			return nil, err
		}
		out.Written = written
	}

	log.Info().
		Str("command", "EditFile").
		Bool("written", out.Written).
		Int("linesChanged", result.LinesChanged).
		Int("failed", result.FailedCount).
		Msg("Command finished")

	return out, nil
}
