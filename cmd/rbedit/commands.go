package rbedit

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/rbedit/internal/version"
	"github.com/arthur-debert/rbedit/pkg/commands"
	"github.com/arthur-debert/rbedit/pkg/document"
	"github.com/arthur-debert/rbedit/pkg/engine"
	"github.com/arthur-debert/rbedit/pkg/errors"
	"github.com/arthur-debert/rbedit/pkg/style"
	"github.com/arthur-debert/rbedit/pkg/watch"
)

// noFilePath labels plan reports that were computed without a target file
const noFilePath = "(no file)"

// inputFlags are the flags every rule-evaluating command takes
type inputFlags struct {
	rules   string
	profile string
	root    string
	file    string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.rules, "rules", "r", "", MsgFlagRules)
	cmd.Flags().StringVarP(&f.profile, "profile", "p", "", MsgFlagProfile)
	cmd.Flags().StringVar(&f.root, "root", "", MsgFlagRoot)
	cmd.Flags().StringVarP(&f.file, "file", "f", "", MsgFlagFile)
	_ = cmd.MarkFlagRequired("rules")
	_ = cmd.MarkFlagRequired("profile")
	_ = cmd.MarkFlagFilename("rules", "toml", "yaml", "yml", "json")
	_ = cmd.MarkFlagFilename("profile", "yaml", "yml", "toml", "json", "xml")
}

// registerEditorFlags adds the flags overriding the [editor] settings
func registerEditorFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("remove-if-undef", false, MsgFlagRemoveIfUndef)
	cmd.Flags().Bool("always-only", false, MsgFlagAlwaysOnly)
}

func (a *app) inputOptions(f inputFlags) commands.InputOptions {
	return commands.InputOptions{
		FS:          a.fs,
		RulesPath:   f.rules,
		ProfilePath: f.profile,
		Root:        f.root,
	}
}

func (a *app) engineOptions() engine.Options {
	return engine.Options{
		RemoveIfUndef:   a.cfg.Editor.RemoveIfUndef,
		AlwaysRulesOnly: a.cfg.Editor.AlwaysRulesOnly,
	}
}

func (a *app) saveOptions() document.SaveOptions {
	return document.SaveOptions{
		Backup:       a.cfg.Files.Backup,
		BackupSuffix: a.cfg.Files.BackupSuffix,
		Mode:         a.cfg.Files.Mode,
	}
}

func reportFrom(res *commands.EditFileResult) style.Report {
	return style.Report{
		Path:    res.Path,
		DryRun:  res.DryRun,
		Written: res.Written,
		Result:  res.Result,
		Diff:    res.Diff,
	}
}

func keywordFailures(result *engine.Result) error {
	if result.HasFailures() {
		return errors.Newf(errors.ErrKeywordsFailed, MsgErrKeywordFailed, result.FailedCount)
	}
	return nil
}

func newApplyCmd(a *app) *cobra.Command {
	var (
		in        inputFlags
		dryRun    bool
		watchMode bool
	)

	cmd := &cobra.Command{
		Use:     "apply",
		Short:   MsgApplyShort,
		Long:    MsgApplyLong,
		Example: MsgApplyExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := a.renderer(cmd)
			if err != nil {
				return err
			}

			opts := commands.EditFileOptions{
				InputOptions: a.inputOptions(in),
				FilePath:     in.file,
				DryRun:       dryRun,
				Engine:       a.engineOptions(),
				Save:         a.saveOptions(),
			}

			log.Info().
				Str("file", in.file).
				Str("rules", in.rules).
				Str("profile", in.profile).
				Bool("dryRun", dryRun).
				Msg("Applying rules")

			run := func() error {
				res, err := commands.EditFile(opts)
				if err != nil {
					return fmt.Errorf(MsgErrEditFile, in.file, err)
				}
				if err := renderer.RenderReport(reportFrom(res)); err != nil {
					return err
				}
				return keywordFailures(res.Result)
			}

			err = run()
			if !watchMode {
				return err
			}
			if err != nil && !errors.IsErrorCode(err, errors.ErrKeywordsFailed) {
				return err
			}
			return a.watch(cmd, renderer, []string{in.rules, in.profile}, run)
		},
	}

	in.register(cmd)
	_ = cmd.MarkFlagRequired("file")
	registerEditorFlags(cmd)
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, MsgFlagDryRun)
	cmd.Flags().Bool("backup", false, MsgFlagBackup)
	cmd.Flags().BoolVarP(&watchMode, "watch", "w", false, MsgFlagWatch)

	return cmd
}

// watch re-runs run whenever one of paths changes, until interrupted
func (a *app) watch(cmd *cobra.Command, renderer style.Renderer, paths []string, run func() error) error {
	w, err := watch.New(paths, 0)
	if err != nil {
		return err
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := renderer.RenderMessage(fmt.Sprintf(MsgWatching, strings.Join(paths, ", "))); err != nil {
		return err
	}
	return w.Run(ctx, run)
}

func newPlanCmd(a *app) *cobra.Command {
	var in inputFlags

	cmd := &cobra.Command{
		Use:     "plan",
		Short:   MsgPlanShort,
		Long:    MsgPlanLong,
		Example: MsgPlanExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := a.renderer(cmd)
			if err != nil {
				return err
			}

			inputs := a.inputOptions(in)
			inputs.FS = a.fs.ReadOnly()

			if in.file != "" {
				res, err := commands.EditFile(commands.EditFileOptions{
					InputOptions: inputs,
					FilePath:     in.file,
					DryRun:       true,
					Engine:       a.engineOptions(),
				})
				if err != nil {
					return fmt.Errorf(MsgErrEditFile, in.file, err)
				}
				if err := renderer.RenderReport(reportFrom(res)); err != nil {
					return err
				}
				return keywordFailures(res.Result)
			}

			result, err := commands.PlanEdits(commands.PlanEditsOptions{
				InputOptions: inputs,
				Engine:       a.engineOptions(),
			})
			if err != nil {
				return fmt.Errorf(MsgErrPlanEdits, err)
			}
			if err := renderer.RenderReport(style.Report{
				Path:   noFilePath,
				DryRun: true,
				Result: result,
			}); err != nil {
				return err
			}
			return keywordFailures(result)
		},
	}

	in.register(cmd)
	registerEditorFlags(cmd)

	return cmd
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "check RULE...",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		Example: MsgCheckExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := a.renderer(cmd)
			if err != nil {
				return err
			}

			results := commands.CheckRules(args)
			checks := make([]style.Check, 0, len(results))
			invalid := 0
			for _, r := range results {
				if r.Err != nil {
					invalid++
				}
				checks = append(checks, style.Check{Rule: r.Rule, Parsed: r.Parsed, Err: r.Err})
			}

			if err := renderer.RenderChecks(checks); err != nil {
				return err
			}
			if invalid > 0 {
				return errors.Newf(errors.ErrRuleParse, MsgErrInvalidRules, invalid)
			}
			return nil
		},
	}
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Find the help command and execute it with "topics" argument
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil && helpCmd != cmd.Root() {
				if helpCmd.RunE != nil {
					return helpCmd.RunE(helpCmd, []string{"topics"})
				} else if helpCmd.Run != nil {
					helpCmd.Run(helpCmd, []string{"topics"})
					return nil
				}
			}
			return fmt.Errorf("help command not found")
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
