package rbedit

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/arthur-debert/rbedit/internal/version"
	"github.com/arthur-debert/rbedit/pkg/config"
	"github.com/arthur-debert/rbedit/pkg/filesystem"
	"github.com/arthur-debert/rbedit/pkg/logging"
	"github.com/arthur-debert/rbedit/pkg/style"
	"github.com/arthur-debert/rbedit/pkg/topics"
)

//go:embed topics
var topicFiles embed.FS

// configFlags maps flags that override a configuration key
var configFlags = map[string]string{
	"format":          "output.format",
	"remove-if-undef": "editor.remove_if_undef",
	"always-only":     "editor.always_rules_only",
	"backup":          "files.backup",
}

// app holds the state shared by every command of one invocation
type app struct {
	verbosity  int
	configFile string
	format     string

	cfg *config.Config
	fs  *filesystem.FS
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	a := &app{fs: filesystem.NewOS()}

	rootCmd := &cobra.Command{
		Use:     "rbedit",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Setup logging based on verbosity
			logging.Setup(logging.Options{
				Verbosity: a.verbosity,
				Console:   cmd.ErrOrStderr(),
				NoColor:   style.DetectFormat(os.Stderr) != style.FormatTerminal,
			})
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return a.loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&a.format, "format", "auto", MsgFlagFormat)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(newApplyCmd(a))
	rootCmd.AddCommand(newPlanCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Initialize topic-based help system
	helpFS, err := fs.Sub(topicFiles, "topics")
	if err == nil {
		renderer := topics.Plain
		if style.DetectFormat(os.Stdout) == style.FormatTerminal {
			renderer = topics.Markdown{}
		}
		if _, err := topics.Initialize(rootCmd, helpFS, topics.Options{
			Extensions: []string{".md"},
			Renderer:   renderer,
		}); err != nil {
			log.Debug().Err(err).Msg("Help topics unavailable")
		} else {
			rootCmd.SetHelpCommandGroupID("misc")
		}
	}

	return rootCmd
}

// loadConfig merges the configuration layers, flags given on the command
// line winning
func (a *app) loadConfig(cmd *cobra.Command) error {
	overrides := map[string]interface{}{}
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if key, ok := configFlags[f.Name]; ok {
			overrides[key] = f.Value.String()
		}
	})

	cfg, err := config.LoadConfiguration(config.LoadOptions{
		ConfigFile: a.configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// renderer builds the output renderer selected by the configuration
func (a *app) renderer(cmd *cobra.Command) (style.Renderer, error) {
	format, err := style.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	return style.NewRenderer(format, cmd.OutOrStdout())
}
