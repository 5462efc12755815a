package sawkit

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/sawkit/internal/version"
	"github.com/arthur-debert/sawkit/pkg/config"
	"github.com/arthur-debert/sawkit/pkg/errors"
	"github.com/arthur-debert/sawkit/pkg/execx"
	"github.com/arthur-debert/sawkit/pkg/filesystem"
	"github.com/arthur-debert/sawkit/pkg/guide"
	"github.com/arthur-debert/sawkit/pkg/logging"
	"github.com/arthur-debert/sawkit/pkg/paths"
	"github.com/arthur-debert/sawkit/pkg/types"
	"github.com/arthur-debert/sawkit/pkg/ui"
	"github.com/arthur-debert/sawkit/pkg/ui/confirmations"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// executable locates the running sawkit binary
var executable = os.Executable

// globals holds the persistent flags shared by every command
type globals struct {
	verbosity  int
	dryRun     bool
	yes        bool
	configFile string
	output     string
	timeout    time.Duration
}

// env is what a command needs to run, built from the flags
type env struct {
	fs        types.FS
	runner    *execx.OSRunner
	paths     paths.Paths
	config    *config.Config
	confirmer types.Confirmer
	renderer  ui.Renderer

	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// envOptions tweak how the environment is loaded
type envOptions struct {
	// skipRecord ignores the install record, so a fresh install follows
	// the configuration rather than the previous install
	skipRecord bool
}

// newEnv loads the configuration and resolves every path
func (g *globals) newEnv(cmd *cobra.Command, opts envOptions) (*env, error) {
	home, err := paths.GetHomeDirectory()
	if err != nil {
		return nil, err
	}

	// The config directory does not depend on the configuration itself
	base, err := paths.New(paths.Options{HomeDir: home})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, MsgErrPaths)
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigDir:  base.ConfigDir(),
		ConfigFile: g.configFile,
		SkipRecord: opts.skipRecord,
	})
	if err != nil {
		return nil, err
	}

	p, err := paths.New(cfg.PathOptions(home))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, MsgErrPaths)
	}

	format, err := ui.ParseFormat(g.output)
	if err != nil {
		return nil, err
	}
	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return nil, err
	}

	var confirmer types.Confirmer = confirmations.NewConsoleConfirmerWithIO(cmd.InOrStdin(), cmd.ErrOrStderr())
	if g.yes {
		confirmer = confirmations.AutoConfirmer{Answer: true}
	}

	log.Debug().
		Str("install_root", p.InstallRoot()).
		Str("config_dir", p.ConfigDir()).
		Str("format", format.String()).
		Msg("Environment ready")

	return &env{
		fs:        filesystem.NewOS(),
		runner:    execx.NewOSRunner(),
		paths:     p,
		config:    cfg,
		confirmer: confirmer,
		renderer:  renderer,
		in:        cmd.InOrStdin(),
		out:       cmd.OutOrStdout(),
		errOut:    cmd.ErrOrStderr(),
	}, nil
}

// context bounds the command context by --timeout
func (g *globals) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if g.timeout > 0 {
		return context.WithTimeout(ctx, g.timeout)
	}
	return context.WithCancel(ctx)
}

// sawkitPath returns the absolute path the shell functions call
func sawkitPath() (string, error) {
	exe, err := executable()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, MsgErrExecPath)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return exe, nil
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	g := &globals{}

	rootCmd := &cobra.Command{
		Use:     "sawkit",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(g.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&g.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&g.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().BoolVarP(&g.yes, "yes", "y", false, MsgFlagYes)
	rootCmd.PersistentFlags().StringVar(&g.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().DurationVar(&g.timeout, "timeout", 0, MsgFlagTimeout)
	rootCmd.PersistentFlags().StringVarP(&g.output, "output", "o", ui.FormatAuto.String(), MsgFlagOutput)

	rootCmd.AddGroup(&cobra.Group{ID: "setup", Title: "SETUP:"})
	rootCmd.AddGroup(&cobra.Group{ID: "hunt", Title: "HUNTING:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newInstallCmd(g))
	rootCmd.AddCommand(newUpdateCmd(g))
	rootCmd.AddCommand(newUninstallCmd(g))
	rootCmd.AddCommand(newStatusCmd(g))
	rootCmd.AddCommand(newShellCmd(g))
	rootCmd.AddCommand(newConfigCmd(g))

	rootCmd.AddCommand(newRunCmd(g))
	rootCmd.AddCommand(newHuntCmd(g))
	for _, sub := range forwardedSubcommands {
		rootCmd.AddCommand(newForwardCmd(g, sub))
	}
	rootCmd.AddCommand(newRulesCmd(g))

	rootCmd.AddCommand(newGuideCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	if manager, err := newGuideManager(os.Stdout); err == nil {
		manager.InstallHelp(rootCmd)
		rootCmd.SetHelpCommandGroupID("misc")
	} else {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// newGuideManager loads the embedded topics, rendering markdown with
// glamour only when w is a terminal
func newGuideManager(w io.Writer) (*guide.Manager, error) {
	var renderer guide.Renderer = &guide.PlainRenderer{}
	if ui.DetectFormat(w) == ui.FormatTerminal {
		renderer = guide.NewGlamourRenderer()
	}
	return guide.New(guide.Topics(), guide.Options{
		Extensions: []string{".md"},
		Renderer:   renderer,
	})
}

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "guide [topic]",
		Short:   MsgGuideShort,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "misc",
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			manager, err := newGuideManager(io.Discard)
			if err != nil || len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return manager.List(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := newGuideManager(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			topic := guide.DefaultGuideTopic
			if len(args) == 1 {
				topic = args[0]
			}
			rendered, err := manager.Render(topic)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
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
				return cmd.Root().GenBashCompletionV2(out, true)
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
