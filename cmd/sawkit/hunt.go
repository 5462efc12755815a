package sawkit

import (
	"strings"

	"github.com/arthur-debert/sawkit/pkg/chainsaw"
	"github.com/arthur-debert/sawkit/pkg/commands"
	"github.com/spf13/cobra"
)

// forwardedCommand is a chainsaw subcommand passed through unchanged
type forwardedCommand struct {
	Name  string
	Short string
}

var forwardedSubcommands = []forwardedCommand{
	{"search", MsgSearchShort},
	{"analyse", MsgAnalyseShort},
	{"dump", MsgDumpShort},
}

// wrapper builds the chainsaw wrapper on the command's streams
func (e *env) wrapper() *chainsaw.Wrapper {
	return chainsaw.New(chainsaw.Options{
		FS:     e.fs,
		Runner: e.runner,
		Paths:  e.paths,
		Config: e.config,
		Stdin:  e.in,
		Stdout: e.out,
		Stderr: e.errOut,
	})
}

// passthroughArgs drops a leading "--" kept by disabled flag parsing
func passthroughArgs(args []string) []string {
	if len(args) > 0 && args[0] == "--" {
		return args[1:]
	}
	return args
}

func newRunCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:                "run [-- args...]",
		Short:              MsgRunShort,
		GroupID:            "hunt",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := g.newEnv(cmd, envOptions{})
			if err != nil {
				return err
			}
			ctx, cancel := g.context(cmd)
			defer cancel()
			return e.wrapper().Run(ctx, passthroughArgs(args))
		},
	}
}

func newHuntCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:                "hunt <logs> <rules> [chainsaw args...]",
		Short:              MsgHuntShort,
		Long:               MsgHuntLong,
		Example:            MsgHuntExample,
		GroupID:            "hunt",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := g.newEnv(cmd, envOptions{})
			if err != nil {
				return err
			}
			ctx, cancel := g.context(cmd)
			defer cancel()
			return e.wrapper().Hunt(ctx, passthroughArgs(args))
		},
	}
}

func newForwardCmd(g *globals, sub forwardedCommand) *cobra.Command {
	return &cobra.Command{
		Use:                sub.Name + " [chainsaw args...]",
		Short:              sub.Short,
		GroupID:            "hunt",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := g.newEnv(cmd, envOptions{})
			if err != nil {
				return err
			}
			ctx, cancel := g.context(cmd)
			defer cancel()
			return e.wrapper().Forward(ctx, sub.Name, passthroughArgs(args))
		},
	}
}

func newRulesCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rules",
		Short:   MsgRulesShort,
		Long:    MsgRulesLong,
		Example: MsgRulesExample,
		GroupID: "hunt",
	}

	browseOptions := func(cmd *cobra.Command) (*env, commands.BrowseOptions, error) {
		e, err := g.newEnv(cmd, envOptions{})
		if err != nil {
			return nil, commands.BrowseOptions{}, err
		}
		return e, commands.BrowseOptions{FS: e.fs, Paths: e.paths, Config: e.config}, nil
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: MsgRulesPathShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, opts, err := browseOptions(cmd)
			if err != nil {
				return err
			}
			result, err := commands.RulesPath(opts)
			if err != nil {
				return err
			}
			return e.renderer.RenderResult(result)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: MsgRulesListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, opts, err := browseOptions(cmd)
			if err != nil {
				return err
			}
			result, err := commands.RulesList(opts)
			if err != nil {
				return err
			}
			return e.renderer.RenderResult(result)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "search <term>",
		Short: MsgRulesSearch,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, opts, err := browseOptions(cmd)
			if err != nil {
				return err
			}
			result, err := commands.RulesSearch(opts, args[0])
			if err != nil {
				return err
			}
			return e.renderer.RenderResult(result)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "count",
		Short: MsgRulesCountShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, opts, err := browseOptions(cmd)
			if err != nil {
				return err
			}
			result, err := commands.RulesCount(opts)
			if err != nil {
				return err
			}
			return e.renderer.RenderResult(result)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <rule>",
		Short: MsgRulesShowShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, opts, err := browseOptions(cmd)
			if err != nil {
				return err
			}
			result, err := commands.RulesShow(opts, strings.TrimSpace(args[0]))
			if err != nil {
				return err
			}
			return e.renderer.RenderResult(result)
		},
	})

	var levels bool
	stats := &cobra.Command{
		Use:   "stats",
		Short: MsgRulesStatsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, opts, err := browseOptions(cmd)
			if err != nil {
				return err
			}
			result, err := commands.RulesStats(opts, levels)
			if err != nil {
				return err
			}
			return e.renderer.RenderResult(result)
		},
	}
	stats.Flags().BoolVar(&levels, "levels", false, MsgFlagLevels)
	cmd.AddCommand(stats)

	return cmd
}
