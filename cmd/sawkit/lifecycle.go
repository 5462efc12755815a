package sawkit

import (
	"fmt"

	"github.com/arthur-debert/sawkit/internal/version"
	"github.com/arthur-debert/sawkit/pkg/commands"
	"github.com/arthur-debert/sawkit/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newInstallCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:     "install",
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		Example: MsgInstallExample,
		Args:    cobra.NoArgs,
		GroupID: "setup",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := g.newEnv(cmd, envOptions{skipRecord: true})
			if err != nil {
				return err
			}
			exe, err := sawkitPath()
			if err != nil {
				return err
			}
			ctx, cancel := g.context(cmd)
			defer cancel()

			log.Info().
				Str("install_root", e.paths.InstallRoot()).
				Bool("dry_run", g.dryRun).
				Msg("Installing")

			result, err := commands.Install(ctx, commands.InstallOptions{
				FS:        e.fs,
				Runner:    e.runner,
				Confirmer: e.confirmer,
				Paths:     e.paths,
				Config:    e.config,
				Output:    e.errOut,
				Sawkit:    exe,
				Version:   version.Version,
				DryRun:    g.dryRun,
			})
			if result != nil && result.Report != nil {
				if rerr := e.renderer.RenderResult(result); rerr != nil {
					return rerr
				}
			}
			return err
		},
	}
}

func newUpdateCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:     "update",
		Short:   MsgUpdateShort,
		Long:    MsgUpdateLong,
		Args:    cobra.NoArgs,
		GroupID: "setup",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := g.newEnv(cmd, envOptions{})
			if err != nil {
				return err
			}
			ctx, cancel := g.context(cmd)
			defer cancel()

			result, err := commands.Update(ctx, commands.UpdateOptions{
				FS:      e.fs,
				Runner:  e.runner,
				Paths:   e.paths,
				Config:  e.config,
				Output:  e.errOut,
				Version: version.Version,
				DryRun:  g.dryRun,
			})
			if result != nil && result.Report != nil {
				if rerr := e.renderer.RenderResult(result); rerr != nil {
					return rerr
				}
			}
			return err
		},
	}
}

func newUninstallCmd(g *globals) *cobra.Command {
	var shellOnly bool

	cmd := &cobra.Command{
		Use:     "uninstall",
		Short:   MsgUninstallShort,
		Long:    MsgUninstallLong,
		Args:    cobra.NoArgs,
		GroupID: "setup",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := g.newEnv(cmd, envOptions{})
			if err != nil {
				return err
			}

			if shellOnly {
				result, err := commands.ShellRemove(commands.AliasesOptions{
					FS:    e.fs,
					Paths: e.paths,
				})
				if err != nil {
					return err
				}
				return e.renderer.RenderResult(result)
			}

			result, err := commands.Uninstall(commands.UninstallOptions{
				FS:        e.fs,
				Confirmer: e.confirmer,
				Paths:     e.paths,
				DryRun:    g.dryRun,
			})
			if errors.IsErrorCode(err, errors.ErrCancelled) {
				_ = e.renderer.RenderMessage("[muted]Uninstall cancelled, nothing was changed[/muted]")
				return err
			}
			if err != nil {
				return err
			}
			return e.renderer.RenderResult(result)
		},
	}

	cmd.Flags().BoolVar(&shellOnly, "shell-only", false, MsgFlagShellOnly)

	return cmd
}

func newStatusCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		Args:    cobra.NoArgs,
		GroupID: "setup",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := g.newEnv(cmd, envOptions{})
			if err != nil {
				return err
			}
			ctx, cancel := g.context(cmd)
			defer cancel()

			return e.renderer.RenderResult(commands.Status(ctx, commands.StatusOptions{
				FS:     e.fs,
				Runner: e.runner,
				Paths:  e.paths,
				Config: e.config,
			}))
		},
	}
}

func newShellCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "shell",
		Short:   MsgShellShort,
		Long:    MsgShellLong,
		GroupID: "setup",
	}

	aliasesOptions := func(cmd *cobra.Command) (*env, commands.AliasesOptions, error) {
		e, err := g.newEnv(cmd, envOptions{})
		if err != nil {
			return nil, commands.AliasesOptions{}, err
		}
		exe, err := sawkitPath()
		if err != nil {
			return nil, commands.AliasesOptions{}, err
		}
		return e, commands.AliasesOptions{FS: e.fs, Paths: e.paths, Sawkit: exe}, nil
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "install",
		Short: MsgShellInstall,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, opts, err := aliasesOptions(cmd)
			if err != nil {
				return err
			}
			if g.dryRun {
				fmt.Fprint(e.out, commands.ShellBlock(opts))
				return nil
			}
			result, err := commands.ShellInstall(opts)
			if err != nil {
				return err
			}
			return e.renderer.RenderResult(result)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove",
		Short: MsgShellRemove,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, opts, err := aliasesOptions(cmd)
			if err != nil {
				return err
			}
			result, err := commands.ShellRemove(opts)
			if err != nil {
				return err
			}
			return e.renderer.RenderResult(result)
		},
	})

	var block bool
	snippet := &cobra.Command{
		Use:   "snippet",
		Short: MsgShellSnippet,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, opts, err := aliasesOptions(cmd)
			if err != nil {
				return err
			}
			if block {
				fmt.Fprint(e.out, commands.ShellBlock(opts))
				return nil
			}
			fmt.Fprint(e.out, commands.ShellSnippet(opts))
			return nil
		},
	}
	snippet.Flags().BoolVar(&block, "block", false, MsgFlagBlock)
	cmd.AddCommand(snippet)

	return cmd
}

func newConfigCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "setup",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := g.newEnv(cmd, envOptions{})
			if err != nil {
				return err
			}
			result, err := commands.ShowConfig(e.config)
			if err != nil {
				return err
			}
			return e.renderer.RenderResult(result)
		},
	})

	var write bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := g.newEnv(cmd, envOptions{})
			if err != nil {
				return err
			}
			result, err := commands.GenConfig(commands.GenConfigOptions{
				FS:    e.fs,
				Paths: e.paths,
				Write: write && !g.dryRun,
			})
			if err != nil {
				return err
			}
			return e.renderer.RenderResult(result)
		},
	}
	initCmd.Flags().BoolVar(&write, "write", false, MsgFlagWrite)
	cmd.AddCommand(initCmd)

	return cmd
}
