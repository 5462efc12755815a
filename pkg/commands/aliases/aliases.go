// Package aliases implements `sawkit shell`: write, remove or print the
// shell integration on its own.
package aliases

import (
	"strings"
	"time"

	"github.com/arthur-debert/sawkit/pkg/logging"
	"github.com/arthur-debert/sawkit/pkg/paths"
	"github.com/arthur-debert/sawkit/pkg/shell"
	"github.com/arthur-debert/sawkit/pkg/style"
	"github.com/arthur-debert/sawkit/pkg/types"
)

// AliasesOptions defines the options for the shell commands.
type AliasesOptions struct {
	FS    types.FS
	Paths paths.Paths
	// Sawkit is the executable the generated functions call
	Sawkit string
	Now    func() time.Time
}

// AliasesResult wraps a shell.Result for display
type AliasesResult struct {
	*shell.Result
	Action string `json:"action"`
	home   string
}

func integration(opts AliasesOptions) *shell.Integration {
	return shell.NewIntegration(shell.Options{
		FS:          opts.FS,
		AliasFile:   opts.Paths.AliasFile(),
		StartupFile: opts.Paths.StartupFile(),
		HomeDir:     opts.Paths.HomeDir(),
		Now:         opts.Now,
	})
}

// Install writes the generated block and the startup source line
func Install(opts AliasesOptions) (*AliasesResult, error) {
	log := logging.GetLogger("commands.aliases")
	log.Debug().Str("command", "ShellInstall").Msg("Executing command")

	result, err := integration(opts).Install(shell.NewEnv(opts.Paths, opts.Sawkit))
	if err != nil {
		return nil, err
	}
	return &AliasesResult{Result: result, Action: "install", home: opts.Paths.HomeDir()}, nil
}

// Remove strips the generated block and the startup source line
func Remove(opts AliasesOptions) (*AliasesResult, error) {
	log := logging.GetLogger("commands.aliases")
	log.Debug().Str("command", "ShellRemove").Msg("Executing command")

	result, err := integration(opts).Remove()
	if err != nil {
		return nil, err
	}
	return &AliasesResult{Result: result, Action: "remove", home: opts.Paths.HomeDir()}, nil
}

// Snippet returns the line the startup file needs to load the alias file
func Snippet(opts AliasesOptions) string {
	return shell.SourceSnippet(opts.Paths.AliasFile())
}

// Block returns the generated block as it would be written
func Block(opts AliasesOptions) string {
	return shell.RenderBlock(shell.NewEnv(opts.Paths, opts.Sawkit))
}

func (r *AliasesResult) lines() []string {
	var out []string
	show := func(p string) string { return paths.ContractHome(r.home, p) }

	if r.BackupFile != "" {
		out = append(out, "backed up "+show(r.AliasFile)+" to "+show(r.BackupFile))
	}
	if r.BlocksRemoved > 0 {
		out = append(out, "removed the generated block from "+show(r.AliasFile))
	}
	if r.BlockWritten {
		out = append(out, "wrote the generated block to "+show(r.AliasFile))
	}
	if r.SourceAdded {
		out = append(out, "added the source line to "+show(r.StartupFile))
	}
	if r.SourceRemoved {
		out = append(out, "removed the source line from "+show(r.StartupFile))
	}
	if len(out) == 0 {
		out = append(out, "nothing to do")
	}
	return out
}

// RenderText lists what changed, one change per line
func (r *AliasesResult) RenderText() string {
	return strings.Join(r.lines(), "\n") + "\n"
}

// RenderTerminal lists what changed with indicators
func (r *AliasesResult) RenderTerminal() string {
	var b strings.Builder
	for _, line := range r.lines() {
		b.WriteString(style.SuccessIndicator + " " + line + "\n")
	}
	return b.String()
}
