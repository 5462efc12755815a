package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/sawkit/pkg/types"
)

// FakeChainsawVersion is what the fake chainsaw binary prints
const FakeChainsawVersion = "chainsaw 2.9.1"

// NewToolchainRunner returns a FakeRunner that imitates cargo, git and
// the built chainsaw binary against env's filesystem: clones create the
// checkout (Sigma with one rule), builds create the release artifact.
func NewToolchainRunner(t *testing.T, env *Environment) *FakeRunner {
	t.Helper()
	runner := NewFakeRunner()

	runner.On("cargo --version", Succeed("cargo 1.80.0\n"))
	runner.On("git clone", func(cmd types.Command) (*types.CommandResult, error) {
		dest := cmd.Args[len(cmd.Args)-1]
		env.WriteFile(t, filepath.Join(dest, "README.md"), "checkout\n")
		if dest == env.Paths.SigmaDir() {
			env.WriteFile(t, filepath.Join(dest, "rules", "windows", "proc.yml"), "title: x\n")
		}
		return &types.CommandResult{}, nil
	})
	runner.On("cargo build", func(cmd types.Command) (*types.CommandResult, error) {
		env.WriteFile(t, filepath.Join(cmd.Dir, "target", "release", "chainsaw"), "ELF")
		return &types.CommandResult{}, nil
	})
	runner.On(env.Paths.BinaryPath(), Succeed(FakeChainsawVersion+"\n"))

	return runner
}
