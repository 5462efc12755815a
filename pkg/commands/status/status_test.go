package status_test

import (
	"context"
	"testing"

	"github.com/arthur-debert/sawkit/pkg/commands/status"
	"github.com/arthur-debert/sawkit/pkg/testutil"
	"github.com/stretchr/testify/assert"
)

func TestStatus_PartialInstallation(t *testing.T) {
	env := testutil.NewEnvironment(t)
	env.InstallBinary(t)
	runner := testutil.NewToolchainRunner(t, env)

	s := status.Status(context.Background(), status.StatusOptions{
		FS: env.FS, Runner: runner, Paths: env.Paths, Config: env.Config,
	})

	assert.True(t, s.Installed)
	assert.Equal(t, testutil.FakeChainsawVersion, s.ChainsawVersion)
	assert.False(t, s.RulesPresent)
	assert.False(t, s.Ready())
	assert.Contains(t, s.RenderText(), "The installation is incomplete.")
}
