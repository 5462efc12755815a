// Package status implements `sawkit status`
package status

import (
	"context"
	"time"

	"github.com/arthur-debert/sawkit/pkg/config"
	"github.com/arthur-debert/sawkit/pkg/logging"
	"github.com/arthur-debert/sawkit/pkg/paths"
	"github.com/arthur-debert/sawkit/pkg/summary"
	"github.com/arthur-debert/sawkit/pkg/types"
)

// StatusOptions defines the options for the Status command.
type StatusOptions struct {
	FS     types.FS
	Runner types.Runner
	Paths  paths.Paths
	Config *config.Config
	Now    func() time.Time
}

// Status reports the state of the installation. It never fails; values
// that cannot be queried are Unknown.
func Status(ctx context.Context, opts StatusOptions) *summary.Summary {
	log := logging.GetLogger("commands.status")
	log.Debug().Str("command", "Status").Msg("Executing command")

	return summary.Collect(ctx, summary.Options{
		FS:     opts.FS,
		Runner: opts.Runner,
		Paths:  opts.Paths,
		Config: opts.Config,
		Now:    opts.Now,
	})
}
