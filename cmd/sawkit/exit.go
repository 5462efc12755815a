package sawkit

import (
	stderrors "errors"
	"io"
	"os/exec"

	"github.com/arthur-debert/sawkit/pkg/errors"
	"github.com/arthur-debert/sawkit/pkg/ui"
	"github.com/spf13/cobra"
)

// HandleError reports err on w and returns the process exit code. A
// declined confirmation exits 0. A chainsaw run that exited non-zero has
// already printed its own error and only passes its status on.
func HandleError(cmd *cobra.Command, err error, w io.Writer) int {
	if err == nil {
		return 0
	}
	if errors.IsErrorCode(err, errors.ErrCancelled) {
		return 0
	}

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}

	format := ui.FormatAuto
	if cmd != nil {
		if value, ferr := cmd.PersistentFlags().GetString("output"); ferr == nil {
			if parsed, perr := ui.ParseFormat(value); perr == nil {
				format = parsed
			}
		}
	}
	renderer, rerr := ui.NewRenderer(format, w)
	if rerr == nil {
		_ = renderer.RenderError(err)
	}

	return errors.ExitCode(err)
}
