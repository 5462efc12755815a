package execx

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/sawkit/pkg/errors"
	"github.com/arthur-debert/sawkit/pkg/logging"
	"github.com/arthur-debert/sawkit/pkg/types"
	"github.com/rs/zerolog"
)

// ExitNotFound is the status reported when the executable cannot be found,
// matching what a shell returns
const ExitNotFound = 127

// waitDelay bounds how long output pipes are drained after cancellation
const waitDelay = 2 * time.Second

// OSRunner executes commands with os/exec
type OSRunner struct {
	logger     zerolog.Logger
	pathPrefix []string
}

var _ types.Runner = (*OSRunner)(nil)

// NewOSRunner creates a runner using the process environment
func NewOSRunner() *OSRunner {
	return &OSRunner{
		logger: logging.GetLogger("execx.runner"),
	}
}

// PrependPath adds dir in front of PATH for later commands
func (r *OSRunner) PrependPath(dir string) {
	for _, existing := range r.pathPrefix {
		if existing == dir {
			return
		}
	}
	r.pathPrefix = append([]string{dir}, r.pathPrefix...)
	r.logger.Debug().Str("dir", dir).Msg("Prepended to PATH")
}

// searchPath returns the effective PATH entries
func (r *OSRunner) searchPath() []string {
	dirs := append([]string{}, r.pathPrefix...)
	return append(dirs, filepath.SplitList(os.Getenv("PATH"))...)
}

// LookPath resolves name against the effective PATH
func (r *OSRunner) LookPath(name string) (string, error) {
	if strings.ContainsRune(name, filepath.Separator) {
		if isExecutable(name) {
			return name, nil
		}
		return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
	}

	for _, dir := range r.searchPath() {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name)
		if isExecutable(candidate) {
			return candidate, nil
		}
	}

	return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return info.Mode().Perm()&0111 != 0
}

// environ returns the child environment with the PATH prefix applied
func (r *OSRunner) environ(extra []string) []string {
	env := make([]string, 0, len(os.Environ())+len(extra)+1)
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, "PATH=") {
			env = append(env, kv)
		}
	}
	env = append(env, "PATH="+strings.Join(r.searchPath(), string(filepath.ListSeparator)))
	return append(env, extra...)
}

// Run executes cmd and waits for it to finish
func (r *OSRunner) Run(ctx context.Context, c types.Command) (*types.CommandResult, error) {
	if c.Name == "" {
		return nil, errors.New(errors.ErrInvalidInput, "command name is empty")
	}

	logging.LogCommand(r.logger, c.Name, c.Args, c.Dir)

	resolved, err := r.LookPath(c.Name)
	if err != nil {
		result := &types.CommandResult{ExitCode: ExitNotFound}
		return result, errors.Wrapf(err, errors.ErrCommandExecute, "command not found: %s", c.Name).
			WithDetail(errors.DetailExitCode, ExitNotFound)
	}

	if c.Dir != "" {
		if info, statErr := os.Stat(c.Dir); statErr != nil || !info.IsDir() {
			return nil, errors.Newf(errors.ErrFileAccess, "working directory does not exist: %s", c.Dir)
		}
	}

	cmd := exec.CommandContext(ctx, resolved, c.Args...)
	cmd.Dir = c.Dir
	cmd.Env = r.environ(c.Env)
	cmd.Stdin = c.Stdin
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = tee(&stdout, c.Stdout)
	cmd.Stderr = tee(&stderr, c.Stderr)

	start := time.Now()
	runErr := cmd.Run()
	result := &types.CommandResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if runErr == nil {
		r.logger.Debug().
			Str("command", c.Name).
			Dur("duration", result.Duration).
			Msg("Command executed successfully")
		return result, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		result.ExitCode = -1
		return result, errors.Wrapf(ctxErr, errors.ErrCommandExecute, "%s did not finish", c.Name)
	}

	var exitErr *exec.ExitError
	if stderrors.As(runErr, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		r.logger.Debug().
			Str("command", c.Name).
			Int("exit_code", result.ExitCode).
			Str("stderr", result.Stderr).
			Msg("Command exited with non-zero status")
		return result, errors.Wrapf(runErr, errors.ErrCommandExecute, "%s exited with status %d", c.Name, result.ExitCode).
			WithDetail(errors.DetailExitCode, result.ExitCode)
	}

	result.ExitCode = -1
	return result, errors.Wrapf(runErr, errors.ErrCommandExecute, "failed to execute %s", c.Name)
}

// tee captures into buf and, when w is set, streams to w as well
func tee(buf *bytes.Buffer, w io.Writer) io.Writer {
	if w == nil {
		return buf
	}
	return io.MultiWriter(buf, w)
}
