package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/arthur-debert/sawkit/pkg/errors"
	"github.com/arthur-debert/sawkit/pkg/types"
	"github.com/stretchr/testify/mock"
)

// MockRunner is a testify mock of types.Runner
type MockRunner struct {
	mock.Mock
}

var _ types.Runner = (*MockRunner)(nil)

// Run records the call and returns the configured result
func (m *MockRunner) Run(ctx context.Context, cmd types.Command) (*types.CommandResult, error) {
	args := m.Called(ctx, cmd)
	var result *types.CommandResult
	if r := args.Get(0); r != nil {
		result = r.(*types.CommandResult)
	}
	return result, args.Error(1)
}

// LookPath records the call and returns the configured path
func (m *MockRunner) LookPath(name string) (string, error) {
	args := m.Called(name)
	return args.String(0), args.Error(1)
}

// PrependPath records the call
func (m *MockRunner) PrependPath(dir string) {
	m.Called(dir)
}

// MockConfirmer answers confirmations through ConfirmFunc
type MockConfirmer struct {
	ConfirmFunc func(req types.ConfirmationRequest) (bool, error)
	Requests    []types.ConfirmationRequest
}

// Confirm records the request and runs ConfirmFunc, declining by default
func (m *MockConfirmer) Confirm(req types.ConfirmationRequest) (bool, error) {
	m.Requests = append(m.Requests, req)
	if m.ConfirmFunc != nil {
		return m.ConfirmFunc(req)
	}
	return false, nil
}

// Handler scripts the outcome of one command in a FakeRunner
type Handler func(cmd types.Command) (*types.CommandResult, error)

// FakeRunner dispatches commands to handlers keyed by "name" or
// "name subcommand" and records every call. Unscripted commands succeed
// with empty output.
type FakeRunner struct {
	mu       sync.Mutex
	Handlers map[string]Handler
	Calls    []types.Command
	Path     []string
	Missing  map[string]bool
}

var _ types.Runner = (*FakeRunner)(nil)

// NewFakeRunner creates an empty FakeRunner
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		Handlers: make(map[string]Handler),
		Missing:  make(map[string]bool),
	}
}

// On registers h for key
func (f *FakeRunner) On(key string, h Handler) *FakeRunner {
	f.Handlers[key] = h
	return f
}

// Run records cmd and dispatches it
func (f *FakeRunner) Run(ctx context.Context, cmd types.Command) (*types.CommandResult, error) {
	f.mu.Lock()
	f.Calls = append(f.Calls, cmd)
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(cmd.Args) > 0 {
		if h, ok := f.Handlers[cmd.Name+" "+cmd.Args[0]]; ok {
			return h(cmd)
		}
	}
	if h, ok := f.Handlers[cmd.Name]; ok {
		return h(cmd)
	}
	return &types.CommandResult{}, nil
}

// LookPath fails for names listed in Missing
func (f *FakeRunner) LookPath(name string) (string, error) {
	if f.Missing[name] {
		return "", fmt.Errorf("executable file not found in $PATH: %s", name)
	}
	return "/usr/bin/" + name, nil
}

// PrependPath records dir
func (f *FakeRunner) PrependPath(dir string) {
	f.Path = append([]string{dir}, f.Path...)
}

// Commands returns every recorded call as "name arg..." strings
func (f *FakeRunner) Commands() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		out[i] = strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
	}
	return out
}

// Ran reports whether a recorded command starts with prefix
func (f *FakeRunner) Ran(prefix string) bool {
	for _, c := range f.Commands() {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

// Succeed returns a handler printing stdout with exit status 0
func Succeed(stdout string) Handler {
	return func(types.Command) (*types.CommandResult, error) {
		return &types.CommandResult{Stdout: stdout}, nil
	}
}

// Fail returns a handler exiting with code, the way execx reports it
func Fail(code int) Handler {
	return func(cmd types.Command) (*types.CommandResult, error) {
		return &types.CommandResult{ExitCode: code},
			errors.Newf(errors.ErrCommandExecute, "%s exited with status %d", cmd.Name, code).
				WithDetail(errors.DetailExitCode, code)
	}
}
