// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/sawkit/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "clone_error",
			code:    errors.ErrClone,
			message: "failed to clone sigma",
			wantStr: "[CLONE] failed to clone sigma",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "search term is empty",
			wantStr: "[INVALID_INPUT] search term is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestWrap(t *testing.T) {
	base := stderrors.New("exit status 128")

	err := errors.Wrapf(base, errors.ErrClone, "failed to clone %s", "chainsaw")
	assert.Equal(t, "[CLONE] failed to clone chainsaw: exit status 128", err.Error())
	assert.True(t, stderrors.Is(err, base))

	assert.Nil(t, errors.Wrap(nil, errors.ErrBuild, "ignored"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrBuild, "ignored %d", 1))
}

func TestIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", errors.New(errors.ErrCancelled, "declined"))

	assert.True(t, stderrors.Is(err, errors.New(errors.ErrCancelled, "")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrBuild, "")))
	assert.True(t, errors.IsErrorCode(err, errors.ErrCancelled))
	assert.Equal(t, errors.ErrCancelled, errors.GetErrorCode(err))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
}

func TestDetails(t *testing.T) {
	err := errors.New(errors.ErrRuleNotFound, "missing").
		WithDetail("path", "/rules/windows").
		WithDetail("categories", []string{"linux", "windows"})

	details := errors.GetErrorDetails(err)
	assert.Equal(t, "/rules/windows", details["path"])
	assert.Equal(t, []string{"linux", "windows"}, details["categories"])
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain_error", stderrors.New("boom"), 1},
		{"no_detail", errors.New(errors.ErrBuild, "failed"), 1},
		{"carries_status", errors.New(errors.ErrCommandExecute, "failed").WithDetail(errors.DetailExitCode, 3), 3},
		{"wrapped_status", fmt.Errorf("run: %w", errors.New(errors.ErrCommandExecute, "x").WithDetail(errors.DetailExitCode, 2)), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.ExitCode(tt.err))
		})
	}
}
