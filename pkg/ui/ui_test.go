package ui_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/arthur-debert/sawkit/pkg/errors"
	"github.com/arthur-debert/sawkit/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type layoutResult struct {
	Count int `json:"count"`
}

func (l layoutResult) RenderText() string     { return "count: 3" }
func (l layoutResult) RenderTerminal() string { return "COUNT 3" }

type plainResult struct {
	Name string `json:"name"`
}

func (p plainResult) RenderText() string { return "name: " + p.Name }

func TestNewRenderer(t *testing.T) {
	for _, format := range []ui.Format{ui.FormatAuto, ui.FormatTerminal, ui.FormatText, ui.FormatJSON} {
		t.Run(format.String(), func(t *testing.T) {
			renderer, err := ui.NewRenderer(format, &bytes.Buffer{})
			require.NoError(t, err)
			assert.NotNil(t, renderer)
		})
	}

	_, err := ui.NewRenderer(ui.Format(999), &bytes.Buffer{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestRenderResult(t *testing.T) {
	tests := []struct {
		name     string
		format   ui.Format
		result   interface{}
		expected string
	}{
		{"text layout", ui.FormatText, layoutResult{Count: 3}, "count: 3\n"},
		{"terminal layout", ui.FormatTerminal, layoutResult{Count: 3}, "COUNT 3\n"},
		{"terminal falls back to text", ui.FormatTerminal, plainResult{Name: "sigma"}, "name: sigma\n"},
		{"auto on a buffer is text", ui.FormatAuto, layoutResult{Count: 3}, "count: 3\n"},
		{"string slices one per line", ui.FormatText, []string{"linux", "windows"}, "linux\nwindows\n"},
		{"empty output writes nothing", ui.FormatText, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			renderer, err := ui.NewRenderer(tt.format, buf)
			require.NoError(t, err)

			require.NoError(t, renderer.RenderResult(tt.result))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestRenderResult_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatJSON, buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderResult(layoutResult{Count: 3}))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, float64(3), decoded["count"])
}

func TestRenderError(t *testing.T) {
	err := errors.Wrap(
		errors.New(errors.ErrCommandExecute, "exit status 2").WithDetail(errors.DetailExitCode, 2),
		errors.ErrBuild, "build failed in /home/analyst/tools/chainsaw",
	)

	t.Run("text drops the code prefix", func(t *testing.T) {
		buf := &bytes.Buffer{}
		renderer, _ := ui.NewRenderer(ui.FormatText, buf)
		require.NoError(t, renderer.RenderError(err))
		assert.Equal(t, "Error: build failed in /home/analyst/tools/chainsaw: exit status 2\n", buf.String())
	})

	t.Run("json carries the code", func(t *testing.T) {
		buf := &bytes.Buffer{}
		renderer, _ := ui.NewRenderer(ui.FormatJSON, buf)
		require.NoError(t, renderer.RenderError(errors.New(errors.ErrRuleNotFound, "no such rules").WithDetail("path", "/r")))

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "RULE_NOT_FOUND", decoded["code"])
		assert.Equal(t, map[string]interface{}{"path": "/r"}, decoded["details"])
	})
}

func TestRenderMessage_TextStripsMarkup(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, _ := ui.NewRenderer(ui.FormatText, buf)

	require.NoError(t, renderer.RenderMessage("Open a new shell or run [code]source ~/.bashrc[/code]"))
	assert.Equal(t, "Open a new shell or run source ~/.bashrc\n", buf.String())
}
