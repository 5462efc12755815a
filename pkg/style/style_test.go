package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndent(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		level    int
		expected string
	}{
		{"no indent", "Hello", 0, "Hello"},
		{"single indent", "Hello", 1, "  Hello"},
		{"double indent", "Hello", 2, "    Hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Indent(tt.text, tt.level))
		})
	}
}

func TestMarkup_RenderKeepsContent(t *testing.T) {
	out := Render("Installed [path]~/tools/chainsaw[/path] with [bold]9 steps[/bold]")

	assert.Contains(t, out, "~/tools/chainsaw")
	assert.Contains(t, out, "9 steps")
	assert.NotContains(t, out, "[path]")
	assert.NotContains(t, out, "[/bold]")
}

func TestMarkup_UnknownTagsAreLeftAlone(t *testing.T) {
	assert.Equal(t, "[nope]x[/nope]", Render("[nope]x[/nope]"))
}

func TestMarkup_Strip(t *testing.T) {
	assert.Equal(t, "Run sawkit status", Strip("Run [code]sawkit status[/code]"))
}

func TestPlainIndicator(t *testing.T) {
	assert.Equal(t, "✓", PlainIndicator(StatusDone))
	assert.Equal(t, "✗", PlainIndicator(StatusFailed))
	assert.Equal(t, "○", PlainIndicator(StatusPlanned))
	assert.Equal(t, "-", PlainIndicator(StatusSkipped))
}

func TestRenderStep(t *testing.T) {
	line := RenderStep("build", StatusFailed, "Build and install the chainsaw binary")

	assert.Contains(t, line, "build")
	assert.Contains(t, line, "Build and install the chainsaw binary")
}
