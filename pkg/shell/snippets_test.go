package shell_test

import (
	"testing"

	"github.com/arthur-debert/sawkit/pkg/shell"
	"github.com/stretchr/testify/assert"
)

func TestSourceSnippet(t *testing.T) {
	assert.Equal(t,
		"# Load Chainsaw aliases (added by sawkit)\nif [ -f '/home/alice/.bash_aliases' ]; then . '/home/alice/.bash_aliases'; fi\n",
		shell.SourceSnippet("/home/alice/.bash_aliases"))
}

func TestReferencesFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		file    string
		home    string
		want    bool
	}{
		{"absolute", ". /home/a/.bash_aliases", "/home/a/.bash_aliases", "/home/a", true},
		{"tilde", ". ~/.bash_aliases", "/home/a/.bash_aliases", "/home/a", true},
		{"nested_tilde", ". ~/dots/aliases.sh", "/home/a/dots/aliases.sh", "/home/a", true},
		{"outside_home", ". ~/aliases", "/etc/aliases", "/home/a", false},
		{"no_home", ". ~/.bash_aliases", "/home/a/.bash_aliases", "", false},
		{"absent", "export X=1", "/home/a/.bash_aliases", "/home/a", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shell.ReferencesFile(tt.content, tt.file, tt.home))
		})
	}
}
