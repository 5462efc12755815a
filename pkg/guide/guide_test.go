package guide_test

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/arthur-debert/sawkit/pkg/errors"
	"github.com/arthur-debert/sawkit/pkg/guide"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"hunting.md":          {Data: []byte("# Hunting\n")},
		"option-dry-run.md":   {Data: []byte("DRY RUN MODE\n")},
		"advanced/mapping.md": {Data: []byte("mappings\n")},
		"notes.json":          {Data: []byte("{}")},
	}
}

func TestManager_Topics(t *testing.T) {
	m, err := guide.New(testFS(), guide.Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"hunting", "mapping", "option-dry-run"}, m.List())

	topic, ok := m.Get("mapping")
	require.True(t, ok)
	assert.Equal(t, "mappings\n", topic.Content)
}

func TestManager_FlagStyleNames(t *testing.T) {
	m, err := guide.New(testFS(), guide.Options{})
	require.NoError(t, err)

	for _, name := range []string{"--dry-run", "-dry-run", "dry-run", "option-dry-run"} {
		topic, ok := m.Get(name)
		require.True(t, ok, name)
		assert.Equal(t, "option-dry-run", topic.Name)
	}
}

func TestManager_RenderUnknown(t *testing.T) {
	m, err := guide.New(testFS(), guide.Options{})
	require.NoError(t, err)

	_, err = m.Render("nope")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestWriteIndex(t *testing.T) {
	m, err := guide.New(testFS(), guide.Options{})
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	m.WriteIndex(buf, "sawkit")

	assert.Equal(t, `Available help topics:

General topics:
  hunting
  mapping

Option topics:
  --dry-run

Use 'sawkit help <topic>' to read about a specific topic.
`, buf.String())
}

func TestEmbeddedTopics(t *testing.T) {
	m, err := guide.New(guide.Topics(), guide.Options{})
	require.NoError(t, err)

	for _, name := range []string{guide.DefaultGuideTopic, "hunting", "shell-integration", "configuration", "--dry-run", "--output"} {
		_, ok := m.Get(name)
		assert.True(t, ok, name)
	}
}

func TestInstallHelp(t *testing.T) {
	root := &cobra.Command{Use: "sawkit", Short: "test"}
	root.AddCommand(&cobra.Command{Use: "status", Short: "Show status", Run: func(*cobra.Command, []string) {}})

	m, err := guide.New(testFS(), guide.Options{})
	require.NoError(t, err)
	m.InstallHelp(root)

	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetArgs([]string{"help", "dry-run"})
	require.NoError(t, root.Execute())

	assert.Equal(t, "DRY RUN MODE\n", buf.String())
}

func TestGlamourRenderer_NonMarkdownUnchanged(t *testing.T) {
	r := guide.NewGlamourRenderer()
	assert.Equal(t, "plain", r.Render("plain", ".txt"))
}
