package shell

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/arthur-debert/sawkit/pkg/errors"
	"github.com/arthur-debert/sawkit/pkg/paths"
)

// Sentinel lines delimiting the generated block
const (
	BeginMarker = "# Chainsaw aliases - Auto-generated"
	EndMarker   = "# End Chainsaw aliases"
)

// Env holds the absolute paths the block is rendered from
type Env struct {
	// InstallRoot is exported as CHAINSAW_HOME
	InstallRoot string

	// RulesDir is exported as SIGMA_RULES
	RulesDir string

	// BinDir is prepended to PATH
	BinDir string

	// Sawkit is the executable the shell functions forward to
	Sawkit string
}

// forwarder is a shell function that maps onto a sawkit subcommand
type forwarder struct {
	Name    string
	Command string
}

var forwarders = []forwarder{
	{"chainsaw", "run"},
	{"chainsaw-hunt", "hunt"},
	{"chainsaw-search", "search"},
	{"chainsaw-analyse", "analyse"},
	{"chainsaw-dump", "dump"},
	{"sigma-list", "rules list"},
	{"sigma-search", "rules search"},
	{"sigma-count", "rules count"},
	{"chainsaw-update", "update"},
}

// FunctionNames lists every shell function the block defines
func FunctionNames() []string {
	names := make([]string, 0, len(forwarders)+1)
	for _, f := range forwarders {
		names = append(names, f.Name)
	}
	return append(names, "sigma-cd")
}

var blockTemplate = template.Must(template.New("block").Funcs(template.FuncMap{
	"q": Quote,
}).Parse(`{{.Begin}}
# Managed by sawkit. Regenerate with ` + "`sawkit shell install`" + `; manual edits are lost.
export CHAINSAW_HOME={{q .Env.InstallRoot}}
export SIGMA_RULES={{q .Env.RulesDir}}
export PATH={{q .Env.BinDir}}:"$PATH"
{{range .Forwarders}}
{{.Name}}() {
    {{q $.Env.Sawkit}} {{.Command}} "$@"
}
{{end}}
sigma-cd() {
    local dir
    dir="$({{q .Env.Sawkit}} rules path)" || return 1
    cd "$dir" || return 1
}
{{.End}}
`))

// RenderBlock returns the generated block for env, sentinels included and
// newline terminated. Output depends on env alone.
func RenderBlock(env Env) string {
	var buf bytes.Buffer
	err := blockTemplate.Execute(&buf, struct {
		Begin, End string
		Env        Env
		Forwarders []forwarder
	}{BeginMarker, EndMarker, env, forwarders})
	if err != nil {
		panic(err)
	}
	return buf.String()
}

// StripBlocks removes every generated block, sentinel lines included, and
// returns the remaining text with the number of blocks removed. A closing
// marker outside a block, an opening marker inside one, or an opening
// marker that is never closed is reported as ErrMarkerMismatch.
func StripBlocks(content string) (string, int, error) {
	if content == "" {
		return "", 0, nil
	}

	lines := strings.SplitAfter(content, "\n")
	var out strings.Builder
	out.Grow(len(content))

	inBlock := false
	openedAt := 0
	removed := 0

	for i, line := range lines {
		switch markerOf(line) {
		case BeginMarker:
			if inBlock {
				return "", 0, mismatch("nested opening marker", i+1, openedAt)
			}
			inBlock = true
			openedAt = i + 1
			continue
		case EndMarker:
			if !inBlock {
				return "", 0, mismatch("closing marker without opening marker", i+1, 0)
			}
			inBlock = false
			removed++
			continue
		}

		if !inBlock {
			out.WriteString(line)
		}
	}

	if inBlock {
		return "", 0, mismatch("opening marker is never closed", openedAt, openedAt)
	}

	return out.String(), removed, nil
}

// ReplaceBlock strips every generated block from content and appends a
// fresh one for env. Remaining content that does not end in a newline gets
// one so the opening sentinel starts its own line.
func ReplaceBlock(content string, env Env) (string, int, error) {
	stripped, removed, err := StripBlocks(content)
	if err != nil {
		return "", 0, err
	}

	if stripped != "" && !strings.HasSuffix(stripped, "\n") {
		stripped += "\n"
	}

	return stripped + RenderBlock(env), removed, nil
}

// CountBlocks returns how many generated blocks content holds
func CountBlocks(content string) (int, error) {
	_, n, err := StripBlocks(content)
	return n, err
}

// markerOf returns the sentinel a line holds, ignoring trailing whitespace
func markerOf(line string) string {
	trimmed := strings.TrimRight(line, " \t\r\n")
	if trimmed == BeginMarker || trimmed == EndMarker {
		return trimmed
	}
	return ""
}

func mismatch(reason string, line, openedAt int) error {
	err := errors.Newf(errors.ErrMarkerMismatch, "generated block markers are unbalanced: %s at line %d", reason, line).
		WithDetail("line", line)
	if openedAt > 0 {
		err.WithDetail("opened_at", openedAt)
	}
	return err
}

// Quote returns s as a single-quoted shell word
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// NewEnv derives the block paths from the resolved sawkit paths
func NewEnv(p paths.Paths, sawkit string) Env {
	return Env{
		InstallRoot: p.InstallRoot(),
		RulesDir:    p.SigmaRulesDir(),
		BinDir:      p.BinDir(),
		Sawkit:      sawkit,
	}
}
