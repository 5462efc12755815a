// Package browse implements the `sawkit rules` commands: locate, list,
// search, count, inspect and tally Sigma rules.
package browse

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/sawkit/pkg/config"
	"github.com/arthur-debert/sawkit/pkg/logging"
	"github.com/arthur-debert/sawkit/pkg/paths"
	"github.com/arthur-debert/sawkit/pkg/rules"
	"github.com/arthur-debert/sawkit/pkg/style"
	"github.com/arthur-debert/sawkit/pkg/types"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

// BrowseOptions defines the options shared by the rules commands.
type BrowseOptions struct {
	FS     types.FS
	Paths  paths.Paths
	Config *config.Config
}

func store(opts BrowseOptions) *rules.Store {
	var exts []string
	if opts.Config != nil {
		exts = opts.Config.Rules.Extensions
	}
	return rules.NewStore(opts.FS, opts.Paths.SigmaRulesDir(), exts)
}

// PathResult is the rules directory
type PathResult struct {
	Path string `json:"path"`
}

func (r *PathResult) RenderText() string { return r.Path }

// Path returns SIGMA_RULES, failing when it does not exist so `sigma-cd`
// does not change into a missing directory
func Path(opts BrowseOptions) (*PathResult, error) {
	s := store(opts)
	if _, err := s.Categories(); err != nil {
		return nil, err
	}
	return &PathResult{Path: s.Root()}, nil
}

// ListResult holds the rule categories
type ListResult struct {
	Root       string   `json:"root"`
	Categories []string `json:"categories"`
}

func (r *ListResult) RenderText() string { return strings.Join(r.Categories, "\n") }

func (r *ListResult) RenderTerminal() string {
	var b strings.Builder
	for _, c := range r.Categories {
		b.WriteString(style.InfoIndicator + " " + c + "\n")
	}
	return b.String()
}

// List returns the top-level entries of the rules directory
func List(opts BrowseOptions) (*ListResult, error) {
	s := store(opts)
	categories, err := s.Categories()
	if err != nil {
		return nil, err
	}
	return &ListResult{Root: s.Root(), Categories: categories}, nil
}

// SearchResult holds the rules mentioning a term
type SearchResult struct {
	Term    string   `json:"term"`
	Matches []string `json:"matches"`
}

func (r *SearchResult) RenderText() string { return strings.Join(r.Matches, "\n") }

func (r *SearchResult) RenderTerminal() string {
	var b strings.Builder
	for _, m := range r.Matches {
		b.WriteString(style.PathStyle.Render(m) + "\n")
	}
	b.WriteString(style.MutedStyle.Render(fmt.Sprintf("%s %s for %q",
		humanize.Comma(int64(len(r.Matches))), plural(len(r.Matches), "match", "matches"), r.Term)) + "\n")
	return b.String()
}

// Search returns the rule files whose content contains term
func Search(opts BrowseOptions, term string) (*SearchResult, error) {
	log := logging.GetLogger("commands.browse")
	log.Debug().Str("command", "Search").Str("term", term).Msg("Executing command")

	matches, err := store(opts).Search(term)
	if err != nil {
		return nil, err
	}
	if matches == nil {
		matches = []string{}
	}
	return &SearchResult{Term: term, Matches: matches}, nil
}

// CountResult is the number of rule files
type CountResult struct {
	Count int `json:"count"`
}

func (r *CountResult) RenderText() string { return fmt.Sprint(r.Count) }

func (r *CountResult) RenderTerminal() string {
	return style.Bold(humanize.Comma(int64(r.Count))) + " " + plural(r.Count, "rule", "rules")
}

// Count returns the number of rule files
func Count(opts BrowseOptions) (*CountResult, error) {
	n, err := store(opts).Count()
	if err != nil {
		return nil, err
	}
	return &CountResult{Count: n}, nil
}

// ShowResult is one parsed rule
type ShowResult struct {
	*rules.Rule
}

func (r *ShowResult) fields() [][2]string {
	f := [][2]string{
		{"Title", r.Title},
		{"ID", r.ID},
		{"Path", r.Path},
		{"Status", r.Status},
		{"Level", r.Level},
		{"Author", r.Author},
		{"Date", r.Date},
	}
	if r.Modified != "" {
		f = append(f, [2]string{"Modified", r.Modified})
	}
	logsource := strings.Join(nonEmpty(r.Logsource.Product, r.Logsource.Category, r.Logsource.Service), " / ")
	f = append(f, [2]string{"Logsource", logsource})
	if len(r.Tags) > 0 {
		f = append(f, [2]string{"Tags", strings.Join(r.Tags, ", ")})
	}
	if c := r.Detection.Condition(); c != "" {
		f = append(f, [2]string{"Condition", c})
	}
	return f
}

func (r *ShowResult) RenderText() string {
	var b strings.Builder
	for _, f := range r.fields() {
		fmt.Fprintf(&b, "%-10s %s\n", f[0], f[1])
	}
	if r.Description != "" {
		b.WriteString("\n" + strings.TrimSpace(r.Description) + "\n")
	}
	return b.String()
}

func (r *ShowResult) RenderTerminal() string {
	var b strings.Builder
	b.WriteString(style.SubtitleStyle.Render(r.Title) + "\n")
	for _, f := range r.fields()[1:] {
		value := f[1]
		if f[0] == "Level" {
			value = style.LevelStyle(value).Render(value)
		}
		b.WriteString(style.Field(f[0], value) + "\n")
	}
	if r.Description != "" {
		b.WriteString("\n" + style.NormalStyle.Render(strings.TrimSpace(r.Description)) + "\n")
	}
	return b.String()
}

// Show parses the rule at path, relative to the rules directory, with or
// without the sigma/ prefix the hunt command accepts
func Show(opts BrowseOptions, path string) (*ShowResult, error) {
	if opts.Config != nil && opts.Config.Hunt.RulePrefix != "" {
		path = strings.TrimPrefix(path, opts.Config.Hunt.RulePrefix)
	}
	rule, err := store(opts).Load(path)
	if err != nil {
		return nil, err
	}
	return &ShowResult{Rule: rule}, nil
}

// levelOrder is the column order of the stats table
var levelOrder = []string{"critical", "high", "medium", "low", "informational", "unknown"}

// StatsResult counts rules per category
type StatsResult struct {
	Categories []rules.CategoryStat `json:"categories"`
	Total      int                  `json:"total"`
	Levels     bool                 `json:"-"`
}

func (r *StatsResult) RenderText() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetColumnSeparator("")
	table.SetCenterSeparator("")
	table.SetHeaderLine(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)

	levels := r.levelColumns()
	header := append([]string{"CATEGORY", "RULES"}, upper(levels)...)
	table.SetHeader(header)

	for _, c := range r.Categories {
		row := []string{c.Name, humanize.Comma(int64(c.Rules))}
		for _, l := range levels {
			row = append(row, humanize.Comma(int64(c.Levels[l])))
		}
		table.Append(row)
	}

	footer := []string{"TOTAL", humanize.Comma(int64(r.Total))}
	for _, l := range levels {
		n := 0
		for _, c := range r.Categories {
			n += c.Levels[l]
		}
		footer = append(footer, humanize.Comma(int64(n)))
	}
	table.Append(footer)

	table.Render()
	return buf.String()
}

// levelColumns returns the levels present in any category, in severity order
func (r *StatsResult) levelColumns() []string {
	if !r.Levels {
		return nil
	}
	seen := map[string]bool{}
	for _, c := range r.Categories {
		for l := range c.Levels {
			seen[l] = true
		}
	}
	var out []string
	for _, l := range levelOrder {
		if seen[l] {
			out = append(out, l)
			delete(seen, l)
		}
	}
	var extra []string
	for l := range seen {
		extra = append(extra, l)
	}
	sort.Strings(extra)
	return append(out, extra...)
}

// Stats counts rules per top-level category, by level when withLevels
func Stats(opts BrowseOptions, withLevels bool) (*StatsResult, error) {
	stats, err := store(opts).Stats(withLevels)
	if err != nil {
		return nil, err
	}
	total := 0
	for _, s := range stats {
		total += s.Rules
	}
	return &StatsResult{Categories: stats, Total: total, Levels: withLevels}, nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func upper(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToUpper(s)
	}
	return out
}

func nonEmpty(values ...string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
