package style

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// MarkupParser handles parsing and rendering of [tag]...[/tag] markup
type MarkupParser struct {
	styles   map[string]lipgloss.Style
	patterns map[string]*regexp.Regexp
}

// NewMarkupParser creates a new markup parser with default styles
func NewMarkupParser() *MarkupParser {
	p := &MarkupParser{
		styles:   map[string]lipgloss.Style{},
		patterns: map[string]*regexp.Regexp{},
	}
	for tag, s := range map[string]lipgloss.Style{
		"title":    TitleStyle,
		"subtitle": SubtitleStyle,
		"success":  SuccessStyle,
		"error":    ErrorStyle,
		"warning":  WarningStyle,
		"info":     InfoStyle,
		"code":     CodeStyle,
		"path":     PathStyle,
		"muted":    MutedStyle,
		"bold":     lipgloss.NewStyle().Bold(true),
	} {
		p.AddStyle(tag, s)
	}
	return p
}

// Render processes markup text and returns styled output. Nested tags are
// resolved innermost first.
func (p *MarkupParser) Render(text string) string {
	result := text
	for {
		before := result
		for tag, pattern := range p.patterns {
			s := p.styles[tag]
			result = pattern.ReplaceAllStringFunc(result, func(match string) string {
				sub := pattern.FindStringSubmatch(match)
				if len(sub) != 2 {
					return match
				}
				return s.Render(sub[1])
			})
		}
		if result == before {
			return result
		}
	}
}

// Strip removes markup tags, leaving the enclosed text unstyled
func (p *MarkupParser) Strip(text string) string {
	result := text
	for tag := range p.patterns {
		result = strings.ReplaceAll(result, "["+tag+"]", "")
		result = strings.ReplaceAll(result, "[/"+tag+"]", "")
	}
	return result
}

// AddStyle registers a tag
func (p *MarkupParser) AddStyle(tag string, s lipgloss.Style) {
	p.styles[tag] = s
	p.patterns[tag] = regexp.MustCompile(`\[` + regexp.QuoteMeta(tag) + `\]((?s:.*?))\[/` + regexp.QuoteMeta(tag) + `\]`)
}

var defaultParser = NewMarkupParser()

// Render is a convenience function using the default parser
func Render(text string) string {
	return defaultParser.Render(text)
}

// Strip is a convenience function using the default parser
func Strip(text string) string {
	return defaultParser.Strip(text)
}
