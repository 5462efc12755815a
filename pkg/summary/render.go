package summary

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/sawkit/pkg/paths"
	"github.com/arthur-debert/sawkit/pkg/style"
	"github.com/dustin/go-humanize"
)

const title = "Chainsaw installation"

type field struct {
	label string
	value string
}

func (s *Summary) fields() []field {
	return []field{
		{"Root", s.display(s.InstallRoot) + s.presence(s.Installed)},
		{"Binary", s.display(s.Binary) + s.presence(s.BinaryPresent)},
		{"Version", s.ChainsawVersion},
		{"Rules", s.display(s.RulesDir) + " (" + s.RuleCountText() + ")"},
		{"Alias file", s.display(s.AliasFile) + " (" + s.shellText() + ")"},
		{"Startup file", s.display(s.StartupFile)},
		{"Installed", s.InstalledText()},
	}
}

// RuleCountText is the rule count with thousands separators, or Unknown
func (s *Summary) RuleCountText() string {
	if s.RuleCount < 0 {
		return Unknown + " rule count"
	}
	if s.RuleCount == 1 {
		return "1 rule"
	}
	return humanize.Comma(int64(s.RuleCount)) + " rules"
}

// InstalledText is the install time relative to when the summary was taken
func (s *Summary) InstalledText() string {
	if s.InstalledAt == nil {
		return Unknown
	}
	return humanize.RelTime(*s.InstalledAt, s.now, "ago", "from now")
}

func (s *Summary) shellText() string {
	if s.ShellInstalled {
		return "integration installed"
	}
	return "integration missing"
}

func (s *Summary) presence(ok bool) string {
	if ok {
		return ""
	}
	return " (missing)"
}

func (s *Summary) display(path string) string {
	return paths.ContractHome(s.home, path)
}

func (s *Summary) hint() string {
	switch {
	case !s.Installed:
		return "Chainsaw is not installed. Run [code]sawkit install[/code]."
	case !s.Ready():
		return "The installation is incomplete. Run [code]sawkit install[/code] to repair it."
	default:
		return ""
	}
}

// RenderText renders the summary as aligned plain text
func (s *Summary) RenderText() string {
	var b strings.Builder
	b.WriteString(title + "\n")
	for _, f := range s.fields() {
		fmt.Fprintf(&b, "  %-14s %s\n", f.label, f.value)
	}
	if h := s.hint(); h != "" {
		b.WriteString("\n" + style.Strip(h) + "\n")
	}
	return b.String()
}

// RenderTerminal renders the summary with lipgloss styles
func (s *Summary) RenderTerminal() string {
	var b strings.Builder
	b.WriteString(style.SubtitleStyle.Render(title) + "\n")
	for _, f := range s.fields() {
		b.WriteString(style.Indent(style.Field(f.label, f.value), 1) + "\n")
	}
	if h := s.hint(); h != "" {
		b.WriteString("\n" + style.WarningIndicator + " " + style.Render(h) + "\n")
	}
	return b.String()
}
