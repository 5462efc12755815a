package shell

import (
	"fmt"
	"path/filepath"
	"strings"
)

// sourceComment introduces the source block sawkit adds to the startup file
const sourceComment = "# Load Chainsaw aliases (added by sawkit)"

// SourceSnippet returns the guarded block that sources aliasFile
func SourceSnippet(aliasFile string) string {
	q := Quote(aliasFile)
	return fmt.Sprintf("%s\nif [ -f %s ]; then . %s; fi\n", sourceComment, q, q)
}

// ReferencesFile reports whether content mentions file, either by absolute
// path or through ~/, $HOME/ or ${HOME}/ when file lives under home
func ReferencesFile(content, file, home string) bool {
	for _, form := range fileForms(file, home) {
		if strings.Contains(content, form) {
			return true
		}
	}
	return false
}

func fileForms(file, home string) []string {
	forms := []string{file}
	if home == "" {
		return forms
	}

	rel, err := filepath.Rel(home, file)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return forms
	}

	rel = filepath.ToSlash(rel)
	return append(forms, "~/"+rel, "$HOME/"+rel, "${HOME}/"+rel)
}
