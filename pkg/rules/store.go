package rules

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/sawkit/pkg/errors"
	"github.com/arthur-debert/sawkit/pkg/filesystem"
	"github.com/arthur-debert/sawkit/pkg/logging"
	"github.com/arthur-debert/sawkit/pkg/types"
	"github.com/rs/zerolog"
)

// Store reads rule files below a root directory
type Store struct {
	fs         types.FS
	root       string
	extensions []string
	logger     zerolog.Logger
}

// CategoryStat counts the rules of one top-level category
type CategoryStat struct {
	Name   string         `json:"name"`
	Rules  int            `json:"rules"`
	Levels map[string]int `json:"levels,omitempty"`
}

// NewStore creates a Store over root. Files match when their extension is
// one of extensions (".yml" when empty).
func NewStore(fs types.FS, root string, extensions []string) *Store {
	if len(extensions) == 0 {
		extensions = []string{".yml"}
	}
	return &Store{
		fs:         fs,
		root:       root,
		extensions: extensions,
		logger:     logging.GetLogger("rules.store"),
	}
}

// Root returns the rules directory
func (s *Store) Root() string {
	return s.root
}

// Exists reports whether the rules directory is present
func (s *Store) Exists() bool {
	return filesystem.IsDir(s.fs, s.root)
}

func (s *Store) requireRoot() error {
	if s.Exists() {
		return nil
	}
	return errors.Newf(errors.ErrRuleNotFound, "rules directory %s not found; run sawkit install", s.root).
		WithDetail("path", s.root)
}

// Categories lists the top-level entries of the rules directory, dot
// entries excluded, sorted by name
func (s *Store) Categories() ([]string, error) {
	if err := s.requireRoot(); err != nil {
		return nil, err
	}

	entries, err := s.fs.ReadDir(s.root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to list %s", s.root)
	}

	var names []string
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Files returns every rule file, relative to the root, in lexical order
func (s *Store) Files() ([]string, error) {
	if err := s.requireRoot(); err != nil {
		return nil, err
	}

	var files []string
	err := filesystem.Walk(s.fs, s.root, func(rel string) error {
		if s.isRule(rel) {
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to walk %s", s.root)
	}
	return files, nil
}

// Count returns the number of rule files
func (s *Store) Count() (int, error) {
	files, err := s.Files()
	if err != nil {
		return 0, err
	}
	return len(files), nil
}

// Search returns the rule files whose content contains term, ignoring
// case. Unreadable files are skipped.
func (s *Store) Search(term string) ([]string, error) {
	if strings.TrimSpace(term) == "" {
		return nil, errors.New(errors.ErrInvalidInput, "search term must not be empty")
	}

	files, err := s.Files()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(term)
	var matches []string
	for _, rel := range files {
		data, err := s.fs.ReadFile(filepath.Join(s.root, rel))
		if err != nil {
			s.logger.Warn().Err(err).Str("file", rel).Msg("Skipping unreadable rule")
			continue
		}
		if strings.Contains(strings.ToLower(string(data)), needle) {
			matches = append(matches, rel)
		}
	}

	s.logger.Debug().Str("term", term).Int("matches", len(matches)).Msg("Searched rules")
	return matches, nil
}

// Stats counts rules per top-level category. Levels are tallied when
// withLevels is set, which parses every rule.
func (s *Store) Stats(withLevels bool) ([]CategoryStat, error) {
	files, err := s.Files()
	if err != nil {
		return nil, err
	}

	byName := make(map[string]*CategoryStat)
	var order []string
	for _, rel := range files {
		category := topLevel(rel)
		stat, ok := byName[category]
		if !ok {
			stat = &CategoryStat{Name: category}
			if withLevels {
				stat.Levels = make(map[string]int)
			}
			byName[category] = stat
			order = append(order, category)
		}
		stat.Rules++

		if withLevels {
			level := "unknown"
			if rule, err := s.Load(rel); err == nil && rule.Level != "" {
				level = strings.ToLower(rule.Level)
			}
			stat.Levels[level]++
		}
	}

	sort.Strings(order)
	stats := make([]CategoryStat, 0, len(order))
	for _, name := range order {
		stats = append(stats, *byName[name])
	}
	return stats, nil
}

// Load parses the rule at path, which is relative to the root or absolute
func (s *Store) Load(path string) (*Rule, error) {
	full := path
	if !filepath.IsAbs(full) {
		full = filepath.Join(s.root, path)
	}

	data, err := s.fs.ReadFile(full)
	if err != nil {
		if errors.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrRuleNotFound, "rule %s not found", path).WithDetail("path", full)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", full)
	}

	rule, err := ParseRule(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRuleParse, "failed to parse %s", path)
	}

	if rel, err := filepath.Rel(s.root, full); err == nil && !strings.HasPrefix(rel, "..") {
		rule.Path = rel
	} else {
		rule.Path = full
	}
	return rule, nil
}

func (s *Store) isRule(rel string) bool {
	ext := strings.ToLower(filepath.Ext(rel))
	for _, want := range s.extensions {
		if ext == want {
			return true
		}
	}
	return false
}

// topLevel returns the first path element, or "." for files at the root
func topLevel(rel string) string {
	if i := strings.IndexRune(rel, filepath.Separator); i >= 0 {
		return rel[:i]
	}
	return "."
}
