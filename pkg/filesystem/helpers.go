package filesystem

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/sawkit/pkg/errors"
	"github.com/arthur-debert/sawkit/pkg/types"
)

// Exists reports whether path exists. Stat errors other than not-exist
// count as existing so callers never treat an unreadable path as free.
func Exists(fsys types.FS, path string) bool {
	_, err := fsys.Stat(path)
	if err == nil {
		return true
	}
	return !errors.IsNotExist(err)
}

// IsDir reports whether path exists and is a directory
func IsDir(fsys types.FS, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && info.IsDir()
}

// IsFile reports whether path exists and is a regular file
func IsFile(fsys types.FS, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// CopyFile copies src to dst with the given permissions, creating the
// destination directory when needed. The mode is applied explicitly after
// the write since WriteFile does not change the mode of an existing file.
func CopyFile(fsys types.FS, src, dst string, perm fs.FileMode) error {
	data, err := fsys.ReadFile(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "failed to read %s", src)
	}

	if err := fsys.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(dst))
	}

	if err := fsys.WriteFile(dst, data, perm); err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "failed to write %s", dst)
	}

	if err := fsys.Chmod(dst, perm); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to set mode on %s", dst)
	}

	return nil
}

// Walk visits every regular file below root in lexical order, passing the
// path relative to root. Entries whose name starts with a dot are skipped,
// directories included.
func Walk(fsys types.FS, root string, fn func(rel string) error) error {
	return walk(fsys, root, "", fn)
}

func walk(fsys types.FS, root, rel string, fn func(rel string) error) error {
	entries, err := fsys.ReadDir(filepath.Join(root, rel))
	if err != nil {
		return err
	}

	for _, entry := range entries {
		name := entry.Name()
		if len(name) > 0 && name[0] == '.' {
			continue
		}

		childRel := filepath.Join(rel, name)
		if entry.IsDir() {
			if err := walk(fsys, root, childRel, fn); err != nil {
				return err
			}
			continue
		}

		if err := fn(childRel); err != nil {
			return err
		}
	}

	return nil
}
