package paths

import (
	"strings"

	"github.com/arthur-debert/sawkit/pkg/errors"
)

// ValidatePath performs basic validation on a configured path.
// It checks for:
// - Empty paths
// - Null bytes
// - Excessive path length
func ValidatePath(path string) error {
	if path == "" {
		return errors.New(errors.ErrInvalidInput, "path cannot be empty")
	}

	if strings.Contains(path, "\x00") {
		return errors.New(errors.ErrInvalidInput, "path contains null bytes")
	}

	// Check path length (common filesystem limit)
	if len(path) > 4096 {
		return errors.New(errors.ErrInvalidInput, "path exceeds maximum length")
	}

	return nil
}

// ValidateInstallRoot rejects roots that would make the reinstall guard
// delete something it does not own.
func ValidateInstallRoot(root, home string) error {
	if err := ValidatePath(root); err != nil {
		return err
	}

	switch strings.TrimRight(root, "/") {
	case "", home:
		return errors.Newf(errors.ErrInvalidInput, "refusing to use %q as the install root", root)
	}

	return nil
}
