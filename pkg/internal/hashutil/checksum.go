package hashutil

import (
	"crypto/sha256"
	"fmt"

	"github.com/arthur-debert/sawkit/pkg/types"
)

// FileChecksum returns the SHA256 checksum of a file as "sha256:<hex>"
func FileChecksum(fsys types.FS, path string) (string, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("sha256:%x", sha256.Sum256(data)), nil
}
