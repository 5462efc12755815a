package guide

import (
	"embed"
	"io/fs"
)

//go:embed topics/*.md
var embedded embed.FS

// DefaultGuideTopic is rendered by `sawkit guide` without arguments
const DefaultGuideTopic = "guide"

// Topics returns the embedded topic files
func Topics() fs.FS {
	sub, err := fs.Sub(embedded, "topics")
	if err != nil {
		panic(err)
	}
	return sub
}
