package levels

import (
	"embed"
	"io/fs"
)

//go:embed core/*.l1t
var coreFS embed.FS

// CoreFS returns the bundled level files.
func CoreFS() fs.FS {
	sub, err := fs.Sub(coreFS, "core")
	if err != nil {
		// Unreachable: the directory is embedded above.
		panic(err)
	}
	return sub
}

// CoreLoader returns a loader over the bundled levels.
func CoreLoader() *Loader {
	return NewFSLoader(CoreFS(), SourceCore).WithPack(CorePackID)
}
