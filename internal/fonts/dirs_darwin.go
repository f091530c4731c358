package fonts

import (
	"os"
	"path/filepath"
)

// SystemDirs returns the macOS font folders, user folder first.
func SystemDirs() []string {
	var dirs []string
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
	}
	return append(dirs, "/Library/Fonts", "/System/Library/Fonts", "/Network/Library/Fonts")
}
