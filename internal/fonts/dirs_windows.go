package fonts

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/windows"
)

// SystemDirs returns the machine-wide Fonts known folder and the per-user
// font directory used by "Install for me only".
func SystemDirs() []string {
	var dirs []string
	if p, err := windows.KnownFolderPath(windows.FOLDERID_Fonts, 0); err == nil {
		dirs = append(dirs, p)
	} else if windir := os.Getenv("WINDIR"); windir != "" {
		dirs = append(dirs, filepath.Join(windir, "Fonts"))
	}
	if p, err := windows.KnownFolderPath(windows.FOLDERID_LocalAppData, 0); err == nil {
		dirs = append(dirs, filepath.Join(p, "Microsoft", "Windows", "Fonts"))
	}
	return dirs
}
