package commands

import (
	"os/exec"
	"runtime"
)

// openViewer opens path with the platform's default image viewer. The
// viewer process is not waited on.
func openViewer(path string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", path).Start()
	default:
		return exec.Command("xdg-open", path).Start()
	}
}
