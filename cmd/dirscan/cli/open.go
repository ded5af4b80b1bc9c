package cli

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// openFolder shows the given directory in the platform file browser.
func openFolder(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("open folder %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("open folder %s: not a directory", path)
	}

	switch runtime.GOOS {
	case "windows":
		return exec.Command("explorer", path).Start()
	case "darwin":
		return exec.Command("open", path).Start()
	default:
		return exec.Command("xdg-open", path).Start()
	}
}
