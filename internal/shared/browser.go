package shared

import (
	"fmt"
	"os/exec"
	"runtime"
)

var getRuntime = func() string { return runtime.GOOS }

// openerCommand returns the platform command that hands a URL to the desktop.
func openerCommand(url string) (*exec.Cmd, error) {
	switch rt := getRuntime(); rt {
	case "darwin":
		return exec.Command("open", url), nil
	case "linux", "freebsd", "openbsd":
		return exec.Command("xdg-open", url), nil
	case "windows":
		return exec.Command("cmd", "/c", "start", url), nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", rt)
	}
}

// OpenURL opens url (a lesson video, a course cover) with the system default handler.
//
// Supports macOS, Linux/BSD, and Windows platforms.
func OpenURL(url string) error {
	if url == "" {
		return fmt.Errorf("%w: empty URL", ErrInvalidArgument)
	}

	cmd, err := openerCommand(url)
	if err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}

	return nil
}
