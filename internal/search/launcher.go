package search

import (
	"os/exec"
	"runtime"

	"vidgrid/internal/platform"
)

// DefaultCap is the tab-open limit applied when advanced mode is off
const DefaultCap = 8

// Report summarizes a launch: how many tabs were requested from the
// browser and how many selected platforms were withheld by the cap
type Report struct {
	Opened   int
	Withheld int
}

// Launcher opens destination URLs in the system browser. OpenURL is
// injectable for tests; the zero value is not usable, construct with
// NewLauncher.
type Launcher struct {
	Cap     int
	OpenURL func(url string) error
}

// NewLauncher returns a launcher bound to the OS browser opener
func NewLauncher() *Launcher {
	return &Launcher{Cap: DefaultCap, OpenURL: openInBrowser}
}

// Open builds URLs for the selected platforms and requests one browser
// tab per platform, in registry order. With advanced off the list is
// truncated to the cap. The whole path is synchronous: every open
// request is issued before Open returns. Tab-open failures are not
// observable and do not stop the remaining opens.
func (l *Launcher) Open(raw, language string, selected []platform.Platform, advanced bool) Report {
	results := Results(raw, language, selected)
	if len(results) == 0 {
		return Report{}
	}

	toOpen := results
	withheld := 0
	if !advanced && l.Cap > 0 && len(results) > l.Cap {
		toOpen = results[:l.Cap]
		withheld = len(results) - l.Cap
	}

	for _, r := range toOpen {
		_ = l.OpenURL(r.URL)
	}

	return Report{Opened: len(toOpen), Withheld: withheld}
}

func openInBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}
