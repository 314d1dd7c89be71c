package search

import (
	"github.com/atotto/clipboard"
)

// CopyURL places url on the system clipboard. Callers fall back to
// showing the URL for manual copy when this fails.
func CopyURL(url string) error {
	return clipboard.WriteAll(url)
}
