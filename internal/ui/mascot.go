package ui

import (
	_ "embed"
	"strings"
	"sync"
)

//go:embed mascot.txt
var mascotArt string

var (
	mascotOnce sync.Once
	mascot     string
)

// LoadMascot renders the Nova launcher art. The work happens once per process;
// later calls return the cached rendering.
func LoadMascot() string {
	mascotOnce.Do(func() {
		mascot = styles.user.Render(strings.TrimRight(mascotArt, "\n"))
	})
	return mascot
}
