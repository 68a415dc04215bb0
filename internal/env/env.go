// Package env detects the host the module runs in and picks the matching
// rendering platform.
package env

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// PlatformEnv overrides detection when set to "terminal" or "console".
const PlatformEnv = "CONLOG_PLATFORM"

// Platform is the rendering backend.
type Platform int

const (
	// Terminal renders ANSI sequences; it is the fallback.
	Terminal Platform = iota
	// Console renders %c templates for JavaScript consoles.
	Console
)

// String returns the platform name.
func (p Platform) String() string {
	switch p {
	case Console:
		return "console"
	default:
		return "terminal"
	}
}

// ParsePlatform converts a name to a Platform. "auto" and "" detect.
func ParsePlatform(name string) (Platform, error) {
	p, auto, err := parse(name)
	if err != nil {
		return Terminal, err
	}
	if auto {
		return Detect(), nil
	}

	return p, nil
}

func parse(name string) (p Platform, auto bool, err error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return Terminal, true, nil
	case "terminal", "node", "ansi":
		return Terminal, false, nil
	case "console", "browser", "css":
		return Console, false, nil
	default:
		return Terminal, false, fmt.Errorf("invalid platform: %s", name)
	}
}

// Detect returns the platform for the current host. A browser or mini
// program selects Console; anything else, including an ambiguous host,
// selects Terminal.
func Detect() Platform {
	if p, auto, err := parse(os.Getenv(PlatformEnv)); err == nil && !auto {
		return p
	}

	if IsBrowser() || IsMiniProgram() {
		return Console
	}

	return Terminal
}

// IsTerminal reports whether fd is an interactive terminal, including
// Cygwin and MSYS pseudo terminals.
func IsTerminal(fd uintptr) bool {
	return term.IsTerminal(int(fd)) || isatty.IsCygwinTerminal(fd)
}
