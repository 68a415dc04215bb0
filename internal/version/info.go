// Package version carries build metadata injected with -ldflags.
package version

import (
	"fmt"
	"runtime"
	"strings"
	"time"
)

// Set at build time, for example:
//
//	go build -ldflags "-X github.com/kedare/conlog/internal/version.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
	Platform  = ""
)

// Info describes the running binary.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	Platform  string
	GoVersion string
}

func Get() Info {
	platform := strings.TrimSpace(Platform)
	if platform == "" {
		platform = runtime.GOOS + "/" + runtime.GOARCH
	}

	return Info{
		Version:   orDefault(Version, "dev"),
		Commit:    shortCommit(orDefault(Commit, "unknown")),
		BuildDate: orDefault(BuildDate, "unknown"),
		Platform:  platform,
		GoVersion: runtime.Version(),
	}
}

// String is the one-line form used by --version.
func (i Info) String() string {
	return fmt.Sprintf("%s (%s, %s)", i.Version, i.Commit, i.Platform)
}

// Rows returns label/value pairs in display order.
func (i Info) Rows() [][]string {
	built := i.BuildDate
	if t, err := time.Parse(time.RFC3339, i.BuildDate); err == nil {
		built = t.UTC().Format(time.DateTime) + " UTC"
	}

	return [][]string{
		{"Version", i.Version},
		{"Commit", i.Commit},
		{"Built", built},
		{"Platform", i.Platform},
		{"Go", i.GoVersion},
	}
}

func shortCommit(c string) string {
	if len(c) > 12 {
		return c[:12]
	}

	return c
}

func orDefault(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}

	return value
}
