/*
Package config loads the JSON configuration file and hands sections out to
the packages that own them. Each owning package keeps its own Config type,
defaults, and InitializeConfig; this package only reads and slices the file.
*/
package config

import (
	"encoding/json"
	"os"
	"runtime"
	"strings"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
)

// raw config file sections, keyed by top-level JSON field
var sections = map[string]json.RawMessage{}

/*
InitializeConfig reads the JSON config file at configPath.

A missing or unreadable file is not fatal: every package keeps its default
configuration and a warning is logged, so the programs stay runnable with no
config file at all.
*/
func InitializeConfig(configPath string) {
	fileBytes, readErr := os.ReadFile(configPath)
	if readErr != nil {
		tl.Log(
			tl.Warning, palette.PurpleBright, "Unable to read config file '%s' (%s), %s",
			configPath, readErr, "keeping default configuration everywhere",
		)
		return
	}

	unmarshalErr := json.Unmarshal(fileBytes, &sections)
	if unmarshalErr != nil {
		tl.Log(
			tl.Warning, palette.PurpleBright, "Unable to parse config file '%s' (%s), %s",
			configPath, unmarshalErr, "keeping default configuration everywhere",
		)
		return
	}

	tl.Log(tl.Info, palette.Green, "Loaded configuration from '%s' (%v sections)", configPath, len(sections))
}

/*
Section unmarshals one named top-level section of the config file.

Returns nil when the section is absent or malformed, which the owning
package's InitializeConfig treats as "keep defaults".
*/
func Section[T any](name string) *T {
	raw, present := sections[name]
	if !present {
		return nil
	}

	var section T
	unmarshalErr := json.Unmarshal(raw, &section)
	if unmarshalErr != nil {
		tl.Log(
			tl.Warning, palette.PurpleBright, "Config section '%s' is malformed (%s), %s",
			name, unmarshalErr, "keeping defaults for it",
		)
		return nil
	}

	return &section
}

/*
GetPackageName returns the Go package name of the caller, for log messages.
*/
func GetPackageName() string {
	pc, _, _, ok := runtime.Caller(1)
	if !ok {
		return "unknown"
	}

	fullName := runtime.FuncForPC(pc).Name() // e.g. property-analyzer/src/pkg/report.InitializeConfig
	lastSlash := strings.LastIndex(fullName, "/")
	shortName := fullName[lastSlash+1:]

	firstDot := strings.Index(shortName, ".")
	if firstDot < 0 {
		return shortName
	}
	return shortName[:firstDot]
}
