// Command wowflutter runs the wow-and-flutter measurement core over a
// WAV file, or dumps the frozen frequency response of each filter in
// the bank.
//
// Usage:
//
//	wowflutter measure tone.wav --test-freq 3150 --filter din
//	wowflutter filters --test-freq 3150
package main

import (
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/cwbudde/wowflutter/internal/config"
)

// CLI is kong's top-level command tree: a subcommand per operation.
type CLI struct {
	Measure MeasureCmd `cmd:"" help:"Run the measurement core over a WAV file and print one report row per 10-second process call."`
	Filters FiltersCmd `cmd:"" help:"Dump the frozen frequency response of each filter in the bank."`
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.InfoLevel})

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("wowflutter"),
		kong.Description("Wow-and-flutter measurement core CLI"),
		kong.UsageOnError(),
	)

	if err := ctx.Run(logger); err != nil {
		logger.Fatal("command failed", "error", err)
	}
}

// filterByName resolves a CLI filter flag to the enum, warning and
// defaulting to Unweighted for anything unrecognized, mirroring the
// core's own out-of-range recovery.
func filterByName(logger *log.Logger, name string) int {
	switch strings.ToLower(name) {
	case "din":
		return 1
	case "wow":
		return 2
	case "flutter":
		return 3
	case "unweighted", "":
		return 0
	default:
		logger.Warn("unknown filter, defaulting to unweighted", "filter", name)

		return 0
	}
}

// loadProfile looks up a named session profile in a YAML profile file,
// logging a warning and reporting false if either argument is empty or
// the file or profile cannot be loaded. When a profile is found,
// MeasureCmd.Run uses its test frequency and filter in place of the
// flag values; the profile's sample rate and report interval are not
// applied.
func loadProfile(logger *log.Logger, path, name string) (config.Profile, bool) {
	if path == "" || name == "" {
		return config.Profile{}, false
	}

	f, err := config.Load(path)
	if err != nil {
		logger.Warn("failed to load profile file", "path", path, "error", err)

		return config.Profile{}, false
	}

	p, ok := f.Find(name)
	if !ok {
		logger.Warn("profile not found", "name", name, "path", path)

		return config.Profile{}, false
	}

	return p, true
}
