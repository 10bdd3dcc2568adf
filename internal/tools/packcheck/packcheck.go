// Package packcheck validates a rules pack without starting the planner.
// It runs the same schema and envelope checks the planner applies at
// startup, so pack edits can be verified before they ship.
package packcheck

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/TheTinkeringIdiot/Tinkertools-sub006/internal/services/planner/content"
	"github.com/TheTinkeringIdiot/Tinkertools-sub006/internal/services/planner/domain/anarchy"
)

// Config holds configuration for the pack checker.
type Config struct {
	Dir string
}

// ParseConfig parses CLI flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.StringVar(&cfg.Dir, "dir", "", "pack directory to validate (defaults to the embedded pack)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run validates the configured pack and writes a one-line summary.
func Run(cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}

	source := "embedded pack"
	var tables *anarchy.Tables
	var err error
	if dir := strings.TrimSpace(cfg.Dir); dir == "" {
		tables, err = content.Load()
	} else {
		source = dir
		tables, err = content.LoadDir(dir)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "%s: %d breeds, %d professions, %d skills in %d categories\n",
		source,
		len(tables.BreedIDs()),
		len(tables.ProfessionIDs()),
		len(tables.SkillIDs()),
		len(tables.Categories()),
	)
	return err
}
