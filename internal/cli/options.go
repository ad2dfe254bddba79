package cli

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"GPAConverter/internal/domain"
	"GPAConverter/internal/version"
)

// Options holds all CLI flags after parsing and validation.
type Options struct {
	ConfigPath   string
	ScaleID      int
	Username     string
	Export       bool
	OutputPath   string
	Translations string
	Simulated    []domain.CourseRecord
	Quiet        bool
	Version      bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: academic transcript to GPA converter

Logs into the academic records portal, scrapes the transcript, computes the
credit-weighted decimal and GPA averages, and optionally exports a translated
spreadsheet. Credentials come from -username plus CAGR_PASSWORD (or a .env
file); missing ones are prompted for.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// Parse is the top-level call for CLI parsing.
func Parse(name string, argv []string) (Options, error) {
	return ParseArgs(NewFlagSet(name), argv)
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool
	var simulated stringSlice

	fs.StringVar(&opt.ConfigPath, "config", "", "YAML config file (or GPA_CONVERTER_CONFIG) []")
	fs.IntVar(&opt.ScaleID, "scale", 1, "conversion scale id [1]")
	fs.StringVar(&opt.Username, "username", "", "portal username []")
	fs.BoolVar(&opt.Export, "export", false, "write the translated transcript spreadsheet [false]")
	fs.StringVar(&opt.OutputPath, "output", "", "spreadsheet destination, .xlsx or .csv (implies -export) []")
	fs.StringVar(&opt.Translations, "translations", "", "translation spreadsheet, .xlsx or .csv (implies -export) []")
	fs.Var(&simulated, "simulate", "hypothetical course CODE:CREDITS:GRADE (repeatable) []")
	fs.BoolVar(&opt.Quiet, "quiet", false, "only log errors [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	if opt.OutputPath != "" || opt.Translations != "" {
		opt.Export = true
	}

	// Validation
	if opt.ScaleID < 1 {
		return opt, errors.New("-scale must be a positive id")
	}
	if fs.NArg() > 0 {
		return opt, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	for _, raw := range simulated {
		rec, err := parseSimulated(raw)
		if err != nil {
			return opt, err
		}
		opt.Simulated = append(opt.Simulated, rec)
	}

	return opt, nil
}

func parseSimulated(raw string) (domain.CourseRecord, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 3 {
		return domain.CourseRecord{}, fmt.Errorf("-simulate %q: want CODE:CREDITS:GRADE", raw)
	}

	code := strings.TrimSpace(parts[0])
	if code == "" {
		return domain.CourseRecord{}, fmt.Errorf("-simulate %q: empty course code", raw)
	}

	credits, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil || credits <= 0 {
		return domain.CourseRecord{}, fmt.Errorf("-simulate %q: credits must be a positive number", raw)
	}

	grade, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
	if err != nil || grade < 0 {
		return domain.CourseRecord{}, fmt.Errorf("-simulate %q: grade must be a non-negative number", raw)
	}

	return domain.CourseRecord{Code: code, Name: code, Credits: credits, Grade: grade}, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
