package main

import (
	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
)

// cliOptions mirrors spec.md §6's CLI (fuzz driver) surface:
// regex-count, string-count, regex, lookahead-count, star-height,
// letter-count, plus -v/--verbose wired to gologger's level, grounded
// on projectdiscovery-alterx/internal/runner.ParseFlags's shape.
type cliOptions struct {
	RegexCount     int
	StringCount    int
	Regex          string
	LookaheadCount int
	StarHeight     int
	LetterCount    int
	AlphabetSize   int
	Verbose        bool
}

func parseFlags() *cliOptions {
	opts := &cliOptions{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Fuzzes a lookahead-to-classical-regex transformer against a reference backtracking matcher.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.IntVarP(&opts.RegexCount, "regex-count", "rc", 50, "number of random regexes to generate"),
		flagSet.IntVarP(&opts.StringCount, "string-count", "sc", 10, "strings to sample per regex"),
		flagSet.StringVar(&opts.Regex, "regex", "", "literal expression to test, bypassing generation"),
	)

	flagSet.CreateGroup("generator", "Generator",
		flagSet.IntVarP(&opts.LookaheadCount, "lookahead-count", "lc", 4, "max lookahead assertions per generated regex"),
		flagSet.IntVarP(&opts.StarHeight, "star-height", "sh", 2, "max nested star depth per generated regex"),
		flagSet.IntVarP(&opts.LetterCount, "letter-count", "lt", 10, "max literal symbols per generated regex"),
		flagSet.IntVarP(&opts.AlphabetSize, "alphabet-size", "as", 3, "number of distinct symbols to draw from"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not read flags: %s\n", err)
	}

	if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}

	return opts
}
