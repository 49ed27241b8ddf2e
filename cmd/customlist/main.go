package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	pflag "github.com/spf13/pflag"

	"github.com/spicery/customlist/pkg/checker"
	"github.com/spicery/customlist/pkg/common"
	"github.com/spicery/customlist/pkg/report"
	"github.com/spicery/customlist/pkg/script"
)

// Version is injected at build time via ldflags.
var Version = "dev"

const usage = `customlist - runs a script of operations against a singly linked list

This tool reads a YAML script of list operations, checks it, applies each
step in turn and verifies the expectations attached to the steps. The
final list is written to stdout in the chosen format. Without --input the
built-in script is run. If any expectation fails, the failures are listed
on stderr and the tool exits with a non-zero status.

Usage:
  customlist [options]

Options:
`

const DEFAULT_FORMAT = common.FormatAsciiTree

func main() {
	var showHelp, showVersion, checkOnly, debug, includeIndex, showDefault bool
	var inputFile, outputFile, format, reportFile string
	var trim, indent int

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s\n", usage)
		pflag.PrintDefaults()
	}

	pflag.BoolVarP(&showHelp, "help", "h", false, "Show help")
	pflag.BoolVar(&showVersion, "version", false, "Show version")
	pflag.StringVarP(&inputFile, "input", "i", "", "Script file (defaults to the built-in script)")
	pflag.StringVarP(&outputFile, "output", "o", "", "Output file (defaults to stdout)")
	pflag.StringVarP(&format, "format", "f", "", "Output format (JSON, XML, YAML, MERMAID, ASCIITREE, DOT)")
	pflag.IntVar(&indent, "indent", 0, "Indentation level for display purposes")
	pflag.IntVar(&trim, "trim", 0, "Trim values for display purposes")
	pflag.BoolVar(&includeIndex, "index", false, "Include element positions in output")
	pflag.StringVar(&reportFile, "report", "", "SQLite database to record the run in")
	pflag.BoolVar(&checkOnly, "check", false, "Check the script without running it")
	pflag.BoolVar(&showDefault, "show-default", false, "Print the built-in script and exit")
	pflag.BoolVar(&debug, "debug", false, "Trace each step to stderr")

	pflag.Parse()

	if showHelp {
		pflag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("customlist version %s\n", Version)
		os.Exit(0)
	}

	if showDefault {
		fmt.Print(strings.TrimLeft(script.DefaultScript, "\n"))
		os.Exit(0)
	}

	// Reject any positional arguments.
	if len(pflag.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "Error: Unexpected positional arguments. Use --input and --output flags instead.\n\n")
		pflag.Usage()
		os.Exit(1)
	}

	os.Exit(run(settings{
		inputFile:  inputFile,
		outputFile: outputFile,
		reportFile: reportFile,
		checkOnly:  checkOnly,
		debug:      debug,
		print: common.PrintOptions{
			Format:            format,
			Indent:            indent,
			IncludeIndex:      includeIndex,
			TrimValueOnOutput: trim,
		},
	}))
}

type settings struct {
	inputFile, outputFile, reportFile string
	checkOnly, debug                  bool
	print                             common.PrintOptions
}

// run does everything after flag parsing and returns the exit status, so
// that deferred closes run before the process exits.
func run(cfg settings) int {
	// Load the script.
	var s *script.Script
	var err error
	if cfg.inputFile == "" {
		s, err = script.LoadScriptFromString(script.DefaultScript)
	} else {
		s, err = script.LoadScript(cfg.inputFile)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading script: %v\n", err)
		return 1
	}

	c := checker.NewChecker()
	if !c.Check(s) {
		c.ReportErrors(os.Stderr)
		return 1
	}
	if cfg.checkOnly {
		fmt.Fprintf(os.Stderr, "Script '%s' is valid (%d steps).\n", s.Name, len(s.Steps))
		return 0
	}

	runner, err := script.NewRunnerWithOptions(s, cfg.debug, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error compiling script: %v\n", err)
		return 1
	}
	result, err := runner.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running script: %v\n", err)
		return 1
	}

	// Command line options win over the script's own options.
	options := cfg.print.Merge(s.Options).Merge(&common.PrintOptions{Format: DEFAULT_FORMAT, Indent: 2})

	printFunc, err := common.PickPrintFunc(options.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Determine output destination.
	var output io.Writer = os.Stdout
	if cfg.outputFile != "" {
		file, err := os.Create(cfg.outputFile) // #nosec G304 - CLI tool writes to user-specified output files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			return 1
		}
		defer file.Close()
		output = file
	}

	if err := printFunc(common.SnapshotOf(result.Final), strings.Repeat(" ", options.Indent), output, options); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		return 1
	}

	if cfg.reportFile != "" {
		if err := record(cfg.reportFile, result, cfg.debug); err != nil {
			fmt.Fprintf(os.Stderr, "Error recording run: %v\n", err)
			return 1
		}
	}

	if !result.Passed() {
		result.ReportFailures(os.Stderr)
		return 1
	}
	return 0
}

func record(reportFile string, result *script.RunResult, debug bool) error {
	store, err := report.Open(reportFile)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.Record(result)
	if err != nil {
		return err
	}
	if debug {
		fmt.Fprintf(os.Stderr, "Recorded run %d in %s\n", id, reportFile)
	}
	return nil
}
