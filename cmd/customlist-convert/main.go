package main

import (
	"fmt"
	"os"
	"strings"

	pflag "github.com/spf13/pflag"

	"github.com/spicery/customlist/pkg/common"
)

// Version is injected at build time via ldflags.
var Version = "dev"

const DEFAULT_FORMAT = common.FormatAsciiTree

func main() {
	// Define command line flags.
	var format = pflag.StringP("format", "f", DEFAULT_FORMAT, "Output format (JSON, XML, YAML, MERMAID, ASCIITREE, DOT)")
	var indent = pflag.Int("indent", 2, "Indentation level for display purposes")
	var trim = pflag.Int("trim", 0, "Trim values for display purposes")
	var includeIndex = pflag.Bool("index", false, "Include element positions in output")
	var version = pflag.Bool("version", false, "Print version and exit")
	var help = pflag.BoolP("help", "h", false, "Print help message and exit")

	// Custom usage message.
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nConverts a list snapshot from JSON format to various output formats.\n")
		fmt.Fprintf(os.Stderr, "Reads JSON from stdin and writes the converted list to stdout.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	// Handle version flag.
	if *version {
		fmt.Printf("customlist-convert version %s\n", Version)
		os.Exit(0)
	}

	// Handle help flag.
	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	// Read JSON from stdin.
	snapshot, err := common.ReadSnapshotJSON(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading JSON input: %v\n", err)
		os.Exit(1)
	}

	// Rebuild through the list so the output reflects what a list holds.
	snapshot = common.SnapshotOf(snapshot.ToList())

	printFunc, err := common.PickPrintFunc(*format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	err = printFunc(snapshot, strings.Repeat(" ", *indent), os.Stdout, &common.PrintOptions{
		Format:            *format,
		Indent:            *indent,
		IncludeIndex:      *includeIndex,
		TrimValueOnOutput: *trim,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
}
