package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spicery/customlist/pkg/common"
	"github.com/spicery/customlist/pkg/report"
)

func writeScript(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "script.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return path
}

func TestRunDefaultScript(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "out.json")
	status := run(settings{outputFile: output, print: common.PrintOptions{Format: common.FormatJSON}})
	if status != 0 {
		t.Fatalf("Expected exit status 0, got %d", status)
	}
	f, err := os.Open(output)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	defer f.Close()
	snapshot, err := common.ReadSnapshotJSON(f)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if snapshot.Count != 3 || strings.Join(snapshot.Values, ",") != "a,b,c" {
		t.Errorf("Expected [a b c], got %+v", snapshot)
	}
}

func TestRunFailingScriptWritesOutputAndReport(t *testing.T) {
	dir := t.TempDir()
	input := writeScript(t, dir, "name: failing\ninitial: [1]\nsteps:\n  - op: count\n    expect: { value: 2 }\n")
	output := filepath.Join(dir, "out.json")
	reportFile := filepath.Join(dir, "report.db")

	status := run(settings{
		inputFile:  input,
		outputFile: output,
		reportFile: reportFile,
		print:      common.PrintOptions{Format: common.FormatJSON},
	})
	if status != 1 {
		t.Fatalf("Expected exit status 1, got %d", status)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	snapshot, err := common.ReadSnapshotJSON(strings.NewReader(string(data)))
	if err != nil || snapshot.Count != 1 || snapshot.Values[0] != "1" {
		t.Errorf("Expected final list [1] in output, got %s (%v)", data, err)
	}

	store, err := report.Open(reportFile)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	defer store.Close()
	runs, err := store.Runs()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(runs) != 1 || runs[0].Failures != 1 {
		t.Errorf("Expected one recorded run with one failure, got %+v", runs)
	}
}

func TestRunRejectsInvalidScript(t *testing.T) {
	dir := t.TempDir()
	input := writeScript(t, dir, "steps:\n  - op: get\n")
	output := filepath.Join(dir, "out.json")
	if status := run(settings{inputFile: input, outputFile: output}); status != 1 {
		t.Errorf("Expected exit status 1, got %d", status)
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Errorf("Expected no output file for a rejected script, got %v", err)
	}
	if status := run(settings{checkOnly: true}); status != 0 {
		t.Errorf("Expected default script to pass --check, got %d", status)
	}
}
