package report

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/spicery/customlist/pkg/script"
)

func runScript(t *testing.T, yamlContent string) *script.RunResult {
	t.Helper()
	s, err := script.LoadScriptFromString(yamlContent)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	runner, err := script.NewRunner(s)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	result, err := runner.Run()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return result
}

func TestMigration(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "m.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	upToDate, err := CheckMigration(db)
	if err != nil || upToDate {
		t.Errorf("Expected a fresh database to need migration, got %v, %v", upToDate, err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	upToDate, err = CheckMigration(db)
	if err != nil || !upToDate {
		t.Errorf("Expected migrated database to be up to date, got %v, %v", upToDate, err)
	}
	// Migrating again is a no-op.
	if err := Migrate(db); err != nil {
		t.Errorf("Unexpected error on second migration: %v", err)
	}
}

func TestRecordAndRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	first := runScript(t, `
name: first
initial: [1, 2]
steps:
  - op: add
    value: 3
  - op: get
    index: 9
`)
	id, err := store.Record(first)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if id == 0 {
		t.Errorf("Expected a non-zero run ID")
	}
	if _, err := store.Record(runScript(t, "name: second\nsteps:\n  - op: clear\n")); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := store.Record(nil); err == nil {
		t.Errorf("Expected error recording a nil result")
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Reopening finds the schema in place and the runs kept.
	store, err = Open(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	defer store.Close()

	runs, err := store.Runs()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	run := runs[0]
	if run.Name != "first" || run.Steps != 2 || run.Failures != 1 || run.FinalCount != 3 {
		t.Errorf("Unexpected run: %+v", run)
	}
	if run.FinalValues != "[1,2,3]" {
		t.Errorf("Expected final values [1,2,3], got %s", run.FinalValues)
	}
	if len(run.StepRecords) != 2 {
		t.Fatalf("Expected 2 step records, got %d", len(run.StepRecords))
	}
	if !run.StepRecords[0].Passed || run.StepRecords[1].Passed {
		t.Errorf("Unexpected pass flags: %+v", run.StepRecords)
	}
	if run.StepRecords[1].ErrorKind != script.KindIndexOutOfRange || run.StepRecords[1].Mismatches == "" {
		t.Errorf("Unexpected failed step: %+v", run.StepRecords[1])
	}
	if runs[1].Name != "second" || runs[1].FinalValues != "[]" {
		t.Errorf("Unexpected second run: %+v", runs[1])
	}
}
