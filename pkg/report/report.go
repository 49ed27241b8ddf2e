// Package report keeps a history of script runs in a SQLite database.
package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/spicery/customlist/pkg/script"
)

// Store records run results.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the report database at dbPath and brings
// its schema up to date.
func Open(dbPath string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	store := &Store{db: db}

	upToDate, err := CheckMigration(db)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to check migrations: %w", err)
	}
	if !upToDate {
		if err := Migrate(db); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}
	return store, nil
}

// Record saves a run and its steps in one transaction and returns the run ID.
func (s *Store) Record(result *script.RunResult) (uint, error) {
	if result == nil {
		return 0, fmt.Errorf("run result is nil")
	}

	var finalValues []any
	finalCount := 0
	if result.Final != nil {
		finalValues = result.Final.ToSlice()
		finalCount = result.Final.Len()
	}
	valuesJSON, err := json.Marshal(finalValues)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize final values: %w", err)
	}

	run := Run{
		Name:        result.Name,
		StartedAt:   time.Now().UTC(),
		Steps:       len(result.Results),
		Failures:    len(result.Failures()),
		FinalCount:  finalCount,
		FinalValues: string(valuesJSON),
	}
	for _, step := range result.Results {
		run.StepRecords = append(run.StepRecords, StepRecord{
			Position:   step.Position,
			Op:         step.Op,
			Output:     step.Output,
			ErrorKind:  step.ErrorKind,
			Passed:     step.Passed,
			Mismatches: strings.Join(step.Mismatches, "\n"),
		})
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&run).Error
	})
	if err != nil {
		return 0, fmt.Errorf("failed to save run: %w", err)
	}
	return run.ID, nil
}

// Runs returns every recorded run, oldest first, with its steps.
func (s *Store) Runs() ([]Run, error) {
	var runs []Run
	err := s.db.Preload("StepRecords", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	}).Order("id").Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load runs: %w", err)
	}
	return runs, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
