package report

import (
	"time"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Run is one recorded script run.
type Run struct {
	ID          uint `gorm:"primaryKey"`
	Name        string
	StartedAt   time.Time
	Steps       int
	Failures    int
	FinalCount  int
	FinalValues string       // JSON array of the final list contents.
	StepRecords []StepRecord `gorm:"foreignKey:RunID"`
}

// StepRecord is the result of one step within a run.
type StepRecord struct {
	ID         uint `gorm:"primaryKey"`
	RunID      uint `gorm:"index"`
	Position   int
	Op         string
	Output     string
	ErrorKind  string
	Passed     bool
	Mismatches string // Newline separated.
}

// getMigrations returns the list of migrations for the report database.
func getMigrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "202610190001",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(
					&Run{},
					&StepRecord{},
				)
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(
					&StepRecord{},
					&Run{},
				)
			},
		},
	}
}

// Migrate performs database migrations using gormigrate.
func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, getMigrations())
	return m.Migrate()
}

// CheckMigration checks if the database schema is up to date.
func CheckMigration(db *gorm.DB) (bool, error) {
	// A missing migrations table means nothing has been applied yet. The
	// silent logger keeps that lookup quiet on a fresh database.
	var lastMigration string
	err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Table(gormigrate.DefaultOptions.TableName).
		Select("id").
		Order("id DESC").
		Limit(1).
		Scan(&lastMigration).Error

	if err != nil {
		return false, nil
	}

	migrations := getMigrations()
	if len(migrations) == 0 {
		return true, nil
	}

	expectedLastID := migrations[len(migrations)-1].ID
	return lastMigration == expectedLastID, nil
}
