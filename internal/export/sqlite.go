package export

import (
	"context"
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/mwantia/dirscan/internal/scanner"
	"github.com/mwantia/dirscan/pkg/log"
)

const (
	// TableName is the single table every scan run writes into.
	TableName = "directory_contents"

	phasePreparingRows = "Preparing data for SQLite..."
	phaseBulkInsert    = "Executing bulk insert into SQLite..."
	phaseSQLiteDone    = "SQLite Export complete."

	// insertBatchSize keeps single statements under the SQLite bind
	// variable limit.
	insertBatchSize = 500
)

// SQLiteExporter serializes a record store into a single-file embedded
// database. Rows are upserted keyed by FullPath, so re-running against the
// same database file updates existing paths instead of duplicating them.
type SQLiteExporter struct {
	schema   Schema
	log      log.LoggerService
	progress scanner.ProgressFunc
}

// NewSQLiteExporter creates the embedded-database sink for one run's schema.
func NewSQLiteExporter(schema Schema, logger log.LoggerService, progress scanner.ProgressFunc) *SQLiteExporter {
	return &SQLiteExporter{
		schema:   schema,
		log:      logger,
		progress: progress,
	}
}

// Export upserts every record into the directory_contents table at path.
// All rows go through one transaction; any failure rolls the whole insert
// back so the database never holds a partial run.
func (e *SQLiteExporter) Export(ctx context.Context, records []scanner.Record, path string) error {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:          logger.Default.LogMode(logger.Silent),
		CreateBatchSize: insertBatchSize,
	})
	if err != nil {
		return fmt.Errorf("open sqlite database %s: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	defer sqlDB.Close()

	// SQLite only supports 1 writer
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := db.WithContext(ctx).Exec(e.createTableSQL()).Error; err != nil {
		return fmt.Errorf("create table %s: %w", TableName, err)
	}

	throttle := scanner.NewThrottle(len(records), e.progress)
	throttle.Start(phasePreparingRows)

	rows := make([]map[string]interface{}, 0, len(records))
	for i, record := range records {
		rows = append(rows, e.schema.DBRow(record))
		throttle.Tick(i+1, phasePreparingRows)
	}

	throttle.Finish(phaseBulkInsert)

	if len(rows) > 0 {
		err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return tx.Table(TableName).
				Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "FullPath"}},
					DoUpdates: clause.AssignmentColumns(e.updateColumns()),
				}).
				Create(rows).Error
		})
		if err != nil {
			return fmt.Errorf("bulk insert into %s: %w", TableName, err)
		}
	}

	throttle.Finish(phaseSQLiteDone)
	e.log.Info("Exported %d records to %s", len(records), path)
	return nil
}

func (e *SQLiteExporter) createTableSQL() string {
	columns := e.schema.Columns()
	defs := make([]string, len(columns))
	for i, column := range columns {
		defs[i] = fmt.Sprintf("%s %s", column.Name, column.Type)
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", TableName, strings.Join(defs, ", "))
}

// updateColumns lists every non-key column, so a conflicting FullPath takes
// all of the new row's values.
func (e *SQLiteExporter) updateColumns() []string {
	var names []string
	for _, column := range e.schema.Columns() {
		if column.Name == "FullPath" {
			continue
		}
		names = append(names, column.Name)
	}
	return names
}
