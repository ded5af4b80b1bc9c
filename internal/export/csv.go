package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/mwantia/dirscan/internal/scanner"
	"github.com/mwantia/dirscan/pkg/log"
)

const (
	phaseExportingCSV = "Exporting to CSV..."
	phaseCSVComplete  = "CSV Export complete."
)

// CSVExporter serializes a record store to a comma-separated file with one
// header row. Field quoting follows the standard rules, so paths containing
// delimiters, quotes or line breaks survive a round trip.
type CSVExporter struct {
	schema   Schema
	log      log.LoggerService
	progress scanner.ProgressFunc
}

// NewCSVExporter creates the delimited-text sink for one run's schema.
func NewCSVExporter(schema Schema, logger log.LoggerService, progress scanner.ProgressFunc) *CSVExporter {
	return &CSVExporter{
		schema:   schema,
		log:      logger,
		progress: progress,
	}
}

// Export writes every record to path. Failing to open or write the
// destination is fatal for this exporter.
func (e *CSVExporter) Export(records []scanner.Record, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file %s: %w", path, err)
	}
	defer file.Close()

	throttle := scanner.NewThrottle(len(records), e.progress)
	throttle.Start(phaseExportingCSV)

	writer := csv.NewWriter(file)
	if err := writer.Write(e.schema.CSVHeader()); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for i, record := range records {
		if err := writer.Write(e.schema.CSVRow(record)); err != nil {
			return fmt.Errorf("write csv row %s: %w", record.FullPath, err)
		}
		throttle.Tick(i+1, phaseExportingCSV)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv file %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close csv file %s: %w", path, err)
	}

	throttle.Finish(phaseCSVComplete)
	e.log.Info("Exported %d records to %s", len(records), path)
	return nil
}
