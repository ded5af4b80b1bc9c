package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mwantia/fabric/pkg/container"

	"github.com/mwantia/dirscan/internal/config"
	"github.com/mwantia/dirscan/internal/export"
	"github.com/mwantia/dirscan/internal/scanner"
	"github.com/mwantia/dirscan/pkg/log"
)

const cleanupTimeout = 10 * time.Second

// Summary describes a completed run.
type Summary struct {
	OutputDir string
	Artifacts []string
	Items     int
	Failures  int
	Duration  time.Duration
}

// Runner drives one scan-and-export run: validate the configuration, walk
// the tree into a record store, then feed the immutable store to each
// configured exporter in turn. Everything executes sequentially on the
// calling goroutine; progress callbacks are the only thing a front end
// sees before the summary.
type Runner struct {
	cfg *config.BaseConfig
	sc  *container.ServiceContainer
	log log.LoggerService
}

func NewRunner(cfg *config.BaseConfig) *Runner {
	return &Runner{
		cfg: cfg,
		sc:  container.NewServiceContainer(),
		log: log.NewLoggerService("dirscan", cfg.Log),
	}
}

func (r *Runner) setupServices() error {
	errs := container.Errors{}

	r.log.Debug("Registering 'LoggerService'...")
	errs.Add(container.Register[log.LoggerServiceImpl](r.sc,
		container.With[log.LoggerService](),
		container.WithInstance(r.log)))

	return errs.Errors()
}

// Run executes the pipeline and returns the run summary. Configuration
// problems are rejected before the traversal starts; a started run either
// completes or fails with a single descriptive error.
func (r *Runner) Run(ctx context.Context, progress scanner.ProgressFunc) (*Summary, error) {
	started := time.Now()

	mode, err := scanner.ParseHashMode(r.cfg.Scan.Hash)
	if err != nil {
		return nil, err
	}
	formats, err := export.ParseFormats(r.cfg.Export.Formats)
	if err != nil {
		return nil, err
	}

	root := filepath.Clean(r.cfg.Scan.Root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("scan root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan root %s is not a directory", root)
	}

	timestamp := started.Format("20060102_150405")
	outDir := filepath.Join(r.cfg.Export.Output, fmt.Sprintf("DirScan_Out_%s", timestamp))
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", outDir, err)
	}

	// The activity log lives next to the exported artifacts, so every run
	// folder documents how it was produced.
	logCfg := r.cfg.Log
	logCfg.File = filepath.Join(outDir, fmt.Sprintf("Activity_Log_%s.log", timestamp))
	r.log = log.NewLoggerService("dirscan", logCfg)

	if err := r.setupServices(); err != nil {
		return nil, err
	}

	r.log.Info("Process started at: %s", started.Format(scanner.TimestampFormat))
	r.log.Info("Input Directory: %s", root)
	r.log.Info("Output Directory: %s", outDir)
	r.log.Info("Hash Type: %s", mode)

	collector := scanner.NewCollector(mode, r.log.Named("scanner"), progress)
	store, err := collector.Collect(root)
	if err != nil {
		r.log.Error("Collection failed: %v", err)
		return nil, err
	}
	r.log.Info("Collected data for %d items (%d partial).", store.Len(), len(store.Failures()))

	records := store.Records()
	schema := export.NewSchema(mode)
	base := baseFilename(root, mode, timestamp)

	summary := &Summary{
		OutputDir: outDir,
		Items:     store.Len(),
		Failures:  len(store.Failures()),
	}

	for _, format := range formats {
		switch format {
		case export.FormatCSV:
			path := filepath.Join(outDir, base+".csv")
			r.log.Info("Exporting to CSV: %s", path)
			exporter := export.NewCSVExporter(schema, r.log.Named("export/csv"), progress)
			if err := exporter.Export(records, path); err != nil {
				r.log.Error("CSV export failed: %v", err)
				return nil, err
			}
			summary.Artifacts = append(summary.Artifacts, path)
		case export.FormatSQLite:
			path := filepath.Join(outDir, base+".db")
			r.log.Info("Exporting to SQLite: %s", path)
			exporter := export.NewSQLiteExporter(schema, r.log.Named("export/sqlite"), progress)
			if err := exporter.Export(ctx, records, path); err != nil {
				r.log.Error("SQLite export failed: %v", err)
				return nil, err
			}
			summary.Artifacts = append(summary.Artifacts, path)
		}
	}

	summary.Duration = time.Since(started)
	r.log.Info("Process finished at: %s (duration %s)",
		time.Now().Format(scanner.TimestampFormat), summary.Duration.Round(time.Millisecond))

	cleanup, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
	defer cancel()
	if err := r.sc.Cleanup(cleanup); err != nil {
		return nil, fmt.Errorf("failed to complete service container cleanup: %w", err)
	}

	return summary, nil
}

// baseFilename embeds the scan mode and timestamp so repeated runs against
// the same root never collide. The root path is flattened into a filename
// safe token.
func baseFilename(root string, mode scanner.HashMode, timestamp string) string {
	modeToken := string(mode)
	if mode == scanner.HashNone {
		modeToken = "listing"
	}

	clean := strings.NewReplacer("\\", "_", "/", "_", ":", "_", " ", "_").Replace(root)
	clean = strings.Trim(clean, "_")
	if clean == "" || clean == "." {
		clean = "root"
	}

	return fmt.Sprintf("directory_%s_%s_%s", modeToken, clean, timestamp)
}
