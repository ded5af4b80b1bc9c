package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwantia/dirscan/internal/config"
	"github.com/mwantia/dirscan/internal/runner"
	"github.com/mwantia/dirscan/internal/scanner"
)

func NewScanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [root]",
		Short: "Scan a directory tree and export the inventory",
		Long: `Walk the given directory tree, hash every file with the configured
algorithms, collect size and timestamps for every file and folder, and
export the result to CSV and/or an embedded SQLite database inside a
timestamped output folder.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				viper.Set("scan.root", args[0])
			}

			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			summary, err := runScan(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			fmt.Printf("Scanned %d items (%d partial failures) in %s\n",
				summary.Items, summary.Failures, summary.Duration.Round(time.Millisecond))
			for _, artifact := range summary.Artifacts {
				fmt.Printf("Details exported to: %s\n", artifact)
			}

			if cfg.Export.OpenFolder {
				if err := openFolder(summary.OutputDir); err != nil {
					fmt.Fprintf(os.Stderr, "failed to open export folder: %v\n", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().String("hash", "", "hash mode (none, sha1, md5, both)")
	cmd.Flags().StringSlice("format", nil, "export formats (csv, sqlite, both)")
	cmd.Flags().String("output", "", "base output directory for result files")
	cmd.Flags().Bool("open", false, "open the export folder when the scan finishes")

	viper.BindPFlag("scan.hash", cmd.Flags().Lookup("hash"))
	viper.BindPFlag("export.formats", cmd.Flags().Lookup("format"))
	viper.BindPFlag("export.output", cmd.Flags().Lookup("output"))
	viper.BindPFlag("export.open_folder", cmd.Flags().Lookup("open"))

	return cmd
}

// runScan executes the pipeline on a worker goroutine and consumes the
// progress channel in a single loop, so terminal updates stay serialized on
// one goroutine while the pipeline itself stays strictly sequential.
func runScan(ctx context.Context, cfg *config.BaseConfig) (*runner.Summary, error) {
	updates := make(chan scanner.Update, 64)

	type outcome struct {
		summary *runner.Summary
		err     error
	}
	done := make(chan outcome, 1)

	go func() {
		summary, err := runner.NewRunner(cfg).Run(ctx, scanner.ChannelReporter(updates))
		close(updates)
		done <- outcome{summary: summary, err: err}
	}()

	isTerminal := !cfg.Log.NoTerminal
	for update := range updates {
		if isTerminal {
			fmt.Fprintf(os.Stderr, "\r%s (%d/%d)", update.Phase, update.Done, update.Total)
		}
	}
	if isTerminal {
		fmt.Fprintln(os.Stderr)
	}

	result := <-done
	return result.summary, result.err
}
