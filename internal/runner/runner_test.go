package runner

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwantia/dirscan/internal/config"
	"github.com/mwantia/dirscan/internal/scanner"
)

func testConfig(t *testing.T) *config.BaseConfig {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "a.txt"), []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(root, "sub"), 0755); err != nil {
		t.Fatal(err)
	}

	cfg := config.GetDefault()
	cfg.Scan.Root = root
	cfg.Scan.Hash = "sha1"
	cfg.Export.Formats = []string{"csv"}
	cfg.Export.Output = t.TempDir()
	cfg.Log.Level = "FATAL"
	cfg.Log.NoTerminal = true
	return &cfg
}

func TestRun_endToEndCSV(t *testing.T) {
	cfg := testConfig(t)

	summary, err := NewRunner(cfg).Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Items != 2 || summary.Failures != 0 {
		t.Errorf("summary = %+v", summary)
	}
	if len(summary.Artifacts) != 1 || !strings.HasSuffix(summary.Artifacts[0], ".csv") {
		t.Fatalf("artifacts = %v", summary.Artifacts)
	}

	file, err := os.Open(summary.Artifacts[0])
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d", len(rows))
	}
	if rows[1][2] != "a.txt" || rows[1][4] != "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d" {
		t.Errorf("file row = %v", rows[1])
	}
	if rows[2][2] != "sub" || rows[2][4] != "" {
		t.Errorf("folder row = %v", rows[2])
	}
}

func TestRun_bothSinks(t *testing.T) {
	cfg := testConfig(t)
	cfg.Export.Formats = []string{"both"}

	summary, err := NewRunner(cfg).Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(summary.Artifacts) != 2 {
		t.Fatalf("artifacts = %v", summary.Artifacts)
	}
	for _, artifact := range summary.Artifacts {
		if _, err := os.Stat(artifact); err != nil {
			t.Errorf("artifact missing: %v", err)
		}
	}
}

func TestRun_filenameEmbedsModeAndTimestamp(t *testing.T) {
	cfg := testConfig(t)
	cfg.Scan.Hash = "none"

	summary, err := NewRunner(cfg).Run(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	name := filepath.Base(summary.Artifacts[0])
	if !strings.HasPrefix(name, "directory_listing_") {
		t.Errorf("artifact name = %q, want listing token for hash mode none", name)
	}
	if !strings.HasPrefix(filepath.Base(summary.OutputDir), "DirScan_Out_") {
		t.Errorf("output dir = %q", summary.OutputDir)
	}
}

func TestRun_writesActivityLog(t *testing.T) {
	cfg := testConfig(t)
	cfg.Log.Level = "INFO"

	summary, err := NewRunner(cfg).Run(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(summary.OutputDir)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), "Activity_Log_") {
			found = true
		}
	}
	if !found {
		t.Errorf("no activity log in %s", summary.OutputDir)
	}
}

func TestRun_rejectsInvalidConfig(t *testing.T) {
	cases := []func(*config.BaseConfig){
		func(cfg *config.BaseConfig) { cfg.Scan.Hash = "sha256" },
		func(cfg *config.BaseConfig) { cfg.Export.Formats = nil },
		func(cfg *config.BaseConfig) { cfg.Export.Formats = []string{"xml"} },
		func(cfg *config.BaseConfig) { cfg.Scan.Root = filepath.Join(cfg.Scan.Root, "missing") },
	}
	for i, mutate := range cases {
		cfg := testConfig(t)
		mutate(cfg)
		if _, err := NewRunner(cfg).Run(context.Background(), nil); err == nil {
			t.Errorf("case %d: expected configuration error", i)
		}
	}
}

func TestRun_progressDeliversFinalUpdates(t *testing.T) {
	cfg := testConfig(t)

	var updates []scanner.Update
	progress := func(done, total int, phase string) {
		updates = append(updates, scanner.Update{Done: done, Total: total, Phase: phase})
	}

	if _, err := NewRunner(cfg).Run(context.Background(), progress); err != nil {
		t.Fatal(err)
	}

	var phases []string
	for _, update := range updates {
		phases = append(phases, update.Phase)
	}
	joined := strings.Join(phases, "|")
	if !strings.Contains(joined, "Collection complete.") || !strings.Contains(joined, "CSV Export complete.") {
		t.Errorf("phases = %v", phases)
	}
}

func TestBaseFilename(t *testing.T) {
	got := baseFilename("/home/user/My Files", scanner.HashBoth, "20260831_120000")
	if got != "directory_both_home_user_My_Files_20260831_120000" {
		t.Errorf("baseFilename = %q", got)
	}

	got = baseFilename(".", scanner.HashNone, "ts")
	if got != "directory_listing_root_ts" {
		t.Errorf("baseFilename for dot root = %q", got)
	}
}
