package export

import (
	"fmt"
	"strings"

	"github.com/mwantia/dirscan/internal/scanner"
)

// Format identifies an export sink.
type Format string

const (
	FormatCSV    Format = "csv"
	FormatSQLite Format = "sqlite"
)

// ParseFormats validates and normalizes the configured export formats.
// "both" expands to csv+sqlite; duplicates collapse; an empty selection is
// rejected because a run without any sink has nothing to produce.
func ParseFormats(formats []string) ([]Format, error) {
	seen := make(map[Format]bool)
	var parsed []Format

	add := func(format Format) {
		if !seen[format] {
			seen[format] = true
			parsed = append(parsed, format)
		}
	}

	for _, raw := range formats {
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case string(FormatCSV):
			add(FormatCSV)
		case string(FormatSQLite), "db":
			add(FormatSQLite)
		case "both":
			add(FormatCSV)
			add(FormatSQLite)
		case "":
			continue
		default:
			return nil, fmt.Errorf("unknown export format %q (expected csv, sqlite or both)", raw)
		}
	}

	if len(parsed) == 0 {
		return nil, fmt.Errorf("at least one export format is required")
	}
	return parsed, nil
}

// Column describes one database column of the output table.
type Column struct {
	Name string
	Type string
}

// Schema is the output column set for one run. There are exactly four
// variants, one per hash mode, fixed at configuration time; both sinks
// derive their headers and rows from the same instance so the column sets
// never drift apart.
type Schema struct {
	mode scanner.HashMode
}

// NewSchema returns the schema variant for the given hash mode.
func NewSchema(mode scanner.HashMode) Schema {
	return Schema{mode: mode}
}

// Mode returns the hash mode this schema was built for.
func (s Schema) Mode() scanner.HashMode {
	return s.mode
}

// CSVHeader returns the header row of the delimited-text sink.
func (s Schema) CSVHeader() []string {
	header := []string{"Type", "Full Path", "Name", "Size (bytes)"}
	if s.mode.WantSHA1() {
		header = append(header, "SHA1 Hash")
	}
	if s.mode.WantMD5() {
		header = append(header, "MD5 Hash")
	}
	return append(header, "Creation Time", "Modification Time", "Access Time")
}

// CSVRow renders one record in header order.
func (s Schema) CSVRow(record scanner.Record) []string {
	row := []string{
		string(record.Kind),
		record.FullPath,
		record.Name,
		fmt.Sprintf("%d", record.Size),
	}
	if s.mode.WantSHA1() {
		row = append(row, record.SHA1)
	}
	if s.mode.WantMD5() {
		row = append(row, record.MD5)
	}
	return append(row, record.Created, record.Modified, record.Accessed)
}

// Columns returns the database column set. FullPath is the primary key;
// path uniqueness within one run is what makes the upsert well defined.
func (s Schema) Columns() []Column {
	columns := []Column{
		{Name: "Type", Type: "TEXT"},
		{Name: "FullPath", Type: "TEXT PRIMARY KEY"},
		{Name: "Name", Type: "TEXT"},
		{Name: "Size", Type: "INTEGER"},
	}
	if s.mode.WantSHA1() {
		columns = append(columns, Column{Name: "SHA1Hash", Type: "TEXT"})
	}
	if s.mode.WantMD5() {
		columns = append(columns, Column{Name: "MD5Hash", Type: "TEXT"})
	}
	return append(columns,
		Column{Name: "CreationTime", Type: "TEXT"},
		Column{Name: "ModificationTime", Type: "TEXT"},
		Column{Name: "AccessTime", Type: "TEXT"},
	)
}

// DBRow renders one record as column name to value for the database sink.
func (s Schema) DBRow(record scanner.Record) map[string]interface{} {
	row := map[string]interface{}{
		"Type":             string(record.Kind),
		"FullPath":         record.FullPath,
		"Name":             record.Name,
		"Size":             record.Size,
		"CreationTime":     record.Created,
		"ModificationTime": record.Modified,
		"AccessTime":       record.Accessed,
	}
	if s.mode.WantSHA1() {
		row["SHA1Hash"] = record.SHA1
	}
	if s.mode.WantMD5() {
		row["MD5Hash"] = record.MD5
	}
	return row
}
