package config

// ScanConfig describes what to walk and which digests to compute.
type ScanConfig struct {
	// Root is the directory whose tree is enumerated. It must exist and be
	// a directory when the run starts.
	Root string `mapstructure:"root" yaml:"root"`

	// Hash selects the digest algorithms: none, sha1, md5 or both.
	Hash string `mapstructure:"hash" yaml:"hash"`
}

// ExportConfig describes where and in which formats results are written.
type ExportConfig struct {
	// Formats lists the enabled sinks: csv and/or sqlite.
	Formats []string `mapstructure:"formats" yaml:"formats"`

	// Output is the base directory for result files; a timestamped run
	// folder is created underneath it. Created if absent.
	Output string `mapstructure:"output" yaml:"output"`

	// OpenFolder opens the run folder in the platform file browser after a
	// successful export.
	OpenFolder bool `mapstructure:"open_folder" yaml:"open_folder"`
}
