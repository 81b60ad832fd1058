// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// StubifyConfig holds settings for the extraction stage.
type StubifyConfig struct {
	// ProjectDir is the blueprint project root (contains blueprint/src).
	ProjectDir string `json:"project_dir" yaml:"project_dir"`

	// Output is the stubs.json destination path.
	Output string `json:"output" yaml:"output"`
}

// GraphStoreConfig holds settings for the SQLite graph mirror.
type GraphStoreConfig struct {
	// DBPath is the SQLite database file path (default .verilib/graph.db).
	DBPath string `json:"db_path" yaml:"db_path"`

	// MaxResults caps the number of rows returned per query (default 50).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
