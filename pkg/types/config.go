// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds shared configuration and result types for the converter.
package types

// ConvertConfig holds the settings for a single conversion run.
type ConvertConfig struct {
	// SourceDir is the Manuskript project directory to read.
	SourceDir string `json:"source_dir" yaml:"source_dir"`

	// DestDir is the cheese-paper project directory to create.
	DestDir string `json:"dest_dir" yaml:"dest_dir"`

	// NormalizeNewlines collapses runs of newlines in header values and scene
	// bodies to a double newline (default true).
	NormalizeNewlines bool `json:"normalize_newlines" yaml:"normalize_newlines"`

	// ReportPath, when non-empty, is where the YAML conversion report is written.
	ReportPath string `json:"report,omitempty" yaml:"report,omitempty"`
}
