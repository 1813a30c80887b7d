// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/manuskript-convert/pkg/types"
)

// Report is the on-disk YAML record of a conversion run: what was read, what
// was written, how the character identifiers were remapped, and which
// anomalies were skipped.
type Report struct {
	Source       string            `yaml:"source"`
	Destination  string            `yaml:"destination"`
	Timestamp    time.Time         `yaml:"timestamp"`
	Counts       ReportCounts      `yaml:"counts"`
	CharacterIDs map[string]string `yaml:"character_ids,omitempty"`
	Warnings     []string          `yaml:"warnings,omitempty"`
}

// ReportCounts holds the per-kind entity counts.
type ReportCounts struct {
	Characters    int `yaml:"characters"`
	Scenes        int `yaml:"scenes"`
	Folders       int `yaml:"folders"`
	Worldbuilding int `yaml:"worldbuilding"`
}

// WriteReport saves a YAML summary of a finished run to path.
func WriteReport(path string, cfg types.ConvertConfig, res *Result) error {
	rep := Report{
		Source:      cfg.SourceDir,
		Destination: cfg.DestDir,
		Timestamp:   time.Now(),
		Counts: ReportCounts{
			Characters:    res.Characters,
			Scenes:        res.Scenes,
			Folders:       res.Folders,
			Worldbuilding: res.Worldbuilding,
		},
		CharacterIDs: res.CharacterIDs,
		Warnings:     res.Warnings,
	}

	data, err := yaml.Marshal(&rep)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
