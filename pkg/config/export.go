package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/natefinch/atomic"
)

// LoadSystemFile loads a system-level configuration from a JSON or
// YAML file (selected by extension) and merges it into the system
// layer. On any read or parse error the resolver is left untouched
// and the error is returned, so a failed load is always retryable.
func (r *Resolver) LoadSystemFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var data Data
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(raw, &data); err != nil {
			return fmt.Errorf("failed to parse yaml config %s: %w", path, err)
		}
	default:
		if err = json.Unmarshal(raw, &data); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	r.ApplySystem(data)
	r.logger.Info("System configuration loaded",
		slog.String("path", path),
		slog.Int("variables", len(data.Variables)),
		slog.Int("commands", len(data.Commands)),
	)
	return nil
}

// ExportJSON returns the resolved configuration as indented JSON.
func (r *Resolver) ExportJSON() (string, error) {
	snapshot := r.Snapshot()
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(data), nil
}

// ExportFile writes the resolved configuration to path atomically, so
// a crash mid-write never leaves a truncated configuration behind.
func (r *Resolver) ExportFile(path string) error {
	data, err := r.ExportJSON()
	if err != nil {
		return err
	}
	if err = atomic.WriteFile(path, strings.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
