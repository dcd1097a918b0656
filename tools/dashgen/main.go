package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/medwatch/tools/dashgen/dashboards"
	"github.com/donaldgifford/medwatch/tools/dashgen/rules"
	"github.com/donaldgifford/medwatch/tools/dashgen/validate"
)

const generatedHeader = "# Code generated by tools/dashgen. DO NOT EDIT.\n"

func main() {
	validateOnly := flag.Bool("validate", false, "validate generated artifacts without writing files")
	outputDir := flag.String("output", "", "override output directory")
	flag.Parse()

	cfg := DefaultConfig()
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, *validateOnly); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// artifact is one generated file relative to the output directory.
type artifact struct {
	path string
	data []byte
}

func run(cfg Config, validateOnly bool) error {
	artifacts, err := render(cfg)
	if err != nil {
		return err
	}

	if validateOnly {
		fmt.Println("validation passed")
		return nil
	}

	for _, a := range artifacts {
		path := filepath.Join(cfg.OutputDir, a.path)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, a.data, 0o600); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Printf("dashgen: wrote %s\n", path)
	}
	return nil
}

// render builds and validates every enabled artifact.
func render(cfg Config) ([]artifact, error) {
	var out []artifact

	if cfg.DashboardEnabled {
		dash, err := dashboards.BuildOverview().Build()
		if err != nil {
			return nil, fmt.Errorf("building dashboard: %w", err)
		}
		data, err := json.MarshalIndent(dash, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding dashboard: %w", err)
		}

		result := validate.Dashboard(data, KnownMetrics)
		if !result.Ok() {
			return nil, fmt.Errorf("dashboard: %w", errors.Join(result.Errors...))
		}
		for _, w := range result.Warnings {
			fmt.Fprintf(os.Stderr, "dashgen: warning: %s\n", w)
		}

		out = append(out, artifact{
			path: filepath.Join("grafana", "data", "medwatch-overview.json"),
			data: append(data, '\n'),
		})
	}

	if cfg.RulesEnabled {
		for _, r := range []struct {
			name string
			cr   rules.PrometheusRule
		}{
			{"medwatch-recording-rules.yaml", rules.RecordingRules()},
			{"medwatch-alerts.yaml", rules.AlertRules()},
		} {
			result := validate.Rules(r.cr, KnownMetrics)
			if !result.Ok() {
				return nil, fmt.Errorf("%s: %w", r.name, errors.Join(result.Errors...))
			}

			data, err := yaml.Marshal(r.cr)
			if err != nil {
				return nil, fmt.Errorf("encoding %s: %w", r.name, err)
			}
			out = append(out, artifact{
				path: filepath.Join("prometheus", r.name),
				data: append([]byte(generatedHeader), data...),
			})
		}
	}

	return out, nil
}
