package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI's file-based configuration. Flags override whatever
// is loaded here.
type Config struct {
	Input struct {
		Dir  string `yaml:"dir"`
		File string `yaml:"file"`
	} `yaml:"input"`

	Output struct {
		File string `yaml:"file"`
	} `yaml:"output"`

	Analysis struct {
		RelevanceThreshold float64 `yaml:"relevance_threshold"`
	} `yaml:"analysis"`

	OCR struct {
		MaxPages      int    `yaml:"max_pages"`
		MinConfidence int    `yaml:"min_confidence"`
		Language      string `yaml:"language"`
	} `yaml:"ocr"`
}

// LoadConfig reads a YAML config file, falling back to default locations
// when no path is given, then merges environment variables and defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		locations := []string{
			"config.yaml",
			"config.yml",
			filepath.Join(os.Getenv("HOME"), ".config/docrank/config.yaml"),
		}
		for _, loc := range locations {
			if _, err := os.Stat(loc); err == nil {
				path = loc
				break
			}
		}
	}

	config := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	mergeWithEnv(config)
	applyDefaults(config)
	return config, nil
}

func applyDefaults(config *Config) {
	if config.Input.Dir == "" {
		config.Input.Dir = "input"
	}
	if config.Input.File == "" {
		config.Input.File = filepath.Join(config.Input.Dir, "input.json")
	}
	if config.Output.File == "" {
		config.Output.File = filepath.Join("output", "output.json")
	}
	if config.Analysis.RelevanceThreshold == 0 {
		config.Analysis.RelevanceThreshold = 0.3
	}
	if config.OCR.MaxPages == 0 {
		config.OCR.MaxPages = 50
	}
	if config.OCR.MinConfidence == 0 {
		config.OCR.MinConfidence = 30
	}
	if config.OCR.Language == "" {
		config.OCR.Language = "eng"
	}
}

func mergeWithEnv(config *Config) {
	if dir := os.Getenv("DOCRANK_INPUT_DIR"); dir != "" {
		config.Input.Dir = dir
	}
	if file := os.Getenv("DOCRANK_OUTPUT_FILE"); file != "" {
		config.Output.File = file
	}
}
