package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// TableFile describes a table to build, as written in a yaml or toml file:
//
//	kind: string
//	operator: concat
//	rows: [apple, banana]
//	cols: [pie, juice]
type TableFile struct {
	Kind     string   `yaml:"kind" toml:"kind"`
	Operator string   `yaml:"operator" toml:"operator"`
	Rows     []string `yaml:"rows" toml:"rows"`
	Cols     []string `yaml:"cols" toml:"cols"`
}

func readTableFile(filename string) (*TableFile, error) {

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	result := &TableFile{}

	switch filepath.Ext(filename) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, result)
	case ".toml":
		err = toml.Unmarshal(data, result)
	default:
		return nil, fmt.Errorf("unsupported file '%s', must be .yaml, .yml or .toml", filename)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	return result, nil
}
