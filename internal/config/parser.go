package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	popperrors "github.com/alexisbeaulieu97/popper/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load returns the defaults when path is empty and parses the file otherwise.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return ParseConfig(path)
}

// ParseConfig loads a configuration file from disk, validates it, and returns the resulting model.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, popperrors.NewParseError(path, 0, err)
	}

	cfg := Default()
	if err := DecodeYAML(path, data, cfg); err != nil {
		return nil, err
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DecodeYAML unmarshals data into out, reporting failures as a ParseError
// that carries the offending line when yaml.v3 names one.
func DecodeYAML(source string, data []byte, out any) error {
	if err := yaml.Unmarshal(data, out); err != nil {
		return popperrors.NewParseError(source, extractLine(err), err)
	}
	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
