package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"shop/internal/core/domain/model/status"

	"gopkg.in/yaml.v3"
)

// LoadStatusContributions returns the built-in contribution followed by one
// contribution per YAML file, in the given order. A file without a source
// field is named after its path.
func LoadStatusContributions(paths []string) ([]status.Contribution, error) {
	contributions := []status.Contribution{status.DefaultContribution()}

	for _, path := range paths {
		c, err := readContribution(path)
		if err != nil {
			return nil, err
		}
		contributions = append(contributions, c)
	}

	return contributions, nil
}

func readContribution(path string) (status.Contribution, error) {
	f, err := os.Open(path)
	if err != nil {
		return status.Contribution{}, fmt.Errorf("open status config %s: %w", path, err)
	}
	defer f.Close()

	var c status.Contribution
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err = decoder.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return status.Contribution{}, fmt.Errorf("decode status config %s: %w", path, err)
	}

	if c.Source == "" {
		c.Source = path
	}
	return c, nil
}
