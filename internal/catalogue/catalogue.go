package catalogue

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed services.yaml
var servicesYAML []byte

// Service is one offering on the price list.
type Service struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Price       string   `json:"price" yaml:"price"`
	Description string   `json:"description" yaml:"description"`
	Features    []string `json:"features" yaml:"features"`
}

type file struct {
	Services []Service `yaml:"services"`
}

// Load returns the embedded price list.
func Load() ([]Service, error) {
	return Parse(servicesYAML)
}

// Parse decodes a price list and checks that every service has an id, title and price.
func Parse(data []byte) ([]Service, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse services: %w", err)
	}

	seen := make(map[string]struct{}, len(f.Services))
	for i, s := range f.Services {
		if s.ID == "" || s.Title == "" || s.Price == "" {
			return nil, fmt.Errorf("service %d: id, title and price are required", i)
		}
		if _, ok := seen[s.ID]; ok {
			return nil, fmt.Errorf("duplicate service id %q", s.ID)
		}
		seen[s.ID] = struct{}{}
	}

	if len(f.Services) == 0 {
		return nil, errors.New("no services defined")
	}

	return f.Services, nil
}
