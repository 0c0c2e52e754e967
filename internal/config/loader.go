package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNoScenarios is returned when a scenario file lists nothing to evaluate.
var ErrNoScenarios = errors.New("no scenarios")

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// LoadPolicy reads the tuning file at path. An empty path yields the defaults.
func LoadPolicy(path string) (*PolicyConfig, error) {
	pc := DefaultPolicy()
	if path == "" {
		return &pc, nil
	}
	pc = PolicyConfig{}
	if err := loadYAML(path, &pc); err != nil {
		return nil, err
	}
	pc.applyDefaults()
	return &pc, nil
}

// LoadScenarios reads a batch file.
func LoadScenarios(path string) (*ScenariosConfig, error) {
	var sc ScenariosConfig
	if err := loadYAML(path, &sc); err != nil {
		return nil, err
	}
	if len(sc.Scenarios) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoScenarios, path)
	}
	for i := range sc.Scenarios {
		if sc.Scenarios[i].Name == "" {
			sc.Scenarios[i].Name = fmt.Sprintf("scenario-%d", i+1)
		}
	}
	return &sc, nil
}
