package rates

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a jurisdiction schedule from a YAML file. Fields left
// out of the file keep their statutory values, so a partial override
// (say, a different accident-insurance table) is enough.
func LoadFile(path string) (Schedule, error) {
	s := Statutory()

	data, err := os.ReadFile(path)
	if err != nil {
		return Schedule{}, fmt.Errorf("read schedule: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Schedule{}, fmt.Errorf("parse schedule: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Schedule{}, fmt.Errorf("schedule %s: %w", path, err)
	}
	return s, nil
}
