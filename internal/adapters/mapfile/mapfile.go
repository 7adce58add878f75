// Package mapfile reads village maps from YAML files.
package mapfile

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed meadowfield.yaml
var meadowfield []byte

// VillageMap is the YAML layout of a village: its roads, the robot's hub
// and the mail tour used by the route robot.
type VillageMap struct {
	Name  string   `yaml:"name"`
	Hub   string   `yaml:"hub"`
	Roads []string `yaml:"roads"`
	Tour  []string `yaml:"tour"`
}

// Default returns the built-in Meadowfield map.
func Default() (*VillageMap, error) {
	m, err := Parse(meadowfield)
	if err != nil {
		return nil, fmt.Errorf("default map: %w", err)
	}
	return m, nil
}

// Load reads a map from path, or the built-in map when path is empty.
func Load(path string) (*VillageMap, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load map: read %q: %w", path, err)
	}

	m, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("load map %q: %w", path, err)
	}
	return m, nil
}

// Parse decodes a YAML map. Only the presence of fields is checked here;
// road syntax and connectivity are validated when the graph is built.
func Parse(raw []byte) (*VillageMap, error) {
	var m VillageMap
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse map: %w", err)
	}

	m.Hub = strings.TrimSpace(m.Hub)
	if m.Hub == "" {
		return nil, errors.New("parse map: hub must not be empty")
	}
	if len(m.Roads) == 0 {
		return nil, errors.New("parse map: roads must not be empty")
	}

	return &m, nil
}

// ListRoads implements ports.RoadRepository.
func (m *VillageMap) ListRoads(context.Context) ([]string, error) {
	out := make([]string, len(m.Roads))
	copy(out, m.Roads)
	return out, nil
}

// Layout implements ports.VillageMapSource.
func (m *VillageMap) Layout(context.Context) (string, []string, error) {
	tour := make([]string, len(m.Tour))
	copy(tour, m.Tour)
	return m.Hub, tour, nil
}
