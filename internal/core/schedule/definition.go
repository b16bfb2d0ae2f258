package schedule

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/aevon-lab/interval/internal/core/interval"
	"gopkg.in/yaml.v3"
)

// rawDefinition is the on-disk YAML shape:
//
//	name: "month_end_invoice"
//	anchor: "2024-01-31T09:00:00Z"
//	every: "1 month"
type rawDefinition struct {
	Name   string         `yaml:"name"`
	Anchor string         `yaml:"anchor"`
	Every  interval.Value `yaml:"every"`
}

// LoadDefinitions reads one schedule per *.yaml / *.yml file in dir.
// A missing directory yields no schedules. Any malformed or invalid file
// fails the whole load, as do duplicate names across files.
func LoadDefinitions(dir string) ([]Schedule, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("schedule definition dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("schedule definition path %q is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading schedule definition dir: %w", err)
	}

	seen := make(map[string]string)
	var out []Schedule
	for _, e := range entries {
		if e.IsDir() || (!strings.HasSuffix(e.Name(), ".yaml") && !strings.HasSuffix(e.Name(), ".yml")) {
			continue
		}

		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading schedule file %s: %w", path, err)
		}

		var raw rawDefinition
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing schedule file %s: %w", path, err)
		}
		if raw.Name == "" {
			continue // empty / comment-only file
		}

		if prev, exists := seen[raw.Name]; exists {
			return nil, fmt.Errorf("schedule %q: duplicate name in %s and %s", raw.Name, prev, path)
		}
		seen[raw.Name] = path

		anchor, err := time.Parse(time.RFC3339, raw.Anchor)
		if err != nil {
			return nil, fmt.Errorf("schedule %q: invalid anchor %q: %w", raw.Name, raw.Anchor, err)
		}

		s := Schedule{
			Name:        raw.Name,
			Anchor:      anchor,
			Every:       raw.Every,
			Fingerprint: fmt.Sprintf("%x", sha256.Sum256(data)),
		}
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("schedule file %s: %w", path, err)
		}
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
