// Package presets loads per-product preset documents that override the
// declared defaults of registered definitions. A product ships a small YAML
// or JSON file ("toast durations are longer in the dashboard") instead of
// forking the definition tables; overrides are applied up front and the
// derived registry behaves exactly like a hand-written one.
package presets

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Store keeps the parsed default overrides keyed by definition name. It is
// safe for concurrent readers when treated as immutable after LoadFS.
type Store struct {
	overrides map[string]map[string]any
	sources   map[string]string
}

// LoadFS walks the provided filesystem and parses JSON/YAML preset files.
// When fsys is nil or no preset files are present, the returned store is
// empty. A definition overridden by two files is an error.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{
		overrides: make(map[string]map[string]any),
		sources:   make(map[string]string),
	}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isPresetFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("uispec presets: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for name, raw := range doc.Definitions {
			trimmed := strings.TrimSpace(name)
			if trimmed == "" {
				return fmt.Errorf("uispec presets: file %s overrides an empty definition name", path)
			}
			if prior, exists := store.sources[trimmed]; exists {
				return fmt.Errorf("uispec presets: definition %q overridden by both %s and %s", trimmed, prior, path)
			}
			if len(raw.Defaults) == 0 {
				continue
			}
			defaults := make(map[string]any, len(raw.Defaults))
			for field, value := range raw.Defaults {
				defaults[field] = value
			}
			store.overrides[trimmed] = defaults
			store.sources[trimmed] = path
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

// Empty reports whether the store holds any overrides.
func (s *Store) Empty() bool {
	return s == nil || len(s.overrides) == 0
}

// Definitions lists the overridden definition names sorted alphabetically.
func (s *Store) Definitions() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.overrides))
	for name := range s.overrides {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Defaults returns the default overrides for the supplied definition name.
func (s *Store) Defaults(name string) (map[string]any, bool) {
	if s == nil {
		return nil, false
	}
	defaults, ok := s.overrides[name]
	return defaults, ok
}

type documentFile struct {
	Definitions map[string]definitionFile `json:"definitions" yaml:"definitions"`
}

type definitionFile struct {
	Defaults map[string]any `json:"defaults" yaml:"defaults"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("uispec presets: file %s is empty", source)
	}
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	return documentFile{}, fmt.Errorf("uispec presets: parse %s: invalid JSON or YAML", source)
}

func isPresetFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}
