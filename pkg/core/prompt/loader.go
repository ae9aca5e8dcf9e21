package prompt

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadFromDirectory loads all prompt templates from a directory structure:
//
//	baseDir/
//	  prompts/
//	    mentor/
//	      indicator.json
//	      diagnosis.json
func LoadFromDirectory(baseDir string) error {
	registry := Get()

	promptDir := filepath.Join(baseDir, "prompts")
	if _, err := os.Stat(promptDir); os.IsNotExist(err) {
		return fmt.Errorf("prompts directory not found: %s", promptDir)
	}

	return filepath.Walk(promptDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		var t Template
		if err := json.Unmarshal(data, &t); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}

		// Derive id and category from the path when not specified:
		// prompts/mentor/indicator.json -> "mentor.indicator"
		if t.ID == "" {
			t.ID = idFromPath(path, promptDir)
		}
		if t.Category == "" {
			if i := strings.Index(t.ID, "."); i > 0 {
				t.Category = t.ID[:i]
			}
		}

		return registry.Register(&t)
	})
}

func idFromPath(path, baseDir string) string {
	rel, err := filepath.Rel(baseDir, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	rel = strings.TrimSuffix(rel, ".json")
	return strings.ReplaceAll(rel, string(filepath.Separator), ".")
}
