package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// writeOutput empties dir and writes one JSON file per entity and per
// relationship. It returns the file names in write order.
func writeOutput(dir, inputDir string, p *plan) ([]string, error) {
	if err := checkOutputDir(dir, inputDir); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(dir, e.Name())); err != nil {
			return nil, fmt.Errorf("empty output dir: %w", err)
		}
	}

	files := make([]string, 0, len(p.entities)+len(p.edges))
	for _, e := range p.entities {
		name := e.Name + ".json"
		if err := writeJSON(filepath.Join(dir, name), e.Record); err != nil {
			return files, err
		}
		files = append(files, name)
	}
	for _, e := range p.edges {
		name := e.FileName() + ".json"
		if err := writeJSON(filepath.Join(dir, name), e.Record()); err != nil {
			return files, err
		}
		files = append(files, name)
	}
	return files, nil
}

// checkOutputDir refuses to empty the input directory or one of its parents.
func checkOutputDir(dir, inputDir string) error {
	if dir == "" {
		return errors.New("output dir is required")
	}
	out, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	if inputDir == "" {
		return nil
	}
	in, err := filepath.Abs(inputDir)
	if err != nil {
		return err
	}
	rel, err := filepath.Rel(out, in)
	if err == nil && (rel == "." || (rel != ".." && !startsWithParent(rel))) {
		return fmt.Errorf("output dir %s contains the input dir", dir)
	}
	return nil
}

func startsWithParent(rel string) bool {
	return len(rel) >= 3 && rel[:3] == ".."+string(filepath.Separator)
}

func writeJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}
