package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"mkprop/internal/classfile"
)

// LoadFile loads, validates and parses a project file.
func LoadFile(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file %s: %w", path, err)
	}

	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	p.Dir = filepath.Dir(abs)

	return p, nil
}

// Parse validates YAML data against the project schema and decodes it.
func Parse(data []byte) (*Project, error) {
	var raw any

	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse project YAML: %w", err)
	}

	if err := validateDocument(raw); err != nil {
		return nil, err
	}

	var p Project

	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse project YAML: %w", err)
	}

	applyDefaults(&p)

	if err := resolve(&p); err != nil {
		return nil, err
	}

	return &p, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(p *Project) {
	if p.Version == "" {
		p.Version = "1"
	}

	if p.ClassVersion == "" {
		p.ClassVersion = classfile.DefaultVersion.String()
	}

	for i := range p.Jobs {
		j := &p.Jobs[i]

		if j.Mode == "" {
			j.Mode = ModeBuild
		}

		if j.Name == "" {
			base := filepath.Base(j.Output)
			j.Name = strings.TrimSuffix(base, filepath.Ext(base))
		}

		if j.ClassVersion == "" {
			j.ClassVersion = p.ClassVersion
		}
	}
}

// resolve parses class versions and checks what the schema cannot express.
func resolve(p *Project) error {
	names := make(map[string]int, len(p.Jobs))

	for i := range p.Jobs {
		j := &p.Jobs[i]

		if prev, ok := names[j.Name]; ok {
			return fmt.Errorf("jobs[%d]: duplicate job name %q (also jobs[%d])", i, j.Name, prev)
		}

		names[j.Name] = i

		v, err := classfile.ParseVersion(j.ClassVersion)
		if err != nil {
			return fmt.Errorf("jobs[%d] %s: %w", i, j.Name, err)
		}

		j.Version = v
	}

	return nil
}

// Path resolves a job path against the project directory.
func (p *Project) Path(rel string) string {
	if rel == "" || filepath.IsAbs(rel) {
		return rel
	}

	return filepath.Join(p.Dir, rel)
}
