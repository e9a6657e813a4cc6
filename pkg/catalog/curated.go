package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed curated.yaml
var curatedYAML []byte

type curatedFile struct {
	Audits []AuditRecord `yaml:"audits"`
}

// Curated returns the catalog compiled into the binary.
func Curated() ([]AuditRecord, error) {
	return ParseCurated(curatedYAML)
}

// LoadCurated reads a catalog file. An empty path selects the built-in catalog.
func LoadCurated(path string) ([]AuditRecord, error) {
	if path == "" {
		return Curated()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read catalog %s: %w", path, err)
	}
	recs, err := ParseCurated(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return recs, nil
}

// ParseCurated decodes a YAML catalog and validates every record.
func ParseCurated(data []byte) ([]AuditRecord, error) {
	var f curatedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("invalid catalog yaml: %w", err)
	}
	for i, r := range f.Audits {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("audit #%d: %w", i+1, err)
		}
	}
	if f.Audits == nil {
		return []AuditRecord{}, nil
	}
	return f.Audits, nil
}
