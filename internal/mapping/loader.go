package mapping

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// CurrentVersion is the schema file format version written by this package.
const CurrentVersion = "1"

// LoadFile loads and parses a YAML schema file from the given path.
func LoadFile(path string) (*SchemaFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read schema file %s", path)
	}

	return Parse(data)
}

// Parse parses YAML data into a SchemaFile.
func Parse(data []byte) (*SchemaFile, error) {
	var sf SchemaFile

	err := yaml.Unmarshal(data, &sf)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse schema YAML")
	}

	// Apply defaults and normalize
	applyDefaults(&sf)

	return &sf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(sf *SchemaFile) {
	if sf.Version == "" {
		sf.Version = CurrentVersion
	}

	for i := range sf.Schemas {
		s := &sf.Schemas[i]
		for j := range s.Fields {
			f := &s.Fields[j]
			f.Type = strings.ToLower(strings.TrimSpace(f.Type))

			if f.Type == "" && f.Schema != "" {
				f.Type = TypeNested
			}
		}
	}
}

// Marshal serializes a SchemaFile to YAML.
func Marshal(sf *SchemaFile) ([]byte, error) {
	data, err := yaml.Marshal(sf)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal schema file")
	}

	return data, nil
}

// WriteFile writes a SchemaFile to the given path.
func WriteFile(sf *SchemaFile, path string) error {
	data, err := Marshal(sf)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write schema file %s", path)
	}

	return nil
}
