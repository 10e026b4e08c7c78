package glacier

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// registryFile is the layout of a YAML glacier registry file.
type registryFile struct {
	Glaciers []*Glacier `yaml:"glaciers"`
}

// DecodeRegistry reads a YAML glacier list and returns it as registry.
// Glaciers are keyed by their ID, or by their short name if the ID is empty.
func DecodeRegistry(r io.Reader) (Registry, error) {
	var rf registryFile
	if err := yaml.NewDecoder(r).Decode(&rf); err != nil {
		if errors.Is(err, io.EOF) {
			return Registry{}, nil
		}
		return nil, errors.Wrap(err, "decode glacier registry")
	}

	reg := make(Registry, len(rf.Glaciers))
	for i, g := range rf.Glaciers {
		if g == nil {
			return nil, errors.Newf("glacier %d: empty entry", i+1)
		}
		key := g.ID
		if key == "" {
			key = g.ShortName
		}
		if _, exists := reg[key]; exists {
			return nil, errors.Newf("glacier %d: duplicate key %q", i+1, key)
		}
		reg[key] = g
	}

	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return reg, nil
}

// LoadRegistry reads the YAML glacier registry file at path.
func LoadRegistry(path string) (Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reg, err := DecodeRegistry(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return reg, nil
}
