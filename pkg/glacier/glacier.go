// Package glacier contains the glacier entity and the registry used to resolve VAW files.
package glacier

import (
	"fmt"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// use a single instance of Validate, it caches struct info
var validate = validator.New()

// Glacier is a glacier known to the inventory.
type Glacier struct {
	ID        string `json:"id" yaml:"id"`                                   // Inventory ID, e.g. B43/03.
	PkVaw     int    `json:"pkVaw" yaml:"pkVaw" validate:"gt=0"`             // VAW internal identifier, used in file headers.
	ShortName string `json:"shortName" yaml:"shortName" validate:"required"` // e.g. rhone
	Name      string `json:"name" yaml:"name"`                               // Full name, e.g. Rhonegletscher.
}

func (g *Glacier) String() string {
	if g.Name != "" {
		return fmt.Sprintf("%s (%s, pkVaw %d)", g.Name, g.ShortName, g.PkVaw)
	}
	return fmt.Sprintf("%s (pkVaw %d)", g.ShortName, g.PkVaw)
}

// Validate validates the glacier data.
func (g *Glacier) Validate() error {
	return validate.Struct(g)
}

// Registry maps an opaque key to glaciers. It is owned by the caller and must not be
// modified while readers are constructed from it.
type Registry map[string]*Glacier

// Keys returns the registry keys in ascending order.
func (reg Registry) Keys() []string {
	keys := make([]string, 0, len(reg))
	for k := range reg {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate validates all glaciers of the registry.
func (reg Registry) Validate() error {
	for _, k := range reg.Keys() {
		g := reg[k]
		if g == nil {
			return errors.Newf("glacier %q: nil entry", k)
		}
		if err := g.Validate(); err != nil {
			return errors.Wrapf(err, "glacier %q", k)
		}
	}
	return nil
}
