package triage

import (
	"fmt"

	"github.com/shahar-caura/triage/internal/extract"
)

// Model is a selectable backend model and the extraction policy applied to its output.
type Model struct {
	Name   string `json:"name"`
	Policy string `json:"policy"`
}

// Catalog is the fixed set of models offered to users.
type Catalog struct {
	Models  []Model
	Default string
}

// DefaultCatalog mirrors the built-in extraction registry.
func DefaultCatalog() Catalog {
	return Catalog{
		Models: []Model{
			{Name: "llama3.3", Policy: extract.PolicyPattern},
			{Name: "mistral", Policy: extract.PolicyPattern},
			{Name: "deepseek-r1:32b", Policy: extract.PolicyTail},
		},
		Default: "llama3.3",
	}
}

// Has reports whether name is in the catalog.
func (c Catalog) Has(name string) bool {
	for _, m := range c.Models {
		if m.Name == name {
			return true
		}
	}
	return false
}

// Resolve returns the model to use for name, substituting the default for "".
func (c Catalog) Resolve(name string) (string, error) {
	if name == "" {
		name = c.Default
	}
	if !c.Has(name) {
		return "", fmt.Errorf("%w: %q", ErrUnknownModel, name)
	}
	return name, nil
}

// Names lists model identifiers in catalog order.
func (c Catalog) Names() []string {
	out := make([]string, len(c.Models))
	for i, m := range c.Models {
		out[i] = m.Name
	}
	return out
}
