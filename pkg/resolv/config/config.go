// Package config loads knowledge-base and prover settings from YAML files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/resolv/pkg/resolv/clause"
	"github.com/cognicore/resolv/pkg/resolv/internalerr"
)

// KnowledgeBase represents a knowledge-base file. Each clause is a list of
// literal strings in the Name(arg1,...,argN) grammar, optionally prefixed
// with a negation marker.
type KnowledgeBase struct {
	Name          string     `yaml:"name"`
	Clauses       [][]string `yaml:"clauses"`
	MaxIterations int        `yaml:"max_iterations,omitempty"`
}

// LoadKnowledgeBase loads a knowledge base from a YAML file.
func LoadKnowledgeBase(path string) (*KnowledgeBase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseKnowledgeBase(data)
}

// ParseKnowledgeBase parses YAML knowledge-base content.
func ParseKnowledgeBase(data []byte) (*KnowledgeBase, error) {
	var kb KnowledgeBase
	if err := yaml.Unmarshal(data, &kb); err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrInvalidConfig, err)
	}
	if len(kb.Clauses) == 0 {
		return nil, fmt.Errorf("%w: no clauses", internalerr.ErrInvalidConfig)
	}
	return &kb, nil
}

// Build parses every clause into a KnowledgeBase ready for inference.
func (k *KnowledgeBase) Build() (*clause.KnowledgeBase, error) {
	kb := clause.NewKnowledgeBase()
	for i, lits := range k.Clauses {
		c, err := clause.Parse(lits)
		if err != nil {
			return nil, fmt.Errorf("clause %d: %w", i, err)
		}
		kb.Add(c)
	}
	return kb, nil
}

// Marshal renders the knowledge base back to YAML.
func (k *KnowledgeBase) Marshal() ([]byte, error) {
	return yaml.Marshal(k)
}
