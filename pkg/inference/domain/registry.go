package domain

import (
	"fmt"
)

// PipelineConstructor returns a fresh, unloaded pipeline.
type PipelineConstructor func() *Pipeline

type RegistryEntry struct {
	// Name the human-facing display name, unique within a registry
	Name        string
	Category    ModelCategory
	Description string
	New         PipelineConstructor
}

// Registry maps display names to pipeline constructors. It's immutable once created; the order of the entries
// is the display order.
type Registry struct {
	entries []RegistryEntry
	indices map[string]int
}

func NewRegistry(entries []RegistryEntry) (*Registry, error) {
	indices := make(map[string]int, len(entries))
	for i, entry := range entries {
		if _, ok := indices[entry.Name]; ok {
			return nil, fmt.Errorf("duplicate model name %q", entry.Name)
		}
		if entry.New == nil {
			return nil, fmt.Errorf("model %q has no constructor", entry.Name)
		}
		indices[entry.Name] = i
	}
	return &Registry{
		entries: append([]RegistryEntry(nil), entries...),
		indices: indices,
	}, nil
}

// Names returns the display names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for _, entry := range r.entries {
		names = append(names, entry.Name)
	}
	return names
}

// Create never falls back to a default model: an unregistered name is an error.
func (r *Registry) Create(name string) (*Pipeline, error) {
	entry, err := r.entry(name)
	if err != nil {
		return nil, err
	}
	return entry.New(), nil
}

func (r *Registry) Info(name string) (ModelInfo, error) {
	entry, err := r.entry(name)
	if err != nil {
		return ModelInfo{}, err
	}
	return ModelInfo{
		Name:        entry.Name,
		Category:    entry.Category,
		ModelID:     entry.New().ModelID(),
		Description: entry.Description,
	}, nil
}

func (r *Registry) entry(name string) (RegistryEntry, error) {
	index, ok := r.indices[name]
	if !ok {
		return RegistryEntry{}, fmt.Errorf("%w: %q", ErrUnknownModel, name)
	}
	return r.entries[index], nil
}
