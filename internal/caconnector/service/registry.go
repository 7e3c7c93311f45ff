// Package service provides the connector type registry and the built-in connector types.
//
// A Registry maps type identifiers to factories. Factories validate a configuration and
// build a Connector from it; they never touch storage. The registry is built once at
// startup and handed to the consumers that need it.
package service

import (
	"slices"
	"strings"
	"sync"

	caDomain "github.com/allisson/caconnectors/internal/caconnector/domain"
	apperrors "github.com/allisson/caconnectors/internal/errors"
)

// Connector is a configured CA backend.
type Connector interface {
	// Name returns the connector name.
	Name() string

	// Type returns the registered type identifier.
	Type() string

	// Config returns the validated configuration.
	Config() map[string]string
}

// Factory builds connectors of one type.
type Factory interface {
	// New validates config and returns a connector. Validation failures wrap ErrInvalidInput.
	New(name string, config map[string]string) (Connector, error)

	// Options describes the configuration keys the type understands.
	Options() map[string]caDomain.OptionDescription
}

// Registry maps connector type identifiers to factories. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory under typeID. Registering the same id twice is an error.
func (r *Registry) Register(typeID string, factory Factory) error {
	typeID = strings.TrimSpace(typeID)
	if typeID == "" || factory == nil {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "type id and factory are required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.factories[typeID]; ok {
		return apperrors.Wrap(caDomain.ErrTypeAlreadyRegistered, typeID)
	}
	r.factories[typeID] = factory
	return nil
}

// Lookup returns the factory registered for typeID. The error for an unknown type
// names the registered ones.
func (r *Registry) Lookup(typeID string) (Factory, error) {
	r.mu.RLock()
	factory, ok := r.factories[typeID]
	r.mu.RUnlock()

	if !ok {
		return nil, caDomain.UnknownType(typeID, r.Types()...)
	}
	return factory, nil
}

// Build validates config with the factory of typeID and returns the connector.
func (r *Registry) Build(typeID, name string, config map[string]string) (Connector, error) {
	factory, err := r.Lookup(typeID)
	if err != nil {
		return nil, err
	}
	return factory.New(name, config)
}

// Describe returns the option descriptions of typeID.
func (r *Registry) Describe(typeID string) (map[string]caDomain.OptionDescription, error) {
	factory, err := r.Lookup(typeID)
	if err != nil {
		return nil, err
	}
	return factory.Options(), nil
}

// Types returns the registered type identifiers in sorted order.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.factories))
	for typeID := range r.factories {
		types = append(types, typeID)
	}
	slices.Sort(types)
	return types
}
