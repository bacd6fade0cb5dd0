package match

import (
	"fmt"
	"sort"

	"github.com/sdejongh/mediacurator/pkg/logging"
)

// Factory creates a fresh strategy instance with empty index state
type Factory func(logger logging.Logger) Strategy

var registry = map[string]Factory{}

// Register adds a strategy factory under its name. New strategies are
// added by registering a factory, never by changing the resolver or the
// transfer engine.
func Register(name string, factory Factory) {
	registry[name] = factory
}

// New creates a strategy instance by name
func New(name string, logger logging.Logger) (Strategy, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown match strategy %q (available: %v)", name, Available())
	}
	return factory(logger), nil
}

// Available returns the names of all registered strategies, sorted
func Available() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register(StrategyFilenameSize, func(logger logging.Logger) Strategy {
		return NewFilenameSize(logger)
	})
	Register(StrategyContentHash, func(logger logging.Logger) Strategy {
		return NewContentHash(logger)
	})
}
