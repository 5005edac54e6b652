package capability

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Verifier checks that a set of named capabilities is available. Implementers
// must fail with an error naming the caller and every missing capability.
type Verifier interface {
	Verify(caller string, names ...string) error
}

// MissingError reports capabilities that a caller requires but that were
// never registered.
type MissingError struct {
	Caller  string
	Missing []string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("%s requires optional packages that are not registered: %s",
		e.Caller, strings.Join(e.Missing, ", "))
}

// Registry is a Verifier backed by an explicit set of registered capability
// names. Driver adapters register their capability at startup; Go resolves
// dependencies statically, so registration replaces runtime package
// introspection.
type Registry struct {
	mu    sync.RWMutex
	names map[string]struct{}
}

// NewRegistry builds a registry pre-populated with the given names.
func NewRegistry(names ...string) *Registry {
	r := &Registry{names: make(map[string]struct{}, len(names))}
	r.Register(names...)
	return r
}

// Register marks the given capabilities as available. Registering a name
// twice is harmless.
func (r *Registry) Register(names ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, name := range names {
		if name == "" {
			continue
		}
		r.names[name] = struct{}{}
	}
}

// Verify returns nil when every named capability is registered, and a
// *MissingError naming the caller and the absent entries otherwise.
func (r *Registry) Verify(caller string, names ...string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var missing []string
	for _, name := range names {
		if _, ok := r.names[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)

	return &MissingError{Caller: caller, Missing: missing}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry that driver adapters register
// into from their init functions.
func Default() *Registry {
	return defaultRegistry
}
