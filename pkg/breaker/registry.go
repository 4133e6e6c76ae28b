package breaker

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"
)

// Registry owns named breakers. It is constructed once at service start and
// injected; breaker state is process-local (multi-instance deployments need
// an external shared store for consistent failure counting).
type Registry struct {
	mu       sync.RWMutex
	breakers map[string]*Breaker
	log      zerolog.Logger
}

// NewRegistry creates an empty breaker registry.
func NewRegistry(log zerolog.Logger) *Registry {
	return &Registry{
		breakers: make(map[string]*Breaker),
		log:      log,
	}
}

// GetOrCreate returns the breaker for name, creating it with cfg on first use.
func (r *Registry) GetOrCreate(name string, cfg Config) *Breaker {
	r.mu.RLock()
	b, ok := r.breakers[name]
	r.mu.RUnlock()
	if ok {
		return b
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check after acquiring the write lock.
	if b, ok = r.breakers[name]; ok {
		return b
	}

	b = New(name, cfg, r.log)
	r.breakers[name] = b
	r.log.Info().Str("breaker", name).Msg("circuit breaker created")
	return b
}

// Get returns the breaker for name if it exists.
func (r *Registry) Get(name string) (*Breaker, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.breakers[name]
	return b, ok
}

// Snapshot returns stats for every registered breaker, sorted by name.
func (r *Registry) Snapshot() []Stats {
	r.mu.RLock()
	stats := make([]Stats, 0, len(r.breakers))
	for _, b := range r.breakers {
		stats = append(stats, b.Stats())
	}
	r.mu.RUnlock()

	sort.Slice(stats, func(i, j int) bool { return stats[i].Name < stats[j].Name })
	return stats
}
