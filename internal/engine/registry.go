package engine

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

// Registry owns the process-wide engine handle. The build function runs at
// most once successfully; a failed build is returned to the caller and
// retried on the next Acquire. The handle is shared read-only by all
// sessions afterward — only initialization is serialized, generation calls
// are not (the backing client tolerates concurrent use).
type Registry struct {
	mu     sync.Mutex
	engine Engine
	build  func() (Engine, error)
}

func NewRegistry(build func() (Engine, error)) *Registry {
	return &Registry{build: build}
}

func (r *Registry) Acquire() (Engine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.engine != nil {
		return r.engine, nil
	}
	e, err := r.build()
	if err != nil {
		return nil, fmt.Errorf("engine init: %w", err)
	}
	r.engine = e
	log.Info().Str("engine", e.Name()).Msg("generation engine initialized")
	return e, nil
}
