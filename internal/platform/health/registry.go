// Package health provides a thread-safe health check registry for tracking
// the health of the store and downstream dependencies. The registry is used by
// the readiness endpoint to determine whether the service can accept traffic.
package health

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jsamuelsen11/todotags/internal/ports"
)

// DefaultCheckTimeout bounds a single checker when the caller's context has
// no earlier deadline.
const DefaultCheckTimeout = 2 * time.Second

// Compile-time interface checks.
var (
	_ ports.HealthRegistry = (*Registry)(nil)
	_ ports.HealthChecker  = Func{}
	_ ports.HealthChecker  = optional{}
)

// DegradedError is the failure of a checker registered through [Optional].
// Readiness reports it without taking the service out of rotation.
type DegradedError struct {
	Err error
}

func (e *DegradedError) Error() string { return e.Err.Error() }

func (e *DegradedError) Unwrap() error { return e.Err }

// IsDegraded reports whether err came from an optional checker.
func IsDegraded(err error) bool {
	var degraded *DegradedError
	return errors.As(err, &degraded)
}

// Optional wraps a checker whose dependency the service can run without.
func Optional(checker ports.HealthChecker) ports.HealthChecker {
	return optional{checker}
}

type optional struct {
	ports.HealthChecker
}

func (o optional) HealthCheck(ctx context.Context) error {
	if err := o.HealthChecker.HealthCheck(ctx); err != nil {
		return &DegradedError{Err: err}
	}
	return nil
}

// Func adapts a plain function to [ports.HealthChecker].
type Func struct {
	CheckName string
	Check     func(ctx context.Context) error
}

// Name returns the checker name.
func (f Func) Name() string { return f.CheckName }

// HealthCheck runs the wrapped function.
func (f Func) HealthCheck(ctx context.Context) error { return f.Check(ctx) }

// Registry is a thread-safe implementation of [ports.HealthRegistry].
// Components that implement [ports.HealthChecker] are registered at startup
// and checked on each readiness probe.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
	timeout  time.Duration
}

// New creates an empty health check registry.
func New() *Registry {
	return &Registry{timeout: DefaultCheckTimeout}
}

// Register adds a health checker to the registry. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll executes all registered health checks concurrently, each bounded by
// the registry timeout, and returns results keyed by checker name. Nil values
// indicate healthy components.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	errs := make([]error, len(checkers))
	var wg sync.WaitGroup
	for i, c := range checkers {
		wg.Go(func() {
			checkCtx, cancel := context.WithTimeout(ctx, r.timeout)
			defer cancel()
			errs[i] = c.HealthCheck(checkCtx)
		})
	}
	wg.Wait()

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = errs[i]
	}
	return results
}
