package test

import (
	"sync"

	"go.uber.org/fx"
)

// LifecycleRecorder collects hooks so tests can run OnStart/OnStop by hand
// instead of spinning up a full fx app.
type LifecycleRecorder struct {
	Hooks []fx.Hook
}

// Append stores the hook for later manual invocation.
func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

// ShutdownerStub counts shutdown requests and signals the Called channel
// without blocking the caller.
type ShutdownerStub struct {
	Called chan struct{}

	mu    sync.Mutex
	count int
}

// Shutdown records the request and notifies any waiter.
func (s *ShutdownerStub) Shutdown(...fx.ShutdownOption) error {
	s.mu.Lock()
	s.count++
	s.mu.Unlock()

	if s.Called != nil {
		select {
		case s.Called <- struct{}{}:
		default:
		}
	}
	return nil
}

// Shutdowns reports how many times Shutdown has been invoked.
func (s *ShutdownerStub) Shutdowns() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}
