package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/TowerIdle_Go/internal/domain"
)

// Registry keeps one running session per player in a bounded LRU whose entries
// expire after an idle TTL. An evicted session is stopped, which saves its
// final checkpoint; a later Get for the same player waits for that save and
// then starts a new session from it.
type Registry struct {
	cfg  *domain.EventConfig
	deps Deps

	mu  sync.Mutex
	lru *expirable.LRU[string, *Session]

	stopMu   sync.Mutex
	stopping map[string]chan struct{}
	wg       sync.WaitGroup
}

// NewRegistry creates a registry holding at most size sessions.
// A non-positive ttl disables idle expiry.
func NewRegistry(cfg *domain.EventConfig, deps Deps, size int, ttl time.Duration) *Registry {
	if size <= 0 {
		size = DefaultCacheSize
	}
	r := &Registry{
		cfg:      cfg,
		deps:     deps,
		stopping: make(map[string]chan struct{}),
	}
	r.lru = expirable.NewLRU[string, *Session](size, r.onEvict, ttl)
	return r
}

// Config returns the event configuration shared by every session
func (r *Registry) Config() *domain.EventConfig {
	return r.cfg
}

// Get returns the running session for playerID, starting one if needed.
// Each call refreshes the session's idle timer.
func (r *Registry) Get(ctx context.Context, playerID string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.lru.Get(playerID); ok && s.Running() {
		r.lru.Add(playerID, s)
		return s, nil
	}

	if err := r.waitForStop(ctx, playerID); err != nil {
		return nil, err
	}

	s := New(playerID, r.cfg, r.deps)
	if err := s.Start(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgStartSessionFailed, err)
	}
	r.lru.Add(playerID, s)
	return s, nil
}

// Peek returns a running session without starting one or touching its idle timer
func (r *Registry) Peek(playerID string) (*Session, bool) {
	s, ok := r.lru.Peek(playerID)
	if !ok || !s.Running() {
		return nil, false
	}
	return s, true
}

// Create starts a session for a newly generated player ID
func (r *Registry) Create(ctx context.Context) (*Session, error) {
	return r.Get(ctx, uuid.New().String())
}

// Remove stops and forgets a player's session, waiting for its final checkpoint
func (r *Registry) Remove(ctx context.Context, playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lru.Remove(playerID)
	return r.waitForStop(ctx, playerID)
}

// Len returns the number of cached sessions
func (r *Registry) Len() int {
	return r.lru.Len()
}

// Close stops every session and waits for their final checkpoints
func (r *Registry) Close(ctx context.Context) error {
	r.mu.Lock()
	r.lru.Purge()
	r.mu.Unlock()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		slog.Info(LogMsgRegistryClosed)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// onEvict runs under the LRU's lock, so the stop happens on its own goroutine
func (r *Registry) onEvict(playerID string, s *Session) {
	done := make(chan struct{})
	r.stopMu.Lock()
	r.stopping[playerID] = done
	r.stopMu.Unlock()

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer func() {
			r.stopMu.Lock()
			if r.stopping[playerID] == done {
				delete(r.stopping, playerID)
			}
			r.stopMu.Unlock()
			close(done)
		}()

		ctx, cancel := context.WithTimeout(context.Background(), StopTimeout)
		defer cancel()

		slog.Debug(LogMsgSessionEvicted, "player_id", playerID)
		if err := s.Stop(ctx); err != nil {
			slog.Error(LogMsgEvictionStopFailed, "player_id", playerID, "error", err)
		}
	}()
}

func (r *Registry) waitForStop(ctx context.Context, playerID string) error {
	r.stopMu.Lock()
	done, ok := r.stopping[playerID]
	r.stopMu.Unlock()
	if !ok {
		return nil
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
