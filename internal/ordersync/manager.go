package ordersync

import (
	"context"
	"log/slog"
	"sync"
)

// Manager owns one sync session per authenticated principal. Sessions start
// lazily on first use and stop on logout or application shutdown, so no
// timer outlives the principal it was created for.
type Manager struct {
	source Source
	feed   Subscriber
	store  SnapshotStore
	opts   Options
	logger *slog.Logger

	mu       sync.Mutex
	ctx      context.Context
	sessions map[string]*Session
}

// NewManager constructs a session manager. Bind launches no work by itself.
func NewManager(source Source, feed Subscriber, opts Options, logger *slog.Logger) *Manager {
	return &Manager{
		source:   source,
		feed:     feed,
		opts:     opts.withDefaults(),
		logger:   logger,
		sessions: make(map[string]*Session),
	}
}

// Bind sets the root context sessions are started under.
func (m *Manager) Bind(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ctx = ctx
}

// SetSnapshots wires the durable snapshot store used by new sessions.
func (m *Manager) SetSnapshots(store SnapshotStore) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store = store
}

// Session returns the running session for the profile, starting one if needed.
func (m *Manager) Session(profile Profile) *Session {
	m.mu.Lock()
	if sess, ok := m.sessions[profile.Key()]; ok {
		m.mu.Unlock()
		return sess
	}
	ctx := m.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	sess := NewSession(profile, m.source, m.feed, m.store, m.opts, m.logger)
	m.sessions[profile.Key()] = sess
	m.mu.Unlock()

	sess.Start(ctx)
	return sess
}

// Peek returns the session if one is running, without starting it.
func (m *Manager) Peek(profile Profile) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[profile.Key()]
	return sess, ok
}

// Drop stops and forgets the session for the profile.
func (m *Manager) Drop(profile Profile) {
	m.mu.Lock()
	sess, ok := m.sessions[profile.Key()]
	if ok {
		delete(m.sessions, profile.Key())
	}
	m.mu.Unlock()
	if ok {
		sess.Stop()
	}
}

// StopAll tears down every running session.
func (m *Manager) StopAll() {
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, sess := range m.sessions {
		sessions = append(sessions, sess)
	}
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()
	for _, sess := range sessions {
		sess.Stop()
	}
}
