package ecommerce

import (
	"context"
	"fmt"
	"sync"
)

// MockStorage implements the Storage interface for testing
type MockStorage struct {
	mu          sync.RWMutex
	data        map[string]*Settings
	closed      bool
	forceGetErr error // For forcing errors in Get for testing
	forceSetErr error // For forcing errors in Set for testing
}

func NewMockStorage() *MockStorage {
	return &MockStorage{
		data: make(map[string]*Settings),
	}
}

func (m *MockStorage) Get(ctx context.Context, userID string) (*Settings, error) {
	_, _ = ctx.Deadline()
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStorageUnavailable
	}
	if m.forceGetErr != nil {
		return nil, m.forceGetErr
	}

	if s, exists := m.data[userID]; exists {
		// Return a copy to prevent modifications from affecting stored data
		c := *s
		return &c, nil
	}
	return nil, ErrNotFound
}

func (m *MockStorage) Set(ctx context.Context, s *Settings) error {
	_, _ = ctx.Deadline()
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStorageUnavailable
	}
	if m.forceSetErr != nil {
		return m.forceSetErr
	}

	c := *s
	m.data[s.UserID] = &c
	return nil
}

func (m *MockStorage) Delete(ctx context.Context, userID string) error {
	_, _ = ctx.Deadline()
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStorageUnavailable
	}

	if _, exists := m.data[userID]; exists {
		delete(m.data, userID)
		return nil
	}
	return ErrNotFound
}

func (m *MockStorage) GetAll(ctx context.Context) (map[string]*Settings, error) {
	_, _ = ctx.Deadline()
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStorageUnavailable
	}

	out := make(map[string]*Settings, len(m.data))
	for user, s := range m.data {
		c := *s
		out[user] = &c
	}
	return out, nil
}

// SetGetError sets up an error to be returned by Get
func (m *MockStorage) SetGetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.forceGetErr = err
}

// SetSetError sets up an error to be returned by Set
func (m *MockStorage) SetSetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.forceSetErr = err
}

func (m *MockStorage) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// MockLogger implements the Logger interface for testing
type MockLogger struct {
	mu       sync.Mutex
	Messages []string
}

func (m *MockLogger) Debug(msg string, args ...any) {
	m.record("DEBUG", msg, args...)
}

func (m *MockLogger) Info(msg string, args ...any) {
	m.record("INFO", msg, args...)
}

func (m *MockLogger) Warn(msg string, args ...any) {
	m.record("WARN", msg, args...)
}

func (m *MockLogger) Error(msg string, args ...any) {
	m.record("ERROR", msg, args...)
}

// SetLevel records the attempt to set the log level for test verification.
func (m *MockLogger) SetLevel(level LogLevel) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Messages = append(m.Messages, fmt.Sprintf("SET_LEVEL: %v", level))
}

func (m *MockLogger) record(level, msg string, args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Messages = append(m.Messages, formatMessage(level, msg, args...))
}

func formatMessage(level, msg string, args ...any) string {
	if len(args) > 0 {
		return fmt.Sprintf("%s: %s %v", level, msg, args)
	}
	return fmt.Sprintf("%s: %s", level, msg)
}
