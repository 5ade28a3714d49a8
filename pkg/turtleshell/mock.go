package turtleshell

import (
	"context"
	"sync"
)

// MockCall records one invocation on a MockShell.
type MockCall struct {
	Op   string
	Args []string
}

// MockShell is a Facade for testing callers. It records every call and
// returns the canned results configured on it.
type MockShell struct {
	mu    sync.Mutex
	Calls []MockCall

	Entries  []string
	Contents map[string]string
	Err      error
}

// NewMockShell creates a new MockShell.
func NewMockShell() *MockShell {
	return &MockShell{Contents: make(map[string]string)}
}

func (m *MockShell) record(op string, args ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, MockCall{Op: op, Args: append([]string(nil), args...)})
	return m.Err
}

// Ops returns the names of the recorded operations in call order.
func (m *MockShell) Ops() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	ops := make([]string, len(m.Calls))
	for i, c := range m.Calls {
		ops[i] = c.Op
	}
	return ops
}

func (m *MockShell) List(ctx context.Context, dir string) ([]string, error) {
	if err := m.record("ls", dir); err != nil {
		return nil, err
	}
	return m.Entries, nil
}

func (m *MockShell) ReadAll(ctx context.Context, paths ...string) ([]string, error) {
	if err := m.record("cat", paths...); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = m.Contents[p]
	}
	return out, nil
}

func (m *MockShell) Copy(ctx context.Context, args ...string) error {
	if len(args) < 2 {
		return argumentError("cp", KindCopyArgument)
	}
	return m.record("cp", args...)
}

func (m *MockShell) Move(ctx context.Context, args ...string) error {
	if len(args) < 2 {
		return argumentError("mv", KindMoveArgument)
	}
	return m.record("mv", args...)
}

func (m *MockShell) CreateFile(ctx context.Context, path string) error {
	return m.record("touch", path)
}

func (m *MockShell) CreateDirectory(ctx context.Context, path string) error {
	return m.record("mkdir", path)
}

var _ Facade = (*MockShell)(nil)
