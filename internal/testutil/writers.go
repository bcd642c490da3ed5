// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package testutil

import "sync"

// MockWriter implements io.Writer for testing.
// It allows configuring responses and records every buffer it receives.
type MockWriter struct {
	mu        sync.Mutex
	WriteFunc func(p []byte) (int, error)
	Calls     [][]byte // Copies of each buffer passed to Write
}

// NewMockWriter creates a new MockWriter that accepts every write.
func NewMockWriter() *MockWriter {
	return &MockWriter{
		Calls: make([][]byte, 0),
	}
}

// Write runs the configured WriteFunc, or reports a full write if unset.
func (m *MockWriter) Write(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, append([]byte(nil), p...))

	if m.WriteFunc != nil {
		return m.WriteFunc(p)
	}
	return len(p), nil
}

// CallCount returns the number of Write calls made.
func (m *MockWriter) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// GetCall returns the buffer of the call at the given index, or nil if out of range.
func (m *MockWriter) GetCall(index int) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	if index < 0 || index >= len(m.Calls) {
		return nil
	}
	return m.Calls[index]
}

// FailWith returns a WriteFunc that writes nothing and returns err.
func FailWith(err error) func(p []byte) (int, error) {
	return func(p []byte) (int, error) {
		return 0, err
	}
}

// ShortWrite returns a WriteFunc that reports only n bytes written without an error.
func ShortWrite(n int) func(p []byte) (int, error) {
	return func(p []byte) (int, error) {
		if n > len(p) {
			return len(p), nil
		}
		return n, nil
	}
}
