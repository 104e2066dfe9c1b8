// Package sse provides Server-Sent Events delivery for yojanasathi chat
// sessions.
package sse

import (
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
)

// BroadcasterSuite is a test suite for Broadcaster operations.
type BroadcasterSuite struct {
	suite.Suite
	broadcaster *Broadcaster
}

func (s *BroadcasterSuite) SetupTest() {
	s.broadcaster = NewBroadcaster()
}

func TestBroadcasterSuite(t *testing.T) {
	suite.Run(t, new(BroadcasterSuite))
}

// mockResponseWriter implements http.ResponseWriter and http.Flusher for testing.
type mockResponseWriter struct {
	header     http.Header
	body       []byte
	statusCode int
	mu         sync.Mutex
}

func newMockResponseWriter() *mockResponseWriter {
	return &mockResponseWriter{
		header:     make(http.Header),
		statusCode: http.StatusOK,
	}
}

func (m *mockResponseWriter) Header() http.Header {
	return m.header
}

func (m *mockResponseWriter) Write(data []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.body = append(m.body, data...)
	return len(data), nil
}

func (m *mockResponseWriter) WriteHeader(statusCode int) {
	m.statusCode = statusCode
}

func (m *mockResponseWriter) Flush() {
	// No-op for testing
}

func (m *mockResponseWriter) GetBody() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return string(m.body)
}

// TestNewBroadcaster tests broadcaster creation.
func (s *BroadcasterSuite) TestNewBroadcaster() {
	b := NewBroadcaster()
	s.NotNil(b)
	s.Equal(0, b.ClientCount("chat-1"))
}

// TestAddClient tests subscribing a client to a topic.
func (s *BroadcasterSuite) TestAddClient() {
	w := newMockResponseWriter()

	client, err := s.broadcaster.AddClient(w, "chat-1")
	s.NoError(err)
	s.NotNil(client)
	s.NotEmpty(client.ID)
	s.Equal("chat-1", client.Topic)
	s.Equal(1, s.broadcaster.ClientCount("chat-1"))
	s.Equal(0, s.broadcaster.ClientCount("chat-2"))
}

// TestRemoveClient tests unsubscribing.
func (s *BroadcasterSuite) TestRemoveClient() {
	w := newMockResponseWriter()
	client, err := s.broadcaster.AddClient(w, "chat-1")
	s.Require().NoError(err)

	s.broadcaster.RemoveClient(client)
	s.Equal(0, s.broadcaster.ClientCount("chat-1"))

	// Removing twice is harmless.
	s.broadcaster.RemoveClient(client)
}

// TestPublishReachesOnlyTopicSubscribers tests topic isolation.
func (s *BroadcasterSuite) TestPublishReachesOnlyTopicSubscribers() {
	w1 := newMockResponseWriter()
	w2 := newMockResponseWriter()
	_, err := s.broadcaster.AddClient(w1, "chat-1")
	s.Require().NoError(err)
	_, err = s.broadcaster.AddClient(w2, "chat-2")
	s.Require().NoError(err)

	s.broadcaster.Publish("chat-1", map[string]string{"type": "assistant_message"})

	s.Contains(w1.GetBody(), "assistant_message")
	s.Empty(w2.GetBody())
}

// TestPublishToEmptyTopic tests that publishing with no subscribers is a no-op.
func (s *BroadcasterSuite) TestPublishToEmptyTopic() {
	s.NotPanics(func() {
		s.broadcaster.Publish("nobody-here", map[string]string{"type": "x"})
	})
}

// TestPublishFormat tests SSE wire framing.
func (s *BroadcasterSuite) TestPublishFormat() {
	w := newMockResponseWriter()
	_, err := s.broadcaster.AddClient(w, "chat-1")
	s.Require().NoError(err)

	s.broadcaster.Publish("chat-1", map[string]string{"hello": "world"})

	body := w.GetBody()
	s.True(strings.HasPrefix(body, "data: "), "body %q", body)
	s.True(strings.HasSuffix(body, "\n\n"))
}
