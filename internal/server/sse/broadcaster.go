// Package sse provides Server-Sent Events delivery for yojanasathi chat
// sessions.
package sse

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

const (
	// WriteTimeout is the timeout for writing to SSE clients.
	// Prevents blocking on stale connections.
	WriteTimeout = 2 * time.Second
)

// Client represents one connected SSE subscriber on a topic.
type Client struct {
	Writer  http.ResponseWriter
	Flusher http.Flusher
	Done    chan struct{}
	ID      string
	Topic   string
}

// Broadcaster manages SSE subscribers grouped by topic. Chat uses the chat
// session id as the topic, so replies only reach that session's window.
type Broadcaster struct {
	mu     sync.RWMutex
	topics map[string]map[string]*Client
	nextID int
}

// NewBroadcaster creates a new SSE broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		topics: make(map[string]map[string]*Client),
	}
}

// AddClient subscribes a new SSE client to a topic.
func (b *Broadcaster) AddClient(w http.ResponseWriter, topic string) (*Client, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	b.mu.Lock()
	b.nextID++
	id := fmt.Sprintf("client-%d", b.nextID)
	client := &Client{
		ID:      id,
		Topic:   topic,
		Writer:  w,
		Flusher: flusher,
		Done:    make(chan struct{}),
	}
	if b.topics[topic] == nil {
		b.topics[topic] = make(map[string]*Client)
	}
	b.topics[topic][id] = client
	count := len(b.topics[topic])
	b.mu.Unlock()

	log.Debug().
		Str("clientId", id).
		Str("topic", topic).
		Int("topicClients", count).
		Msg("SSE client connected")

	return client, nil
}

// RemoveClient removes a client connection.
func (b *Broadcaster) RemoveClient(client *Client) {
	b.mu.Lock()
	b.detachLocked(client.Topic, client.ID)
	b.mu.Unlock()

	select {
	case <-client.Done:
		// Already closed
	default:
		close(client.Done)
	}

	log.Debug().
		Str("clientId", client.ID).
		Str("topic", client.Topic).
		Msg("SSE client disconnected")
}

func (b *Broadcaster) detachLocked(topic, id string) {
	clients, ok := b.topics[topic]
	if !ok {
		return
	}
	delete(clients, id)
	if len(clients) == 0 {
		delete(b.topics, topic)
	}
}

// Publish sends a payload to every subscriber of a topic. Writes are
// bounded by WriteTimeout so a stale connection cannot block a turn.
func (b *Broadcaster) Publish(topic string, data interface{}) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal SSE data")
		return
	}
	message := fmt.Sprintf("data: %s\n\n", jsonData)

	b.mu.RLock()
	clients := make([]*Client, 0, len(b.topics[topic]))
	for _, client := range b.topics[topic] {
		clients = append(clients, client)
	}
	b.mu.RUnlock()

	if len(clients) == 0 {
		return
	}

	deadCh := make(chan *Client, len(clients))
	var wg sync.WaitGroup

	for _, client := range clients {
		select {
		case <-client.Done:
			continue
		default:
			wg.Add(1)
			go func(c *Client) {
				defer wg.Done()
				b.writeToClient(c, message, deadCh)
			}(client)
		}
	}

	wg.Wait()
	close(deadCh)

	for client := range deadCh {
		b.RemoveClient(client)
	}
}

// writeToClient writes a message to a single client with timeout.
func (b *Broadcaster) writeToClient(client *Client, message string, deadCh chan<- *Client) {
	done := make(chan struct{})

	go func() {
		defer close(done)
		_, err := client.Writer.Write([]byte(message))
		if err != nil {
			log.Debug().
				Str("clientId", client.ID).
				Err(err).
				Msg("Failed to write to SSE client, marking for removal")
			deadCh <- client
			return
		}
		client.Flusher.Flush()
	}()

	select {
	case <-done:
		// Write completed
	case <-time.After(WriteTimeout):
		log.Warn().
			Str("clientId", client.ID).
			Dur("timeout", WriteTimeout).
			Msg("SSE write timed out, marking client for removal")
		deadCh <- client
	case <-client.Done:
		// Client disconnected during write
	}
}

// ClientCount returns the number of subscribers on a topic.
func (b *Broadcaster) ClientCount(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.topics[topic])
}

// HandleSSE serves an SSE subscription on the given topic until the client
// disconnects.
func (b *Broadcaster) HandleSSE(w http.ResponseWriter, r *http.Request, topic string) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	client, err := b.AddClient(w, topic)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer b.RemoveClient(client)

	fmt.Fprintf(w, "data: {\"type\":\"connected\",\"clientId\":\"%s\"}\n\n", client.ID)
	client.Flusher.Flush()

	<-r.Context().Done()
}
