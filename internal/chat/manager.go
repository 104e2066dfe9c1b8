package chat

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/yojanasathi/yojanasathi/internal/metrics"
	"github.com/yojanasathi/yojanasathi/pkg/models"
)

// ReplyFunc receives the assistant reply for a turn once it has been
// appended to the session, for delivery to SSE subscribers.
type ReplyFunc func(sessionID string, msg models.Message)

// Manager runs chat turns: it appends the user message immediately,
// classifies it, and appends the assistant reply after a bounded random
// thinking delay. The reply is appended exactly once per turn whether or
// not anyone is subscribed.
type Manager struct {
	engine   *Engine
	minDelay time.Duration
	maxDelay time.Duration
	onReply  ReplyFunc

	// schedule defers fn by d. Injectable so tests can deliver inline.
	schedule func(d time.Duration, fn func())
}

// Option configures a Manager.
type Option func(*Manager)

// WithDelayBounds sets the simulated thinking delay bounds.
func WithDelayBounds(min, max time.Duration) Option {
	return func(m *Manager) {
		m.minDelay = min
		m.maxDelay = max
	}
}

// WithScheduler replaces the delay scheduler. Tests use an inline scheduler
// to make delivery synchronous.
func WithScheduler(schedule func(d time.Duration, fn func())) Option {
	return func(m *Manager) {
		m.schedule = schedule
	}
}

// NewManager creates a turn manager around the given engine. onReply may be
// nil when no push delivery is wanted.
func NewManager(engine *Engine, onReply ReplyFunc, opts ...Option) *Manager {
	m := &Manager{
		engine:   engine,
		minDelay: 800 * time.Millisecond,
		maxDelay: 1200 * time.Millisecond,
		onReply:  onReply,
		schedule: func(d time.Duration, fn func()) { time.AfterFunc(d, fn) },
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Post handles one user turn. The user message is appended and returned
// immediately; the remembered intent is updated at classification time and
// the assistant reply lands after the delay.
func (m *Manager) Post(sess *Session, text, userName string) models.Message {
	userMsg := models.Message{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    models.SenderUser,
		CreatedAt: time.Now().UnixMilli(),
	}
	sess.append(userMsg)

	result := m.engine.Respond(text, sess.Language, sess.LastIntent(), userName)
	if result.SetIntent {
		sess.setIntent(result.Intent)
	}
	metrics.ChatTurns.WithLabelValues(string(result.Kind)).Inc()

	log.Debug().
		Str("sessionId", sess.ID).
		Str("kind", string(result.Kind)).
		Str("intent", result.Intent).
		Msg("Chat turn classified")

	m.schedule(m.replyDelay(), func() {
		reply := models.Message{
			ID:        uuid.NewString(),
			Text:      result.Reply,
			Sender:    models.SenderAssistant,
			CreatedAt: time.Now().UnixMilli(),
		}
		sess.append(reply)
		if m.onReply != nil {
			m.onReply(sess.ID, reply)
		}
	})

	return userMsg
}

// replyDelay draws a uniform duration from the configured bounds. The delay
// is perceived-responsiveness only; it carries no correctness semantics.
func (m *Manager) replyDelay() time.Duration {
	if m.maxDelay <= m.minDelay {
		return m.minDelay
	}
	return m.minDelay + time.Duration(rand.Int63n(int64(m.maxDelay-m.minDelay)))
}
