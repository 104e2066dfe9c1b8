package chat

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yojanasathi/yojanasathi/internal/i18n"
	"github.com/yojanasathi/yojanasathi/pkg/models"
)

// Session is one chat transcript. It lives for as long as the app session
// keeps it; switching the UI language replaces it with a fresh one. The
// remembered intent is an explicit field so its value is observable
// independently of reply text.
type Session struct {
	ID       string
	Language i18n.Language

	mu         sync.Mutex
	messages   []models.Message
	lastIntent string
}

// NewSession creates a session seeded with the assistant welcome message.
func NewSession(lang i18n.Language) *Session {
	s := &Session{
		ID:       uuid.NewString(),
		Language: lang,
	}
	s.append(models.Message{
		ID:        uuid.NewString(),
		Text:      i18n.T(lang, i18n.KeyWelcomeAssist),
		Sender:    models.SenderAssistant,
		CreatedAt: time.Now().UnixMilli(),
	})
	return s
}

// Messages returns a copy of the transcript in order.
func (s *Session) Messages() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// LastIntent returns the single-slot remembered intent key, empty when no
// scheme has been resolved yet.
func (s *Session) LastIntent() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastIntent
}

func (s *Session) append(msg models.Message) {
	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.mu.Unlock()
}

func (s *Session) setIntent(key string) {
	s.mu.Lock()
	s.lastIntent = key
	s.mu.Unlock()
}
