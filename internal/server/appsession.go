package server

import (
	"sync"

	"github.com/google/uuid"

	"github.com/yojanasathi/yojanasathi/internal/chat"
	"github.com/yojanasathi/yojanasathi/internal/i18n"
	"github.com/yojanasathi/yojanasathi/internal/profile"
)

// AppSession is the per-client application state: language preference,
// profile (with its setup wizard), and the current chat session. It lives
// only in memory; nothing survives a restart.
type AppSession struct {
	Token string

	mu       sync.Mutex
	language i18n.Language
	profile  *profile.Profile
	wizard   *profile.Wizard
	chat     *chat.Session
}

func newAppSession(lang i18n.Language) *AppSession {
	return &AppSession{
		Token:    uuid.NewString(),
		language: lang,
		wizard:   profile.NewWizard(),
		chat:     chat.NewSession(lang),
	}
}

// Language returns the session's UI language.
func (a *AppSession) Language() i18n.Language {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.language
}

// SetLanguage switches the UI language. A change recreates the chat
// session: transcript and remembered intent start over in the new
// language.
func (a *AppSession) SetLanguage(lang i18n.Language) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.language == lang {
		return
	}
	a.language = lang
	a.chat = chat.NewSession(lang)
}

// Chat returns the current chat session.
func (a *AppSession) Chat() *chat.Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.chat
}

// Profile returns the completed profile, or nil before setup finishes.
func (a *AppSession) Profile() *profile.Profile {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.profile
}

// Wizard returns the profile setup wizard.
func (a *AppSession) Wizard() *profile.Wizard {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.wizard
}

// CompleteProfile stores a finished profile.
func (a *AppSession) CompleteProfile(p profile.Profile) {
	a.mu.Lock()
	a.profile = &p
	a.mu.Unlock()
}

// ResetWizard discards the setup flow, as when the user backs out of step
// one to the login screen.
func (a *AppSession) ResetWizard() {
	a.mu.Lock()
	a.wizard = profile.NewWizard()
	a.mu.Unlock()
}

// UserName returns the profile name for greeting personalization, empty
// before setup completes.
func (a *AppSession) UserName() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.profile == nil {
		return ""
	}
	return a.profile.Name
}

// SessionStore holds all live app sessions, keyed by opaque token.
type SessionStore struct {
	mu          sync.RWMutex
	sessions    map[string]*AppSession
	defaultLang i18n.Language
}

// NewSessionStore creates an empty session store.
func NewSessionStore(defaultLang i18n.Language) *SessionStore {
	return &SessionStore{
		sessions:    make(map[string]*AppSession),
		defaultLang: defaultLang,
	}
}

// Create mints a new app session.
func (s *SessionStore) Create() *AppSession {
	sess := newAppSession(s.defaultLang)

	s.mu.Lock()
	s.sessions[sess.Token] = sess
	s.mu.Unlock()

	return sess
}

// Get resolves a session token.
func (s *SessionStore) Get(token string) (*AppSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[token]
	return sess, ok
}

// Count returns the number of live sessions.
func (s *SessionStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
