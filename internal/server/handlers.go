package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/yojanasathi/yojanasathi/internal/catalog"
	"github.com/yojanasathi/yojanasathi/internal/i18n"
	"github.com/yojanasathi/yojanasathi/internal/metrics"
	"github.com/yojanasathi/yojanasathi/internal/profile"
)

// SessionHeader carries the app session token. SSE requests may pass it as
// the "token" query parameter instead, since EventSource cannot set
// headers.
const SessionHeader = "X-Session-Token"

type ctxKey int

const sessionKey ctxKey = iota

// withSession resolves the session token and stores the session in the
// request context.
func (s *Service) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(SessionHeader)
		if token == "" {
			token = r.URL.Query().Get("token")
		}
		sess, ok := s.sessions.Get(token)
		if !ok {
			writeError(w, http.StatusUnauthorized, "unknown or missing session token")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey, sess)))
	})
}

func sessionFrom(r *http.Request) *AppSession {
	return r.Context().Value(sessionKey).(*AppSession)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// handleHealth reports service liveness.
func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"version":  s.version,
		"uptime":   s.startTime.UTC().Format("2006-01-02T15:04:05Z"),
		"sessions": s.sessions.Count(),
		"schemes":  s.catalog.Len(),
	})
}

// handleNotFound is the JSON analogue of the not-found view.
func (s *Service) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "page not found")
}

// handleCreateSession mints an app session.
func (s *Service) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Create()
	writeJSON(w, http.StatusCreated, map[string]string{
		"token":    sess.Token,
		"language": string(sess.Language()),
	})
}

// handleStates serves the state list for the setup form.
func (s *Service) handleStates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"states": catalog.IndianStates})
}

// handleListSchemes filters the catalog by category and free-text query,
// localized to the session language.
func (s *Service) handleListSchemes(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	metrics.CatalogSearches.Inc()

	params := catalog.FilterParams{
		Category: catalog.Category(r.URL.Query().Get("category")),
		Query:    r.URL.Query().Get("q"),
	}
	schemes := s.catalog.Filter(params)

	resp := map[string]interface{}{
		"schemes": catalog.LocalizeAll(schemes, sess.Language()),
		"total":   len(schemes),
	}
	if len(schemes) == 0 {
		resp["message"] = i18n.T(sess.Language(), i18n.KeyNoResults)
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleGetScheme serves a single scheme by id.
func (s *Service) handleGetScheme(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)

	scheme, ok := s.catalog.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, i18n.T(sess.Language(), i18n.KeyUnknownSchemeID))
		return
	}
	writeJSON(w, http.StatusOK, catalog.Localize(scheme, sess.Language()))
}

// handleRecommendations serves the occupation-based recommendation view.
// Without a completed profile the whole catalog is recommended.
func (s *Service) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	metrics.RecommendationsServed.Inc()

	occupation := ""
	if p := sess.Profile(); p != nil {
		occupation = p.Occupation
	}
	schemes := s.catalog.RecommendFor(occupation)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"occupation": occupation,
		"schemes":    catalog.LocalizeAll(schemes, sess.Language()),
		"total":      len(schemes),
	})
}

// handleGetProfile reports wizard progress and the completed profile.
func (s *Service) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)

	resp := map[string]interface{}{
		"step": string(sess.Wizard().Step()),
		"form": sess.Wizard().Snapshot(),
	}
	if p := sess.Profile(); p != nil {
		resp["profile"] = p
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleProfileAdvance stores step-1 fields and moves to step 2 when they
// validate. A refusal mirrors the disabled next button: ok=false, step
// unchanged.
func (s *Service) handleProfileAdvance(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)

	var d profile.PersonalDetails
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ok := sess.Wizard().Advance(d)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":   ok,
		"step": string(sess.Wizard().Step()),
	})
}

// handleProfileBack navigates one step back. Backing out of step 1 exits
// the flow and discards entered values.
func (s *Service) handleProfileBack(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)

	exited := sess.Wizard().Back()
	if exited {
		sess.ResetWizard()
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"exited": exited,
		"step":   string(sess.Wizard().Step()),
	})
}

// handleProfileComplete stores step-2 fields and finishes the wizard.
func (s *Service) handleProfileComplete(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)

	var d profile.EconomicDetails
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	done, ok := sess.Wizard().Complete(d)
	if !ok {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"ok":   false,
			"step": string(sess.Wizard().Step()),
		})
		return
	}

	sess.CompleteProfile(done)
	metrics.ProfileSetupsCompleted.Inc()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":      true,
		"profile": done,
	})
}

// handleSetLanguage switches the UI language. A change recreates the chat
// session.
func (s *Service) handleSetLanguage(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)

	var body struct {
		Language string `json:"language"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess.SetLanguage(i18n.Parse(body.Language))
	writeJSON(w, http.StatusOK, map[string]string{
		"language":        string(sess.Language()),
		"chat_session_id": sess.Chat().ID,
	})
}

// handleChatTranscript serves the current transcript and remembered
// intent.
func (s *Service) handleChatTranscript(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	chatSess := sess.Chat()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session_id":  chatSess.ID,
		"messages":    chatSess.Messages(),
		"last_intent": chatSess.LastIntent(),
	})
}

// handleChatPost runs one chat turn. The user message is returned
// immediately; the assistant reply arrives on the SSE stream after the
// thinking delay.
func (s *Service) handleChatPost(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)

	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Text == "" {
		writeError(w, http.StatusBadRequest, "empty message")
		return
	}

	chatSess := sess.Chat()
	userMsg := s.chatManager.Post(chatSess, body.Text, sess.UserName())

	writeJSON(w, http.StatusAccepted, map[string]interface{}{
		"session_id":  chatSess.ID,
		"message":     userMsg,
		"last_intent": chatSess.LastIntent(),
	})
}

// handleChatEvents subscribes to the session's assistant replies over SSE.
func (s *Service) handleChatEvents(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	s.broadcaster.HandleSSE(w, r, sess.Chat().ID)
}
