// Package server provides the HTTP service for yojanasathi: the scheme
// catalog API, the profile setup wizard, and the chat assistant.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/yojanasathi/yojanasathi/internal/catalog"
	"github.com/yojanasathi/yojanasathi/internal/chat"
	"github.com/yojanasathi/yojanasathi/internal/config"
	"github.com/yojanasathi/yojanasathi/internal/i18n"
	"github.com/yojanasathi/yojanasathi/internal/server/sse"
	"github.com/yojanasathi/yojanasathi/pkg/models"
)

// Service is the yojanasathi HTTP service.
type Service struct {
	version     string
	config      *config.Config
	catalog     *catalog.Catalog
	sessions    *SessionStore
	chatManager *chat.Manager
	broadcaster *sse.Broadcaster
	router      chi.Router
	httpServer  *http.Server
	ctx         context.Context
	cancel      context.CancelFunc
	startTime   time.Time
}

// NewService wires the service together.
func NewService(cfg *config.Config, cat *catalog.Catalog, version string) *Service {
	ctx, cancel := context.WithCancel(context.Background())

	svc := &Service{
		version:     version,
		config:      cfg,
		catalog:     cat,
		sessions:    NewSessionStore(i18n.Parse(cfg.DefaultLanguage)),
		broadcaster: sse.NewBroadcaster(),
		router:      chi.NewRouter(),
		ctx:         ctx,
		cancel:      cancel,
		startTime:   time.Now(),
	}

	minDelay, maxDelay := cfg.ReplyDelayBounds()
	svc.chatManager = chat.NewManager(
		chat.NewEngine(),
		svc.publishReply,
		chat.WithDelayBounds(minDelay, maxDelay),
	)

	svc.setupRoutes()
	return svc
}

// publishReply pushes an assistant reply to the chat session's SSE
// subscribers.
func (s *Service) publishReply(sessionID string, msg models.Message) {
	s.broadcaster.Publish(sessionID, models.ChatEvent{
		Type:      "assistant_message",
		SessionID: sessionID,
		Message:   msg,
	})
}

// setupRoutes registers all HTTP routes.
func (s *Service) setupRoutes() {
	s.router.Use(middleware.Recoverer)
	s.router.Use(requestLogger)

	s.router.Get("/healthz", s.handleHealth)
	s.router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	index, assets, err := webShell()
	if err != nil {
		log.Error().Err(err).Msg("Embedded web shell unavailable")
	} else {
		s.router.Get("/", serveIndex(index))
		s.router.Handle("/assets/*", assets)
	}

	s.router.Route("/api", func(r chi.Router) {
		r.Post("/sessions", s.handleCreateSession)
		r.Get("/states", s.handleStates)

		r.Group(func(r chi.Router) {
			r.Use(s.withSession)

			r.Get("/schemes", s.handleListSchemes)
			r.Get("/schemes/{id}", s.handleGetScheme)
			r.Get("/recommendations", s.handleRecommendations)

			r.Get("/profile", s.handleGetProfile)
			r.Post("/profile/advance", s.handleProfileAdvance)
			r.Post("/profile/back", s.handleProfileBack)
			r.Post("/profile/complete", s.handleProfileComplete)

			r.Put("/language", s.handleSetLanguage)

			r.Get("/chat/messages", s.handleChatTranscript)
			r.Post("/chat/messages", s.handleChatPost)
			r.Get("/chat/events", s.handleChatEvents)
		})
	})

	s.router.NotFound(s.handleNotFound)
}

// Start runs the HTTP server until the context is canceled.
func (s *Service) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info().
		Str("addr", addr).
		Str("version", s.version).
		Int("schemes", s.catalog.Len()).
		Msg("Starting yojanasathi service")

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains the HTTP server.
func (s *Service) Shutdown(ctx context.Context) error {
	s.cancel()
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Router exposes the router for tests.
func (s *Service) Router() chi.Router {
	return s.router
}

// requestLogger logs each request with zerolog at debug level.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("Request handled")
	})
}
