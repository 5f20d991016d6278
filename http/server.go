// Package http provides a local web chat interface for asking questions
// about indexed PDF libraries.
package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/pdfchat/pdfchat"
	"golang.org/x/time/rate"
)

// DefaultAddr is the default listen address for the chat server.
const DefaultAddr = "localhost:8080"

// DefaultRPS is the default per-server sustained request rate for /api/ask.
const DefaultRPS = 2

//go:embed chat.html
var chatPage []byte

// Server serves a minimal chat UI backed by an Asker.
type Server struct {
	server    *http.Server
	asker     pdfchat.Asker
	libraries pdfchat.LibraryService
	logger    *slog.Logger
	limiter   *rate.Limiter

	mu       sync.Mutex
	sessions map[string][]pdfchat.Message
}

// Option configures a Server.
type Option func(*Server)

// WithAddr sets the listen address. Defaults to DefaultAddr.
func WithAddr(addr string) Option {
	return func(s *Server) {
		s.server.Addr = addr
	}
}

// WithRateLimit sets the sustained request rate and burst for /api/ask.
func WithRateLimit(rps float64, burst int) Option {
	return func(s *Server) {
		s.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// NewServer creates a new chat server.
func NewServer(asker pdfchat.Asker, libraries pdfchat.LibraryService, logger *slog.Logger, opts ...Option) *Server {
	s := &Server{
		server: &http.Server{
			Addr:              DefaultAddr,
			ReadHeaderTimeout: 5 * time.Second,
		},
		asker:     asker,
		libraries: libraries,
		logger:    logger,
		limiter:   rate.NewLimiter(rate.Limit(DefaultRPS), DefaultRPS*2),
		sessions:  make(map[string][]pdfchat.Message),
	}
	for _, opt := range opts {
		opt(s)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /api/ask", s.handleAsk)
	mux.HandleFunc("GET /api/history", s.handleHistory)
	s.server.Handler = mux

	return s
}

// Handler returns the server's HTTP handler, primarily for testing.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Open starts listening on the configured address and serves until the
// listener is closed. It blocks the calling goroutine.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return pdfchat.Errorf(pdfchat.EINTERNAL, "listen on %s: %v", s.server.Addr, err)
	}
	s.logger.Info("chat server listening", "addr", s.server.Addr)
	if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(chatPage)
}

type askRequest struct {
	SessionID string `json:"session_id"`
	Library   string `json:"library"` // library name
	Question  string `json:"question"`
}

type askResponse struct {
	Answer string `json:"answer"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	if !s.limiter.Allow() {
		writeError(w, http.StatusTooManyRequests, "too many requests")
		return
	}

	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Question == "" {
		writeError(w, http.StatusBadRequest, "question is required")
		return
	}
	if req.Library == "" {
		writeError(w, http.StatusBadRequest, "library is required")
		return
	}

	// The page takes a library name; resolve it like the CLI does.
	libraries, err := s.libraries.FindLibraries(r.Context(), pdfchat.LibraryFilter{Name: &req.Library})
	if err != nil {
		s.logger.Error("library lookup failed", "library", req.Library, "err", err)
		writeError(w, statusFromError(err), pdfchat.ErrorMessage(err))
		return
	}
	if len(libraries) == 0 {
		writeError(w, http.StatusNotFound, fmt.Sprintf("library %q not found", req.Library))
		return
	}

	answer, err := s.asker.Ask(r.Context(), libraries[0].ID, req.Question)
	if err != nil {
		s.logger.Error("ask failed", "library", req.Library, "err", err)
		writeError(w, statusFromError(err), pdfchat.ErrorMessage(err))
		return
	}

	if req.SessionID != "" {
		s.appendMessages(req.SessionID,
			pdfchat.Message{Role: pdfchat.RoleUser, Content: req.Question, CreatedAt: time.Now().UTC()},
			pdfchat.Message{Role: pdfchat.RoleAssistant, Content: answer, CreatedAt: time.Now().UTC()},
		)
	}

	writeJSON(w, http.StatusOK, askResponse{Answer: answer})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "session_id is required")
		return
	}

	s.mu.Lock()
	history := make([]pdfchat.Message, len(s.sessions[sessionID]))
	copy(history, s.sessions[sessionID])
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, history)
}

func (s *Server) appendMessages(sessionID string, msgs ...pdfchat.Message) {
	s.mu.Lock()
	s.sessions[sessionID] = append(s.sessions[sessionID], msgs...)
	s.mu.Unlock()
}

func statusFromError(err error) int {
	switch pdfchat.ErrorCode(err) {
	case pdfchat.EINVALID:
		return http.StatusBadRequest
	case pdfchat.ENOTFOUND:
		return http.StatusNotFound
	case pdfchat.EUNAVAILABLE:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
