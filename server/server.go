package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/theoremus-urban-solutions/sftraintimes/alexa"
	"github.com/theoremus-urban-solutions/sftraintimes/formatter"
	"github.com/theoremus-urban-solutions/sftraintimes/skill"
	"github.com/theoremus-urban-solutions/sftraintimes/utils"
)

// maxEventBytes bounds the request body read from the platform.
const maxEventBytes = 1 << 20

// EventHandler turns one inbound event into its response envelope.
type EventHandler interface {
	Handle(ctx context.Context, env alexa.RequestEnvelope) alexa.ResponseEnvelope
}

type Server struct {
	handler EventHandler
	info    Info
	log     *slog.Logger
	srv     *http.Server
}

// Info is reported by the health endpoint.
type Info struct {
	StoreDriver   string
	VisitProvider string
}

func New(port int, h EventHandler, info Info, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{handler: h, info: info, log: log}
	s.srv = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth(utils.Timestamp(time.Now())))
	mux.HandleFunc("POST /alexa", s.handleEvent)
	return mux
}

func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	var env alexa.RequestEnvelope
	body, err := io.ReadAll(io.LimitReader(r.Body, maxEventBytes))
	if err == nil {
		err = json.Unmarshal(body, &env)
	}
	var resp alexa.ResponseEnvelope
	if err != nil {
		s.log.Warn("malformed event", "err", err, "remote", r.RemoteAddr)
		resp = formatter.Build(formatter.Speak(skill.InvalidInputApology))
	} else {
		resp = s.handler.Handle(r.Context(), env)
	}
	w.Header().Set("Content-Type", "application/json;charset=UTF-8")
	if err := formatter.EncodeEnvelope(w, resp, ""); err != nil {
		s.log.Error("write response", "err", err)
	}
}

// Start listens in the background.
func (s *Server) Start() {
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("server error", "err", err)
			os.Exit(1)
		}
	}()
	s.log.Info("server listening", "addr", s.srv.Addr)
}

// Shutdown drains open connections, waiting at most 10 seconds.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.srv.Shutdown(ctx)
}

// WaitForSignal blocks until SIGINT or SIGTERM and then shuts the server down.
func (s *Server) WaitForSignal() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	s.log.Info("shutdown signal received")
	if err := s.Shutdown(); err != nil {
		s.log.Error("server shutdown error", "err", err)
		return
	}
	s.log.Info("server shut down successfully")
}
