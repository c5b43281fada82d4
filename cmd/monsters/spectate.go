package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/vovakirdan/snake-monsters/internal/platform/spectate"
)

// spectateServer is the websocket feed started by --spectate.
type spectateServer struct {
	hub    *spectate.Hub
	server *http.Server
	cancel context.CancelFunc
}

// startSpectate binds addr and serves the spectator feed on /ws. The listener
// is opened synchronously so a bad address fails the command up front.
func startSpectate(ctx context.Context, addr string) (*spectateServer, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	hub := spectate.NewHub(logger.WithPrefix("spectate"))
	go hub.Run(ctx)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", hub.ServeWS)
	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("spectate server stopped", "err", err)
		}
	}()
	logger.Info("spectate feed listening", "addr", "ws://"+ln.Addr().String()+"/ws")

	return &spectateServer{hub: hub, server: srv, cancel: cancel}, nil
}

// Close stops the HTTP server and disconnects every spectator.
func (s *spectateServer) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		logger.Warn("spectate shutdown", "err", err)
	}
	s.cancel()
}
