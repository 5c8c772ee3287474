package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"

	"github.com/amoebalab/menavky/internal/config"
	"github.com/amoebalab/menavky/internal/frontend"
	"github.com/amoebalab/menavky/internal/game"
)

// Run starts the server and blocks until the context is canceled. An empty
// cfg.Addr binds an automatic localhost port. The bound ServerState is sent
// on started once listening.
func Run(ctx context.Context, cfg config.Config, started chan<- *ServerState) error {
	// Initialize global client state for server-side prerendering without panic
	frontend.InitState()

	serverState := NewServerState()
	serverState.StepDelay = cfg.StepDelay

	// Register go-app routes so the server knows how to prerender them
	app.Route("/", func() app.Composer { return &frontend.Board{} })

	// The web assets and the compiled webassembly
	// are served natively by the go-app framework
	h := &app.Handler{
		Name:        "Menavky",
		Title:       "Menavky",
		Description: "Find the escaped amoeba",
		Version:     game.Version,
		Styles: []string{
			"/web/css/pico.min.css",
			"/web/css/main.css",
		},
	}

	mux := http.NewServeMux()

	// Register WebSocket endpoint
	mux.HandleFunc("/ws", serverState.HandleWS)

	// Serve the go-app UI and the card images under /web
	mux.Handle("/web/", http.StripPrefix("/web/", http.FileServer(http.Dir("web/"))))
	mux.Handle("/", h)

	addr := cfg.Addr
	if addr == "" {
		addr = "127.0.0.1:0"
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	serverState.Address = listener.Addr().String()
	if started != nil {
		started <- serverState
	}

	srv := &http.Server{Handler: mux}

	go func() {
		klog.Infof("Server started on %s", serverState.Address)
		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			klog.Errorf("Server error: %v", err)
		}
	}()

	<-ctx.Done()

	// Graceful shutdown with 5 second timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	klog.Info("Shutting down server...")
	return srv.Shutdown(shutdownCtx)
}
