package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/luxa-club/luxa/internal/account"
	"github.com/luxa-club/luxa/internal/config"
	"github.com/luxa-club/luxa/internal/leaderboard"
	"github.com/luxa-club/luxa/internal/web"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

func main() {
	config.LoadDotenv()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "web",
	})

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	backendURL := config.GetEnv("BACKEND_URL", "")
	backendKey := config.GetEnv("BACKEND_ANON_KEY", "")
	if backendURL == "" || backendKey == "" {
		logger.Fatal("BACKEND_URL and BACKEND_ANON_KEY must be set")
	}

	auth := account.NewClient(backendURL, backendKey)
	board := leaderboard.NewClient(backendURL, backendKey)

	server, err := web.NewServer(logger, auth, board)
	if err != nil {
		logger.Fatal("failed to build server", "err", err)
	}

	addr := fmt.Sprintf("%s:%s", host, port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           server,
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting web server", "addr", "http://"+addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "err", err)
	}
}
