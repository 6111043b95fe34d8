package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/akshayghatge/prabhag-pulse/cliparse"
	"github.com/akshayghatge/prabhag-pulse/middleware"
	"github.com/akshayghatge/prabhag-pulse/router"
	"github.com/akshayghatge/prabhag-pulse/store"
)

func main() {
	// Load .env if present; real env vars take precedence
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded .env file")
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Load the results table
	st := store.Open(cfg.DataPath)
	for _, warning := range st.Warnings() {
		slog.Warn("data warning", "warning", warning)
	}
	slog.Info("Table loaded", "path", cfg.DataPath, "rows", len(st.Records()))

	// Create router
	mux := router.NewRouter(st, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
