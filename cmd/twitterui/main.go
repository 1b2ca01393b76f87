package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"twitterui/internal/config"
	"twitterui/internal/credentials"
	"twitterui/internal/domain"
	"twitterui/internal/poller"
	"twitterui/internal/publisher"
	"twitterui/internal/service"
	"twitterui/internal/source/twitter"
	"twitterui/internal/ui"
)

const shutdownTimeout = 3 * time.Second

func main() {
	configPath := flag.String("config", defaultConfigPath(), "path to config file")
	title := flag.String("title", "", "window title")
	width := flag.Int("width", 0, "layout width in columns, 0 follows the terminal")
	height := flag.Int("height", 0, "layout height in rows, 0 follows the terminal")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	if *title != "" {
		cfg.UI.Title = *title
	}
	if *width > 0 {
		cfg.UI.Width = *width
	}
	if *height > 0 {
		cfg.UI.Height = *height
	}

	// The terminal belongs to the UI, so logs go to a file.
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to open log file:", err)
		os.Exit(1)
	}
	defer logFile.Close()

	logger := setupLogger(logFile, cfg.LogLevel)

	if err := run(cfg, logger); err != nil {
		logger.Error("twitterui stopped", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithCancel(sigCtx)
	defer cancel()

	// Initialize RabbitMQ publisher
	var events poller.Publisher
	if cfg.Events.Enabled() {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.Events.URL,
			Exchange:   cfg.Events.Exchange,
			RoutingKey: cfg.Events.RoutingKey,
			QueueName:  cfg.Events.QueueName,
		}, logger)
		if err != nil {
			logger.Warn("event publishing disabled", "error", err)
		} else {
			defer rabbitMQ.Close()
			events = rabbitMQ
		}
	}

	client := twitter.New(twitter.Config{
		BaseURL:           cfg.API.BaseURL,
		Timeout:           cfg.API.Timeout,
		RequestsPerSecond: cfg.API.RequestsPerSecond,
		Burst:             cfg.API.Burst,
	}, logger)
	store := credentials.NewFileStore(cfg.Credentials.Path)
	dispatcher := ui.NewDispatcher()

	state := poller.NewState()
	sched := poller.NewScheduler(client, dispatcher, events, state, poller.Config{
		Interval: cfg.Poll.Interval,
	}, logger)
	watchdog := poller.NewWatchdog(state, sched, poller.WatchdogConfig{
		Timeout:    cfg.Poll.Timeout,
		CheckEvery: cfg.Poll.WatchdogEvery,
	}, logger)
	sessions := service.NewSessionService(ctx, client, store, sched, logger)

	opts := ui.Options{
		Title:   cfg.UI.Title,
		BaseURL: cfg.API.BaseURL,
		Width:   cfg.UI.Width,
		Height:  cfg.UI.Height,
	}

	session, err := sessions.Resume()
	switch {
	case errors.Is(err, domain.ErrNoCredentials):
		logger.Info("no stored credentials, showing welcome screen", "path", store.Path())
	case err != nil:
		logger.Warn("could not resume session, showing welcome screen", "error", err)
	default:
		opts.Session = session
		opts.Credentials = domain.Credentials{Login: session.Login, Password: session.Password}
	}

	watchdogDone := make(chan struct{})
	go func() {
		defer close(watchdogDone)
		_ = watchdog.Run(ctx)
	}()

	program := tea.NewProgram(ui.New(sessions, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	go dispatcher.Run(ctx, program)

	logger.Info("starting twitterui",
		"base_url", cfg.API.BaseURL,
		"interval", cfg.Poll.Interval,
		"events", cfg.Events.Enabled(),
	)

	_, err = program.Run()

	cancel()
	<-watchdogDone
	sched.Wait(shutdownTimeout)

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run ui: %w", err)
	}

	logger.Info("twitterui stopped")
	return nil
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".config", "twitterui", "config.yaml")
}

func setupLogger(w io.Writer, level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(w, opts)
	return slog.New(handler)
}
