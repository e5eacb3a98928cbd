package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/danielhkuo/prioritisation-matrix/cliparse"
	"github.com/danielhkuo/prioritisation-matrix/db"
	"github.com/danielhkuo/prioritisation-matrix/handlers"
	"github.com/danielhkuo/prioritisation-matrix/router"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger.With("session", uuid.NewString()))

	// Connect to the key-value store
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Prompts only make sense when a person is typing
	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())

	scanner := bufio.NewScanner(os.Stdin)
	confirm := &handlers.LineConfirmer{In: scanner, Out: os.Stdout, Prompts: interactive}
	session := handlers.NewSession(db.NewStateStore(dbConn), cfg, confirm)
	r := router.NewRouter(session)

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		dbConn.Close()
		os.Exit(0)
	}()

	if interactive {
		fmt.Printf("Prioritisation Matrix (%s) - type help for commands\n", cfg.Variant)
		r.Dispatch(os.Stdout, "status")
		fmt.Print("> ")
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "quit" || line == "exit" {
			break
		}

		r.Dispatch(os.Stdout, line)

		if interactive {
			fmt.Print("> ")
		}
	}

	if err := scanner.Err(); err != nil {
		slog.Error("failed to read input", "error", err)
	}
	slog.Info("Session closed")
}
