// Package main runs the PakJobs interactive shell against a local session file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/atinyakov/pakjobs/internal/app"
	"github.com/atinyakov/pakjobs/internal/client/shell"
	"github.com/atinyakov/pakjobs/internal/logger"
	"github.com/atinyakov/pakjobs/internal/service"
	"github.com/atinyakov/pakjobs/internal/storage"
)

var (
	version   string
	buildDate string
)

func main() {
	var (
		sessionFile string
		logLevel    string
		showVer     bool
	)

	flag.StringVar(&sessionFile, "s", "pakjobs.json", "session storage file")
	flag.StringVar(&logLevel, "l", "warn", "log level")
	flag.BoolVar(&showVer, "version", false, "show build version and date")
	flag.Parse()

	if showVer {
		fmt.Printf("PakJobs Shell\nVersion: %s\nBuild Date: %s\n", version, buildDate)
		return
	}

	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init(logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sessions := service.NewSessionService(storage.NewFileStore(sessionFile), log.Log)
	board := app.NewBoard(ctx, sessions, app.WithLogger(log.Log))
	log.Log.Debug("shell started", zap.String("session_file", sessionFile))

	fmt.Println("PakJobs: connecting Pakistan's talent. Type 'help' for a list of commands.")
	sh := &shell.Shell{Board: board, In: os.Stdin, Out: os.Stdout}
	sh.Run(ctx)
}
