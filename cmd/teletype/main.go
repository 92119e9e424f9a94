// Copyright 2026 The Teletype Authors
// SPDX-License-Identifier: Apache-2.0

// teletype is a terminal client for Typeto.me-style chat rooms: every
// participant's typing is mirrored live, keystroke by keystroke,
// before the line is committed with Enter.
//
// With no arguments it creates a fresh room and prints nothing but
// the TUI — share the room id from the status bar to invite someone.
// With a room id argument it joins (or revives) that room.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/typetome/teletype/lib/config"
	"github.com/typetome/teletype/lib/roomui"
	"github.com/typetome/teletype/lib/session"
	"github.com/typetome/teletype/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var host string
	var configPath string
	var logOutput string

	flagSet := pflag.NewFlagSet("teletype", pflag.ContinueOnError)
	flagSet.StringVar(&host, "host", "", "websocket URL of the chat server (default wss://typeto.me/ws)")
	flagSet.StringVar(&configPath, "config", "", "path to config file (default $TELETYPE_CONFIG if set)")
	flagSet.StringVar(&logOutput, "log-output", "", "append JSON log records to this file")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing to match other Teletype
	// binaries.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("teletype")
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	args := flagSet.Args()
	if len(args) > 1 {
		return fmt.Errorf("unexpected argument: %s", args[1])
	}
	roomID := ""
	if len(args) == 1 {
		roomID = args[0]
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if host == "" {
		host = cfg.Server.URL
	}
	if logOutput == "" {
		logOutput = cfg.Log.Output
	}

	logger, closeLog, err := newLogger(logOutput, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn, err := session.Dial(ctx, session.Config{
		URL:    host,
		RoomID: roomID,
		Logger: logger,
	})
	if err != nil {
		return err
	}
	defer conn.Close()
	go conn.Run(ctx)

	model := roomui.NewModel(conn.Events(), conn, logger)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

// newLogger builds the slog logger for the process. Records go to the
// given file as JSON, never to the terminal the TUI owns; an empty
// path discards everything.
func newLogger(path, level string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log output: %w", err)
	}

	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(levelOrDefault(level))); err != nil {
		file.Close()
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: logLevel})
	return slog.New(handler), func() { file.Close() }, nil
}

func levelOrDefault(level string) string {
	if level == "" {
		return "info"
	}
	return level
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Teletype — live-typing terminal chat.

Joins or creates a room on a Typeto.me-compatible server and shows
every participant's in-progress typing in real time, one panel per
participant. Enter commits the current line; Esc or Ctrl+C quits.

Usage:
  teletype [ROOM_ID] [flags]

Flags:
%s`, flagSet.FlagUsages())
}
