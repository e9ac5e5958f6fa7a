package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/JackWReid/modal/internal/editor"
	"github.com/JackWReid/modal/internal/log"
	"github.com/JackWReid/modal/internal/terminal"
)

var Version = "dev"

type Options struct {
	Version bool   `short:"v" long:"version" description:"Print the version and exit"`
	LogFile string `long:"log-file" description:"Append diagnostic logs to this file"`
	Debug   bool   `long:"debug" description:"Log every dispatched key (needs --log-file)"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Println("modal " + Version)
		return
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "modal: %v\n", err)
		os.Exit(1)
	}
}

func run(opts Options) error {
	if opts.LogFile != "" {
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()

		level := slog.LevelInfo
		if opts.Debug {
			level = slog.LevelDebug
		}
		log.SetOutput(f, level)
	}

	t, err := terminal.NewTerminal()
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	defer t.Restore()

	return editor.Run(t, terminal.NewScreen(os.Stdout))
}
