package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/librarian/internal/cli"
	"github.com/mrlokans/librarian/internal/config"
	"github.com/mrlokans/librarian/internal/logging"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

type command interface {
	ParseFlags(args []string) error
	Run() error
}

func main() {
	cfg := config.NewConfig()
	log := logging.New(os.Stderr, cfg.Log.Level)

	// No arguments starts the interactive menu
	name := "run"
	var args []string
	if len(os.Args) >= 2 {
		name = os.Args[1]
		args = os.Args[2:]
	}

	var cmd command
	switch name {
	case "run":
		cmd = cli.NewRunCommand(cfg, log)

	case "serve":
		cmd = cli.NewServeCommand(cfg, log, Version)

	case "-h", "--help", "help":
		printUsage()
		return

	case "version":
		fmt.Printf("librarian %s (%s)\n", Version, Commit)
		return

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", name)
		printUsage()
		os.Exit(1)
	}

	if err := cmd.ParseFlags(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := cmd.Run(); err != nil {
		log.Error().Err(err).Str("command", name).Msg("Fatal error")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [command] [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  run       Start the interactive library menu (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  serve     Start the read-only HTTP report of books and loans\n")
	fmt.Fprintf(os.Stderr, "  version   Print version information\n")
	fmt.Fprintf(os.Stderr, "\nRun '%s <command> -h' for command options.\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
	fmt.Fprintf(os.Stderr, "  DATABASE_DRIVER   sqlite (default) or postgres\n")
	fmt.Fprintf(os.Stderr, "  DATABASE_PATH     SQLite file (default %s)\n", config.DefaultDatabasePath)
	fmt.Fprintf(os.Stderr, "  DATABASE_DSN      PostgreSQL connection string\n")
	fmt.Fprintf(os.Stderr, "  LOG_LEVEL         debug, info, warn (default), error\n")
	fmt.Fprintf(os.Stderr, "  DB_LOG_LEVEL      silent (default), error, warn, info\n")
	fmt.Fprintf(os.Stderr, "  LOADING_DELAY     Progress animation after changes, e.g. 1.5s (default off)\n")
	fmt.Fprintf(os.Stderr, "  HOST, PORT        Address for serve (default 127.0.0.1:8190)\n")
}
