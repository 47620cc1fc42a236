package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/mrlokans/librarian/internal/config"
	"github.com/mrlokans/librarian/internal/entrypoint"
)

// RunCommand starts the interactive library menu.
type RunCommand struct {
	cfg *config.Config
	log zerolog.Logger
}

func NewRunCommand(cfg *config.Config, log zerolog.Logger) *RunCommand {
	return &RunCommand{cfg: cfg, log: log}
}

func (cmd *RunCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)

	fs.StringVar(&cmd.cfg.Database.Path, "db", cmd.cfg.Database.Path, "Path to the SQLite database file")
	fs.DurationVar(&cmd.cfg.Menu.LoadingDelay, "loading-delay", cmd.cfg.Menu.LoadingDelay, "Progress animation shown after changes (0 disables it)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s run [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Start the interactive library menu. The default admin password is \"pass\".\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *RunCommand) Run() error {
	return entrypoint.Run(cmd.cfg, cmd.log)
}
