package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/mrlokans/librarian/internal/config"
	"github.com/mrlokans/librarian/internal/entrypoint"
)

// ServeCommand starts the read-only HTTP report.
type ServeCommand struct {
	cfg     *config.Config
	log     zerolog.Logger
	version string
}

func NewServeCommand(cfg *config.Config, log zerolog.Logger, version string) *ServeCommand {
	return &ServeCommand{cfg: cfg, log: log, version: version}
}

func (cmd *ServeCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)

	var port int
	fs.StringVar(&cmd.cfg.Database.Path, "db", cmd.cfg.Database.Path, "Path to the SQLite database file")
	fs.StringVar(&cmd.cfg.HTTP.Host, "host", cmd.cfg.HTTP.Host, "Address to listen on")
	fs.IntVar(&port, "port", int(cmd.cfg.HTTP.Port), "Port to listen on")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s serve [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Serve the catalog and issued books as JSON. Requests other than\n")
		fmt.Fprintf(os.Stderr, "/health need HTTP Basic auth with user \"admin\" and the library password.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s serve -port 8190\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  curl -u admin:pass http://127.0.0.1:8190/api/books?q=harry\n")
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid port %d", port)
	}
	cmd.cfg.HTTP.Port = int32(port)

	return nil
}

func (cmd *ServeCommand) Run() error {
	return entrypoint.Serve(cmd.cfg, cmd.log, cmd.version)
}
