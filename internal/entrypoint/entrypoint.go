package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/mrlokans/librarian/internal/auth"
	"github.com/mrlokans/librarian/internal/config"
	"github.com/mrlokans/librarian/internal/database"
	"github.com/mrlokans/librarian/internal/database/books"
	"github.com/mrlokans/librarian/internal/database/credentials"
	"github.com/mrlokans/librarian/internal/database/loans"
	http_controllers "github.com/mrlokans/librarian/internal/http"
	"github.com/mrlokans/librarian/internal/library"
	"github.com/mrlokans/librarian/internal/menu"
)

// App holds the wired services shared by every front end.
type App struct {
	DB            *database.Database
	Catalog       *library.Catalog
	Circulation   *library.Circulation
	Authenticator *auth.Authenticator
	Log           zerolog.Logger
}

// Bootstrap opens the store and seeds the admin credential.
// A failure here means the program cannot proceed.
func Bootstrap(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	db, err := database.NewDatabase(cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	authenticator := auth.NewAuthenticator(credentials.NewRepository(db.DB), log)
	if err := authenticator.SeedDefault(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return &App{
		DB:            db,
		Catalog:       library.NewCatalog(books.NewRepository(db.DB), log),
		Circulation:   library.NewCirculation(loans.NewRepository(db.DB), log),
		Authenticator: authenticator,
		Log:           log,
	}, nil
}

func (a *App) Close() {
	if err := a.DB.Close(); err != nil {
		a.Log.Error().Err(err).Msg("Error closing database")
	}
}

// Run starts the interactive menu on the process terminal.
// Signals keep their default behaviour so Ctrl-C ends a blocked prompt.
func Run(cfg *config.Config, log zerolog.Logger) error {
	ctx := context.Background()

	app, err := Bootstrap(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer app.Close()

	session := menu.NewSession(os.Stdin, os.Stdout, app.Catalog, app.Circulation, app.Authenticator, log)
	session.SetLoadingDelay(cfg.Menu.LoadingDelay)
	if fd := int(os.Stdin.Fd()); term.IsTerminal(fd) {
		session.SetPasswordReader(func() (string, error) {
			password, err := term.ReadPassword(fd)
			return string(password), err
		})
	}

	return session.Run(ctx)
}

// Serve starts the read-only HTTP report and blocks until SIGINT or SIGTERM.
func Serve(cfg *config.Config, log zerolog.Logger, version string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := Bootstrap(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer app.Close()

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Catalog:       app.Catalog,
		Loans:         app.Circulation,
		Authenticator: app.Authenticator,
		DB:            app.DB,
		Driver:        cfg.Database.Driver,
		Version:       version,
		Log:           log,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Warn().Str("addr", srv.Addr).Msg("Starting report server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second
	log.Warn().Dur("timeout", timeout).Msg("Shutting down report server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
