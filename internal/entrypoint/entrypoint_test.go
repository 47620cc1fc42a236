package entrypoint

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/librarian/internal/auth"
	"github.com/mrlokans/librarian/internal/config"
)

func TestBootstrap(t *testing.T) {
	cfg := &config.Config{Database: config.Database{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "library.db"),
	}}
	ctx := context.Background()

	app, err := Bootstrap(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	defer app.Close()

	assert.NoError(t, app.Authenticator.Login(ctx, auth.DefaultPassword))

	_, err = app.Catalog.Add(ctx, 1, "A", "Sci", 1)
	require.NoError(t, err)
	_, err = app.Circulation.Issue(ctx, 1, "Sam", "5A")
	require.NoError(t, err)

	issued, err := app.Circulation.ListIssued(ctx)
	require.NoError(t, err)
	assert.Len(t, issued, 1)
}

func TestBootstrap_ConnectionFailure(t *testing.T) {
	cfg := &config.Config{Database: config.Database{Driver: "oracle"}}

	_, err := Bootstrap(context.Background(), cfg, zerolog.Nop())

	assert.ErrorContains(t, err, "failed to initialize database")
}
