package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/librarian/internal/auth"
	"github.com/mrlokans/librarian/internal/database"
	"github.com/mrlokans/librarian/internal/database/books"
	"github.com/mrlokans/librarian/internal/database/credentials"
	"github.com/mrlokans/librarian/internal/database/loans"
	"github.com/mrlokans/librarian/internal/http"
	"github.com/mrlokans/librarian/internal/library"
	"github.com/mrlokans/librarian/internal/menu"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ library.BookStore = (*books.Repository)(nil)
var _ library.LoanStore = (*loans.Repository)(nil)
var _ auth.CredentialStore = (*credentials.Repository)(nil)

// =============================================================================
// Terminal Menu
// =============================================================================

var _ menu.Catalog = (*library.Catalog)(nil)
var _ menu.Circulation = (*library.Circulation)(nil)
var _ menu.Authenticator = (*auth.Authenticator)(nil)

// =============================================================================
// HTTP Report
// =============================================================================

var _ http.CatalogReader = (*library.Catalog)(nil)
var _ http.LoanReader = (*library.Circulation)(nil)
var _ http.Pinger = (*database.Database)(nil)
