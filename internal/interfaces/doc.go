// Package interfaces collects the compile-time checks that tie the concrete
// types to the interfaces their consumers declare.
//
// # Interface Map
//
// Data access (declared by the consumer, implemented in internal/database):
//
//   - library.BookStore: books.Repository
//   - library.LoanStore: loans.Repository
//   - auth.CredentialStore: credentials.Repository
//
// Front ends (declared in internal/menu and internal/http, implemented in internal/library):
//
//   - menu.Catalog, http.CatalogReader: library.Catalog
//   - menu.Circulation, http.LoanReader: library.Circulation
//   - menu.Authenticator: auth.Authenticator
//   - http.Pinger: database.Database
//
// # Adding a Front End
//
//  1. Declare the narrow interface the front end needs next to its code
//  2. Accept it in the constructor, never the concrete service
//  3. Add a var _ check to checks.go
//  4. Wire it in internal/entrypoint
package interfaces
