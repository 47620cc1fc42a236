// Package auth implements the single admin password check that guards the
// library menu and the read-only HTTP report.
//
// The login table holds one row seeded on first run with user "admin" and
// password "pass". Passwords are stored as unsalted hex SHA-256 digests,
// which keeps databases created by earlier versions usable but is weak
// against offline guessing. There is no lockout or rate limiting.
//
// # Usage
//
//	authenticator := auth.NewAuthenticator(credentials.NewRepository(db.DB), log)
//	if err := authenticator.SeedDefault(ctx); err != nil { ... }
//	if err := authenticator.Login(ctx, password); auth.IsInvalidPassword(err) { ... }
//
// For HTTP:
//
//	router.Use(auth.BasicAuth(authenticator, "/health"))
package auth
