// Package database provides the data access layer for the library.
//
// # Architecture
//
//	database/
//	├── database.go      # Connection setup and schema creation
//	├── errors.go        # Driver-independent error classification
//	├── books/           # Catalog (available_books) operations
//	├── loans/           # Circulation (issued) operations
//	└── credentials/     # Admin login row
//
// # Using Sub-packages
//
//	db, err := database.NewDatabase(cfg.Database, log)
//
//	booksRepo := books.NewRepository(db.DB)
//	loansRepo := loans.NewRepository(db.DB)
//	credsRepo := credentials.NewRepository(db.DB)
//
// # Drivers
//
// SQLite is the default. The file is opened with foreign keys enabled so that
// removing a book cascades to its loans. PostgreSQL is selected with
// DATABASE_DRIVER=postgres and DATABASE_DSN.
package database
