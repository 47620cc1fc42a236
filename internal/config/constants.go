package config

// Default paths for databases
const (
	// DefaultDatabasePath is the default path for the library database
	DefaultDatabasePath = "./library.db"
)

// Supported database drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)
