package constants

const (
	AppName            = "datefmt"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/datefmt/datefmt.db"
	Version            = "v0.2.0"

	// ConnectionEnvVar holds a PostgreSQL connection string used when --config is left at its default
	ConnectionEnvVar = "DATEFMT_DB_CONNECTION"
)
