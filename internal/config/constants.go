package config

import "time"

// Store drivers
const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

// StoreDrivers lists every accepted STORE_DRIVER value
var StoreDrivers = []string{StoreMemory, StoreSQLite, StorePostgres}

// Defaults applied when a variable is unset
const (
	DefaultPort              = "8080"
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultServiceName       = "tower-idle"
	DefaultVersion           = "dev"
	DefaultEnvironment       = "dev"
	DefaultSQLitePath        = "data/towers.db"
	DefaultDBName            = "towers"
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
	DefaultSessionCacheSize  = 1024
	DefaultSessionIdleTTL    = 30 * time.Minute
)
