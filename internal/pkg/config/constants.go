package config

// Log level constants
const (
	LogLevelInfo     = "info"
	LogLevelDebug    = "debug"
	LogLevelError    = "error"
	LogLevelWarning  = "warning"
	LogLevelCritical = "critical"
)

// Log type constants
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// Database type constants
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
)

// Environment names
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// Origins that are always allowed to make credentialed cross-origin requests,
// in addition to the configured frontend URL.
var defaultAllowedOrigins = []string{
	"http://localhost:5173",
	"http://localhost:3000",
	"https://bella-six-ashy.vercel.app",
}
