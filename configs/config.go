package configs

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/apex/log"
	"github.com/joho/godotenv"
)

// AppConfig holds the application configuration.
// It's populated once by LoadConfig.
var AppConfig Configuration
var once sync.Once

// Configuration defines the structure for application settings.
type Configuration struct {
	JWTSecret          string
	ServerPort         string
	LogLevel           string
	CORSAllowedOrigins []string
	LoginRateLimit     int // login attempts per minute per client IP
	Store              StoreConfig
}

// StoreConfig selects and locates the external store.
type StoreConfig struct {
	Driver       string // sqlite, postgres or mongo
	SQLitePath   string
	DSN          string // PostgreSQL DSN
	MongoURI     string
	MongoDB      string
	QueryTimeout time.Duration
}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

const (
	defaultJWTSecret      = "report-admin"        // Default JWT secret, used if env var is not set.
	envJWTSecretKey       = "JWT_SECRET_KEY"      // Environment variable name for the JWT secret.
	defaultServerPort     = "8080"                // Default server port.
	envServerPortKey      = "SERVER_PORT"         // Environment variable name for the server port.
	defaultLogLevel       = "info"                // Default apex/log level.
	envLogLevelKey        = "LOG_LEVEL"           // Environment variable name for the log level.
	defaultCORSOrigins    = "http://localhost:3000"
	envCORSOriginsKey     = "CORS_ALLOWED_ORIGINS" // Comma separated list of console origins.
	defaultLoginRateLimit = 10
	envLoginRateLimitKey  = "LOGIN_RATE_LIMIT"
	defaultStoreDriver    = DriverSQLite
	envStoreDriverKey     = "STORE_DRIVER"
	defaultSQLitePath     = "data/report_admin.db"
	envSQLitePathKey      = "SQLITE_DB_PATH"
	envDSNKey             = "DATABASE_DSN"
	defaultMongoURI       = "mongodb://localhost:27017"
	envMongoURIKey        = "MONGO_URI"
	defaultMongoDB        = "report_admin"
	envMongoDBKey         = "MONGO_DB"
	defaultQueryTimeout   = 10 * time.Second
	envQueryTimeoutKey    = "STORE_QUERY_TIMEOUT"
)

// LoadConfig loads configuration from a .env file (if present), environment
// variables or defaults. It should be called once at application startup.
func LoadConfig() {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Debugf("no .env file loaded: %v", err)
		}
		AppConfig = FromEnv()
		log.WithFields(log.Fields{
			"port":    AppConfig.ServerPort,
			"store":   AppConfig.Store.Driver,
			"origins": strings.Join(AppConfig.CORSAllowedOrigins, ","),
		}).Info("application config loaded")
	})
}

// FromEnv builds a Configuration from the current environment without
// touching AppConfig.
func FromEnv() Configuration {
	jwtSecret := os.Getenv(envJWTSecretKey)
	if jwtSecret == "" {
		jwtSecret = defaultJWTSecret
		log.Warnf("%s is not set, using the default JWT secret. Set it in production.", envJWTSecretKey)
	}

	serverPort := os.Getenv(envServerPortKey)
	if serverPort == "" {
		serverPort = defaultServerPort
		log.Infof("%s is not set, using default port %s", envServerPortKey, defaultServerPort)
	}

	driver := strings.ToLower(getenv(envStoreDriverKey, defaultStoreDriver))
	switch driver {
	case DriverSQLite, DriverPostgres, DriverMongo:
	default:
		log.Warnf("unknown %s %q, falling back to %s", envStoreDriverKey, driver, defaultStoreDriver)
		driver = defaultStoreDriver
	}

	return Configuration{
		JWTSecret:          jwtSecret,
		ServerPort:         serverPort,
		LogLevel:           getenv(envLogLevelKey, defaultLogLevel),
		CORSAllowedOrigins: splitList(getenv(envCORSOriginsKey, defaultCORSOrigins)),
		LoginRateLimit:     getenvInt(envLoginRateLimitKey, defaultLoginRateLimit),
		Store: StoreConfig{
			Driver:       driver,
			SQLitePath:   getenv(envSQLitePathKey, defaultSQLitePath),
			DSN:          os.Getenv(envDSNKey),
			MongoURI:     getenv(envMongoURIKey, defaultMongoURI),
			MongoDB:      getenv(envMongoDBKey, defaultMongoDB),
			QueryTimeout: getenvDuration(envQueryTimeoutKey, defaultQueryTimeout),
		},
	}
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Warnf("invalid %s %q, using %d", key, raw, def)
		return def
	}
	return n
}

func getenvDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Warnf("invalid %s %q, using %s", key, raw, def)
		return def
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
