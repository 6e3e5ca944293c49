package models

import "time"

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	NSQ       NSQConfig
	JWT       JWTConfig
	NewRelic  NewRelicConfig
	Logger    LoggerConfig
	Location  LocationConfig
	Emergency EmergencyConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// NSQConfig contains NSQ producer configuration
type NSQConfig struct {
	Address string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	LogsEnabled bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// LocationConfig tunes fix ingestion and proximity lookups
type LocationConfig struct {
	ProximityCacheTTL   time.Duration
	HistoryEnabled      bool
	FixesPerSecond      float64 // per websocket connection
	FixBurst            int
	ProximityResultsCap int
}

// EmergencyConfig tunes the emergency alert coordinator
type EmergencyConfig struct {
	RateLimitWindow       time.Duration
	BaseRadiusKm          float64
	MaxRadiusMultiplier   float64
	ReferenceSpeedKmh     float64
	HalfConeAngleDegrees  float64
	DeliveryTimeout       time.Duration
	MaxParallelDeliveries int
	AwardTimeout          time.Duration
	EpisodeTTL            time.Duration
}
