package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/piresc/pathclear/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads configuration from the environment, reading configPath
// as a dotenv file first when running locally
func InitConfig(configPath string) *models.Config {
	env := os.Getenv("APP_ENV")
	if env == "" || env == "local" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return Load(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "emergency-service")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("APP_VERSION", "development")

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 9990)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("DB_DRIVER", "pgx")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_IDLE_CONNS", 2)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_POOL_SIZE", 20)

	v.SetDefault("NATS_URL", "nats://localhost:4222")
	v.SetDefault("NSQ_ADDRESS", "localhost:4150")

	v.SetDefault("JWT_EXPIRATION", 60)

	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("LOCATION_PROXIMITY_CACHE_TTL", "10s")
	v.SetDefault("LOCATION_HISTORY_ENABLED", true)
	v.SetDefault("LOCATION_FIXES_PER_SECOND", 2.0)
	v.SetDefault("LOCATION_FIX_BURST", 5)
	v.SetDefault("LOCATION_PROXIMITY_RESULTS_CAP", 200)

	v.SetDefault("EMERGENCY_RATE_LIMIT_WINDOW", "30s")
	v.SetDefault("EMERGENCY_BASE_RADIUS_KM", 0.5)
	v.SetDefault("EMERGENCY_MAX_RADIUS_MULTIPLIER", 2.0)
	v.SetDefault("EMERGENCY_REFERENCE_SPEED_KMH", 30.0)
	v.SetDefault("EMERGENCY_HALF_CONE_DEGREES", 60.0)
	v.SetDefault("EMERGENCY_DELIVERY_TIMEOUT", "3s")
	v.SetDefault("EMERGENCY_MAX_PARALLEL_DELIVERIES", 16)
	v.SetDefault("EMERGENCY_AWARD_TIMEOUT", "5s")
	v.SetDefault("EMERGENCY_EPISODE_TTL", "12h")
}

// Load builds the application config from v
func Load(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	configs.Database.Driver = v.GetString("DB_DRIVER")
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	configs.NATS.URL = v.GetString("NATS_URL")
	configs.NSQ.Address = v.GetString("NSQ_ADDRESS")

	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Expiration = v.GetInt("JWT_EXPIRATION")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	configs.NewRelic.LicenseKey = v.GetString("NEW_RELIC_LICENSE_KEY")
	configs.NewRelic.AppName = v.GetString("NEW_RELIC_APP_NAME")
	configs.NewRelic.Enabled = v.GetBool("NEW_RELIC_ENABLED")
	configs.NewRelic.LogsEnabled = v.GetBool("NEW_RELIC_LOGS_ENABLED")
	configs.NewRelic.ForwardLogs = v.GetBool("NEW_RELIC_FORWARD_LOGS")

	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	configs.Location.ProximityCacheTTL = v.GetDuration("LOCATION_PROXIMITY_CACHE_TTL")
	configs.Location.HistoryEnabled = v.GetBool("LOCATION_HISTORY_ENABLED")
	configs.Location.FixesPerSecond = v.GetFloat64("LOCATION_FIXES_PER_SECOND")
	configs.Location.FixBurst = v.GetInt("LOCATION_FIX_BURST")
	configs.Location.ProximityResultsCap = v.GetInt("LOCATION_PROXIMITY_RESULTS_CAP")

	configs.Emergency.RateLimitWindow = v.GetDuration("EMERGENCY_RATE_LIMIT_WINDOW")
	configs.Emergency.BaseRadiusKm = v.GetFloat64("EMERGENCY_BASE_RADIUS_KM")
	configs.Emergency.MaxRadiusMultiplier = v.GetFloat64("EMERGENCY_MAX_RADIUS_MULTIPLIER")
	configs.Emergency.ReferenceSpeedKmh = v.GetFloat64("EMERGENCY_REFERENCE_SPEED_KMH")
	configs.Emergency.HalfConeAngleDegrees = v.GetFloat64("EMERGENCY_HALF_CONE_DEGREES")
	configs.Emergency.DeliveryTimeout = v.GetDuration("EMERGENCY_DELIVERY_TIMEOUT")
	configs.Emergency.MaxParallelDeliveries = v.GetInt("EMERGENCY_MAX_PARALLEL_DELIVERIES")
	configs.Emergency.AwardTimeout = v.GetDuration("EMERGENCY_AWARD_TIMEOUT")
	configs.Emergency.EpisodeTTL = v.GetDuration("EMERGENCY_EPISODE_TTL")

	return configs
}

// Default returns the configuration built from defaults and the current environment only
func Default() *models.Config {
	return Load(newViper())
}

// DurationOr returns d, or fallback when d is not positive
func DurationOr(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}
