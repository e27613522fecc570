package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all process configuration. It is built once at startup and
// passed explicitly to the components that need it; nothing reads the
// environment after Load returns.
type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Chart     ChartConfig
	Geocoding GeocodingConfig
	Ephemeris EphemerisConfig
	Mongo     MongoConfig
	Redis     RedisConfig
}

type ChartConfig struct {
	// HouseSystem is the single-letter house system code passed to the
	// ephemeris ("P" = Placidus).
	HouseSystem string `env:"HOUSE_SYSTEM, default=P"`
	// AspectOrb is the allowed deviation from an exact aspect angle, degrees.
	AspectOrb float64 `env:"ASPECT_ORB, default=5"`
	// DSTPolicy settles ambiguous local times: "earliest" picks the offset
	// giving the earlier UTC instant, "latest" the later one.
	DSTPolicy string `env:"DST_POLICY, default=earliest"`
	// CacheTTL is how long assembled charts stay in Redis; 0 disables caching.
	CacheTTL time.Duration `env:"CHART_CACHE_TTL, default=24h"`
}

type GeocodingConfig struct {
	APIKey  string        `env:"OPENCAGE_API_KEY"`
	BaseURL string        `env:"OPENCAGE_BASE_URL, default=https://api.opencagedata.com"`
	Timeout time.Duration `env:"GEOCODE_TIMEOUT,   default=5s"`
}

type EphemerisConfig struct {
	BaseURL string        `env:"EPHEMERIS_BASE_URL, default=http://localhost:8100"`
	Timeout time.Duration `env:"EPHEMERIS_TIMEOUT,  default=5s"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=natal_api"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
