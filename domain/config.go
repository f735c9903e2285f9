package domain

// Config defines the config for the pool share query server.
type Config struct {
	// Defines the web server configuration.
	ServerAddress string `mapstructure:"server-address"`

	// Defines the logger configuration.
	LoggerFilename     string `mapstructure:"logger-filename"`
	LoggerIsProduction bool   `mapstructure:"logger-is-production"`
	LoggerLevel        string `mapstructure:"logger-level"`

	ChainGRPCGatewayEndpoint string `mapstructure:"grpc-gateway-endpoint"`
	ChainID                  string `mapstructure:"chain-id"`

	CORS *CORSConfig `mapstructure:"cors"`

	// Shares encapsulates the share module config.
	Shares *SharesConfig `mapstructure:"shares"`

	// Pools encapsulates the pool registry config.
	Pools *PoolsConfig `mapstructure:"pools"`

	OTEL *OTELConfig `mapstructure:"otel"`
}

// CORSConfig defines the CORS configuration.
type CORSConfig struct {
	// Specifies Access-Control-Allow-Headers header value.
	AllowedHeaders string `mapstructure:"allowed-headers"`

	// Specifies Access-Control-Allow-Methods header value.
	AllowedMethods string `mapstructure:"allowed-methods"`

	// Specifies Access-Control-Allow-Origin header value.
	AllowedOrigin string `mapstructure:"allowed-origin"`
}

// SharesConfig defines the config for the share module.
type SharesConfig struct {
	// SnapshotTTLSeconds is how long an account snapshot is served
	// before it is refreshed from the chain.
	SnapshotTTLSeconds int `mapstructure:"snapshot-ttl-seconds"`

	// CacheSize bounds the share derivation memoization cache.
	CacheSize int `mapstructure:"cache-size"`
}

// PoolsConfig defines the config for the pool registry.
type PoolsConfig struct {
	// RefreshIntervalSeconds is the pool registry refresh period.
	RefreshIntervalSeconds int `mapstructure:"refresh-interval-seconds"`

	// PageLimit is the pagination limit used when listing pools from the chain.
	PageLimit uint64 `mapstructure:"page-limit"`
}

// OTELConfig represents OpenTelemetry configuration.
type OTELConfig struct {
	DSN                string  `mapstructure:"dsn"`
	SampleRate         float64 `mapstructure:"sample-rate"`
	EnableTracing      bool    `mapstructure:"enable-tracing"`
	ProfilesSampleRate float64 `mapstructure:"profiles-sample-rate"`
	Environment        string  `mapstructure:"environment"`
}

const (
	defaultSnapshotTTLSeconds     = 15
	defaultShareCacheSize         = 4096
	defaultPoolRefreshIntervalSec = 30
	defaultPoolPageLimit          = 1000
)

// DefaultConfig returns the default service config.
func DefaultConfig() Config {
	return Config{
		ServerAddress: ":9092",

		LoggerIsProduction: true,
		LoggerLevel:        "info",

		ChainGRPCGatewayEndpoint: "localhost:9090",
		ChainID:                  "osmosis-1",

		CORS: &CORSConfig{
			AllowedHeaders: "Origin, Accept, Content-Type, X-Requested-With, X-Server-Time",
			AllowedMethods: "HEAD, GET, POST",
			AllowedOrigin:  "*",
		},

		Shares: &SharesConfig{
			SnapshotTTLSeconds: defaultSnapshotTTLSeconds,
			CacheSize:          defaultShareCacheSize,
		},

		Pools: &PoolsConfig{
			RefreshIntervalSeconds: defaultPoolRefreshIntervalSec,
			PageLimit:              defaultPoolPageLimit,
		},
	}
}
