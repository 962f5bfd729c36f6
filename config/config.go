package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "6MB"
	defaultMaxImageSize       = "5MB"
	defaultPasswordMinLength  = 6
	defaultLocationInterval   = 15 * time.Second
	defaultSlowQueryThreshold = 200 * time.Millisecond
)

// Proximity and ranking defaults.
const (
	DefaultProximityRadiusKm = 0.5
	DefaultProximityCooldown = time.Hour
	MaxRankingLimit          = 100
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Database tunes query logging and pool monitoring on top of the postgres connection
	Database *DatabaseConfig `json:"database" yaml:"database"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	PasswordStrength *PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for location event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// NATS connection used when pubsub.provider is "nats"
	NATS *NATSConfig `json:"nats" yaml:"nats"`

	// ChangeBus configuration for live feed fan-out
	ChangeBus *ChangeBusConfig `json:"changeBus" yaml:"changeBus"`

	// Redis connection used when changeBus.provider is "redis"
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Storage configuration for profile images
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Proximity configuration for nearby spot notifications
	Proximity *ProximityConfig `json:"proximity" yaml:"proximity"`

	// Location configuration advertised to mobile clients
	Location *LocationConfig `json:"location" yaml:"location"`

	// Ranking configuration for the points leaderboard
	Ranking *RankingConfig `json:"ranking" yaml:"ranking"`

	// QRCode configuration for spot QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

// DatabaseConfig defines gorm logging and connection pool monitoring
type DatabaseConfig struct {
	// Queries slower than this are logged at warn level. Zero disables slow query logging.
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`

	// LogSQL includes the statement text in query logs.
	LogSQL bool `json:"logSql" yaml:"logSql"`

	PoolMonitorInterval time.Duration `json:"poolMonitorInterval" yaml:"poolMonitorInterval"`
	PoolWaitWarn        time.Duration `json:"poolWaitWarn" yaml:"poolWaitWarn"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost      int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL  time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
	RefreshTokenTTL time.Duration `json:"refreshTokenTTL" yaml:"refreshTokenTTL"`
}

// PasswordStrengthConfig defines password strength requirements
type PasswordStrengthConfig struct {
	MinLength int `json:"minLength" yaml:"minLength"`
	MaxLength int `json:"maxLength" yaml:"maxLength"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local", "google", "nats" or "noop"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Audience expected in push auth tokens (for google provider in the worker)
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// NATSConfig defines the NATS connection
type NATSConfig struct {
	URL        string `json:"url" yaml:"url"`
	Subject    string `json:"subject" yaml:"subject"`
	QueueGroup string `json:"queueGroup" yaml:"queueGroup"`
}

// ChangeBusConfig defines the live feed signal transport
type ChangeBusConfig struct {
	// Provider type: "memory" or "redis"
	Provider string `json:"provider" yaml:"provider"`

	// Prefix prepended to redis channel names
	ChannelPrefix string `json:"channelPrefix" yaml:"channelPrefix"`
}

// RedisConfig defines the Redis connection
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// StorageConfig defines object storage for profile images
type StorageConfig struct {
	// BucketURL is a gocloud.dev blob URL, e.g. "gs://bucket", "file:///var/data" or "mem://"
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// PublicBaseURL is joined with the object key to form download URLs.
	// When empty a signed URL is requested from the bucket.
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`

	SignedURLExpiry time.Duration `json:"signedUrlExpiry" yaml:"signedUrlExpiry"`

	MaxImageSize string `json:"maxImageSize" yaml:"maxImageSize"`
}

// ProximityConfig defines the nearby spot notification rules
type ProximityConfig struct {
	RadiusKm    float64       `json:"radiusKm" yaml:"radiusKm"`
	Cooldown    time.Duration `json:"cooldown" yaml:"cooldown"`
	Title       string        `json:"title" yaml:"title"`
	BodyPrefix  string        `json:"bodyPrefix" yaml:"bodyPrefix"`
	SendTimeout time.Duration `json:"sendTimeout" yaml:"sendTimeout"`
}

// LocationConfig defines the location sampling contract of mobile clients
type LocationConfig struct {
	UpdateInterval time.Duration `json:"updateInterval" yaml:"updateInterval"`
	HighAccuracy   bool          `json:"highAccuracy" yaml:"highAccuracy"`
}

// RankingConfig defines the leaderboard size
type RankingConfig struct {
	Limit int `json:"limit" yaml:"limit"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env failed")
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// ApplyDefaults fills every unset option with its default.
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Database == nil {
		cfg.Database = &DatabaseConfig{SlowQueryThreshold: defaultSlowQueryThreshold, LogSQL: true}
	}
	if cfg.Database.PoolMonitorInterval <= 0 {
		cfg.Database.PoolMonitorInterval = 5 * time.Second
	}
	if cfg.Database.PoolWaitWarn <= 0 {
		cfg.Database.PoolWaitWarn = 50 * time.Millisecond
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.AccessTokenTTL <= 0 {
		cfg.Auth.AccessTokenTTL = 15 * time.Minute
	}
	if cfg.Auth.RefreshTokenTTL <= 0 {
		cfg.Auth.RefreshTokenTTL = 7 * 24 * time.Hour
	}
	if cfg.PasswordStrength == nil {
		cfg.PasswordStrength = &PasswordStrengthConfig{}
	}
	if cfg.PasswordStrength.MinLength <= 0 {
		cfg.PasswordStrength.MinLength = defaultPasswordMinLength
	}
	if cfg.Proximity == nil {
		cfg.Proximity = &ProximityConfig{}
	}
	cfg.Proximity.applyDefaults()
	if cfg.Location == nil {
		cfg.Location = &LocationConfig{HighAccuracy: true}
	}
	if cfg.Location.UpdateInterval <= 0 {
		cfg.Location.UpdateInterval = defaultLocationInterval
	}
	if cfg.Ranking == nil {
		cfg.Ranking = &RankingConfig{}
	}
	if cfg.Ranking.Limit <= 0 || cfg.Ranking.Limit > MaxRankingLimit {
		cfg.Ranking.Limit = MaxRankingLimit
	}
	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.BucketURL == "" {
		cfg.Storage.BucketURL = "mem://"
	}
	if cfg.Storage.MaxImageSize == "" {
		cfg.Storage.MaxImageSize = defaultMaxImageSize
	}
	if cfg.Storage.SignedURLExpiry <= 0 {
		cfg.Storage.SignedURLExpiry = 7 * 24 * time.Hour
	}
	if cfg.ChangeBus == nil {
		cfg.ChangeBus = &ChangeBusConfig{}
	}
	if cfg.ChangeBus.Provider == "" {
		cfg.ChangeBus.Provider = "memory"
	}
	if cfg.ChangeBus.ChannelPrefix == "" {
		cfg.ChangeBus.ChannelPrefix = "ecospot:"
	}
}

// applyDefaults fills the proximity rules:
// 500 m radius, one notification per spot per hour.
func (p *ProximityConfig) applyDefaults() {
	if p.RadiusKm <= 0 {
		p.RadiusKm = DefaultProximityRadiusKm
	}
	if p.Cooldown <= 0 {
		p.Cooldown = DefaultProximityCooldown
	}
	if p.Title == "" {
		p.Title = "Recycling spot nearby!"
	}
	if p.BodyPrefix == "" {
		p.BodyPrefix = "You are near: "
	}
	if p.SendTimeout <= 0 {
		p.SendTimeout = 10 * time.Second
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
